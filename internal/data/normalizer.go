package data

import (
	"errors"

	"github.com/stjordanis/deepnetts-communityedition/internal/tensor"
)

// Normalizer rescales data sets in place and maps network outputs back.
type Normalizer interface {
	// Normalize rescales every item of ds in place.
	Normalize(ds DataSet) error

	// DeNormalizeOutputs maps a single network output vector back to the
	// original target scale, in place.
	DeNormalizeOutputs(outputs *tensor.Tensor) error
}

// MaxNormalizer divides every vector component by the largest absolute value
// that component takes in the data set it was fitted on.
//
// A component whose maximum is zero (constant zero column) is divided by 1,
// so it stays zero instead of turning into NaN.
type MaxNormalizer struct {
	maxInputs  *tensor.Tensor
	maxOutputs *tensor.Tensor
}

// NewMaxNormalizer computes the per-component absolute maxima of ds.
func NewMaxNormalizer(ds DataSet) (*MaxNormalizer, error) {
	if ds.Size() == 0 {
		return nil, errors.New("cannot fit normalizer on an empty data set")
	}

	n := &MaxNormalizer{
		maxInputs:  tensor.NewVector(ds.InputWidth()),
		maxOutputs: tensor.NewVector(ds.TargetWidth()),
	}
	for item := range ds.Items() {
		var err error
		if n.maxInputs, err = tensor.AbsMax(item.Input, n.maxInputs); err != nil {
			return nil, err
		}
		if n.maxOutputs, err = tensor.AbsMax(item.Target, n.maxOutputs); err != nil {
			return nil, err
		}
	}
	substituteZeros(n.maxInputs)
	substituteZeros(n.maxOutputs)
	return n, nil
}

func substituteZeros(t *tensor.Tensor) {
	v := t.Values()
	for i := range v {
		if v[i] == 0 {
			v[i] = 1
		}
	}
}

// MaxInputs returns the input divisors.
func (n *MaxNormalizer) MaxInputs() *tensor.Tensor {
	return n.maxInputs
}

// MaxOutputs returns the target divisors.
func (n *MaxNormalizer) MaxOutputs() *tensor.Tensor {
	return n.maxOutputs
}

// Normalize divides every input and target of ds by the fitted maxima.
func (n *MaxNormalizer) Normalize(ds DataSet) error {
	for item := range ds.Items() {
		if err := sameShape("Normalize", item.Input, n.maxInputs); err != nil {
			return err
		}
		if err := sameShape("Normalize", item.Target, n.maxOutputs); err != nil {
			return err
		}
		if err := item.Input.Div(n.maxInputs); err != nil {
			return err
		}
		if err := item.Target.Div(n.maxOutputs); err != nil {
			return err
		}
	}
	return nil
}

// DeNormalizeOutputs multiplies outputs by the target maxima.
func (n *MaxNormalizer) DeNormalizeOutputs(outputs *tensor.Tensor) error {
	if err := sameShape("DeNormalizeOutputs", outputs, n.maxOutputs); err != nil {
		return err
	}
	return outputs.MulElementWise(n.maxOutputs)
}

// DeNormalizeInputs multiplies inputs by the input maxima.
func (n *MaxNormalizer) DeNormalizeInputs(inputs *tensor.Tensor) error {
	if err := sameShape("DeNormalizeInputs", inputs, n.maxInputs); err != nil {
		return err
	}
	return inputs.MulElementWise(n.maxInputs)
}

// sameShape rejects the scalar broadcast the tensor ops would otherwise allow
// for single-component vectors.
func sameShape(op string, t, want *tensor.Tensor) error {
	if t.SameShape(want) {
		return nil
	}
	return &tensor.ShapeError{Op: op, Rows: t.Rows(), Cols: t.Cols(), OtherRows: want.Rows(), OtherCols: want.Cols()}
}
