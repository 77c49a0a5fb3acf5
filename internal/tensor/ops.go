package tensor

import "github.com/chewxy/math32"

// Add adds other to t elementwise, in place.
func (t *Tensor) Add(other *Tensor) error {
	return t.apply("Add", other, func(a, b float32) float32 { return a + b })
}

// Sub subtracts other from t elementwise, in place.
func (t *Tensor) Sub(other *Tensor) error {
	return t.apply("Sub", other, func(a, b float32) float32 { return a - b })
}

// MulElementWise multiplies t by other elementwise, in place.
func (t *Tensor) MulElementWise(other *Tensor) error {
	return t.apply("MulElementWise", other, func(a, b float32) float32 { return a * b })
}

// Div divides t by other elementwise, in place.
//
// A zero divisor produces ±Inf or NaN; callers that need a guard must check first.
func (t *Tensor) Div(other *Tensor) error {
	return t.apply("Div", other, func(a, b float32) float32 { return a / b })
}

// DivScalar divides every element by s.
func (t *Tensor) DivScalar(s float32) {
	for i := range t.values {
		t.values[i] /= s
	}
}

// Scale multiplies every element by s.
func (t *Tensor) Scale(s float32) {
	for i := range t.values {
		t.values[i] *= s
	}
}

func (t *Tensor) apply(op string, other *Tensor, f func(a, b float32) float32) error {
	broadcast, err := t.checkShape(op, other)
	if err != nil {
		return err
	}
	if broadcast {
		s := other.values[0]
		for i, v := range t.values {
			t.values[i] = f(v, s)
		}
		return nil
	}
	for i, v := range t.values {
		t.values[i] = f(v, other.values[i])
	}
	return nil
}

// Sum returns the sum of all elements.
func (t *Tensor) Sum() float32 {
	var sum float32
	for _, v := range t.values {
		sum += v
	}
	return sum
}

// Max returns the largest element.
func (t *Tensor) Max() float32 {
	m := math32.Inf(-1)
	for _, v := range t.values {
		if v > m {
			m = v
		}
	}
	return m
}

// ArgMax returns the flat index of the largest element (first on ties).
func (t *Tensor) ArgMax() int {
	idx := 0
	for i, v := range t.values {
		if v > t.values[idx] {
			idx = i
		}
	}
	return idx
}

// AbsMax returns a new tensor holding, per component, the larger absolute value of a and b.
func AbsMax(a, b *Tensor) (*Tensor, error) {
	if !a.SameShape(b) {
		return nil, &ShapeError{Op: "AbsMax", Rows: a.rows, Cols: a.cols, OtherRows: b.rows, OtherCols: b.cols}
	}
	out := New(a.rows, a.cols)
	for i := range out.values {
		out.values[i] = math32.Max(math32.Abs(a.values[i]), math32.Abs(b.values[i]))
	}
	return out, nil
}
