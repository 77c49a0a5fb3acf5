// Package data provides labeled data sets consumed by the network engine.
//
// This package provides:
//   - DataSet interface: lazy, restartable sequence of Items
//   - BasicDataSet: in-memory implementation with shuffle and split
//   - ReadCSV: CSV loader for numeric rows
//   - MaxNormalizer: per-component max-abs scaling
package data

import (
	"errors"
	"fmt"
	"iter"
	"math/rand"

	"github.com/stjordanis/deepnetts-communityedition/internal/tensor"
)

// ErrWidthMismatch reports item vectors that do not match the expected widths.
var ErrWidthMismatch = errors.New("data set width mismatch")

// Item is a labeled example: an input vector and its target output.
type Item struct {
	Input  *tensor.Tensor
	Target *tensor.Tensor
}

// NewItem creates an item from input and target values.
func NewItem(input, target []float32) *Item {
	return &Item{
		Input:  tensor.FromSlice(input),
		Target: tensor.FromSlice(target),
	}
}

// DataSet is a finite collection of items.
//
// Items returns a fresh sequence on every call, so a data set can be
// iterated once per training epoch.
type DataSet interface {
	Size() int
	Items() iter.Seq[*Item]
	InputWidth() int
	TargetWidth() int
}

// ValidateWidths checks that every item of ds has the given input and target widths.
func ValidateWidths(ds DataSet, inputWidth, targetWidth int) error {
	if ds.InputWidth() != inputWidth || ds.TargetWidth() != targetWidth {
		return fmt.Errorf("%w: data set is %d->%d, network is %d->%d",
			ErrWidthMismatch, ds.InputWidth(), ds.TargetWidth(), inputWidth, targetWidth)
	}
	row := 0
	for item := range ds.Items() {
		if item.Input.Len() != inputWidth || item.Target.Len() != targetWidth {
			return fmt.Errorf("%w: row %d is %d->%d, want %d->%d",
				ErrWidthMismatch, row+1, item.Input.Len(), item.Target.Len(), inputWidth, targetWidth)
		}
		row++
	}
	return nil
}

// BasicDataSet is an in-memory data set.
type BasicDataSet struct {
	inputWidth  int
	targetWidth int
	items       []*Item
	columnNames []string
}

// NewBasicDataSet creates an empty data set with fixed vector widths.
func NewBasicDataSet(inputWidth, targetWidth int) *BasicDataSet {
	return &BasicDataSet{
		inputWidth:  inputWidth,
		targetWidth: targetWidth,
	}
}

// Add appends item after checking its widths.
func (d *BasicDataSet) Add(item *Item) error {
	if item.Input.Len() != d.inputWidth || item.Target.Len() != d.targetWidth {
		return fmt.Errorf("%w: item is %d->%d, want %d->%d",
			ErrWidthMismatch, item.Input.Len(), item.Target.Len(), d.inputWidth, d.targetWidth)
	}
	d.items = append(d.items, item)
	return nil
}

// Size returns the number of items.
func (d *BasicDataSet) Size() int {
	return len(d.items)
}

// InputWidth returns the input vector width.
func (d *BasicDataSet) InputWidth() int {
	return d.inputWidth
}

// TargetWidth returns the target vector width.
func (d *BasicDataSet) TargetWidth() int {
	return d.targetWidth
}

// Items returns the items in order.
func (d *BasicDataSet) Items() iter.Seq[*Item] {
	return func(yield func(*Item) bool) {
		for _, item := range d.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Get returns the item at index i.
func (d *BasicDataSet) Get(i int) *Item {
	return d.items[i]
}

// ColumnNames returns the column names, inputs first.
func (d *BasicDataSet) ColumnNames() []string {
	return d.columnNames
}

// SetColumnNames sets the column names, inputs first.
func (d *BasicDataSet) SetColumnNames(names []string) error {
	if names != nil && len(names) != d.inputWidth+d.targetWidth {
		return fmt.Errorf("got %d column names for %d columns", len(names), d.inputWidth+d.targetWidth)
	}
	d.columnNames = names
	return nil
}

// Shuffle randomly reorders the items in place.
func (d *BasicDataSet) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.items), func(i, j int) {
		d.items[i], d.items[j] = d.items[j], d.items[i]
	})
}

// Split partitions the data set into consecutive parts of the given fractions.
//
// Fractions must be positive and sum to at most 1; rounding leftovers go to
// the last part. Items are shared, not copied.
func (d *BasicDataSet) Split(fractions ...float64) ([]*BasicDataSet, error) {
	if len(fractions) == 0 {
		return nil, errors.New("split needs at least one fraction")
	}
	var total float64
	for _, f := range fractions {
		if f <= 0 {
			return nil, fmt.Errorf("split fraction %v must be > 0", f)
		}
		total += f
	}
	if total > 1+1e-9 {
		return nil, fmt.Errorf("split fractions sum to %v, must be <= 1", total)
	}

	parts := make([]*BasicDataSet, len(fractions))
	start := 0
	for i, f := range fractions {
		end := start + int(f*float64(len(d.items)))
		if i == len(fractions)-1 && total > 1-1e-9 {
			end = len(d.items)
		}
		end = min(end, len(d.items))
		part := NewBasicDataSet(d.inputWidth, d.targetWidth)
		part.columnNames = d.columnNames
		part.items = append(part.items, d.items[start:end]...)
		parts[i] = part
		start = end
	}
	return parts, nil
}

// TrainTestSplit shuffles d and splits it into a training part of the given
// fraction and a test part holding the rest.
func TrainTestSplit(d *BasicDataSet, trainFraction float64, rng *rand.Rand) (train, test *BasicDataSet, err error) {
	if trainFraction <= 0 || trainFraction >= 1 {
		return nil, nil, fmt.Errorf("train fraction %v must be in (0, 1)", trainFraction)
	}
	d.Shuffle(rng)
	parts, err := d.Split(trainFraction, 1-trainFraction)
	if err != nil {
		return nil, nil, err
	}
	return parts[0], parts[1], nil
}

// OneHotEncode returns a vector with 1 at the position of label in labels and 0 elsewhere.
//
// An unknown label yields an all-zero vector.
func OneHotEncode(label string, labels []string) []float32 {
	vec := make([]float32, len(labels))
	for i, l := range labels {
		if l == label {
			vec[i] = 1
		}
	}
	return vec
}
