// Copyright 2025 Deep Netts Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package data provides training data sets, CSV loading and normalization.
//
// Example:
//
//	ds, err := data.ReadCSVFile("iris.csv", 4, 3, data.CSVOptions{HasHeader: true})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	norm, err := data.NewMaxNormalizer(ds)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := norm.Normalize(ds); err != nil {
//	    log.Fatal(err)
//	}
//	train, test, err := data.TrainTestSplit(ds, 0.7, rand.New(rand.NewSource(1)))
package data

import (
	"io"
	"math/rand"

	"github.com/stjordanis/deepnetts-communityedition/internal/data"
)

// Item is one input/target pair.
type Item = data.Item

// DataSet is a sized, restartable collection of items.
type DataSet = data.DataSet

// BasicDataSet is an in-memory data set.
type BasicDataSet = data.BasicDataSet

// CSVOptions configures CSV parsing.
type CSVOptions = data.CSVOptions

// Normalizer scales data sets in place.
type Normalizer = data.Normalizer

// MaxNormalizer divides every column by its maximum absolute value.
type MaxNormalizer = data.MaxNormalizer

// ErrWidthMismatch reports item vectors that do not match the expected widths.
var ErrWidthMismatch = data.ErrWidthMismatch

// NewItem creates an item from copies of input and target.
func NewItem(input, target []float32) *Item {
	return data.NewItem(input, target)
}

// NewBasicDataSet creates an empty data set with fixed widths.
func NewBasicDataSet(inputWidth, targetWidth int) *BasicDataSet {
	return data.NewBasicDataSet(inputWidth, targetWidth)
}

// ValidateWidths checks every item of ds against the given widths.
func ValidateWidths(ds DataSet, inputWidth, targetWidth int) error {
	return data.ValidateWidths(ds, inputWidth, targetWidth)
}

// ReadCSV reads a data set whose rows hold inputs followed by outputs.
func ReadCSV(r io.Reader, inputs, outputs int, opts CSVOptions) (*BasicDataSet, error) {
	return data.ReadCSV(r, inputs, outputs, opts)
}

// ReadCSVFile reads a CSV data set from path.
func ReadCSVFile(path string, inputs, outputs int, opts CSVOptions) (*BasicDataSet, error) {
	return data.ReadCSVFile(path, inputs, outputs, opts)
}

// NewMaxNormalizer fits a max normalizer to ds.
func NewMaxNormalizer(ds DataSet) (*MaxNormalizer, error) {
	return data.NewMaxNormalizer(ds)
}

// TrainTestSplit shuffles d with rng and splits it into training and test sets.
func TrainTestSplit(d *BasicDataSet, trainFraction float64, rng *rand.Rand) (train, test *BasicDataSet, err error) {
	return data.TrainTestSplit(d, trainFraction, rng)
}

// OneHotEncode returns a vector with 1 at the position of label in labels.
func OneHotEncode(label string, labels []string) []float32 {
	return data.OneHotEncode(label, labels)
}
