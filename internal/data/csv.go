package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSVOptions controls CSV parsing.
type CSVOptions struct {
	HasHeader bool // First row holds column names.
	Delimiter rune // Field delimiter (default: ',').
}

// ReadCSVFile opens path and reads it with ReadCSV.
func ReadCSVFile(path string, inputs, outputs int, opts CSVOptions) (*BasicDataSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return ReadCSV(f, inputs, outputs, opts)
}

// ReadCSV reads rows of inputs+outputs numeric columns into a data set.
//
// The first inputs columns form the input vector, the remaining outputs
// columns the target. Empty lines are skipped. Without a header, columns are
// named in1..inN, out1..outM.
func ReadCSV(r io.Reader, inputs, outputs int, opts CSVOptions) (*BasicDataSet, error) {
	if inputs <= 0 || outputs <= 0 {
		return nil, fmt.Errorf("invalid widths %d->%d (must be > 0)", inputs, outputs)
	}
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	ds := NewBasicDataSet(inputs, outputs)
	cols := inputs + outputs

	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, fmt.Errorf("failed to read header: %w", err)
		}
		if len(header) != cols {
			return nil, fmt.Errorf("header has %d columns, expected %d", len(header), cols)
		}
		_ = ds.SetColumnNames(header)
	} else {
		names := make([]string, 0, cols)
		for i := 1; i <= inputs; i++ {
			names = append(names, "in"+strconv.Itoa(i))
		}
		for j := 1; j <= outputs; j++ {
			names = append(names, "out"+strconv.Itoa(j))
		}
		_ = ds.SetColumnNames(names)
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		row := ds.Size() + 1
		if len(record) != cols {
			return nil, fmt.Errorf("wrong number of values in row %d: found %d, expected %d", row, len(record), cols)
		}

		values := make([]float32, cols)
		for i, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 32)
			if err != nil {
				return nil, fmt.Errorf("number expected in row %d, column %d: %w", row, i+1, err)
			}
			values[i] = float32(v)
		}
		if err := ds.Add(NewItem(values[:inputs], values[inputs:])); err != nil {
			return nil, err
		}
	}

	return ds, nil
}
