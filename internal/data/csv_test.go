package data

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	input := "x1,x2,y\n1,2,0\n\n3.5, 4,1\n"

	ds, err := ReadCSV(strings.NewReader(input), 2, 1, CSVOptions{HasHeader: true})
	require.NoError(t, err)

	assert.Equal(t, 2, ds.Size())
	assert.Equal(t, []string{"x1", "x2", "y"}, ds.ColumnNames())
	assert.Equal(t, []float32{3.5, 4}, ds.Get(1).Input.Values())
	assert.Equal(t, []float32{1}, ds.Get(1).Target.Values())
}

func TestReadCSV_NoHeaderDelimiter(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader("1;2;3;4\n"), 3, 1, CSVOptions{Delimiter: ';'})
	require.NoError(t, err)

	assert.Equal(t, 1, ds.Size())
	assert.Equal(t, []string{"in1", "in2", "in3", "out1"}, ds.ColumnNames())
}

func TestReadCSV_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"wrong column count", "1,2,3\n1,2\n", "row 2: found 2, expected 3"},
		{"not a number", "1,2,3\n1,x,3\n", "number expected in row 2, column 2"},
		{"bad header", "a,b\n", "header has 2 columns"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := CSVOptions{HasHeader: tt.name == "bad header"}
			_, err := ReadCSV(strings.NewReader(tt.input), 2, 1, opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestReadCSV_InvalidWidths(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""), 0, 1, CSVOptions{})
	assert.Error(t, err)
}
