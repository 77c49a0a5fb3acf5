package data

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSet(t *testing.T, n int) *BasicDataSet {
	t.Helper()
	ds := NewBasicDataSet(2, 1)
	for i := 0; i < n; i++ {
		require.NoError(t, ds.Add(NewItem([]float32{float32(i), float32(-i)}, []float32{float32(i % 2)})))
	}
	return ds
}

func TestBasicDataSet_Add(t *testing.T) {
	ds := NewBasicDataSet(2, 1)
	require.NoError(t, ds.Add(NewItem([]float32{1, 2}, []float32{3})))
	assert.Equal(t, 1, ds.Size())

	err := ds.Add(NewItem([]float32{1}, []float32{3}))
	assert.ErrorIs(t, err, ErrWidthMismatch)
	assert.Equal(t, 1, ds.Size())
}

func TestBasicDataSet_ItemsRestartable(t *testing.T) {
	ds := newTestSet(t, 5)

	for pass := 0; pass < 2; pass++ {
		count := 0
		for item := range ds.Items() {
			assert.Equal(t, float32(count), item.Input.Get(0))
			count++
		}
		assert.Equal(t, 5, count)
	}

	// Early break stops the sequence.
	count := 0
	for range ds.Items() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestValidateWidths(t *testing.T) {
	ds := newTestSet(t, 3)
	assert.NoError(t, ValidateWidths(ds, 2, 1))
	assert.ErrorIs(t, ValidateWidths(ds, 3, 1), ErrWidthMismatch)
	assert.ErrorIs(t, ValidateWidths(ds, 2, 2), ErrWidthMismatch)
}

func TestBasicDataSet_Split(t *testing.T) {
	ds := newTestSet(t, 10)

	parts, err := ds.Split(0.7, 0.3)
	require.NoError(t, err)
	require.Len(t, parts, 2)
	assert.Equal(t, 7, parts[0].Size())
	assert.Equal(t, 3, parts[1].Size())
	assert.Equal(t, float32(7), parts[1].Get(0).Input.Get(0))

	parts, err = ds.Split(0.5)
	require.NoError(t, err)
	assert.Equal(t, 5, parts[0].Size())

	_, err = ds.Split(0.8, 0.8)
	assert.Error(t, err)
	_, err = ds.Split(-0.1)
	assert.Error(t, err)
	_, err = ds.Split()
	assert.Error(t, err)
}

func TestTrainTestSplit(t *testing.T) {
	ds := newTestSet(t, 20)
	train, test, err := TrainTestSplit(ds, 0.75, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, 15, train.Size())
	assert.Equal(t, 5, test.Size())

	seen := map[float32]bool{}
	for _, part := range []*BasicDataSet{train, test} {
		for item := range part.Items() {
			seen[item.Input.Get(0)] = true
		}
	}
	assert.Len(t, seen, 20)

	_, _, err = TrainTestSplit(ds, 1, rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}

func TestSetColumnNames(t *testing.T) {
	ds := NewBasicDataSet(2, 1)
	require.NoError(t, ds.SetColumnNames([]string{"a", "b", "y"}))
	assert.Equal(t, []string{"a", "b", "y"}, ds.ColumnNames())
	assert.Error(t, ds.SetColumnNames([]string{"a"}))
}

func TestOneHotEncode(t *testing.T) {
	labels := []string{"setosa", "versicolor", "virginica"}
	assert.Equal(t, []float32{0, 1, 0}, OneHotEncode("versicolor", labels))
	assert.Equal(t, []float32{0, 0, 0}, OneHotEncode("unknown", labels))
}
