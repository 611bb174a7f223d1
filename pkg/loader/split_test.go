package loader

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCuts_Bounds(t *testing.T) {
	t.Run("Should floor the default cuts for ten rows", func(t *testing.T) {
		train, validation := DefaultCuts.Bounds(10)
		assert.Equal(t, 7, train)
		assert.Equal(t, 9, validation)
	})

	t.Run("Should floor the default cuts for the full bank dataset", func(t *testing.T) {
		train, validation := DefaultCuts.Bounds(41188)
		assert.Equal(t, 28831, train)
		assert.Equal(t, 37069, validation)
	})

	t.Run("Should keep boundaries inside the row range", func(t *testing.T) {
		train, validation := Cuts{Train: 0.7, Validation: 0.9}.Bounds(0)
		assert.Equal(t, 0, train)
		assert.Equal(t, 0, validation)
	})
}

func TestCuts_Validate(t *testing.T) {
	t.Run("Should accept the defaults", func(t *testing.T) {
		assert.NoError(t, DefaultCuts.Validate())
	})
	t.Run("Should reject cuts above one", func(t *testing.T) {
		assert.Error(t, Cuts{Train: 0.7, Validation: 1.2}.Validate())
	})
	t.Run("Should reject a negative train cut", func(t *testing.T) {
		assert.Error(t, Cuts{Train: -0.1, Validation: 0.9}.Validate())
	})
	t.Run("Should reject a validation cut before the train cut", func(t *testing.T) {
		assert.Error(t, Cuts{Train: 0.5, Validation: 0}.Validate())
	})
}

func TestTrainValidationTestSplit(t *testing.T) {
	t.Run("Should produce 7/2/1 partitions for ten rows", func(t *testing.T) {
		p := TrainValidationTestSplit(10, DefaultSeed, DefaultCuts)

		assert.Len(t, p.Train, 7)
		assert.Len(t, p.Validation, 2)
		assert.Len(t, p.Test, 1)
	})

	t.Run("Should cover every row exactly once", func(t *testing.T) {
		p := TrainValidationTestSplit(1000, DefaultSeed, DefaultCuts)

		var all []int
		all = append(all, p.Train...)
		all = append(all, p.Validation...)
		all = append(all, p.Test...)
		sort.Ints(all)
		require.Len(t, all, 1000)
		for i, v := range all {
			assert.Equal(t, i, v)
		}
	})

	t.Run("Should be reproducible for a fixed seed", func(t *testing.T) {
		a := TrainValidationTestSplit(500, DefaultSeed, DefaultCuts)
		b := TrainValidationTestSplit(500, DefaultSeed, DefaultCuts)

		assert.Equal(t, a, b)
	})

	t.Run("Should change assignment with the seed", func(t *testing.T) {
		a := TrainValidationTestSplit(500, 42, DefaultCuts)
		b := TrainValidationTestSplit(500, 7, DefaultCuts)

		assert.NotEqual(t, a.Train, b.Train)
	})
}
