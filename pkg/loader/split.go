package loader

import (
	"errors"
	"math/rand"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DefaultSeed keeps splits reproducible across runs on the same input.
const DefaultSeed int64 = 42

// Cuts are cumulative split points as fractions of the row count: train takes
// [0, Train·N), validation [Train·N, Validation·N) and test the rest.
type Cuts struct {
	Train      float64
	Validation float64
}

// DefaultCuts gives a 70/20/10 split.
var DefaultCuts = Cuts{Train: 0.7, Validation: 0.9}

// Validate checks 0 <= Train <= Validation <= 1.
func (c Cuts) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Train, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&c.Validation, validation.Max(1.0), validation.By(func(any) error {
			if c.Validation < c.Train {
				return errors.New("must not be less than the train cut")
			}
			return nil
		})),
	)
}

// Bounds returns the two row boundaries for n rows. Each is floor(cut·n).
func (c Cuts) Bounds(n int) (int, int) {
	trainEnd := clamp(int(c.Train*float64(n)), 0, n)
	validationEnd := clamp(int(c.Validation*float64(n)), trainEnd, n)
	return trainEnd, validationEnd
}

// Partitions holds row indexes into the unshuffled frame. Together they cover
// every index in [0, n) exactly once.
type Partitions struct {
	Train      []int
	Validation []int
	Test       []int
}

// Permutation returns a permutation of [0, n) drawn from a source seeded with seed.
func Permutation(n int, seed int64) []int {
	return rand.New(rand.NewSource(seed)).Perm(n)
}

// TrainValidationTestSplit permutes [0, n) with seed and cuts the result into
// three contiguous partitions.
func TrainValidationTestSplit(n int, seed int64, cuts Cuts) Partitions {
	indices := Permutation(n, seed)
	trainEnd, validationEnd := cuts.Bounds(n)
	return Partitions{
		Train:      indices[:trainEnd],
		Validation: indices[trainEnd:validationEnd],
		Test:       indices[validationEnd:],
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
