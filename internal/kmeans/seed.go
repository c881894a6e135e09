package kmeans

import (
	"math/rand"

	"github.com/bits-and-blooms/bitset"
)

type globalSource struct{}

func (globalSource) Intn(n int) int { return rand.Intn(n) }

// Seed draws k distinct indices from [0, n), uniformly and without
// replacement. Collisions are redrawn. A nil src uses the math/rand global
// source.
func Seed(src Source, n, k int) ([]int, error) {
	if k < 1 {
		return nil, ErrInvalidK
	}
	if k > n {
		return nil, ErrTooFewPoints
	}
	if src == nil {
		src = globalSource{}
	}

	drawn := bitset.New(uint(n))
	seeds := make([]int, 0, k)

	for len(seeds) < k {
		idx := src.Intn(n)
		if drawn.Test(uint(idx)) {
			continue
		}
		drawn.Set(uint(idx))
		seeds = append(seeds, idx)
	}

	return seeds, nil
}
