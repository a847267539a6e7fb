// Package predictor produces price predictions for asset symbols
package predictor

import (
	"math/rand/v2"
	"sync"
)

const (
	// MinPrice is the lowest price Random can return
	MinPrice = 20000
	// MaxPrice is the highest price Random can return
	MaxPrice = 60000
)

// Predictor predicts a price for a symbol
type Predictor interface {
	Predict(symbol string) int
}

// Random returns uniformly distributed prices in [MinPrice, MaxPrice],
// ignoring the symbol.
type Random struct {
	mu  sync.Mutex
	rnd *rand.Rand // nil means the global source
}

// NewRandom creates a Random backed by the runtime's global source
func NewRandom() *Random {
	return &Random{}
}

// NewRandomWithSource creates a Random drawing from src
func NewRandomWithSource(src rand.Source) *Random {
	return &Random{rnd: rand.New(src)}
}

// Predict returns a random price in [MinPrice, MaxPrice]
func (r *Random) Predict(_ string) int {
	const span = MaxPrice - MinPrice + 1

	if r.rnd == nil {
		return MinPrice + rand.IntN(span)
	}

	// *rand.Rand is not safe for concurrent use
	r.mu.Lock()
	defer r.mu.Unlock()
	return MinPrice + r.rnd.IntN(span)
}
