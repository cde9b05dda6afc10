package scoring

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// Noise supplies the bounded random jitter mixed into presented scores.
// Isolated behind an interface so tests can substitute fixed draws and assert
// exact bounds without flaking.
type Noise interface {
	// Uniform returns a draw in [min, max).
	Uniform(min, max float64) float64
}

type randomNoise struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomNoise returns the production noise source. Seeded from the clock
// once at construction; draws are independent per call and safe for
// concurrent requests.
func NewRandomNoise() Noise {
	return &randomNoise{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (r *randomNoise) Uniform(min, max float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return min + r.rng.Float64()*(max-min)
}

// uniformInt draws a uniform integer in [lo, hi).
func uniformInt(n Noise, lo, hi int) int {
	return int(math.Floor(n.Uniform(float64(lo), float64(hi))))
}

func clampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func clampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
