package workout

import "math/rand"

// Rand is the source of randomness for exercise sampling.
type Rand interface {
	Intn(n int) int
}

// globalRand uses the goroutine-safe top-level math/rand source.
type globalRand struct{}

func (globalRand) Intn(n int) int {
	return rand.Intn(n)
}

var DefaultRand Rand = globalRand{}

// sample picks k distinct elements in random order.
func sample[T any](rnd Rand, items []T, k int) []T {
	if k > len(items) {
		k = len(items)
	}
	if k <= 0 {
		return nil
	}

	pool := make([]T, len(items))
	copy(pool, items)
	for i := 0; i < k; i++ {
		j := i + rnd.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
