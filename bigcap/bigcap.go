// Package bigcap provides the arbitrary-precision LCM/GCD arithmetic used
// to compute a pattern's total capacity from its placeholders' individual
// capacities. [math/big] is the standard library's own bignum package and
// is the idiomatic choice here; nothing in the example pack reaches for a
// third-party bignum library for this kind of arithmetic.
package bigcap

import (
	"math/big"

	gosync "github.com/slugkit/slugkit-generator/sync"
)

// GCD returns the greatest common divisor of a and b. Neither argument is
// mutated.
func GCD(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b))
}

// LCM returns the least common multiple of a and b. If either is zero,
// LCM returns zero, matching the convention that an unconstrained
// (zero-capacity) placeholder collapses the whole pattern's capacity.
func LCM(a, b *big.Int) *big.Int {
	if a.Sign() == 0 || b.Sign() == 0 {
		return big.NewInt(0)
	}

	g := GCD(a, b)
	if g.Sign() == 0 {
		return big.NewInt(0)
	}

	// lcm(a,b) = |a*b| / gcd(a,b), computed as (a/gcd)*b to keep the
	// intermediate product smaller.
	q := new(big.Int).Div(new(big.Int).Abs(a), g)
	return q.Mul(q, new(big.Int).Abs(b))
}

// LCMAll folds LCM over a slice of capacities, starting from 1 (the
// identity for LCM). An empty slice returns 1.
func LCMAll(capacities ...*big.Int) *big.Int {
	result := big.NewInt(1)
	for _, c := range capacities {
		result = LCM(result, c)
	}
	return result
}

// IsPrime reports whether n is prime, using [math/big.Int.ProbablyPrime]
// with a generous number of Miller-Rabin rounds. The domain sizes this
// package deals with (dictionary word counts) are small enough that this
// is effectively exact, not merely probabilistic.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	return big.NewInt(int64(n)).ProbablyPrime(20)
}

// PrevPrime returns the largest prime strictly less than n, or 0 if none
// exists (n <= 2).
func PrevPrime(n int) int {
	for candidate := n - 1; candidate >= 2; candidate-- {
		if IsPrime(candidate) {
			return candidate
		}
	}
	return 0
}

// GCDCache memoizes GCD(a, b) computations for small integer domain sizes,
// the way the pattern generator's prime-downshift search does: trying
// several candidate sizes against the running capacity repeatedly
// recomputes the same pairwise GCDs. It is safe for concurrent use, backed
// by a [sync.Lockable] the same way the generator's own caches are.
type GCDCache struct {
	memo *gosync.Lockable[map[[2]uint64]uint64]
}

// NewGCDCache returns an empty cache.
func NewGCDCache() *GCDCache {
	return &GCDCache{memo: gosync.NewLockable(make(map[[2]uint64]uint64))}
}

// GCD returns the greatest common divisor of a and b, memoized.
func (c *GCDCache) GCD(a, b uint64) uint64 {
	key := [2]uint64{a, b}
	if a > b {
		key = [2]uint64{b, a}
	}

	var (
		cached uint64
		hit    bool
	)
	_, _ = c.memo.Do(func(m map[[2]uint64]uint64) (map[[2]uint64]uint64, error) {
		cached, hit = m[key]
		return m, nil
	})
	if hit {
		return cached
	}

	x, y := a, b
	for y != 0 {
		x, y = y, x%y
	}

	_, _ = c.memo.Do(func(m map[[2]uint64]uint64) (map[[2]uint64]uint64, error) {
		m[key] = x
		return m, nil
	})

	return x
}

// LCM returns the least common multiple of a and b, using the memoized
// GCD.
func (c *GCDCache) LCM(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}
	g := c.GCD(a, b)
	if g == 0 {
		return 0
	}
	return (a / g) * b
}
