package bigcap

import (
	"math/big"
	"sync"
	"testing"

	"go.akshayshah.org/attest"
)

func TestLCM(t *testing.T) {
	t.Parallel()

	attest.Equal(t, LCM(big.NewInt(4), big.NewInt(6)).String(), "12")
	attest.Equal(t, LCM(big.NewInt(0), big.NewInt(6)).String(), "0")
	attest.Equal(t, LCM(big.NewInt(7), big.NewInt(5)).String(), "35")
}

func TestLCMAll(t *testing.T) {
	t.Parallel()

	got := LCMAll(big.NewInt(2), big.NewInt(3), big.NewInt(5))
	attest.Equal(t, got.String(), "30")

	attest.Equal(t, LCMAll().String(), "1")
}

func TestIsPrime(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 3, 5, 7, 11, 97} {
		attest.True(t, IsPrime(n))
	}
	for _, n := range []int{0, 1, 4, 6, 8, 9, 100} {
		attest.False(t, IsPrime(n))
	}
}

func TestPrevPrime(t *testing.T) {
	t.Parallel()

	attest.Equal(t, PrevPrime(10), 7)
	attest.Equal(t, PrevPrime(8), 7)
	attest.Equal(t, PrevPrime(3), 2)
	attest.Equal(t, PrevPrime(2), 0)
}

func TestGCDCache(t *testing.T) {
	t.Parallel()

	c := NewGCDCache()
	attest.Equal(t, c.GCD(12, 18), uint64(6))
	attest.Equal(t, c.GCD(18, 12), uint64(6))
	attest.Equal(t, c.LCM(4, 6), uint64(12))
}

func TestGCDCacheConcurrent(t *testing.T) {
	t.Parallel()

	c := NewGCDCache()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n uint64) {
			defer wg.Done()
			got := c.GCD(n, 84)
			attest.True(t, got > 0)
		}(uint64(i + 1))
	}
	wg.Wait()
}
