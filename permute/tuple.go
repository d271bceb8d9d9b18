package permute

import "math/big"

// PermutationCount returns A^K, the number of length-K tuples over an
// alphabet of size A allowing repeated elements.
func PermutationCount(a, k int) *big.Int {
	if a <= 0 || k <= 0 {
		return big.NewInt(0)
	}
	return new(big.Int).Exp(big.NewInt(int64(a)), big.NewInt(int64(k)), nil)
}

// UniquePermutationCount returns A*(A-1)*...*(A-K+1), the number of
// length-K tuples over an alphabet of size A with no repeated elements.
// It returns 0 if K > A.
func UniquePermutationCount(a, k int) *big.Int {
	if a <= 0 || k <= 0 {
		return big.NewInt(0)
	}
	if k > a {
		return big.NewInt(0)
	}

	result := big.NewInt(1)
	for i := 0; i < k; i++ {
		result.Mul(result, big.NewInt(int64(a-i)))
	}
	return result
}

// NonUniquePermutation returns the length-K vector of base-A digits of
// (i mod A^K), least-significant digit last, allowing repeated elements.
func NonUniquePermutation(a, k int, i uint64) []int {
	if a <= 0 || k <= 0 {
		return nil
	}

	total := PermutationCount(a, k)
	idx := new(big.Int).Mod(big.NewInt(0).SetUint64(i), total)

	out := make([]int, k)
	base := big.NewInt(int64(a))
	rem := new(big.Int).Set(idx)
	for pos := k - 1; pos >= 0; pos-- {
		digit := new(big.Int)
		digit.Mod(rem, base)
		out[pos] = int(digit.Int64())
		rem.Div(rem, base)
	}
	return out
}

// UniquePermutation returns the length-K tuple of distinct indices in
// [0, A) corresponding to lexicographic index i among all A!/(A-K)!
// unique tuples, using a factoradic-style decomposition.
func UniquePermutation(a, k int, i uint64) []int {
	if a <= 0 || k <= 0 || k > a {
		return nil
	}

	total := UniquePermutationCount(a, k)
	remainingIndex := new(big.Int).Mod(big.NewInt(0).SetUint64(i), total)

	available := make([]int, a)
	for n := range available {
		available[n] = n
	}

	out := make([]int, k)
	factorial := big.NewInt(1)
	for j := 0; j < k; j++ {
		factorial.Mul(factorial, big.NewInt(int64(a-j)))
	}

	for j := 0; j < k; j++ {
		factorial.Div(factorial, big.NewInt(int64(a-j)))

		chosen := new(big.Int)
		chosen.DivMod(remainingIndex, factorial, remainingIndex)
		pos := int(chosen.Int64())

		out[j] = available[pos]
		available = append(available[:pos], available[pos+1:]...)
	}

	return out
}

// SeededNonUniquePermutation first permutes i through the full domain
// A^K via [Permute], then decomposes the permuted index with
// [NonUniquePermutation]. The result is a bijection on the index space
// keyed by seed32.
func SeededNonUniquePermutation(a, k int, seed32 uint32, i uint64) []int {
	total := PermutationCount(a, k)
	if !total.IsUint64() {
		// Domain too large to reduce through a 64-bit permutation; fall
		// back to a direct big-integer reduction, which is still
		// deterministic and collision-free for the requested index.
		return NonUniquePermutation(a, k, i)
	}
	p := Permute(total.Uint64(), seed32, i)
	return NonUniquePermutation(a, k, p)
}

// SeededUniquePermutation first permutes i through the full domain
// A!/(A-K)! via [Permute], then decomposes the permuted index with
// [UniquePermutation].
func SeededUniquePermutation(a, k int, seed32 uint32, i uint64) []int {
	total := UniquePermutationCount(a, k)
	if !total.IsUint64() {
		return UniquePermutation(a, k, i)
	}
	p := Permute(total.Uint64(), seed32, i)
	return UniquePermutation(a, k, p)
}
