package ChainTable

import "github.com/cespare/xxhash/v2"

// HashFunc hashes a key. The table reduces the result modulo its bucket
// count.
type HashFunc func(string) uint

// SumHash is 1 plus the sum of the bytes of k. It's cheap but places
// anagrams in the same bucket.
func SumHash(k string) uint {
	h := uint(1)
	for i := 0; i < len(k); i++ {
		h += uint(k[i])
	}
	return h
}

// XXHash is the 64 bit xxHash of k truncated to uint.
func XXHash(k string) uint {
	return uint(xxhash.Sum64String(k))
}
