// Package bitset implements a fixed-size bit vector used for adjacency rows
// and solution membership sets throughout the solver. It trades the
// generality of a map[int]bool for O(n/64) set operations and O(1) storage
// per element.
package bitset

import "math/bits"

const wordBits = 64

// Set is a fixed-size bit vector over {0, ..., n-1}.
type Set struct {
	words []uint64
	n     int
}

// New returns an all-zero Set over n elements.
func New(n int) *Set {
	return &Set{
		words: make([]uint64, wordsFor(n)),
		n:     n,
	}
}

func wordsFor(n int) int {
	return (n + wordBits - 1) / wordBits
}

// Len returns the number of elements the set is defined over.
func (s *Set) Len() int { return s.n }

// Test reports whether i is a member.
func (s *Set) Test(i int) bool {
	return s.words[i/wordBits]&(uint64(1)<<uint(i%wordBits)) != 0
}

// SetBit sets membership of i to v.
func (s *Set) SetBit(i int, v bool) {
	w, b := i/wordBits, uint(i%wordBits)
	if v {
		s.words[w] |= uint64(1) << b
	} else {
		s.words[w] &^= uint64(1) << b
	}
}

// Count returns the number of set bits (popcount).
func (s *Set) Count() int {
	total := 0
	for _, w := range s.words {
		total += bits.OnesCount64(w)
	}
	return total
}

// CountIntersection returns the number of positions set in both s and other.
// Both sets must share the same Len.
func (s *Set) CountIntersection(other *Set) int {
	total := 0
	for i, w := range s.words {
		total += bits.OnesCount64(w & other.words[i])
	}
	return total
}

// Clear resets every bit to zero.
func (s *Set) Clear() {
	clear(s.words)
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	words := make([]uint64, len(s.words))
	copy(words, s.words)
	return &Set{words: words, n: s.n}
}

// CopyFrom overwrites the receiver's bits with other's. Both must share Len.
func (s *Set) CopyFrom(other *Set) {
	copy(s.words, other.words)
}

// All iterates the indices of set bits in ascending order.
func (s *Set) All() func(func(int) bool) {
	return func(yield func(int) bool) {
		for wi, w := range s.words {
			base := wi * wordBits
			for w != 0 {
				tz := bits.TrailingZeros64(w)
				if !yield(base + tz) {
					return
				}
				w &= w - 1
			}
		}
	}
}
