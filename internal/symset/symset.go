// Package symset implements sets of grammar symbol indexes used as lookahead sets.
package symset

import (
	"math/bits"
)

const chunkShift = 6
const chunkSize = 1 << chunkShift

// Set is a set of non-negative symbol indexes. Zero value is an empty set.
type Set struct {
	chunks []uint64
}

// New creates a set containing given items.
func New(items ...int) *Set {
	return (&Set{}).Add(items...)
}

func (s *Set) allocate(item int) {
	need := (item >> chunkShift) + 1
	if need <= len(s.chunks) {
		return
	}

	chunks := make([]uint64, need)
	copy(chunks, s.chunks)
	s.chunks = chunks
}

func bitMask(item int) uint64 {
	return 1 << (uint(item) & (chunkSize - 1))
}

// Add adds items to the set, negative items are ignored.
func (s *Set) Add(items ...int) *Set {
	for _, item := range items {
		if item < 0 {
			continue
		}

		s.allocate(item)
		s.chunks[item>>chunkShift] |= bitMask(item)
	}
	return s
}

// Contains tells whether item is in the set.
func (s *Set) Contains(item int) bool {
	if item < 0 || (item>>chunkShift) >= len(s.chunks) {
		return false
	}

	return s.chunks[item>>chunkShift]&bitMask(item) != 0
}

// Len returns number of items.
func (s *Set) Len() int {
	result := 0
	for _, chunk := range s.chunks {
		result += bits.OnesCount64(chunk)
	}
	return result
}

// IsEmpty tells whether the set contains no items.
func (s *Set) IsEmpty() bool {
	for _, chunk := range s.chunks {
		if chunk != 0 {
			return false
		}
	}

	return true
}

// Copy returns independent copy of the set.
func (s *Set) Copy() *Set {
	chunks := make([]uint64, len(s.chunks))
	copy(chunks, s.chunks)
	return &Set{chunks}
}

// Union adds all items of t to s.
func (s *Set) Union(t *Set) *Set {
	if len(t.chunks) > len(s.chunks) {
		s.allocate(len(t.chunks)*chunkSize - 1)
	}
	for i, chunk := range t.chunks {
		s.chunks[i] |= chunk
	}
	return s
}

// Intersect returns new set containing items present in both s and t.
func Intersect(s, t *Set) *Set {
	l := len(s.chunks)
	if len(t.chunks) < l {
		l = len(t.chunks)
	}

	result := &Set{make([]uint64, l)}
	for i := 0; i < l; i++ {
		result.chunks[i] = s.chunks[i] & t.chunks[i]
	}
	return result
}

// ToSlice returns items in ascending order.
func (s *Set) ToSlice() []int {
	result := make([]int, 0, s.Len())
	for i, chunk := range s.chunks {
		for chunk != 0 {
			bit := bits.TrailingZeros64(chunk)
			result = append(result, i<<chunkShift+bit)
			chunk &= chunk - 1
		}
	}
	return result
}
