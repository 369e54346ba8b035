package bitset

import (
	"errors"
	"math/bits"
)

// NoBit is returned by Any when the set has no members.
const NoBit = -1

// limbWidth is the number of bits tracked by one limb.
const limbWidth = 64

// ErrNonPositiveSize indicates that New was called with size ≤ 0.
var ErrNonPositiveSize = errors.New("bitset: size must be positive")

// BitSet is a fixed-capacity set over the indices [0, size).
//
// Limbs with at least one set bit ("active" limbs) form a doubly linked
// list threaded through the prev/next slices. Link values are limb indices
// offset by +1 so that 0 means "no neighbor"; first == 0 means the list is
// empty. Slot 0 of prev/next is scratch for the null neighbor.
type BitSet struct {
	limbs []uint64
	prev  []int
	next  []int
	first int
	size  int
}

// New returns an empty BitSet capable of holding the indices [0, size).
// Returns ErrNonPositiveSize when size ≤ 0.
//
// Complexity: O(size/64) time and memory.
func New(size int) (*BitSet, error) {
	if size <= 0 {
		return nil, ErrNonPositiveSize
	}
	c := (size + limbWidth - 1) / limbWidth

	return &BitSet{
		limbs: make([]uint64, c),
		prev:  make([]int, c+1),
		next:  make([]int, c+1),
		size:  size,
	}, nil
}

// Size returns the capacity the set was created with.
func (s *BitSet) Size() int { return s.size }

// Contains reports whether index i is currently a member.
// i must lie in [0, Size()).
func (s *BitSet) Contains(i int) bool {
	return s.limbs[i/limbWidth]&(1<<(uint(i)%limbWidth)) != 0
}

// Set inserts index i. Inserting a present index is a no-op.
// i must lie in [0, Size()).
//
// Complexity: O(1).
func (s *BitSet) Set(i int) {
	j := i / limbWidth
	old := s.limbs[j]
	s.limbs[j] |= 1 << (uint(i) % limbWidth)

	// Zero → nonzero transition: splice the limb onto the list head.
	if (old == 0) != (s.limbs[j] == 0) {
		j++
		s.prev[s.first] = j
		s.prev[j] = 0
		s.next[j] = s.first
		s.first = j
	}
}

// Unset removes index i. Removing an absent index is a no-op.
// i must lie in [0, Size()).
//
// Complexity: O(1).
func (s *BitSet) Unset(i int) {
	j := i / limbWidth
	old := s.limbs[j]
	s.limbs[j] &^= 1 << (uint(i) % limbWidth)

	// Nonzero → zero transition: splice the limb out of the list.
	if (old == 0) != (s.limbs[j] == 0) {
		j++
		p, n := s.prev[j], s.next[j]
		s.prev[n] = p
		s.next[p] = n
		if s.first == j {
			s.first = n
		}
	}
}

// Any returns the index of some current member, or NoBit when the set is
// empty. It does not mutate the set: repeated calls without an intervening
// Unset return the same index (the lowest bit of the head limb).
//
// Complexity: O(1).
func (s *BitSet) Any() int {
	if s.first == 0 {
		return NoBit
	}
	j := s.first - 1

	return j*limbWidth + bits.TrailingZeros64(s.limbs[j])
}
