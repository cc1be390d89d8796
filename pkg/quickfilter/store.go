package quickfilter

import (
	"fmt"
	"math/rand"
)

// storeMaxLevel caps the skip list height; level 16 comfortably covers any
// realistic window size.
const storeMaxLevel = 16

// storeNode is one element of the order-statistic skip list. width[i] is the
// number of elements the next[i] link advances past, counting the
// destination, which is what makes rank-indexed selection possible.
type storeNode struct {
	value float64
	next  []*storeNode
	width []int
}

// OrderStatisticStore is a sorted multiset of float64 values supporting
// rank-indexed selection. Add and Remove are O(log n) expected; duplicates
// are permitted and indistinguishable from one another, so Remove acts on
// value equality, not identity.
//
// A store backs a single filter invocation and must not be shared across
// goroutines.
type OrderStatisticStore struct {
	head  *storeNode
	level int
	size  int
	rng   *rand.Rand
}

// NewOrderStatisticStore returns an empty store.
func NewOrderStatisticStore() *OrderStatisticStore {
	return &OrderStatisticStore{
		head: &storeNode{
			next:  make([]*storeNode, storeMaxLevel),
			width: make([]int, storeMaxLevel),
		},
		level: 1,
		rng:   rand.New(rand.NewSource(rand.Int63())),
	}
}

// Len returns the number of values currently held.
func (s *OrderStatisticStore) Len() int {
	return s.size
}

func (s *OrderStatisticStore) randomLevel() int {
	lvl := 1
	for lvl < storeMaxLevel && s.rng.Intn(4) == 0 {
		lvl++
	}
	return lvl
}

// Add inserts value, keeping the multiset in sorted order.
func (s *OrderStatisticStore) Add(value float64) {
	var (
		update [storeMaxLevel]*storeNode
		rank   [storeMaxLevel]int
	)

	// Find the splice point at every level, accumulating the rank of each
	// update node so link widths can be recomputed below.
	x := s.head
	for i := s.level - 1; i >= 0; i-- {
		if i < s.level-1 {
			rank[i] = rank[i+1]
		}
		for x.next[i] != nil && x.next[i].value < value {
			rank[i] += x.width[i]
			x = x.next[i]
		}
		update[i] = x
	}

	lvl := s.randomLevel()
	if lvl > s.level {
		for i := s.level; i < lvl; i++ {
			rank[i] = 0
			update[i] = s.head
			update[i].width[i] = s.size
		}
		s.level = lvl
	}

	node := &storeNode{
		value: value,
		next:  make([]*storeNode, lvl),
		width: make([]int, lvl),
	}
	for i := 0; i < lvl; i++ {
		node.next[i] = update[i].next[i]
		update[i].next[i] = node
		node.width[i] = update[i].width[i] - (rank[0] - rank[i])
		update[i].width[i] = rank[0] - rank[i] + 1
	}
	// Links above the new node's level now jump over one more element.
	for i := lvl; i < s.level; i++ {
		update[i].width[i]++
	}
	s.size++
}

// Remove deletes one occurrence equal to value and reports whether an
// occurrence was found. Removing an absent value leaves the store unchanged;
// the sliding pass guarantees every removal matches a prior Add, and the
// return value lets tests assert on that.
func (s *OrderStatisticStore) Remove(value float64) bool {
	var update [storeMaxLevel]*storeNode

	x := s.head
	for i := s.level - 1; i >= 0; i-- {
		for x.next[i] != nil && x.next[i].value < value {
			x = x.next[i]
		}
		update[i] = x
	}

	target := update[0].next[0]
	if target == nil || target.value != value {
		return false
	}

	for i := 0; i < s.level; i++ {
		if update[i].next[i] == target {
			update[i].width[i] += target.width[i] - 1
			update[i].next[i] = target.next[i]
		} else {
			update[i].width[i]--
		}
	}
	for s.level > 1 && s.head.next[s.level-1] == nil {
		s.level--
	}
	s.size--
	return true
}

// Select returns the value at rank floor(Len × percent) in sorted order,
// clamped to the last element. Percent must lie in [0, 1] and the store must
// not be empty; selecting from an empty store is a caller bug and fails
// loudly rather than returning a fabricated value.
func (s *OrderStatisticStore) Select(percent float64) (float64, error) {
	if percent < 0.0 || percent > 1.0 {
		return 0, fmt.Errorf("%w: percent %v not in [0, 1]", ErrSelectionRange, percent)
	}
	if s.size == 0 {
		return 0, fmt.Errorf("%w: store is empty", ErrSelectionRange)
	}

	idx := int(float64(s.size) * percent)
	if idx >= s.size {
		idx = s.size - 1
	}

	// Walk by link widths to the node with 1-based rank idx+1.
	x := s.head
	traversed := 0
	for i := s.level - 1; i >= 0; i-- {
		for x.next[i] != nil && traversed+x.width[i] <= idx+1 {
			traversed += x.width[i]
			x = x.next[i]
		}
	}
	return x.value, nil
}
