package elevator

import (
	"maps"
	"slices"
)

// FloorSet is an unordered set of floor numbers.
type FloorSet map[int]bool

func (s FloorSet) Add(floor int)      { s[floor] = true }
func (s FloorSet) Remove(floor int)   { delete(s, floor) }
func (s FloorSet) Has(floor int) bool { return s[floor] }
func (s FloorSet) Empty() bool        { return len(s) == 0 }

// Sorted returns the floors in ascending order, for canonical keys and logs.
func (s FloorSet) Sorted() []int {
	return slices.Sorted(maps.Keys(s))
}
