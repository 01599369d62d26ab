package domain

import (
	"slices"
	"strconv"
	"strings"
)

// State identifies a configuration of an automaton by index.
type State int

// StateSet is a sorted set of states without duplicates.
// Values are treated as immutable: every operation returns a new set.
type StateSet []State

// NewStateSet builds a set from the given states in any order.
func NewStateSet(states ...State) StateSet {
	if len(states) == 0 {
		return StateSet{}
	}
	set := slices.Clone(states)
	slices.Sort(set)
	return slices.Compact(set)
}

// Len returns the number of states in the set.
func (s StateSet) Len() int {
	return len(s)
}

// Empty reports whether the set has no states.
func (s StateSet) Empty() bool {
	return len(s) == 0
}

// Contains reports whether st is a member of the set.
func (s StateSet) Contains(st State) bool {
	_, found := slices.BinarySearch(s, st)
	return found
}

// Union returns the states present in either set.
func (s StateSet) Union(other StateSet) StateSet {
	out := make(StateSet, 0, len(s)+len(other))
	i, j := 0, 0
	for i < len(s) && j < len(other) {
		switch {
		case s[i] < other[j]:
			out = append(out, s[i])
			i++
		case s[i] > other[j]:
			out = append(out, other[j])
			j++
		default:
			out = append(out, s[i])
			i++
			j++
		}
	}
	out = append(out, s[i:]...)
	return append(out, other[j:]...)
}

// Intersects reports whether the two sets share at least one state.
func (s StateSet) Intersects(other StateSet) bool {
	i, j := 0, 0
	for i < len(s) && j < len(other) {
		switch {
		case s[i] < other[j]:
			i++
		case s[i] > other[j]:
			j++
		default:
			return true
		}
	}
	return false
}

// IsSubsetOf reports whether every state of s is also in other.
func (s StateSet) IsSubsetOf(other StateSet) bool {
	for _, st := range s {
		if !other.Contains(st) {
			return false
		}
	}
	return true
}

// Equal reports whether both sets hold exactly the same states.
func (s StateSet) Equal(other StateSet) bool {
	return slices.Equal(s, other)
}

func (s StateSet) String() string {
	parts := make([]string, len(s))
	for i, st := range s {
		parts[i] = strconv.Itoa(int(st))
	}
	return "{" + strings.Join(parts, ",") + "}"
}
