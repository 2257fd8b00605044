// set.go — immutable, insertion-ordered set of failures.
//
// Design:
//   • Internal representation: []Failure with deterministic (insertion) order.
//   • Membership is value equality (Equal), so duplicates collapse on insert.
//   • Builders are non-mutating: they return a NEW Set backed by a fresh slice.
//
// Insertion order only drives rendering and encoding order; Set equality is
// order-insensitive.
package failure

import "iter"

// Set is an immutable collection of distinct failures. The zero value is an
// empty set.
type Set struct {
	items []Failure
}

// NewSet builds a set from fs, dropping nil entries and duplicates. The first
// occurrence of each distinct failure wins.
func NewSet(fs ...Failure) Set {
	return Set{}.With(fs...)
}

// Len returns the number of failures in the set.
func (s Set) Len() int { return len(s.items) }

// All iterates the set in insertion order.
func (s Set) All() iter.Seq[Failure] {
	return func(yield func(Failure) bool) {
		for _, f := range s.items {
			if !yield(f) {
				return
			}
		}
	}
}

// Slice returns a copy of the set's elements in insertion order.
func (s Set) Slice() []Failure {
	if len(s.items) == 0 {
		return nil
	}
	out := make([]Failure, len(s.items))
	copy(out, s.items)
	return out
}

// Contains reports whether an element of s equals f.
func (s Set) Contains(f Failure) bool {
	return indexOf(s.items, f) >= 0
}

// With returns a NEW set holding the elements of s followed by those of fs
// that are not already present.
func (s Set) With(fs ...Failure) Set {
	if len(fs) == 0 {
		return s
	}
	out := make([]Failure, len(s.items), len(s.items)+len(fs))
	copy(out, s.items)
	for _, f := range fs {
		if f == nil || indexOf(out, f) >= 0 {
			continue
		}
		out = append(out, f)
	}
	return Set{items: out}
}

// Equal reports whether s and o hold the same failures, in any order.
func (s Set) Equal(o Set) bool {
	if len(s.items) != len(o.items) {
		return false
	}
	for _, f := range s.items {
		if indexOf(o.items, f) < 0 {
			return false
		}
	}
	return true
}

func indexOf(items []Failure, f Failure) int {
	for i, it := range items {
		if Equal(it, f) || Equal(f, it) {
			return i
		}
	}
	return -1
}
