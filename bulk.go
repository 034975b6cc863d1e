// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package primvec

import "github.com/bits-and-blooms/bitset"

// AddAll appends every element of src, preserving its order.  The buffer
// grows at most once.
func (v *Vector[T]) AddAll(src Source[T]) {
	values := src.ToArray()
	v.ensureCapacity(v.used + len(values))
	v.used += copy(v.space[v.used:], values)
}

// AddAllAt inserts every element of src starting at ix, shifting the
// existing suffix right by src.Len().  ix may equal Len().
func (v *Vector[T]) AddAllAt(ix int, src Source[T]) error {
	if err := v.checkIndex("addAll", ix, v.used+1); err != nil {
		return err
	}
	values := src.ToArray()
	v.ensureCapacity(v.used + len(values))
	v.shift(ix, ix+len(values))
	copy(v.space[ix:], values)
	v.used += len(values)
	return nil
}

// ContainsAll reports whether every element of values is present
func (v *Vector[T]) ContainsAll(values Source[T]) bool {
	m := newMembers(v.elems())
	for _, x := range values.ToArray() {
		if !m.has(x) {
			return false
		}
	}
	return true
}

// RemoveAll deletes every element equal to some element of values and
// reports whether the vector changed.  Survivors keep their order.
func (v *Vector[T]) RemoveAll(values Source[T]) bool {
	m := newMembers(values.ToArray())
	return v.compact(m.has)
}

// RetainAll deletes every element not equal to some element of values
// and reports whether the vector changed.
func (v *Vector[T]) RetainAll(values Source[T]) bool {
	m := newMembers(values.ToArray())
	return v.compact(func(x T) bool { return !m.has(x) })
}

// SubList returns a new vector holding a copy of the elements in
// [from, to)
func (v *Vector[T]) SubList(from, to int) (*Vector[T], error) {
	if to > v.used || to < 0 {
		return nil, &IndexError{Op: "subList", Index: to, Len: v.used}
	}
	if from < 0 || from > to {
		return nil, &IndexError{Op: "subList", Index: from, Len: v.used}
	}
	return Of(v.space[from:to]...), nil
}

// compact drops every element for which drop is true.  Drops are marked
// first, then the runs between marks are moved down block by block.
func (v *Vector[T]) compact(drop func(T) bool) bool {
	marks := bitset.New(uint(v.used))
	for ix, x := range v.elems() {
		if drop(x) {
			marks.Set(uint(ix))
		}
	}
	if marks.None() {
		return false
	}
	w, r := 0, 0
	for ix, ok := marks.NextSet(0); ok; ix, ok = marks.NextSet(ix + 1) {
		w += copy(v.space[w:], v.space[r:int(ix)])
		r = int(ix) + 1
	}
	w += copy(v.space[w:], v.space[r:v.used])
	clear(v.space[w:v.used])
	v.used = w
	return true
}

// members is an exact set of scalars.  Float keys follow ==, so -0 and
// +0 are one member and NaN is never a member.
type members[T Scalar] map[T]struct{}

func newMembers[T Scalar](values []T) members[T] {
	m := make(members[T], len(values))
	for _, x := range values {
		m[x] = struct{}{}
	}
	return m
}

func (m members[T]) has(x T) bool {
	_, ok := m[x]
	return ok
}
