// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

// package primvec implements growable vectors of unboxed scalars
// which support:
//  1. amortized doubling growth
//  2. insertion and removal at arbitrary positions
//  3. bulk addAll / removeAll / retainAll / subList
//  4. value equality, hashing and serialization
package primvec

import (
	"fmt"
	"iter"
	"slices"
)

// Scalar is the set of element types a Vector can store.  Only exact
// fixed width types are accepted so that every vector can be hashed and
// serialized without reflection.
type Scalar interface {
	bool | int8 | uint8 | int16 | uint16 | int32 | uint32 | int64 | uint64 | float32 | float64
}

// Vector stores a growable contiguous array of scalar data.  The zero
// value is an empty vector with no allocated capacity.
//
// A Vector is not safe for concurrent mutation.
type Vector[T Scalar] struct {
	space []T
	used  int
}

// New allocates an empty vector with DefaultCapacity slots
func New[T Scalar]() *Vector[T] {
	return NewWithCapacity[T](DefaultCapacity)
}

// NewWithConfig allocates an empty vector sized by c
func NewWithConfig[T Scalar](c Config) *Vector[T] {
	return NewWithCapacity[T](c.InitialCapacity)
}

// NewWithCapacity allocates an empty vector with room for capacity
// elements.  A zero capacity is legal; a negative one panics.
func NewWithCapacity[T Scalar](capacity int) *Vector[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("primvec: negative capacity %d", capacity))
	}
	return &Vector[T]{space: make([]T, capacity)}
}

// Of returns a vector holding a copy of values
func Of[T Scalar](values ...T) *Vector[T] {
	v := NewWithCapacity[T](len(values))
	v.used = copy(v.space, values)
	return v
}

// Len returns the number of elements in the vector
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}
	return v.used
}

// Cap returns the number of allocated slots
func (v *Vector[T]) Cap() int {
	if v == nil {
		return 0
	}
	return len(v.space)
}

// IsEmpty reports whether the vector holds no elements
func (v *Vector[T]) IsEmpty() bool {
	return v.Len() == 0
}

// elems is the live portion of the buffer.  It must never escape the
// package.
func (v *Vector[T]) elems() []T {
	if v == nil {
		return nil
	}
	return v.space[:v.used]
}

// grownCapacity is the capacity the buffer moves to when it must hold
// at least min elements: at least double the current one.
func grownCapacity(cur, min int) int {
	c := cur * 2
	if c < min {
		c = min
	}
	return c
}

// ensureCapacity grows the buffer, in a single reallocation, so it can
// hold min elements.
func (v *Vector[T]) ensureCapacity(min int) {
	if min <= len(v.space) {
		return
	}
	space := make([]T, grownCapacity(len(v.space), min))
	copy(space, v.space[:v.used])
	v.space = space
}

// shift moves the suffix starting at from so that it starts at to.
// Callers guarantee the capacity for a right shift.
func (v *Vector[T]) shift(from, to int) {
	copy(v.space[to:], v.space[from:v.used])
}

func (v *Vector[T]) checkIndex(op string, ix, limit int) error {
	if ix < 0 || ix >= limit {
		return &IndexError{Op: op, Index: ix, Len: v.used}
	}
	return nil
}

// Push appends value, growing the buffer if it is full
func (v *Vector[T]) Push(value T) {
	v.ensureCapacity(v.used + 1)
	v.space[v.used] = value
	v.used++
}

// Insert places value at ix, shifting subsequent elements right.  ix may
// equal Len(), which appends.
func (v *Vector[T]) Insert(ix int, value T) error {
	if err := v.checkIndex("insert", ix, v.used+1); err != nil {
		return err
	}
	v.ensureCapacity(v.used + 1)
	v.shift(ix, ix+1)
	v.space[ix] = value
	v.used++
	return nil
}

// Get returns the element stored at ix
func (v *Vector[T]) Get(ix int) (val T, err error) {
	if err = v.checkIndex("get", ix, v.used); err != nil {
		return
	}
	return v.space[ix], nil
}

// Set replaces the element at ix and returns the previous value
func (v *Vector[T]) Set(ix int, value T) (oldval T, err error) {
	if err = v.checkIndex("set", ix, v.used); err != nil {
		return
	}
	v.space[ix], oldval = value, v.space[ix]
	return
}

// RemoveAt deletes the element at ix, shifting subsequent elements left,
// and returns the removed value.
func (v *Vector[T]) RemoveAt(ix int) (val T, err error) {
	if err = v.checkIndex("remove", ix, v.used); err != nil {
		return
	}
	val = v.space[ix]
	v.shift(ix+1, ix)
	v.used--
	var zero T
	v.space[v.used] = zero
	return val, nil
}

// RemoveValue deletes the first element equal to value and reports
// whether one was found.
func (v *Vector[T]) RemoveValue(value T) bool {
	ix, err := v.IndexOf(value)
	if err != nil {
		return false
	}
	v.RemoveAt(ix)
	return true
}

// Contains reports whether some element equals value
func (v *Vector[T]) Contains(value T) bool {
	return slices.Contains(v.elems(), value)
}

// IndexOf returns the index of the first element equal to value, or
// ErrNotFound.
func (v *Vector[T]) IndexOf(value T) (int, error) {
	if ix := slices.Index(v.elems(), value); ix >= 0 {
		return ix, nil
	}
	return 0, ErrNotFound
}

// LastIndexOf returns the index of the last element equal to value, or
// ErrNotFound.
func (v *Vector[T]) LastIndexOf(value T) (int, error) {
	for ix := v.Len() - 1; ix >= 0; ix-- {
		if v.space[ix] == value {
			return ix, nil
		}
	}
	return 0, ErrNotFound
}

// Clear drops every element and zeroes the buffer.  The capacity is
// kept.
func (v *Vector[T]) Clear() {
	clear(v.space)
	v.used = 0
}

// ToArray returns a freshly allocated copy of the elements
func (v *Vector[T]) ToArray() []T {
	out := make([]T, v.Len())
	copy(out, v.elems())
	return out
}

// Equal reports whether both vectors hold the same sequence of values.
// Floating point elements compare with ==, so NaN never matches.
func (v *Vector[T]) Equal(other *Vector[T]) bool {
	return slices.Equal(v.elems(), other.elems())
}

// All iterates index/value pairs in insertion order
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for ix := 0; ix < v.Len(); ix++ {
			if !yield(ix, v.space[ix]) {
				return
			}
		}
	}
}

// Values iterates the elements in insertion order
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for ix := 0; ix < v.Len(); ix++ {
			if !yield(v.space[ix]) {
				return
			}
		}
	}
}

func (v *Vector[T]) String() string {
	return fmt.Sprint(v.elems())
}
