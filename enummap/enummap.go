// package enummap provides a map keyed by an enumeration (any ordered
// constant type) with a fluent builder and ordinal iteration order.
package enummap

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Map is an enum keyed map.  Keys iterate in ascending order, which for
// iota style enums is declaration order.
type Map[K cmp.Ordered, V any] map[K]V

// New allocates an empty map
func New[K cmp.Ordered, V any]() Map[K, V] {
	return Map[K, V]{}
}

// From copies m
func From[K cmp.Ordered, V any](m map[K]V) Map[K, V] {
	out := make(Map[K, V], len(m))
	maps.Copy(out, m)
	return out
}

// P puts value under key and returns the map, so that
//
//	colors := enummap.New[Color, string]().P(Red, "red").P(Blue, "blue")
//
// builds a map in one expression
func (m Map[K, V]) P(key K, value V) Map[K, V] {
	m[key] = value
	return m
}

func (m Map[K, V]) Get(key K) (V, bool) {
	v, ok := m[key]
	return v, ok
}

func (m Map[K, V]) Len() int {
	return len(m)
}

// Keys returns the keys in ascending order
func (m Map[K, V]) Keys() []K {
	return slices.Sorted(maps.Keys(m))
}

// All iterates key/value pairs in ascending key order
func (m Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.Keys() {
			if !yield(k, m[k]) {
				return
			}
		}
	}
}
