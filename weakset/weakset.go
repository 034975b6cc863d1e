// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

// package weakset implements a set of pointers whose membership does not
// keep the pointed-to values alive.  Members that are garbage collected
// drop out of the set on their own.
package weakset

import (
	"iter"
	"runtime"
	"sync"
	"weak"
)

// Set is a weak set of *T.  It is safe for concurrent use; the runtime
// evicts collected members from its own goroutine.
type Set[T any] struct {
	mu      sync.Mutex
	members map[weak.Pointer[T]]runtime.Cleanup
}

// New allocates an empty set
func New[T any]() *Set[T] {
	return &Set[T]{members: make(map[weak.Pointer[T]]runtime.Cleanup)}
}

// Add inserts p and reports whether it was not already present.  nil is
// never a member.
func (s *Set[T]) Add(p *T) bool {
	if p == nil {
		return false
	}
	key := weak.Make(p)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.members[key]; ok {
		return false
	}
	if s.members == nil {
		s.members = make(map[weak.Pointer[T]]runtime.Cleanup)
	}
	s.members[key] = runtime.AddCleanup(p, s.evict, key)
	return true
}

// AddAll inserts every pointer and reports whether the set changed
func (s *Set[T]) AddAll(ps ...*T) bool {
	changed := false
	for _, p := range ps {
		if s.Add(p) {
			changed = true
		}
	}
	return changed
}

func (s *Set[T]) evict(key weak.Pointer[T]) {
	s.mu.Lock()
	delete(s.members, key)
	s.mu.Unlock()
}

// Contains reports whether p is a member
func (s *Set[T]) Contains(p *T) bool {
	if p == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.members[weak.Make(p)]
	return ok
}

// ContainsAll reports whether every pointer is a member
func (s *Set[T]) ContainsAll(ps ...*T) bool {
	for _, p := range ps {
		if !s.Contains(p) {
			return false
		}
	}
	return true
}

// Remove deletes p and reports whether it was a member
func (s *Set[T]) Remove(p *T) bool {
	if p == nil {
		return false
	}
	key := weak.Make(p)
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.members[key]
	if ok {
		c.Stop()
		delete(s.members, key)
	}
	return ok
}

// RemoveAll deletes every given pointer and reports whether the set
// changed
func (s *Set[T]) RemoveAll(ps ...*T) bool {
	changed := false
	for _, p := range ps {
		if s.Remove(p) {
			changed = true
		}
	}
	return changed
}

// RetainAll deletes every member not among keep and reports whether
// the set changed
func (s *Set[T]) RetainAll(keep ...*T) bool {
	wanted := make(map[weak.Pointer[T]]struct{}, len(keep))
	for _, p := range keep {
		if p != nil {
			wanted[weak.Make(p)] = struct{}{}
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := false
	for key, c := range s.members {
		if _, ok := wanted[key]; !ok {
			c.Stop()
			delete(s.members, key)
			changed = true
		}
	}
	return changed
}

// Len returns the number of live members
func (s *Set[T]) Len() (count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.members {
		if key.Value() != nil {
			count++
		}
	}
	return
}

// IsEmpty reports whether the set has no live members
func (s *Set[T]) IsEmpty() bool {
	return s.Len() == 0
}

// Clear deletes every member
func (s *Set[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.members {
		c.Stop()
	}
	clear(s.members)
}

// All iterates a snapshot of the live members in no particular order.
// Holding a yielded pointer keeps that member alive.
func (s *Set[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for _, p := range s.snapshot() {
			if !yield(p) {
				return
			}
		}
	}
}

func (s *Set[T]) snapshot() []*T {
	s.mu.Lock()
	defer s.mu.Unlock()
	live := make([]*T, 0, len(s.members))
	for key := range s.members {
		if p := key.Value(); p != nil {
			live = append(live, p)
		}
	}
	return live
}
