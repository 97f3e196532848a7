// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package syncx contains synchronization primitives missing from sync.
package syncx

import (
	"sync"

	"github.com/go4org/hashtriemap"
)

// Lazy holds a value computed on first use.
type Lazy[T any] struct {
	once sync.Once
	val  T
}

// Get returns the value, calling f to compute it the first time.
func (l *Lazy[T]) Get(f func() T) T {
	l.once.Do(func() { l.val = f() })
	return l.val
}

// Map is a typed concurrent map backed by a hash-trie. The zero value is
// empty and ready to use. It must not be copied.
type Map[K comparable, V any] struct{ m hashtriemap.HashTrieMap[K, V] }

// LoadOrStore returns the value stored for key, or stores and returns value
// if there is none. loaded reports which happened.
func (m *Map[K, V]) LoadOrStore(key K, value V) (actual V, loaded bool) {
	return m.m.LoadOrStore(key, value)
}
