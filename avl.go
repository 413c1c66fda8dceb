// Package avl implements a persistent AVL tree keyed map.
//
// Every Map is immutable. Insert returns a new Map that shares all
// nodes off the updated path with the receiver, so older versions stay
// valid and may be read concurrently without locks.
package avl

import (
	"strings"
)

type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrNotFound   = Error("key not found")
	ErrUnbalanced = Error("balance called on a tree out of AVL bounds")
)

type Map[K, V any] struct {
	root  *node[K, V]
	count int

	cmp compareFunc[K]
	eq  eqFunc[V]
}

// Empty returns a map ordered by cmp. eq reports whether a value being
// inserted is identical to the one already stored; when it is, Insert
// returns the receiver unchanged. A nil eq disables that short cut.
func Empty[K, V any](cmp func(a, b K) int, eq func(a, b V) bool) *Map[K, V] {
	if eq == nil {
		eq = never[V]
	}
	return &Map[K, V]{
		cmp: cmp,
		eq:  eq,
	}
}

func (m *Map[K, V]) Insert(key K, value V) *Map[K, V] {
	root, added := insert(m.root, key, value, m.cmp, m.eq)
	if root == m.root {
		return m
	}
	count := m.count
	if added {
		count++
	}
	return &Map[K, V]{
		root:  root,
		count: count,
		cmp:   m.cmp,
		eq:    m.eq,
	}
}

// Find returns the value bound to key or ErrNotFound.
func (m *Map[K, V]) Find(key K) (V, error) {
	v, ok := find(m.root, key, m.cmp)
	if !ok {
		return v, ErrNotFound
	}
	return v, nil
}

func (m *Map[K, V]) Lookup(key K) (V, bool) {
	return find(m.root, key, m.cmp)
}

func (m *Map[K, V]) Contains(key K) bool {
	_, ok := find(m.root, key, m.cmp)
	return ok
}

func (m *Map[K, V]) Length() int {
	return m.count
}

func (m *Map[K, V]) Height() int {
	return height(m.root)
}

func (m *Map[K, V]) String() string {
	var b strings.Builder
	m.root.string(&b, 1)
	return b.String()
}

type Pair[K, V any] struct {
	Key   K
	Value V
}

// InsertPairs folds pairs into m from left to right; a later pair
// overwrites an earlier one with the same key.
func (m *Map[K, V]) InsertPairs(pairs ...Pair[K, V]) *Map[K, V] {
	out := m
	for _, p := range pairs {
		out = out.Insert(p.Key, p.Value)
	}
	return out
}

func OfPairs[K, V any](
	cmp func(a, b K) int,
	eq func(a, b V) bool,
	pairs ...Pair[K, V],
) *Map[K, V] {
	return Empty(cmp, eq).InsertPairs(pairs...)
}

type compareFunc[T any] func(k1, k2 T) int
type eqFunc[T any] func(v1, v2 T) bool

func never[V any](_, _ V) bool {
	return false
}
