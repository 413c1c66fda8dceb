// Package treemap provides avl.Map instantiations for the common key
// orders: the built in ordered types and byte strings.
package treemap

import (
	"bytes"

	"golang.org/x/exp/constraints"
	"jsouthworth.net/go/avl"
)

func Compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Identical is the value test used by the maps in this package. For
// pointer values it is identity; for other comparable values it is ==.
func Identical[V comparable](a, b V) bool {
	return a == b
}

// Ordered returns an empty map over keys ordered by < and >. Strings are
// ordered byte-wise.
func Ordered[K constraints.Ordered, V comparable]() *avl.Map[K, V] {
	return avl.Empty(Compare[K], Identical[V])
}

func Bytes[V comparable]() *avl.Map[[]byte, V] {
	return avl.Empty(bytes.Compare, Identical[V])
}

func OfPairs[K constraints.Ordered, V comparable](pairs ...avl.Pair[K, V]) *avl.Map[K, V] {
	return Ordered[K, V]().InsertPairs(pairs...)
}

func BytesOfPairs[V comparable](pairs ...avl.Pair[[]byte, V]) *avl.Map[[]byte, V] {
	return Bytes[V]().InsertPairs(pairs...)
}
