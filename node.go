package avl

import (
	"fmt"
	"strings"
)

// node is immutable once built. A nil *node is the empty tree.
type node[K, V any] struct {
	left   *node[K, V]
	right  *node[K, V]
	key    K
	value  V
	height int
}

func height[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func create[K, V any](l *node[K, V], key K, value V, r *node[K, V]) *node[K, V] {
	return &node[K, V]{
		left:   l,
		right:  r,
		key:    key,
		value:  value,
		height: max(height(l), height(r)) + 1,
	}
}

// balance builds a node from children whose heights differ by at most
// two. A difference of exactly two triggers a single or double rotation,
// so every node it returns differs by at most one. A difference above
// two panics with ErrUnbalanced.
func balance[K, V any](l *node[K, V], key K, value V, r *node[K, V]) *node[K, V] {
	hl, hr := height(l), height(r)
	switch {
	case hl > hr+2 || hr > hl+2:
		panic(ErrUnbalanced)
	case hl > hr+1:
		if l == nil {
			panic(ErrUnbalanced)
		}
		ll, lr := l.left, l.right
		if height(ll) >= height(lr) {
			return create(ll, l.key, l.value, create(lr, key, value, r))
		}
		if lr == nil {
			panic(ErrUnbalanced)
		}
		return create(
			create(ll, l.key, l.value, lr.left),
			lr.key, lr.value,
			create(lr.right, key, value, r),
		)
	case hr > hl+1:
		if r == nil {
			panic(ErrUnbalanced)
		}
		rl, rr := r.left, r.right
		if height(rr) >= height(rl) {
			return create(create(l, key, value, rl), r.key, r.value, rr)
		}
		if rl == nil {
			panic(ErrUnbalanced)
		}
		return create(
			create(l, key, value, rl.left),
			rl.key, rl.value,
			create(rl.right, r.key, r.value, rr),
		)
	default:
		return create(l, key, value, r)
	}
}

// insert returns n itself when the tree below it did not change. added
// reports whether key was not present before.
func insert[K, V any](
	n *node[K, V],
	key K,
	value V,
	cmp compareFunc[K],
	eq eqFunc[V],
) (out *node[K, V], added bool) {
	if n == nil {
		return &node[K, V]{key: key, value: value, height: 1}, true
	}
	c := cmp(key, n.key)
	switch {
	case c == 0:
		if eq(n.value, value) {
			return n, false
		}
		return &node[K, V]{
			left:   n.left,
			right:  n.right,
			key:    key,
			value:  value,
			height: n.height,
		}, false
	case c < 0:
		l, added := insert(n.left, key, value, cmp, eq)
		if l == n.left {
			return n, false
		}
		return balance(l, n.key, n.value, n.right), added
	default:
		r, added := insert(n.right, key, value, cmp, eq)
		if r == n.right {
			return n, false
		}
		return balance(n.left, n.key, n.value, r), added
	}
}

func find[K, V any](n *node[K, V], key K, cmp compareFunc[K]) (V, bool) {
	for n != nil {
		c := cmp(key, n.key)
		switch {
		case c == 0:
			return n.value, true
		case c < 0:
			n = n.left
		default:
			n = n.right
		}
	}
	var zero V
	return zero, false
}

func (n *node[K, V]) string(b *strings.Builder, lvl int) {
	indent := strings.Repeat("  ", lvl-1)
	if n == nil {
		fmt.Fprintf(b, "%s<empty>\n", indent)
		return
	}
	fmt.Fprintf(b, "%s%v: %v (h=%d)\n", indent, n.key, n.value, n.height)
	if n.left == nil && n.right == nil {
		return
	}
	n.left.string(b, lvl+1)
	n.right.string(b, lvl+1)
}
