package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// PopSorted removes the root of u and returns its value, keeping the sort
// invariant. A root with two children is replaced by its successor, the
// leftmost node of the right subtree; only the heights along that left spine
// are recomputed. When rebalance is set, the spine and u are also rebalanced.
// Returns false if u is empty.
// Time: O(D)
func (u *BinTree[T]) PopSorted(rebalance bool) (T, bool) {
	cur := u.n
	if cur == nil {
		return *new(T), false
	}
	if cur.l.n == nil {
		u.n = cur.r.n
	} else if cur.r.n == nil {
		u.n = cur.l.n
	} else {
		succ := cur.r.MinTreeMut()
		cur.v, succ.n.v = succ.n.v, cur.v
		// succ has no left child, so this takes one of the cases above.
		v, _ := succ.PopSorted(rebalance)
		cur.r.Recalculate(true, false, rebalance)
		cur.updateHeight()
		if rebalance {
			u.Rebalance()
		}
		return v, true
	}
	return cur.v, true
}

// RemoveSortedToKeyCmp removes a value whose key compares equal to key from the
// sorted tree u, the ordering being the same as in InsertToKeyCmp. Heights on
// the search path are updated, and the nodes rebalanced if rebalance is set.
// Returns the removed value, or false if no value matched. Recursive.
// Time: O(D)
func RemoveSortedToKeyCmp[T, K any](u *BinTree[T], key K, toKey func(T) K, compare func(a, b K) int, rebalance bool) (T, bool) {
	cur := u.n
	if cur == nil {
		return *new(T), false
	}
	var v T
	var ok bool
	if c := compare(key, toKey(cur.v)); c < 0 {
		v, ok = RemoveSortedToKeyCmp(&cur.l, key, toKey, compare, rebalance)
	} else if c > 0 {
		v, ok = RemoveSortedToKeyCmp(&cur.r, key, toKey, compare, rebalance)
	} else {
		return u.PopSorted(rebalance)
	}
	if ok {
		cur.updateHeight()
		if rebalance {
			u.Rebalance()
		}
	}
	return v, ok
}

// RemoveSorted removes a value equal to v from u in natural order, rebalancing.
func RemoveSorted[T constraints.Ordered](u *BinTree[T], v T) (T, bool) {
	return RemoveSortedToKeyCmp(u, v, identity[T], cmp.Compare[T], true)
}

// RemoveSortedWithKey removes the value whose toKey equals key, rebalancing.
func RemoveSortedWithKey[T any, K constraints.Ordered](u *BinTree[T], key K, toKey func(T) K) (T, bool) {
	return RemoveSortedToKeyCmp(u, key, toKey, cmp.Compare[K], true)
}

// RemoveSortedFunc removes a value equal to v under compare, rebalancing.
func (u *BinTree[T]) RemoveSortedFunc(v T, compare func(a, b T) int) (T, bool) {
	return RemoveSortedToKeyCmp(u, v, identity[T], compare, true)
}

// Pop removes some value from u without regard to order, and returns the value
// that was at the root. The root value is replaced by a value popped from the
// left subtree, or the right one if the left is empty; only a leaf is ever
// unlinked. Heights aren't maintained. Recursive.
// Time: O(D)
func (u *BinTree[T]) Pop() (T, bool) {
	cur := u.n
	if cur == nil {
		return *new(T), false
	}
	p, ok := cur.l.Pop()
	if !ok {
		p, ok = cur.r.Pop()
	}
	if !ok {
		u.n = nil
		return cur.v, true
	}
	old := cur.v
	cur.v = p
	return old, true
}

// PopLeft removes the leftmost node of u and returns its value. The node's right
// subtree takes its place. Heights along the left spine are kept. Recursive.
// Time: O(D)
func (u *BinTree[T]) PopLeft() (T, bool) {
	cur := u.n
	if cur == nil {
		return *new(T), false
	}
	if cur.l.n == nil {
		u.n = cur.r.n
		return cur.v, true
	}
	v, ok := cur.l.PopLeft()
	cur.updateHeight()
	return v, ok
}

// PopRight removes the rightmost node of u and returns its value.
// Time: O(D)
func (u *BinTree[T]) PopRight() (T, bool) {
	cur := u.n
	if cur == nil {
		return *new(T), false
	}
	if cur.r.n == nil {
		u.n = cur.l.n
		return cur.v, true
	}
	v, ok := cur.r.PopRight()
	cur.updateHeight()
	return v, ok
}

// RemoveFunc pops the first subtree in pre-order whose value satisfies match.
// See Pop.
// Time: O(n)
func (u *BinTree[T]) RemoveFunc(match func(T) bool) (T, bool) {
	if t := u.GetTreeMutFunc(match); t != nil {
		return t.Pop()
	}
	return *new(T), false
}

// Remove pops the first subtree in pre-order holding v.
func Remove[T comparable](u *BinTree[T], v T) (T, bool) {
	return u.RemoveFunc(equalTo(v))
}

// MinTreeMut returns the slot of the leftmost subtree of u, nil if u is empty.
// Time: O(D); Space: O(1)
func (u *BinTree[T]) MinTreeMut() *BinTree[T] {
	if u.n == nil {
		return nil
	}
	t := u
	for t.n.l.n != nil {
		t = &t.n.l
	}
	return t
}

// MaxTreeMut returns the slot of the rightmost subtree of u, nil if u is empty.
// Time: O(D); Space: O(1)
func (u *BinTree[T]) MaxTreeMut() *BinTree[T] {
	if u.n == nil {
		return nil
	}
	t := u
	for t.n.r.n != nil {
		t = &t.n.r
	}
	return t
}
