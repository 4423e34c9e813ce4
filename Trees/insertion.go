package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

func identity[T any](v T) T { return v }

// InsertToKeyCmp inserts v into the sorted tree u. Values are ordered by
// compare(toKey(a), toKey(b)), which is negative when a goes before b and 0
// when they are equal or incomparable. Equal values go to the right, unless
// unique is set, in which case the equal value is replaced by v in place and
// returned with true. When rebalance is set, every node on the insertion path
// is rebalanced on the way back up. Recursive.
// Time: O(D)
func InsertToKeyCmp[T, K any](u *BinTree[T], v T, toKey func(T) K, compare func(a, b K) int, rebalance, unique bool) (T, bool) {
	if u.n == nil {
		*u = Leaf(v)
		return *new(T), false
	}
	cur := u.n
	var old T
	var replaced bool
	if c := compare(toKey(v), toKey(cur.v)); c < 0 {
		old, replaced = InsertToKeyCmp(&cur.l, v, toKey, compare, rebalance, unique)
	} else if c == 0 && unique {
		old, cur.v = cur.v, v
		return old, true
	} else {
		old, replaced = InsertToKeyCmp(&cur.r, v, toKey, compare, rebalance, unique)
	}
	if !replaced {
		cur.updateHeight()
		if rebalance {
			u.Rebalance()
		}
	}
	return old, replaced
}

// InsertUniqueToKeyCmp is InsertToKeyCmp with both rebalance and unique set.
func InsertUniqueToKeyCmp[T, K any](u *BinTree[T], v T, toKey func(T) K, compare func(a, b K) int) (T, bool) {
	return InsertToKeyCmp(u, v, toKey, compare, true, true)
}

// Insert v into u in natural order, keeping duplicates. Always rebalances.
func Insert[T constraints.Ordered](u *BinTree[T], v T) {
	InsertToKeyCmp(u, v, identity[T], cmp.Compare[T], true, false)
}

// InsertUnique inserts v into u in natural order, replacing an equal value.
// Returns true if v is new to u. Always rebalances.
func InsertUnique[T constraints.Ordered](u *BinTree[T], v T) bool {
	_, replaced := InsertToKeyCmp(u, v, identity[T], cmp.Compare[T], true, true)
	return !replaced
}

// ExtendSorted calls Insert for every element of vs in order.
func ExtendSorted[T constraints.Ordered](u *BinTree[T], vs ...T) {
	for _, v := range vs {
		Insert(u, v)
	}
}

// ExtendSortedUnique calls InsertUnique for every element of vs in order and
// returns how many of them were new.
func ExtendSortedUnique[T constraints.Ordered](u *BinTree[T], vs ...T) (added int) {
	for _, v := range vs {
		if InsertUnique(u, v) {
			added++
		}
	}
	return
}

// Collect builds a balanced sorted tree, duplicates included, from vs.
func Collect[T constraints.Ordered](vs ...T) BinTree[T] {
	var t BinTree[T]
	ExtendSorted(&t, vs...)
	return t
}

// InsertFunc inserts v into u ordered by compare, keeping duplicates.
// Always rebalances.
func (u *BinTree[T]) InsertFunc(v T, compare func(a, b T) int) {
	InsertToKeyCmp(u, v, identity[T], compare, true, false)
}

// InsertUniqueFunc inserts v into u ordered by compare, replacing an equal value.
// Returns the replaced value and true if there was one. Always rebalances.
func (u *BinTree[T]) InsertUniqueFunc(v T, compare func(a, b T) int) (T, bool) {
	return InsertToKeyCmp(u, v, identity[T], compare, true, true)
}

// PushLeft appends v as the left child of the leftmost node of u, regardless
// of order. Heights along the left spine are kept. Recursive.
// Time: O(D)
func (u *BinTree[T]) PushLeft(v T) {
	if u.n == nil {
		*u = Leaf(v)
		return
	}
	u.n.l.PushLeft(v)
	u.n.updateHeight()
}

// PushRight appends v as the right child of the rightmost node of u.
// Time: O(D)
func (u *BinTree[T]) PushRight(v T) {
	if u.n == nil {
		*u = Leaf(v)
		return
	}
	u.n.r.PushRight(v)
	u.n.updateHeight()
}

func (u *BinTree[T]) ExtendLeft(vs ...T) {
	for _, v := range vs {
		u.PushLeft(v)
	}
}

func (u *BinTree[T]) ExtendRight(vs ...T) {
	for _, v := range vs {
		u.PushRight(v)
	}
}
