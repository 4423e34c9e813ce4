package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// GetTreeMutSortedToKeyCmp searches the sorted tree u for the subtree whose root
// key compares equal to key, ordering as in InsertToKeyCmp. Returns the slot of
// the topmost such subtree, nil if there is none.
// Time: O(D); Space: O(1)
func GetTreeMutSortedToKeyCmp[T, K any](u *BinTree[T], key K, toKey func(T) K, compare func(a, b K) int) *BinTree[T] {
	for cur := u; cur.n != nil; {
		if c := compare(key, toKey(cur.n.v)); c < 0 {
			cur = &cur.n.l
		} else if c > 0 {
			cur = &cur.n.r
		} else {
			return cur
		}
	}
	return nil
}

// GetMutSortedToKeyCmp is like GetTreeMutSortedToKeyCmp but returns a pointer to
// the value. Changing the key through it breaks the sort invariant.
func GetMutSortedToKeyCmp[T, K any](u *BinTree[T], key K, toKey func(T) K, compare func(a, b K) int) *T {
	if t := GetTreeMutSortedToKeyCmp(u, key, toKey, compare); t != nil {
		return &t.n.v
	}
	return nil
}

// GetSortedToKeyCmp returns a copy of the value matching key.
func GetSortedToKeyCmp[T, K any](u BinTree[T], key K, toKey func(T) K, compare func(a, b K) int) (T, bool) {
	if t := GetTreeMutSortedToKeyCmp(&u, key, toKey, compare); t != nil {
		return t.n.v, true
	}
	return *new(T), false
}

// GetSortedWithKey searches by an ordered key extracted with toKey.
func GetSortedWithKey[T any, K constraints.Ordered](u BinTree[T], key K, toKey func(T) K) (T, bool) {
	return GetSortedToKeyCmp(u, key, toKey, cmp.Compare[K])
}

func GetSortedMutWithKey[T any, K constraints.Ordered](u *BinTree[T], key K, toKey func(T) K) *T {
	return GetMutSortedToKeyCmp(u, key, toKey, cmp.Compare[K])
}

// GetSorted searches u in natural order.
func GetSorted[T constraints.Ordered](u BinTree[T], v T) (T, bool) {
	return GetSortedToKeyCmp(u, v, identity[T], cmp.Compare[T])
}

func GetSortedMut[T constraints.Ordered](u *BinTree[T], v T) *T {
	return GetMutSortedToKeyCmp(u, v, identity[T], cmp.Compare[T])
}

func GetTreeMutSorted[T constraints.Ordered](u *BinTree[T], v T) *BinTree[T] {
	return GetTreeMutSortedToKeyCmp(u, v, identity[T], cmp.Compare[T])
}

func ContainsSorted[T constraints.Ordered](u BinTree[T], v T) bool {
	return GetTreeMutSortedToKeyCmp(&u, v, identity[T], cmp.Compare[T]) != nil
}

// GetSortedFunc searches u ordered by compare.
func (u BinTree[T]) GetSortedFunc(v T, compare func(a, b T) int) (T, bool) {
	return GetSortedToKeyCmp(u, v, identity[T], compare)
}

func (u BinTree[T]) ContainsSortedFunc(v T, compare func(a, b T) int) bool {
	return GetTreeMutSortedToKeyCmp(&u, v, identity[T], compare) != nil
}

// GetTreeMutFunc returns the slot of the first subtree in pre-order whose value
// satisfies match, nil if there is none. The tree doesn't need to be sorted.
// Recursive.
// Time: O(n)
func (u *BinTree[T]) GetTreeMutFunc(match func(T) bool) *BinTree[T] {
	if u.n == nil {
		return nil
	}
	if match(u.n.v) {
		return u
	}
	if t := u.n.l.GetTreeMutFunc(match); t != nil {
		return t
	}
	return u.n.r.GetTreeMutFunc(match)
}

func (u *BinTree[T]) GetMutFunc(match func(T) bool) *T {
	if t := u.GetTreeMutFunc(match); t != nil {
		return &t.n.v
	}
	return nil
}

func (u BinTree[T]) GetFunc(match func(T) bool) (T, bool) {
	if t := u.GetTreeMutFunc(match); t != nil {
		return t.n.v, true
	}
	return *new(T), false
}

func (u BinTree[T]) ContainsFunc(match func(T) bool) bool {
	return u.GetTreeMutFunc(match) != nil
}

func equalTo[T comparable](v T) func(T) bool {
	return func(x T) bool { return x == v }
}

// Contains reports whether v is anywhere in u, searching without order.
// Time: O(n)
func Contains[T comparable](u BinTree[T], v T) bool {
	return u.ContainsFunc(equalTo(v))
}

func Get[T comparable](u BinTree[T], v T) (T, bool) {
	return u.GetFunc(equalTo(v))
}

func GetMut[T comparable](u *BinTree[T], v T) *T {
	return u.GetMutFunc(equalTo(v))
}

func GetTreeMut[T comparable](u *BinTree[T], v T) *BinTree[T] {
	return u.GetTreeMutFunc(equalTo(v))
}

// Minimum returns the leftmost value of u.
// Time: O(D); Space: O(1)
func (u BinTree[T]) Minimum() (T, bool) {
	if t := u.MinTreeMut(); t != nil {
		return t.n.v, true
	}
	return *new(T), false
}

// Maximum returns the rightmost value of u.
// Time: O(D); Space: O(1)
func (u BinTree[T]) Maximum() (T, bool) {
	if t := u.MaxTreeMut(); t != nil {
		return t.n.v, true
	}
	return *new(T), false
}
