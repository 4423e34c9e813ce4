package TreeMap

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/g-m-twostay/bintree/Maps"
	"github.com/g-m-twostay/bintree/Trees"
	"golang.org/x/exp/constraints"
)

// Entry is a key value pair stored in the tree of a TreeMap.
type Entry[K, V any] struct {
	Key   K
	Value V
}

func (e Entry[K, V]) key() K {
	return e.Key
}

// TreeMap is a Map whose entries are kept ordered by key in an AVL balanced
// BinTree. The zero value isn't usable, create one with New or NewOrdered.
type TreeMap[K, V any] struct {
	t   Trees.BinTree[Entry[K, V]]
	cmp func(a, b K) int
	sz  uint
}

var _ Maps.Map[int, int] = (*TreeMap[int, int])(nil)

// New returns an empty map with keys ordered by compare, which is negative when
// a goes before b, and 0 when they are equal or incomparable.
func New[K, V any](compare func(a, b K) int) *TreeMap[K, V] {
	return &TreeMap[K, V]{cmp: compare}
}

// NewOrdered returns an empty map with keys in natural order.
func NewOrdered[K constraints.Ordered, V any]() *TreeMap[K, V] {
	return New[K, V](cmp.Compare[K])
}

// Put [Maps.Map.Put]
// Time: O(log n)
func (u *TreeMap[K, V]) Put(k K, v V) (V, bool) {
	old, replaced := Trees.InsertUniqueToKeyCmp(&u.t, Entry[K, V]{k, v}, Entry[K, V].key, u.cmp)
	if !replaced {
		u.sz++
	}
	return old.Value, replaced
}

// Get [Maps.Map.Get]
// Time: O(log n); Space: O(1)
func (u *TreeMap[K, V]) Get(k K) (V, bool) {
	e, ok := Trees.GetSortedToKeyCmp(u.t, k, Entry[K, V].key, u.cmp)
	return e.Value, ok
}

// GetMut returns a pointer to the value under k, nil if there is none.
func (u *TreeMap[K, V]) GetMut(k K) *V {
	if e := Trees.GetMutSortedToKeyCmp(&u.t, k, Entry[K, V].key, u.cmp); e != nil {
		return &e.Value
	}
	return nil
}

func (u *TreeMap[K, V]) HasKey(k K) bool {
	return Trees.GetTreeMutSortedToKeyCmp(&u.t, k, Entry[K, V].key, u.cmp) != nil
}

// Pop removes k and returns its value.
// Time: O(log n)
func (u *TreeMap[K, V]) Pop(k K) (V, bool) {
	e, ok := Trees.RemoveSortedToKeyCmp(&u.t, k, Entry[K, V].key, u.cmp, true)
	if ok {
		u.sz--
	}
	return e.Value, ok
}

// Remove [Maps.Map.Remove]
func (u *TreeMap[K, V]) Remove(k K) bool {
	_, ok := u.Pop(k)
	return ok
}

// Take returns the pair with the smallest key, zero values if the map is empty.
func (u *TreeMap[K, V]) Take() (K, V) {
	e, _ := u.t.Minimum()
	return e.Key, e.Value
}

func (u *TreeMap[K, V]) Size() uint {
	return u.sz
}

func (u *TreeMap[K, V]) Clear() {
	u.t.Take()
	u.sz = 0
}

// Keys returns the keys in ascending order, see [Maps.Map.Keys].
func (u *TreeMap[K, V]) Keys() func() (K, bool) {
	it := u.t.Iter(Trees.InOrder)
	return func() (K, bool) {
		e, ok := it.Next()
		return e.Key, ok
	}
}

// Values returns the values in ascending order of their keys.
func (u *TreeMap[K, V]) Values() func() (V, bool) {
	it := u.t.Iter(Trees.InOrder)
	return func() (V, bool) {
		e, ok := it.Next()
		return e.Value, ok
	}
}

func (u *TreeMap[K, V]) Pairs() func() (K, V, bool) {
	it := u.t.Iter(Trees.InOrder)
	return func() (K, V, bool) {
		e, ok := it.Next()
		return e.Key, e.Value, ok
	}
}

// Range calls f on the pairs in ascending order of keys until f returns false.
func (u *TreeMap[K, V]) Range(f func(K, V) bool) {
	for e := range u.t.All(Trees.InOrder) {
		if !f(e.Key, e.Value) {
			return
		}
	}
}

// All returns the pairs in ascending order of keys.
func (u *TreeMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		u.Range(yield)
	}
}

// AllMut is like All but gives pointers to the values, so they can be changed
// in place.
func (u *TreeMap[K, V]) AllMut() iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		for e := range u.t.AllMut(Trees.InOrder) {
			if !yield(e.Key, &e.Value) {
				return
			}
		}
	}
}

// Drain empties the map and returns its pairs in ascending order of keys.
func (u *TreeMap[K, V]) Drain() iter.Seq2[K, V] {
	seq := u.t.Drain(Trees.InOrder)
	u.sz = 0
	return func(yield func(K, V) bool) {
		for e := range seq {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Corrupt checks the order of the keys, the heights, the balance and the size.
// Time: O(n)
func (u *TreeMap[K, V]) Corrupt() bool {
	return u.t.CorruptFunc(func(a, b Entry[K, V]) int { return u.cmp(a.Key, b.Key) }) ||
		u.t.Len() != int(u.sz)
}

// String formats the map like fmt does for maps, with keys in ascending order.
func (u *TreeMap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("map[")
	first := true
	for e := range u.t.All(Trees.InOrder) {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%v:%v", e.Key, e.Value)
	}
	sb.WriteByte(']')
	return sb.String()
}

// Tree gives access to the underlying tree. Changing the keys or the shape of
// the tree breaks the map.
func (u *TreeMap[K, V]) Tree() *Trees.BinTree[Entry[K, V]] {
	return &u.t
}
