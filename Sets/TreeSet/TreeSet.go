package TreeSet

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/g-m-twostay/bintree/Sets"
	"github.com/g-m-twostay/bintree/Trees"
	"golang.org/x/exp/constraints"
)

// TreeSet is a Set of elements kept in order in an AVL balanced BinTree.
// Elements are ordered by cmp; two elements comparing equal are the same element.
// The zero value isn't usable, create one with New or NewOrdered.
type TreeSet[E any] struct {
	t   Trees.BinTree[E]
	cmp func(a, b E) int
	sz  uint
}

var (
	_ Sets.Set[int]         = (*TreeSet[int])(nil)
	_ Sets.ExtendedSet[int] = (*TreeSet[int])(nil)
	_ Trees.Tree[int]       = (*TreeSet[int])(nil)
)

// New returns an empty set ordered by compare, which is negative when a goes
// before b, 0 when a and b are equal or incomparable, and positive otherwise.
func New[E any](compare func(a, b E) int) *TreeSet[E] {
	return &TreeSet[E]{cmp: compare}
}

// NewOrdered returns an empty set in natural order.
func NewOrdered[E constraints.Ordered]() *TreeSet[E] {
	return New(cmp.Compare[E])
}

// From returns a set of es in natural order.
func From[E constraints.Ordered](es ...E) *TreeSet[E] {
	u := NewOrdered[E]()
	for _, e := range es {
		u.Put(e)
	}
	return u
}

// Put [Sets.Set.Put]. An equal element already in the set is replaced by e.
// Time: O(log n)
func (u *TreeSet[E]) Put(e E) bool {
	if _, replaced := u.t.InsertUniqueFunc(e, u.cmp); replaced {
		return false
	}
	u.sz++
	return true
}

// Insert [Trees.Tree.Insert] is the same as Put.
func (u *TreeSet[E]) Insert(e E) bool {
	return u.Put(e)
}

// Has [Sets.Set.Has]
// Time: O(log n); Space: O(1)
func (u *TreeSet[E]) Has(e E) bool {
	return u.t.ContainsSortedFunc(e, u.cmp)
}

// Remove [Sets.Set.Remove]
// Time: O(log n)
func (u *TreeSet[E]) Remove(e E) bool {
	if _, ok := u.t.RemoveSortedFunc(e, u.cmp); ok {
		u.sz--
		return true
	}
	return false
}

// Size [Sets.Set.Size]
// Time: O(1); Space: O(1)
func (u *TreeSet[E]) Size() uint {
	return u.sz
}

// Take returns the smallest element.
func (u *TreeSet[E]) Take() E {
	e, _ := u.t.Minimum()
	return e
}

func (u *TreeSet[E]) Minimum() (E, bool) {
	return u.t.Minimum()
}

func (u *TreeSet[E]) Maximum() (E, bool) {
	return u.t.Maximum()
}

// Range calls f on the elements in ascending order until f returns false.
func (u *TreeSet[E]) Range(f func(E) bool) {
	for e := range u.t.All(Trees.InOrder) {
		if !f(e) {
			return
		}
	}
}

// All returns the elements in ascending order.
func (u *TreeSet[E]) All() iter.Seq[E] {
	return u.t.All(Trees.InOrder)
}

// InOrder [Trees.Tree.InOrder]
func (u *TreeSet[E]) InOrder() func() (E, bool) {
	return u.t.InOrder()
}

// Corrupt [Trees.Tree.Corrupt]. Also checks the size. Time: O(n)
func (u *TreeSet[E]) Corrupt() bool {
	return u.t.CorruptFunc(u.cmp) || u.t.Len() != int(u.sz)
}

// PutAll puts every element of s. Returns the number of new elements.
func (u *TreeSet[E]) PutAll(s Sets.Set[E]) (n uint) {
	s.Range(func(e E) bool {
		if u.Put(e) {
			n++
		}
		return true
	})
	return
}

// RemoveAll removes every element of s. Returns the number of removed elements.
func (u *TreeSet[E]) RemoveAll(s Sets.Set[E]) (n uint) {
	s.Range(func(e E) bool {
		if u.Remove(e) {
			n++
		}
		return true
	})
	return
}

// Eq reports whether u and s hold the same elements.
func (u *TreeSet[E]) Eq(s Sets.Set[E]) bool {
	if u.sz != s.Size() {
		return false
	}
	eq := true
	s.Range(func(e E) bool {
		eq = u.Has(e)
		return eq
	})
	return eq
}

func (u *TreeSet[E]) Union(s Sets.Set[E]) {
	u.PutAll(s)
}

// Intersect removes the elements that aren't in s.
func (u *TreeSet[E]) Intersect(s Sets.Set[E]) {
	var gone []E
	for e := range u.t.All(Trees.InOrder) {
		if !s.Has(e) {
			gone = append(gone, e)
		}
	}
	for _, e := range gone {
		u.Remove(e)
	}
}

// Filter returns a new set, with the same order, of the elements satisfying f.
func (u *TreeSet[E]) Filter(f func(E) bool) Sets.ExtendedSet[E] {
	s := New(u.cmp)
	for e := range u.t.All(Trees.InOrder) {
		if f(e) {
			s.Put(e)
		}
	}
	return s
}

// Slice returns the elements in ascending order.
func (u *TreeSet[E]) Slice() []E {
	return u.t.ToSlice()
}

// String formats the elements in ascending order like a slice.
func (u *TreeSet[E]) String() string {
	return fmt.Sprint(u.t.ToSlice())
}

// Tree gives access to the underlying tree. Modifying it in any way other
// than through the set breaks the set.
func (u *TreeSet[E]) Tree() *Trees.BinTree[E] {
	return &u.t
}
