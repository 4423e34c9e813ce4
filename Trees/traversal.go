package Trees

import (
	"iter"

	"github.com/g-m-twostay/bintree/Queues"
)

// Order of a traversal.
type Order byte

const (
	// InOrder visits the left subtree, the node, then the right subtree. On a
	// sorted tree this gives the values in ascending order.
	InOrder Order = iota
	// PreOrder visits the node before its subtrees, left first.
	PreOrder
	// PostOrder visits the node after its subtrees, left first.
	PostOrder
	// BreadthFirst visits the nodes level by level, from left to right.
	BreadthFirst
)

func (o Order) String() string {
	switch o {
	case InOrder:
		return "in-order"
	case PreOrder:
		return "pre-order"
	case PostOrder:
		return "post-order"
	case BreadthFirst:
		return "breadth-first"
	default:
		return "unknown order"
	}
}

// A pending unit of a traversal: either yield the value at t, or expand t into
// its value and its children.
type step[T any] struct {
	t      *BinTree[T]
	expand bool
}

// walker traverses a tree with an explicit worklist instead of recursion. The
// depth-first orders use the worklist as a stack, BreadthFirst as a queue.
// When own is set, children are detached from their parent on expansion so
// that a yielded node no longer references anything.
type walker[T any] struct {
	q   Queues.Deque[step[T]]
	o   Order
	own bool
}

func makeWalker[T any](root *BinTree[T], o Order, own bool) walker[T] {
	w := walker[T]{Queues.MakeDeque[step[T]](uint(root.Height()) + 2), o, own}
	w.push(root)
	return w
}

func (w *walker[T]) push(t *BinTree[T]) {
	if t.n != nil {
		w.q.Push(step[T]{t, true})
	}
}

// next returns the subtree whose root value comes next, nil when exhausted.
// Time: amortized O(1); Space: O(D) for the depth-first orders, O(n) for BreadthFirst.
func (w *walker[T]) next() *BinTree[T] {
	for {
		var s step[T]
		var e error
		if w.o == BreadthFirst {
			s, e = w.q.Pop()
		} else {
			s, e = w.q.PopBack()
		}
		if e != nil {
			return nil
		}
		if !s.expand {
			return s.t
		}
		n := s.t.n
		l, r := &n.l, &n.r
		if w.own {
			lt, rt := n.l.Take(), n.r.Take()
			l, r = &lt, &rt
		}
		v := step[T]{s.t, false}
		switch w.o {
		case PreOrder:
			w.push(r)
			w.push(l)
			w.q.Push(v)
		case PostOrder:
			w.q.Push(v)
			w.push(r)
			w.push(l)
		case BreadthFirst:
			w.q.Push(v)
			w.push(l)
			w.push(r)
		default:
			w.push(r)
			w.q.Push(v)
			w.push(l)
		}
	}
}

// Iter yields copies of the values of a tree. The tree mustn't be structurally
// modified while iterating.
type Iter[T any] struct {
	w walker[T]
}

func (u BinTree[T]) Iter(o Order) *Iter[T] {
	return &Iter[T]{makeWalker(&u, o, false)}
}

// Next returns the next value, false if the iteration is exhausted.
func (it *Iter[T]) Next() (T, bool) {
	if t := it.w.next(); t != nil {
		return t.n.v, true
	}
	return *new(T), false
}

// IterMut yields pointers to the values of a tree, allowing them to be changed
// in place. Changing the keys of a sorted tree breaks its sort invariant.
type IterMut[T any] struct {
	w walker[T]
}

func (u *BinTree[T]) IterMut(o Order) *IterMut[T] {
	return &IterMut[T]{makeWalker(u, o, false)}
}

// Next returns a pointer to the next value, nil if the iteration is exhausted.
func (it *IterMut[T]) Next() *T {
	if t := it.w.next(); t != nil {
		return &t.n.v
	}
	return nil
}

// IntoIter owns the tree it iterates: creating it leaves the source empty, and
// every value is given out once.
type IntoIter[T any] struct {
	t BinTree[T]
	w walker[T]
}

func (u *BinTree[T]) IntoIter(o Order) *IntoIter[T] {
	it := &IntoIter[T]{t: u.Take()}
	it.w = makeWalker(&it.t, o, true)
	return it
}

func (it *IntoIter[T]) Next() (T, bool) {
	if t := it.w.next(); t != nil {
		v := t.n.v
		t.n = nil
		return v, true
	}
	return *new(T), false
}

// NodeIter yields the slots of the non-empty subtrees of a tree. Replacing a
// yielded subtree isn't seen by the rest of the iteration.
type NodeIter[T any] struct {
	w walker[T]
}

func (u *BinTree[T]) Subtrees(o Order) *NodeIter[T] {
	return &NodeIter[T]{makeWalker(u, o, false)}
}

func (it *NodeIter[T]) Next() *BinTree[T] {
	return it.w.next()
}

// All returns the values of u in order o as an iter.Seq.
func (u BinTree[T]) All(o Order) iter.Seq[T] {
	return func(yield func(T) bool) {
		w := makeWalker(&u, o, false)
		for t := w.next(); t != nil; t = w.next() {
			if !yield(t.n.v) {
				return
			}
		}
	}
}

// AllMut returns pointers to the values of u in order o as an iter.Seq.
func (u *BinTree[T]) AllMut(o Order) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		w := makeWalker(u, o, false)
		for t := w.next(); t != nil; t = w.next() {
			if !yield(&t.n.v) {
				return
			}
		}
	}
}

// Drain empties u and returns its values in order o as a single use iter.Seq.
// Values not consumed when the loop stops are dropped.
func (u *BinTree[T]) Drain(o Order) iter.Seq[T] {
	it := u.IntoIter(o)
	return func(yield func(T) bool) {
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// InOrder returns a closure acting like Iter(InOrder).Next. See [Tree.InOrder].
func (u BinTree[T]) InOrder() func() (T, bool) {
	return u.Iter(InOrder).Next
}

// Len counts the nodes of u.
// Time: O(n)
func (u BinTree[T]) Len() (n int) {
	w := makeWalker(&u, PreOrder, false)
	for t := w.next(); t != nil; t = w.next() {
		n++
	}
	return
}

// ToSlice returns the values of u in-order.
// Time: O(n)
func (u BinTree[T]) ToSlice() []T {
	s := make([]T, 0)
	for v := range u.All(InOrder) {
		s = append(s, v)
	}
	return s
}

// Equal reports whether the in-order sequences of a and b are equal. Trees of
// different shapes can be Equal; see Identical for comparing shapes.
// Time: O(n)
func Equal[T comparable](a, b BinTree[T]) bool {
	ia, ib := a.Iter(InOrder), b.Iter(InOrder)
	for {
		va, oka := ia.Next()
		vb, okb := ib.Next()
		if oka != okb || va != vb {
			return false
		} else if !oka {
			return true
		}
	}
}
