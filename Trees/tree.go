package Trees

// BinTree is a binary tree where every subtree is itself a BinTree. The zero
// value is the empty tree. A non-empty BinTree owns a node holding a value,
// the left and right subtrees, and the height of the tree.
// Leaves and branches share the same representation: a leaf is a node whose
// children are both empty.
//
// The tree only keeps the sort invariant (left < v <= right) when it is
// exclusively modified with the sorted family of functions using the same key
// and comparison each time. Likewise, the AVL invariant only holds when those
// functions are called with rebalance set.
//
// Methods that only read the tree have value receivers. The pointers returned
// by the *Mut accessors and by Left, Right and Parts point into the tree and
// stay valid until the owning node is removed or rotated away.
type BinTree[T any] struct {
	n *node[T]
}

// Empty returns the empty tree.
func Empty[T any]() BinTree[T] {
	return BinTree[T]{}
}

// Leaf returns a tree of a single node holding v.
func Leaf[T any](v T) BinTree[T] {
	return BinTree[T]{&node[T]{v: v, h: 1}}
}

// Node returns a tree with v at the root, and l, r as its subtrees. The height
// is computed from the stored heights of l and r.
func Node[T any](v T, l, r BinTree[T]) BinTree[T] {
	n := &node[T]{v: v, l: l, r: r}
	n.updateHeight()
	return BinTree[T]{n}
}

func (u BinTree[T]) IsEmpty() bool {
	return u.n == nil
}

// IsLeaf reports whether u is non-empty and both of its children are empty.
func (u BinTree[T]) IsLeaf() bool {
	return u.n != nil && u.n.l.n == nil && u.n.r.n == nil
}

// IsBranch reports whether u is non-empty and not a leaf.
func (u BinTree[T]) IsBranch() bool {
	return u.n != nil && (u.n.l.n != nil || u.n.r.n != nil)
}

// Value returns a copy of the value at the root of u.
func (u BinTree[T]) Value() (T, bool) {
	if u.n == nil {
		return *new(T), false
	}
	return u.n.v, true
}

// ValueMut returns a pointer to the value at the root of u, nil if u is empty.
func (u BinTree[T]) ValueMut() *T {
	if u.n == nil {
		return nil
	}
	return &u.n.v
}

// Left returns the slot of the left subtree, nil if u is empty.
// Assigning through the slot replaces the subtree without updating heights.
func (u BinTree[T]) Left() *BinTree[T] {
	if u.n == nil {
		return nil
	}
	return &u.n.l
}

// Right returns the slot of the right subtree, nil if u is empty.
func (u BinTree[T]) Right() *BinTree[T] {
	if u.n == nil {
		return nil
	}
	return &u.n.r
}

// Parts returns the value, the left and the right slots of u at once. All three
// are nil if u is empty.
func (u BinTree[T]) Parts() (*T, *BinTree[T], *BinTree[T]) {
	if u.n == nil {
		return nil, nil, nil
	}
	return &u.n.v, &u.n.l, &u.n.r
}

// SetValue replaces the value at the root of u. Returns the old value, or false
// if u is empty, in which case nothing is done.
func (u BinTree[T]) SetValue(v T) (T, bool) {
	if u.n == nil {
		return *new(T), false
	}
	old := u.n.v
	u.n.v = v
	return old, true
}

// SetLeft replaces the left subtree and updates the height of u.
// Returns the old subtree. Does nothing on an empty tree.
func (u BinTree[T]) SetLeft(t BinTree[T]) BinTree[T] {
	if u.n == nil {
		return BinTree[T]{}
	}
	old := u.n.l
	u.n.l = t
	u.n.updateHeight()
	return old
}

// SetRight replaces the right subtree and updates the height of u.
func (u BinTree[T]) SetRight(t BinTree[T]) BinTree[T] {
	if u.n == nil {
		return BinTree[T]{}
	}
	old := u.n.r
	u.n.r = t
	u.n.updateHeight()
	return old
}

// Set replaces the whole of u with t and returns what was there before.
func (u *BinTree[T]) Set(t BinTree[T]) BinTree[T] {
	old := *u
	*u = t
	return old
}

// SetNode replaces u with a node of v, l and r.
func (u *BinTree[T]) SetNode(v T, l, r BinTree[T]) BinTree[T] {
	return u.Set(Node(v, l, r))
}

// Take moves the tree out of u, leaving u empty.
func (u *BinTree[T]) Take() BinTree[T] {
	return u.Set(BinTree[T]{})
}

// Clone returns a deep copy of u. Values are copied with cp, or by assignment
// if cp is nil. Recursive.
// Time: O(n)
func (u BinTree[T]) Clone(cp func(T) T) BinTree[T] {
	if u.n == nil {
		return BinTree[T]{}
	}
	v := u.n.v
	if cp != nil {
		v = cp(v)
	}
	return BinTree[T]{&node[T]{v, u.n.l.Clone(cp), u.n.r.Clone(cp), u.n.h}}
}

// Identical reports whether a and b have the same shape and the same values at
// the same places. Stored heights are not compared. Recursive.
func Identical[T comparable](a, b BinTree[T]) bool {
	if a.n == nil || b.n == nil {
		return a.n == b.n
	}
	return a.n.v == b.n.v && Identical(a.n.l, b.n.l) && Identical(a.n.r, b.n.r)
}
