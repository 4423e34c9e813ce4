package Trees

// Tree represents a sorted container implemented on top of a BinTree.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case the value of x should be undefined. However, depending on
// specific implementations, the value of x might have a meaning, but it's
// advised that x not to be used.
// If an implementation didn't specify anything special, then the implemented
// receivers follows the behaviors defined here.
type Tree[T any] interface {
	//Insert v to the Tree. Returning true if v wasn't in the Tree before,
	//false otherwise. Exact behavior depend on implementation.
	Insert(v T) bool
	//Remove v from the Tree. Returning true if successful, false otherwise.
	Remove(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Has element v.
	Has(v T) bool
	//Size of the tree.
	Size() uint
	//InOrder returns a closure function f acting like an iterator. f
	//gives nodes in the in-order traversal of the tree.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree must not be structurally modified during the iteration of f.
	InOrder() func() (T, bool)
	//Corrupt returns whether the tree has corrupt structures: values out of
	//order, wrong stored heights, or nodes out of balance.
	Corrupt() bool
}

// IsSortedFunc reports whether the in-order traversal of u is non-decreasing
// under compare.
// Time: O(n)
func (u BinTree[T]) IsSortedFunc(compare func(a, b T) int) bool {
	next := u.InOrder()
	prev, _ := next()
	for cur, ok := next(); ok; cur, ok = next() {
		if compare(prev, cur) > 0 {
			return false
		}
		prev = cur
	}
	return true
}

// CorruptFunc reports whether u breaks any of the sort, height, or AVL
// invariants, with the order given by compare.
func (u BinTree[T]) CorruptFunc(compare func(a, b T) int) bool {
	return !u.IsSortedFunc(compare) || !u.HeightsConsistent() || !u.IsBalanced()
}
