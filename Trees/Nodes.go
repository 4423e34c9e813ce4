package Trees

// A node in the BinTree. l and r are exclusively owned by the node.
// h is the height of the subtree rooting at this node, 1 for a leaf.
type node[T any] struct {
	v    T
	l, r BinTree[T]
	h    int
}

// updateHeight sets h from the stored heights of l and r.
// Time: O(1); Space: O(1)
func (n *node[T]) updateHeight() {
	n.h = max(n.l.Height(), n.r.Height()) + 1
}

// rotateRight performs a right rotation on the non-empty u whose left child is
// also non-empty. u is passed by reference in order to modify its content.
// Only the two nodes whose children changed get their heights recomputed.
// Time: O(1); Space: O(1)
func rotateRight[T any](u *BinTree[T]) {
	r := u.n
	lc := r.l.n
	r.l = lc.r
	lc.r = BinTree[T]{r}
	r.updateHeight()
	lc.updateHeight()
	u.n = lc
}

// rotateLeft performs a left rotation on the non-empty u whose right child is
// also non-empty. u is passed by reference in order to modify its content.
// Time: O(1); Space: O(1)
func rotateLeft[T any](u *BinTree[T]) {
	r := u.n
	rc := r.r.n
	r.r = rc.l
	rc.l = BinTree[T]{r}
	r.updateHeight()
	rc.updateHeight()
	u.n = rc
}
