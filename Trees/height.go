package Trees

// Height returns the stored height of u, 0 for the empty tree.
// Time: O(1); Space: O(1)
func (u BinTree[T]) Height() int {
	if u.n == nil {
		return 0
	}
	return u.n.h
}

// Balance returns Height(left)-Height(right) of u, 0 for the empty tree.
// Time: O(1); Space: O(1)
func (u BinTree[T]) Balance() int {
	if u.n == nil {
		return 0
	}
	return u.n.l.Height() - u.n.r.Height()
}

// UpdateHeight recomputes the height of the root of u from its children. Returns
// whether the height changed.
// Time: O(1); Space: O(1)
func (u BinTree[T]) UpdateHeight() bool {
	if u.n == nil {
		return false
	}
	old := u.n.h
	u.n.updateHeight()
	return old != u.n.h
}

// Recalculate recomputes the heights of u bottom-up. When recLeft is set the
// left subtree is first recalculated recursively, the same goes for recRight.
// With both unset only the root is updated; with only recLeft set only the
// left spine is visited. When rebalance is set, every visited node is also
// rebalanced after its height is updated. Recursive.
// Returns the new height of u and whether anything changed.
// Time: O(n) for the whole tree, O(D) for a spine.
func (u *BinTree[T]) Recalculate(recLeft, recRight, rebalance bool) (int, bool) {
	if u.n == nil {
		return 0, false
	}
	changed := false
	if recLeft {
		_, c := u.n.l.Recalculate(recLeft, recRight, rebalance)
		changed = changed || c
	}
	if recRight {
		_, c := u.n.r.Recalculate(recLeft, recRight, rebalance)
		changed = changed || c
	}
	if u.UpdateHeight() {
		changed = true
	}
	if rebalance && u.Rebalance() {
		changed = true
	}
	return u.n.h, changed
}

// RecalculateHeights recomputes every height in u without rebalancing. Returns
// whether any stored height was wrong.
func (u *BinTree[T]) RecalculateHeights() bool {
	_, changed := u.Recalculate(true, true, false)
	return changed
}

// HeightsConsistent reports whether every stored height in u matches the one
// computed from its children. Unlike RecalculateHeights it doesn't modify u.
// Recursive.
func (u BinTree[T]) HeightsConsistent() bool {
	if u.n == nil {
		return true
	}
	return u.n.l.HeightsConsistent() && u.n.r.HeightsConsistent() &&
		u.n.h == max(u.n.l.Height(), u.n.r.Height())+1
}

// IsBalanced reports whether every node of u has a balance in [-1,1], using the
// stored heights. Recursive.
func (u BinTree[T]) IsBalanced() bool {
	if u.n == nil {
		return true
	}
	b := u.Balance()
	return -1 <= b && b <= 1 && u.n.l.IsBalanced() && u.n.r.IsBalanced()
}

// RotateRight rotates u to the right. Returns false without doing anything if u
// or its left child is empty.
// Time: O(1); Space: O(1)
func (u *BinTree[T]) RotateRight() bool {
	if u.n == nil || u.n.l.n == nil {
		return false
	}
	rotateRight(u)
	return true
}

// RotateLeft rotates u to the left. Returns false without doing anything if u
// or its right child is empty.
// Time: O(1); Space: O(1)
func (u *BinTree[T]) RotateLeft() bool {
	if u.n == nil || u.n.r.n == nil {
		return false
	}
	rotateLeft(u)
	return true
}

// RotateLeftRight rotates the left child of u to the left, then u to the right.
// Returns false without doing anything if the left child or its right child is
// empty.
// Time: O(1); Space: O(1)
func (u *BinTree[T]) RotateLeftRight() bool {
	if u.n == nil || u.n.l.n == nil || u.n.l.n.r.n == nil {
		return false
	}
	rotateLeft(&u.n.l)
	rotateRight(u)
	return true
}

// RotateRightLeft rotates the right child of u to the right, then u to the left.
// Time: O(1); Space: O(1)
func (u *BinTree[T]) RotateRightLeft() bool {
	if u.n == nil || u.n.r.n == nil || u.n.r.n.l.n == nil {
		return false
	}
	rotateRight(&u.n.r)
	rotateLeft(u)
	return true
}

// Rebalance restores the AVL property at the root of u, given that both
// subtrees are AVL trees with correct heights and that the balance of u is in
// [-2,2]. Returns whether a rotation happened.
// Time: O(1); Space: O(1)
func (u *BinTree[T]) Rebalance() bool {
	if b := u.Balance(); b > 1 {
		if u.n.l.Balance() < 0 {
			rotateLeft(&u.n.l)
		}
		rotateRight(u)
		return true
	} else if b < -1 {
		if u.n.r.Balance() > 0 {
			rotateRight(&u.n.r)
		}
		rotateLeft(u)
		return true
	}
	return false
}
