package Trees

// SwapFunc exchanges the values of the first nodes in pre-order that satisfy
// match1 and match2 respectively. The shape of u doesn't change.
// Time: O(n)
func (u *BinTree[T]) SwapFunc(match1, match2 func(T) bool) error {
	a := u.GetMutFunc(match1)
	if a == nil {
		return SwapNotFound1
	}
	b := u.GetMutFunc(match2)
	if b == nil {
		return SwapNotFound2
	}
	if a == b {
		return SwapSame
	}
	*a, *b = *b, *a
	return nil
}

// Swap exchanges v1 and v2 in u. See SwapFunc.
func Swap[T comparable](u *BinTree[T], v1, v2 T) error {
	return u.SwapFunc(equalTo(v1), equalTo(v2))
}

// SwapSortedFunc is SwapFunc for a sorted tree, locating v1 and v2 with compare.
// Time: O(D)
func (u *BinTree[T]) SwapSortedFunc(v1, v2 T, compare func(a, b T) int) error {
	a := GetMutSortedToKeyCmp(u, v1, identity[T], compare)
	if a == nil {
		return SwapNotFound1
	}
	b := GetMutSortedToKeyCmp(u, v2, identity[T], compare)
	if b == nil {
		return SwapNotFound2
	}
	if a == b {
		return SwapSame
	}
	*a, *b = *b, *a
	return nil
}
