package Trees

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var orderWant = map[Order][]int{
	InOrder:      {3, 2, 1, 4, 6, 5},
	PreOrder:     {1, 2, 3, 4, 5, 6},
	PostOrder:    {3, 2, 6, 5, 4, 1},
	BreadthFirst: {1, 2, 4, 3, 5, 6},
}

func TestTraversal_Iter(t *testing.T) {
	tree := testTree()
	for o, want := range orderWant {
		var got []int
		it := tree.Iter(o)
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			got = append(got, v)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%v mismatch (-want +got):\n%s", o, diff)
		}
		if diff := cmp.Diff(want, slices.Collect(tree.All(o))); diff != "" {
			t.Errorf("%v mismatch (-want +got):\n%s", o, diff)
		}
	}
	if s := tree.ToSlice(); !slices.Equal(s, orderWant[InOrder]) {
		t.Errorf("content is %v", s)
	}
	next := tree.InOrder()
	for _, w := range orderWant[InOrder] {
		if v, ok := next(); !ok || v != w {
			t.Errorf("got %d, %v, want %d", v, ok, w)
		}
	}
	for range 3 {
		if _, ok := next(); ok {
			t.Errorf("exhausted iterator gave a value")
		}
	}
}

func TestTraversal_IntoIter(t *testing.T) {
	for o, want := range orderWant {
		tree := testTree()
		it := tree.IntoIter(o)
		if !tree.IsEmpty() {
			t.Errorf("source not empty after creating an owning iterator")
		}
		var got []int
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			got = append(got, v)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%v mismatch (-want +got):\n%s", o, diff)
		}
		tree = testTree()
		if diff := cmp.Diff(want, slices.Collect(tree.Drain(o))); diff != "" {
			t.Errorf("%v mismatch (-want +got):\n%s", o, diff)
		}
	}
}

func TestTraversal_IterMut(t *testing.T) {
	tree := testTree()
	it := tree.IterMut(InOrder)
	for p := it.Next(); p != nil; p = it.Next() {
		if *p%2 == 1 {
			*p += 10
		}
	}
	if s := tree.String(); s != "(((13) <= 2) <= 11 => (4 => ((6) <= 15)))" {
		t.Errorf("tree is %s", s)
	}
}

func TestTraversal_MutOrder(t *testing.T) {
	tree := testTree()
	i := 0
	steps := []struct {
		o    Order
		want []int
	}{
		{InOrder, []int{4, 4, 4, 8, 11, 11}},
		{InOrder, []int{11, 12, 13, 18, 22, 23}},
		{PreOrder, []int{26, 26, 26, 34, 40, 40}},
		{PostOrder, []int{45, 46, 50, 57, 61, 62}},
		{BreadthFirst, []int{73, 72, 75, 84, 91, 91}},
	}
	for _, s := range steps {
		for p := range tree.AllMut(s.o) {
			i++
			*p += i
		}
		if diff := cmp.Diff(s.want, tree.ToSlice()); diff != "" {
			t.Errorf("%v mismatch (-want +got):\n%s", s.o, diff)
		}
	}
}

func TestTraversal_Subtrees(t *testing.T) {
	tree := testTree()
	var leaves []int
	it := tree.Subtrees(BreadthFirst)
	for st := it.Next(); st != nil; st = it.Next() {
		if st.IsLeaf() {
			v, _ := st.Value()
			leaves = append(leaves, v)
		}
	}
	if !slices.Equal(leaves, []int{3, 6}) {
		t.Errorf("leaves are %v", leaves)
	}
	// the first subtree in pre-order is the root slot itself.
	if root := tree.Subtrees(PreOrder).Next(); root != &tree {
		t.Errorf("first subtree isn't the root")
	}
}

func TestTraversal_Break(t *testing.T) {
	tree := testTree()
	var got []int
	for v := range tree.All(PreOrder) {
		if v == 4 {
			break
		}
		got = append(got, v)
	}
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("got %v", got)
	}
	for v := range tree.Drain(InOrder) {
		if v == 1 {
			break
		}
	}
	if !tree.IsEmpty() {
		t.Errorf("drained tree is not empty")
	}
}

func TestTraversal_LenEqual(t *testing.T) {
	var e BinTree[int]
	if e.Len() != 0 || len(e.ToSlice()) != 0 {
		t.Errorf("empty tree has values")
	}
	if _, ok := e.Iter(BreadthFirst).Next(); ok {
		t.Errorf("empty tree iterator gave a value")
	}
	tree := testTree()
	if tree.Len() != 6 {
		t.Errorf("len is %d, want 6", tree.Len())
	}
	var chain BinTree[int]
	chain.ExtendRight(3, 2, 1, 4, 6, 5)
	if !Equal(tree, chain) || Identical(tree, chain) {
		t.Errorf("equality of %v and %v is wrong", tree, chain)
	}
	chain.PushRight(7)
	if Equal(tree, chain) || Equal(chain, tree) {
		t.Errorf("trees of different lengths are equal")
	}
	if !Equal(e, Empty[int]()) {
		t.Errorf("empty trees aren't equal")
	}
	for _, o := range []Order{InOrder, PreOrder, PostOrder, BreadthFirst, Order(9)} {
		if o.String() == "" {
			t.Errorf("order %d has no name", o)
		}
	}
}

func BenchmarkTraversal(b *testing.B) {
	var tree BinTree[int]
	for range 1 << 14 {
		Insert(&tree, rg.Int())
	}
	b.ResetTimer()
	for _, o := range []Order{InOrder, PreOrder, PostOrder, BreadthFirst} {
		b.Run(o.String(), func(b *testing.B) {
			for range b.N {
				it := tree.Iter(o)
				for _, ok := it.Next(); ok; _, ok = it.Next() {
				}
			}
		})
	}
}
