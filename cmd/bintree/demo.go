package main

import (
	"fmt"
	"io"

	"github.com/g-m-twostay/bintree/Maps/TreeMap"
	"github.com/g-m-twostay/bintree/Sets/TreeSet"
	"github.com/g-m-twostay/bintree/Trees"
	"github.com/pkg/errors"
)

func sampleTree() Trees.BinTree[int] {
	return Trees.Node(1,
		Trees.Node(2, Trees.Leaf(3), Trees.Empty[int]()),
		Trees.Node(4, Trees.Empty[int](), Trees.Node(5, Trees.Leaf(6), Trees.Empty[int]())),
	)
}

var sampleValues = []int{18, 6, 3, 8, 5, 11, 1, 7, 3, 5, 2, 8, 10, 3, 6, 9, 3, 2}

// demo writes a tour of the tree operations to w.
func demo(w io.Writer, tab string) error {
	ew := &errWriter{w: w}
	t := sampleTree()
	ew.println(t)
	ew.print(t.Pretty(tab))

	// the sample tree isn't sorted: a binary search can't find 2, but 5 is on a sorted path.
	ew.println("sorted 2:", Trees.ContainsSorted(t, 2))
	ew.println("unordered 2:", Trees.Contains(t, 2))
	ew.println("sorted 5:", Trees.ContainsSorted(t, 5))

	for _, o := range []Trees.Order{Trees.InOrder, Trees.PreOrder, Trees.PostOrder, Trees.BreadthFirst} {
		ew.printf("%s:", o)
		for v := range t.All(o) {
			ew.printf(" %d", v)
		}
		ew.println()
	}

	it := t.IterMut(Trees.InOrder)
	for p := it.Next(); p != nil; p = it.Next() {
		if *p%3 == 0 {
			ew.printf("%d => ", *p)
			*p /= 3
		}
		ew.println(*p)
	}
	ew.print("owned:")
	for v := range t.Drain(Trees.InOrder) {
		ew.printf(" %d", v)
	}
	ew.println()

	sorted := Trees.Collect(sampleValues...)
	ew.println(sorted, "height", sorted.Height())

	s := TreeSet.From(sampleValues...)
	ew.println("set:", s)
	ew.println("has 2:", s.Has(2), "has 10:", s.Has(10), "has 4:", s.Has(4))
	ew.println("remove 7:", s.Remove(7), s)

	m := TreeMap.NewOrdered[string, int]()
	for i, v := range sampleValues {
		m.Put(fmt.Sprint("k", v), i)
	}
	ew.println("map:", m)
	return errors.Wrap(ew.err, "writing demo")
}

// errWriter keeps the first write error and skips the writes after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (u *errWriter) printf(format string, a ...any) {
	if u.err == nil {
		_, u.err = fmt.Fprintf(u.w, format, a...)
	}
}

func (u *errWriter) print(a ...any) {
	if u.err == nil {
		_, u.err = fmt.Fprint(u.w, a...)
	}
}

func (u *errWriter) println(a ...any) {
	if u.err == nil {
		_, u.err = fmt.Fprintln(u.w, a...)
	}
}
