package Trees

import (
	"fmt"
	"strings"
)

// String formats u as "()" when empty, otherwise as "(L <= v => R)" where the
// "L <=" and "=> R" parts are left out for empty children. Values are formatted
// with %v. Recursive.
func (u BinTree[T]) String() string {
	if u.n == nil {
		return "()"
	}
	var sb strings.Builder
	u.format(&sb)
	return sb.String()
}

func (u BinTree[T]) format(sb *strings.Builder) {
	sb.WriteByte('(')
	if u.n.l.n != nil {
		u.n.l.format(sb)
		sb.WriteString(" <= ")
	}
	fmt.Fprint(sb, u.n.v)
	if u.n.r.n != nil {
		sb.WriteString(" => ")
		u.n.r.format(sb)
	}
	sb.WriteByte(')')
}

// Pretty formats u over multiple lines, one value per line, indented by tab once
// per level. The right subtree is printed above its parent and the left one
// below, so the output reads as the tree turned on its side. Empty trees show
// as "@". Recursive.
func (u BinTree[T]) Pretty(tab string) string {
	var sb strings.Builder
	u.pretty(&sb, tab, 0)
	return sb.String()
}

func (u BinTree[T]) pretty(sb *strings.Builder, tab string, depth int) {
	if u.n == nil {
		sb.WriteString(strings.Repeat(tab, depth))
		sb.WriteString("@\n")
		return
	}
	u.n.r.pretty(sb, tab, depth+1)
	sb.WriteString(strings.Repeat(tab, depth))
	fmt.Fprintln(sb, u.n.v)
	u.n.l.pretty(sb, tab, depth+1)
}
