package TreeMap

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/tidwall/btree"
)

var rg = *rand.New(rand.NewSource(0))

func TestTreeMap_Basic(t *testing.T) {
	m := NewOrdered[int, string]()
	m.Put(67, "first value for 67")
	m.Put(31, "value for 31")
	if old, ok := m.Put(67, "second value for 67"); !ok || old != "first value for 67" {
		t.Errorf("put replaced %q, %v", old, ok)
	}
	var ks []int
	var vs []string
	for k, v := range m.All() {
		ks, vs = append(ks, k), append(vs, v)
	}
	if !slices.Equal(ks, []int{31, 67}) || !slices.Equal(vs, []string{"value for 31", "second value for 67"}) {
		t.Errorf("pairs are %v, %q", ks, vs)
	}
	for k, v := range m.AllMut() {
		if k < 50 {
			*v += " is less than 50"
		}
	}
	if s := m.String(); s != "map[31:value for 31 is less than 50 67:second value for 67]" {
		t.Errorf("map is %s", s)
	}
	if v, ok := m.Get(31); !ok || v != "value for 31 is less than 50" {
		t.Errorf("got %q, %v", v, ok)
	}
	if !m.HasKey(67) || m.HasKey(167) {
		t.Errorf("wrong keys")
	}
	if s := m.Tree().String(); s != "(({31 value for 31 is less than 50}) <= {67 second value for 67})" {
		t.Errorf("tree is %s", s)
	}
	if v, ok := m.Pop(31); !ok || v != "value for 31 is less than 50" {
		t.Errorf("popped %q, %v", v, ok)
	}
	if s := m.String(); s != "map[67:second value for 67]" {
		t.Errorf("map is %s", s)
	}
	var drained []string
	for k, v := range m.Drain() {
		drained = append(drained, v)
		if k != 67 {
			t.Errorf("drained key %d", k)
		}
	}
	if !slices.Equal(drained, []string{"second value for 67"}) || m.Size() != 0 || m.HasKey(67) {
		t.Errorf("drained %q", drained)
	}
}

type keyType int32
type valueType int64

func TestTreeMap_CustomTypes(t *testing.T) {
	m := New[keyType, valueType](func(a, b keyType) int { return int(a) - int(b) })
	puts := []struct {
		k keyType
		v valueType
		n uint
	}{
		{-20, 782, 1}, {3330, -1782, 2}, {33, -14, 3}, {33, 14, 3},
		{110, -1, 4}, {-40, 234, 5}, {12, 82, 6}, {130, -2, 7}, {-876, -182, 8},
	}
	for _, p := range puts {
		m.Put(p.k, p.v)
		if m.Size() != p.n {
			t.Errorf("size is %d, want %d", m.Size(), p.n)
		}
	}
	if s := m.Tree().String(); s != "(((({-876 -182}) <= {-40 234}) <= {-20 782} => ({12 82})) <= {33 14} => (({110 -1}) <= {130 -2} => ({3330 -1782})))" {
		t.Errorf("tree is %s", s)
	}
	if v, ok := m.Pop(12); !ok || v != 82 || m.Size() != 7 {
		t.Errorf("popped %d, %v", v, ok)
	}
	if s := m.Tree().String(); s != "((({-876 -182}) <= {-40 234} => ({-20 782})) <= {33 14} => (({110 -1}) <= {130 -2} => ({3330 -1782})))" {
		t.Errorf("tree is %s", s)
	}
	var ks []keyType
	for next := m.Keys(); ; {
		k, ok := next()
		if !ok {
			break
		}
		ks = append(ks, k)
	}
	if !slices.Equal(ks, []keyType{-876, -40, -20, 33, 110, 130, 3330}) {
		t.Errorf("keys are %v", ks)
	}
	var vs []valueType
	for next := m.Values(); ; {
		v, ok := next()
		if !ok {
			break
		}
		vs = append(vs, v)
	}
	if !slices.Equal(vs, []valueType{-182, 234, 782, 14, -1, -2, -1782}) {
		t.Errorf("values are %v", vs)
	}
	*m.GetMut(110) = -110
	if m.GetMut(111) != nil {
		t.Errorf("got a pointer for an absent key")
	}
	next := m.Pairs()
	for range 4 {
		next()
	}
	if k, v, ok := next(); !ok || k != 110 || v != -110 {
		t.Errorf("fifth pair is %d, %d, %v", k, v, ok)
	}
	if k, v := m.Take(); k != -876 || v != -182 {
		t.Errorf("took %d, %d", k, v)
	}
	if m.Corrupt() {
		t.Errorf("map is corrupt")
	}
	m.Clear()
	if m.Size() != 0 || m.HasKey(33) || m.Remove(33) {
		t.Errorf("map not empty after clear")
	}
	if k, v := m.Take(); k != 0 || v != 0 {
		t.Errorf("took %d, %d from an empty map", k, v)
	}
}

// compares with a tidwall/btree Map on a random workload.
func TestTreeMap_Random(t *testing.T) {
	m := NewOrdered[int, int]()
	var oracle btree.Map[int, int]
	for i := range 30000 {
		k, v := rg.Intn(3000), rg.Int()
		switch rg.Intn(4) {
		case 0, 1:
			wOld, wOk := oracle.Set(k, v)
			if old, ok := m.Put(k, v); ok != wOk || old != wOld {
				t.Fatalf("put of %d gave %d, %v, want %d, %v", k, old, ok, wOld, wOk)
			}
		case 2:
			wOld, wOk := oracle.Delete(k)
			if old, ok := m.Pop(k); ok != wOk || old != wOld {
				t.Fatalf("pop of %d gave %d, %v, want %d, %v", k, old, ok, wOld, wOk)
			}
		case 3:
			want, wOk := oracle.Get(k)
			if got, ok := m.Get(k); ok != wOk || got != want {
				t.Fatalf("get of %d gave %d, %v, want %d, %v", k, got, ok, want, wOk)
			}
		}
		if m.Size() != uint(oracle.Len()) {
			t.Fatalf("size is %d, want %d", m.Size(), oracle.Len())
		}
		if i%1000 == 0 {
			if m.Corrupt() {
				t.Fatalf("map is corrupt")
			}
			next := m.Pairs()
			oracle.Scan(func(wk, wv int) bool {
				k, v, ok := next()
				if !ok || k != wk || v != wv {
					t.Fatalf("pair %d, %d, %v, want %d, %d", k, v, ok, wk, wv)
				}
				return true
			})
			if _, _, ok := next(); ok {
				t.Fatalf("map has more pairs than the oracle")
			}
		}
	}
}

const benchmarkItemCount = 1024

func setupTreeMap(b *testing.B) *TreeMap[int, int] {
	b.Helper()
	m := NewOrdered[int, int]()
	for i := 0; i < benchmarkItemCount; i++ {
		m.Put(i, i)
	}
	return m
}

func setupHashMap(b *testing.B) *hashmap.Map[int, int] {
	b.Helper()
	m := hashmap.New[int, int]()
	for i := 0; i < benchmarkItemCount; i++ {
		m.Set(i, i)
	}
	return m
}

func setupHaxMap(b *testing.B) *haxmap.Map[int, int] {
	b.Helper()
	m := haxmap.New[int, int]()
	for i := 0; i < benchmarkItemCount; i++ {
		m.Set(i, i)
	}
	return m
}

// compares with https://github.com/cornelk/hashmap and https://github.com/alphadose/haxmap.
// The hash maps are unordered, so this only shows the cost of keeping the keys sorted.
func BenchmarkReadTreeMap(b *testing.B) {
	m := setupTreeMap(b)
	b.ResetTimer()
	for range b.N {
		for i := 0; i < benchmarkItemCount; i++ {
			if j, _ := m.Get(i); j != i {
				b.Fail()
			}
		}
	}
}

func BenchmarkReadHashMap(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()
	for range b.N {
		for i := 0; i < benchmarkItemCount; i++ {
			if j, _ := m.Get(i); j != i {
				b.Fail()
			}
		}
	}
}

func BenchmarkReadHaxMap(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()
	for range b.N {
		for i := 0; i < benchmarkItemCount; i++ {
			if j, _ := m.Get(i); j != i {
				b.Fail()
			}
		}
	}
}

func BenchmarkWriteTreeMap(b *testing.B) {
	for range b.N {
		m := NewOrdered[int, int]()
		for i := 0; i < benchmarkItemCount; i++ {
			m.Put(i, i)
		}
		for i := 0; i < benchmarkItemCount; i++ {
			m.Remove(i)
		}
	}
}

func BenchmarkWriteHashMap(b *testing.B) {
	for range b.N {
		m := hashmap.New[int, int]()
		for i := 0; i < benchmarkItemCount; i++ {
			m.Set(i, i)
		}
		for i := 0; i < benchmarkItemCount; i++ {
			m.Del(i)
		}
	}
}

func BenchmarkWriteHaxMap(b *testing.B) {
	for range b.N {
		m := haxmap.New[int, int]()
		for i := 0; i < benchmarkItemCount; i++ {
			m.Set(i, i)
		}
		for i := 0; i < benchmarkItemCount; i++ {
			m.Del(i)
		}
	}
}
