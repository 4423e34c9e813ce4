package Maps

// Map from keys of K to values of V.
// Methods returning a bool as the last value use it to tell whether the other
// values are defined.
type Map[K, V any] interface {
	//Put v under k. Returns the value it replaced, if any.
	Put(K, V) (V, bool)
	HasKey(K) bool
	Get(K) (V, bool)
	//Remove k and its value. Returns true if k was in the map.
	Remove(K) bool
	//Take returns some pair in the map without removing it.
	Take() (K, V)
	//Keys, Values and Pairs return closures acting like iterators, see [Trees.Tree.InOrder].
	Keys() func() (K, bool)
	Values() func() (V, bool)
	Pairs() func() (K, V, bool)
	Size() uint
	Clear()
}
