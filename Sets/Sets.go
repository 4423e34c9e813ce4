package Sets

// Set is a collection of unique elements.
type Set[E any] interface {
	//Put e into the set. Returns true if e wasn't in the set.
	Put(E) bool
	Has(E) bool
	//Remove e from the set. Returns true if e was in the set.
	Remove(E) bool
	Size() uint
	//Take returns some element of the set without removing it. The zero value
	//is returned if the set is empty.
	Take() E
	//Range calls f on every element until f returns false.
	Range(func(E) bool)
}

// ExtendedSet holds the operations between sets. The methods modifying the
// receiver return the number of elements added or removed.
type ExtendedSet[E any] interface {
	PutAll(Set[E]) uint
	RemoveAll(Set[E]) uint
	Eq(Set[E]) bool
	Union(Set[E])
	Intersect(Set[E])
	Filter(func(E) bool) ExtendedSet[E]
}
