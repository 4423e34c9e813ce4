package Queues

// circArrQ is a growable circular array. head is the index of the first item,
// tail is the index one past the last item; both wrap around len(content).
type circArrQ[T any] struct {
	sz, head, tail uint
	content        []T
}

func MakeArrayQueue[T any](initCap uint) ArrayQueue[T] {
	return makeCircArrQ[T](initCap)
}

// MakeDeque returns an empty Deque able to hold initCap items before growing.
func MakeDeque[T any](initCap uint) Deque[T] {
	return makeCircArrQ[T](initCap)
}

func makeCircArrQ[T any](initCap uint) *circArrQ[T] {
	return &circArrQ[T]{0, 0, 0, make([]T, initCap|1)}
}

func (this circArrQ[T]) Empty() bool {
	return this.sz == 0
}

// resize moves the content into a new array of newLen>=sz, starting at index 0.
func (this *circArrQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if this.sz > 0 {
		if this.head < this.tail {
			copy(nc, this.content[this.head:this.tail])
		} else {
			n := copy(nc, this.content[this.head:])
			copy(nc[n:], this.content[:this.tail])
		}
	}
	this.content = nc
	this.head, this.tail = 0, this.sz%newLen
}

func (this *circArrQ[T]) grow() {
	if this.sz == uint(len(this.content)) {
		this.resize(this.sz + this.sz>>1 + 1)
	}
}

func (this *circArrQ[T]) Shrink() {
	this.resize(this.sz | 1)
}

func (this *circArrQ[T]) Clear() {
	clear(this.content)
	this.tail, this.head, this.sz = 0, 0, 0
}

func (this circArrQ[T]) Size() uint {
	return this.sz
}

// Push item to the tail.
func (this *circArrQ[T]) Push(item T) {
	this.grow()
	this.content[this.tail] = item
	this.tail = (this.tail + 1) % uint(len(this.content))
	this.sz++
}

// PushFront pushes item before the head.
func (this *circArrQ[T]) PushFront(item T) {
	this.grow()
	l := uint(len(this.content))
	this.head = (this.head + l - 1) % l
	this.content[this.head] = item
	this.sz++
}

// Pop the item at the head.
func (this *circArrQ[T]) Pop() (item T, e error) {
	if this.Empty() {
		return *new(T), &EmptyQueueError{}
	} else {
		t := this.content[this.head]
		this.content[this.head] = *new(T)
		this.head = (this.head + 1) % uint(len(this.content))
		this.sz--
		return t, nil
	}
}

// PopBack pops the item at the tail.
func (this *circArrQ[T]) PopBack() (item T, e error) {
	if this.Empty() {
		return *new(T), &EmptyQueueError{}
	} else {
		l := uint(len(this.content))
		this.tail = (this.tail + l - 1) % l
		t := this.content[this.tail]
		this.content[this.tail] = *new(T)
		this.sz--
		return t, nil
	}
}

func (this circArrQ[T]) Peek() (item T) {
	if this.Empty() {
		return *new(T)
	} else {
		return this.content[this.head]
	}
}

func (this circArrQ[T]) PeekBack() (item T) {
	if this.Empty() {
		return *new(T)
	} else {
		l := uint(len(this.content))
		return this.content[(this.tail+l-1)%l]
	}
}
