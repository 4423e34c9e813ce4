package Queues

type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() T
	Empty() bool
}

type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	Size() uint
	resize(newLen uint)
}

// Deque is an ArrayQueue that can also be used from its tail, which makes it
// usable both as a FIFO queue (Push, Pop) and as a LIFO stack (Push, PopBack).
type Deque[T any] interface {
	ArrayQueue[T]
	PushFront(item T)
	PopBack() (T, error)
	PeekBack() T
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
