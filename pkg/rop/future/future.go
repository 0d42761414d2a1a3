// Package future provides Future, a pending computation that completes
// exactly once with either a value or a fault, and is awaited by any number
// of consumers.
//
// A fault is a panic captured from the computation. It is not an error
// value: Await raises it again with the original panic value so that a
// panic inside an asynchronous step reaches whoever waits for the step.
// There is no cancellation; Await blocks until the future completes.
package future

import (
	"errors"
	"sync/atomic"
)

// ErrNilFuture is the panic value of Await on a nil *Future.
var ErrNilFuture = errors.New("future: await on nil future")

// Future represents an asynchronous computation of a T.
// Create one with New, Resolved or Go. The first completion wins and later
// calls to Complete or Fault are silently ignored.
type Future[T any] struct {
	isCompleted uint32
	completed   chan struct{}

	value   T
	fault   any
	faulted bool
}

// New creates an uncompleted Future that must be completed by Complete or Fault.
func New[T any]() *Future[T] {
	return &Future[T]{
		completed: make(chan struct{}),
	}
}

// Resolved returns a Future already completed with value.
func Resolved[T any](value T) *Future[T] {
	f := New[T]()
	f.Complete(value)
	return f
}

// Go runs do on a new goroutine and completes the returned Future with its
// result. A panic in do faults the Future instead of crashing the program.
func Go[T any](do func() T) *Future[T] {
	f := New[T]()

	go func() {
		completed := false
		defer func() {
			if !completed {
				f.Fault(recover())
			}
		}()

		v := do()
		completed = true
		f.Complete(v)
	}()

	return f
}

// Complete completes this Future with value.
func (f *Future[T]) Complete(value T) {
	f.internalComplete(value, nil, false)
}

// Fault completes this Future with a captured panic value.
func (f *Future[T]) Fault(p any) {
	f.internalComplete(*new(T), p, true)
}

func (f *Future[T]) internalComplete(val T, fault any, faulted bool) {
	if atomic.CompareAndSwapUint32(&f.isCompleted, 0, 1) {
		f.value = val
		f.fault = fault
		f.faulted = faulted
		close(f.completed)
	}
}

// Done returns a channel closed once the Future completes.
func (f *Future[T]) Done() <-chan struct{} {
	return f.completed
}

func (f *Future[T]) IsCompleted() bool {
	select {
	case <-f.completed:
		return true
	default:
		return false
	}
}

// IsFaulted reports whether the Future completed with a fault. It does not block.
func (f *Future[T]) IsFaulted() bool {
	return f.IsCompleted() && f.faulted
}

// Await blocks until the Future completes and returns its value. A faulted
// Future panics with the captured value.
func (f *Future[T]) Await() T {
	if f == nil {
		panic(ErrNilFuture)
	}

	<-f.completed
	if f.faulted {
		panic(f.fault)
	}
	return f.value
}

// Outcome blocks like Await but reports a fault instead of raising it.
func (f *Future[T]) Outcome() (value T, fault any, faulted bool) {
	if f == nil {
		panic(ErrNilFuture)
	}

	<-f.completed
	return f.value, f.fault, f.faulted
}
