// Package future provides a minimal promise/future pair for handing
// results across goroutine boundaries, used by asynchronous sinks to
// acknowledge flush requests.
package future

// Result carries a value along with an error, for places where a single
// type has to represent a fallible outcome, for instance in channels.
type Result[T any] struct {
	Value T
	Error error
}

func Ok[T any](value T) Result[T] {
	return Result[T]{Value: value}
}

func Err[T any](err error) Result[T] {
	return Result[T]{Error: err}
}

// Get returns the value and error contained in the Result.
func (r Result[T]) Get() (T, error) {
	return r.Value, r.Error
}

// Promise is the producer side of a future. It must be fulfilled exactly
// once.
type Promise[T any] struct {
	ch chan<- T
}

// Fulfill resolves the promise with the given value, unblocking any
// waiter on the associated future.
func (p Promise[T]) Fulfill(value T) {
	p.ch <- value
}

// Future is the consumer side of a promise. It may be awaited any number
// of times; the resolved value is cached.
type Future[T any] struct {
	state *state[T]
}

type state[T any] struct {
	ch    <-chan T
	value T
	done  bool
}

// Create returns a connected promise/future pair.
func Create[T any]() (Promise[T], Future[T]) {
	ch := make(chan T, 1)
	return Promise[T]{ch: ch}, Future[T]{state: &state[T]{ch: ch}}
}

// Immediate returns an already-resolved future.
func Immediate[T any](value T) Future[T] {
	return Future[T]{state: &state[T]{value: value, done: true}}
}

// Await blocks until the promise is fulfilled and returns its value.
func (f Future[T]) Await() T {
	s := f.state
	if !s.done {
		s.value = <-s.ch
		s.done = true
	}
	return s.value
}
