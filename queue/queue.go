// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package queue

import (
	"context"
	"sync"
	"time"

	"github.com/xmidt-org/blockq/clock"
)

// Interface represents a FIFO queue safely shareable by concurrent producers
// and consumers.  Pop, PopCtx, and (until its deadline) PopTimeout are the only
// operations that block consumers; Push blocks producers only when the queue
// was created with a capacity.
type Interface[T any] interface {
	// Push appends a value to the back of the queue.  For an unbounded queue
	// this never blocks and never returns an error.  For a bounded queue this
	// blocks while the queue is full.  Closeable queues return ErrClosed once
	// closed.
	Push(T) error

	// TryPush appends a value without ever blocking.  It returns false when a
	// bounded queue is full, or when a closeable queue has been closed.
	TryPush(T) bool

	// Pop removes and returns the front value, blocking until one is
	// available.  A queue with no producers blocks forever: this is a
	// deliberate contract, and callers needing bounded waiting must use
	// PopTimeout or PopCtx.  Closeable queues return ErrClosed once closed
	// and drained.
	Pop() (T, error)

	// PopCtx removes and returns the front value, blocking until one is
	// available or ctx is done.  On cancellation the zero value and ctx.Err()
	// are returned.
	PopCtx(context.Context) (T, error)

	// PopTimeout removes and returns the front value, waiting at most the
	// given duration.  A false result means no item arrived before the
	// deadline; that is a normal outcome, not an error, and is deliberately
	// indistinguishable from racing another consumer and finding nothing.
	// A nonpositive duration behaves exactly as TryPop.
	PopTimeout(time.Duration) (T, bool)

	// TryPop removes and returns the front value without blocking.  It
	// returns false immediately when the queue is empty.
	TryPop() (T, bool)

	// Peek returns the front value without removing it, or false when the
	// queue is empty.
	Peek() (T, bool)

	// Len returns a snapshot of the number of queued items.  The value may be
	// stale the instant the internal lock is released; it is diagnostic, not
	// a synchronization primitive.
	Len() int

	// Empty is equivalent to Len() == 0, with the same staleness caveat.
	Empty() bool

	// NotifyAll wakes every goroutine blocked in Pop, PopCtx, PopTimeout, or
	// a bounded Push, without requiring an item or free slot.  Woken waiters
	// recheck their predicate under the lock and resume waiting if it still
	// does not hold.  This exists so that an external shutdown protocol can
	// unblock idle consumers; the queue itself carries no shutdown state.
	NotifyAll()
}

// Option represents a configurable option for queues created by New or NewCloseable.
type Option func(*config)

// WithCapacity bounds the queue at the given number of items, making Push
// block while the queue is full.  A nonpositive capacity will result in a
// panic.  Queues are unbounded unless this option is supplied.
func WithCapacity(capacity int) Option {
	if capacity < 1 {
		panic("The capacity must be positive")
	}

	return func(c *config) {
		c.capacity = capacity
	}
}

// WithClock establishes the time source used for PopTimeout deadlines.
// If a nil clock is supplied, the system clock is used.
func WithClock(cl clock.Interface) Option {
	return func(c *config) {
		if cl != nil {
			c.clock = cl
		} else {
			c.clock = clock.System()
		}
	}
}

type config struct {
	capacity int
	clock    clock.Interface
}

func newConfig(o []Option) config {
	c := config{
		clock: clock.System(),
	}

	for _, f := range o {
		f(&c)
	}

	return c
}

// New constructs an empty queue.  With no options the queue is unbounded and
// uses the system clock for timed pops.
func New[T any](o ...Option) Interface[T] {
	c := newConfig(o)
	q := &queue[T]{
		capacity: c.capacity,
		clock:    c.clock,
	}

	q.notEmpty = sync.NewCond(&q.lock)
	q.notFull = sync.NewCond(&q.lock)
	return q
}

// queue is the internal Interface implementation.  The items slice and the
// wait predicates are touched only while lock is held; the critical section
// is always an O(1) mutation plus a predicate check, never user code.
type queue[T any] struct {
	lock     sync.Mutex
	notEmpty *sync.Cond
	notFull  *sync.Cond

	items    []T
	capacity int
	clock    clock.Interface
}

// dequeue removes the front item.  The vacated slot is zeroed so that the
// queue retains no reference once ownership transfers to the caller.
// The caller must hold q.lock, and len(q.items) must be positive.
func (q *queue[T]) dequeue() T {
	var zero T
	v := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]

	if q.capacity > 0 {
		q.notFull.Signal()
	}

	return v
}

func (q *queue[T]) full() bool {
	return q.capacity > 0 && len(q.items) >= q.capacity
}

func (q *queue[T]) Push(v T) error {
	q.lock.Lock()
	for q.full() {
		q.notFull.Wait()
	}

	q.items = append(q.items, v)
	q.lock.Unlock()

	q.notEmpty.Signal()
	return nil
}

func (q *queue[T]) TryPush(v T) bool {
	q.lock.Lock()
	if q.full() {
		q.lock.Unlock()
		return false
	}

	q.items = append(q.items, v)
	q.lock.Unlock()

	q.notEmpty.Signal()
	return true
}

func (q *queue[T]) Pop() (T, error) {
	q.lock.Lock()
	for len(q.items) == 0 {
		q.notEmpty.Wait()
	}

	v := q.dequeue()
	q.lock.Unlock()
	return v, nil
}

func (q *queue[T]) PopCtx(ctx context.Context) (T, error) {
	// the callback contends on q.lock, which guarantees the broadcast cannot
	// slip between this waiter's predicate check and its wait
	stop := context.AfterFunc(ctx, func() {
		q.lock.Lock()
		q.notEmpty.Broadcast()
		q.lock.Unlock()
	})
	defer stop()

	q.lock.Lock()
	for len(q.items) == 0 {
		if err := ctx.Err(); err != nil {
			q.lock.Unlock()

			var zero T
			return zero, err
		}

		q.notEmpty.Wait()
	}

	v := q.dequeue()
	q.lock.Unlock()
	return v, nil
}

func (q *queue[T]) PopTimeout(d time.Duration) (T, bool) {
	if d <= 0 {
		return q.TryPop()
	}

	var (
		timer   = q.clock.NewTimer(d)
		done    = make(chan struct{})
		expired bool
	)

	defer close(done)
	defer timer.Stop()

	go func() {
		select {
		case <-timer.C():
			q.lock.Lock()
			expired = true
			q.lock.Unlock()
			q.notEmpty.Broadcast()

		case <-done:
		}
	}()

	q.lock.Lock()
	for len(q.items) == 0 && !expired {
		q.notEmpty.Wait()
	}

	var (
		v  T
		ok bool
	)

	if len(q.items) > 0 {
		v, ok = q.dequeue(), true
	}

	q.lock.Unlock()
	return v, ok
}

func (q *queue[T]) TryPop() (T, bool) {
	var (
		v  T
		ok bool
	)

	q.lock.Lock()
	if len(q.items) > 0 {
		v, ok = q.dequeue(), true
	}

	q.lock.Unlock()
	return v, ok
}

func (q *queue[T]) Peek() (T, bool) {
	var (
		v  T
		ok bool
	)

	q.lock.Lock()
	if len(q.items) > 0 {
		v, ok = q.items[0], true
	}

	q.lock.Unlock()
	return v, ok
}

func (q *queue[T]) Len() int {
	q.lock.Lock()
	n := len(q.items)
	q.lock.Unlock()
	return n
}

func (q *queue[T]) Empty() bool {
	return q.Len() == 0
}

func (q *queue[T]) NotifyAll() {
	q.lock.Lock()
	q.notEmpty.Broadcast()
	q.notFull.Broadcast()
	q.lock.Unlock()
}
