// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package queue

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/xmidt-org/blockq/clock"
)

// ErrClosed is returned when a closeable queue has been closed
var ErrClosed = errors.New("the queue has been closed")

// Closeable represents a queue that can be closed.  Once closed, a queue cannot be reopened.
//
// Close rejects new pushes but does not discard queued items: consumers may
// drain whatever was queued before the close.  Goroutines blocked in Pop or
// PopCtx receive ErrClosed once the queue is both closed and empty, and
// goroutines blocked in a full bounded Push receive ErrClosed immediately.
//
// Both Close() and a second Close() are cheap; the second and subsequent calls
// return ErrClosed without modifying the instance.
type Closeable[T any] interface {
	io.Closer
	Interface[T]

	// Closed returns a channel that is closed when this queue has been closed.
	// This channel has similar use cases to context.Done().
	Closed() <-chan struct{}
}

// NewCloseable constructs an empty queue which honors close-once semantics.
// It accepts the same options as New.
//
// A Closeable queue answers the shutdown problem that NotifyAll alone cannot:
// a blocked Pop on a plain queue can only be released by an item.  Closing
// signals every waiting consumer that no more items will arrive, while still
// letting already-queued items be delivered exactly once.
func NewCloseable[T any](o ...Option) Closeable[T] {
	c := newConfig(o)
	cq := &closeable[T]{
		capacity: c.capacity,
		clock:    c.clock,
		closed:   make(chan struct{}),
	}

	cq.notEmpty = sync.NewCond(&cq.lock)
	cq.notFull = sync.NewCond(&cq.lock)
	return cq
}

type closeable[T any] struct {
	lock     sync.Mutex
	notEmpty *sync.Cond
	notFull  *sync.Cond

	items    []T
	capacity int
	clock    clock.Interface

	isClosed bool
	closed   chan struct{}
}

func (cq *closeable[T]) Close() error {
	cq.lock.Lock()
	if cq.isClosed {
		cq.lock.Unlock()
		return ErrClosed
	}

	cq.isClosed = true
	close(cq.closed)

	// every waiter rechecks its predicate, sees the closed flag, and unblocks
	cq.notEmpty.Broadcast()
	cq.notFull.Broadcast()
	cq.lock.Unlock()
	return nil
}

func (cq *closeable[T]) Closed() <-chan struct{} {
	return cq.closed
}

func (cq *closeable[T]) dequeue() T {
	var zero T
	v := cq.items[0]
	cq.items[0] = zero
	cq.items = cq.items[1:]

	if cq.capacity > 0 {
		cq.notFull.Signal()
	}

	return v
}

func (cq *closeable[T]) full() bool {
	return cq.capacity > 0 && len(cq.items) >= cq.capacity
}

func (cq *closeable[T]) Push(v T) error {
	cq.lock.Lock()
	for !cq.isClosed && cq.full() {
		cq.notFull.Wait()
	}

	if cq.isClosed {
		cq.lock.Unlock()
		return ErrClosed
	}

	cq.items = append(cq.items, v)
	cq.lock.Unlock()

	cq.notEmpty.Signal()
	return nil
}

func (cq *closeable[T]) TryPush(v T) bool {
	cq.lock.Lock()
	if cq.isClosed || cq.full() {
		cq.lock.Unlock()
		return false
	}

	cq.items = append(cq.items, v)
	cq.lock.Unlock()

	cq.notEmpty.Signal()
	return true
}

func (cq *closeable[T]) Pop() (T, error) {
	cq.lock.Lock()
	for len(cq.items) == 0 && !cq.isClosed {
		cq.notEmpty.Wait()
	}

	if len(cq.items) == 0 {
		cq.lock.Unlock()

		var zero T
		return zero, ErrClosed
	}

	v := cq.dequeue()
	cq.lock.Unlock()
	return v, nil
}

func (cq *closeable[T]) PopCtx(ctx context.Context) (T, error) {
	stop := context.AfterFunc(ctx, func() {
		cq.lock.Lock()
		cq.notEmpty.Broadcast()
		cq.lock.Unlock()
	})
	defer stop()

	cq.lock.Lock()
	for len(cq.items) == 0 && !cq.isClosed {
		if err := ctx.Err(); err != nil {
			cq.lock.Unlock()

			var zero T
			return zero, err
		}

		cq.notEmpty.Wait()
	}

	if len(cq.items) == 0 {
		cq.lock.Unlock()

		var zero T
		return zero, ErrClosed
	}

	v := cq.dequeue()
	cq.lock.Unlock()
	return v, nil
}

func (cq *closeable[T]) PopTimeout(d time.Duration) (T, bool) {
	if d <= 0 {
		return cq.TryPop()
	}

	var (
		timer   = cq.clock.NewTimer(d)
		done    = make(chan struct{})
		expired bool
	)

	defer close(done)
	defer timer.Stop()

	go func() {
		select {
		case <-timer.C():
			cq.lock.Lock()
			expired = true
			cq.lock.Unlock()
			cq.notEmpty.Broadcast()

		case <-done:
		}
	}()

	cq.lock.Lock()
	for len(cq.items) == 0 && !cq.isClosed && !expired {
		cq.notEmpty.Wait()
	}

	var (
		v  T
		ok bool
	)

	if len(cq.items) > 0 {
		v, ok = cq.dequeue(), true
	}

	cq.lock.Unlock()
	return v, ok
}

func (cq *closeable[T]) TryPop() (T, bool) {
	var (
		v  T
		ok bool
	)

	cq.lock.Lock()
	if len(cq.items) > 0 {
		v, ok = cq.dequeue(), true
	}

	cq.lock.Unlock()
	return v, ok
}

func (cq *closeable[T]) Peek() (T, bool) {
	var (
		v  T
		ok bool
	)

	cq.lock.Lock()
	if len(cq.items) > 0 {
		v, ok = cq.items[0], true
	}

	cq.lock.Unlock()
	return v, ok
}

func (cq *closeable[T]) Len() int {
	cq.lock.Lock()
	n := len(cq.items)
	cq.lock.Unlock()
	return n
}

func (cq *closeable[T]) Empty() bool {
	return cq.Len() == 0
}

func (cq *closeable[T]) NotifyAll() {
	cq.lock.Lock()
	cq.notEmpty.Broadcast()
	cq.notFull.Broadcast()
	cq.lock.Unlock()
}
