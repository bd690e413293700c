package queue

import (
	"context"
	"time"

	"github.com/go-kit/kit/metrics/discard"
	"github.com/xmidt-org/blockq/xmetrics"
)

// InstrumentOption represents a configurable option for instrumenting a queue
type InstrumentOption[T any] func(*instrumentedQueue[T])

// WithDepth establishes a metric that tracks the number of items currently
// queued.  If a nil adder is supplied, depth updates are discarded.
func WithDepth[T any](a xmetrics.Adder) InstrumentOption[T] {
	return func(iq *instrumentedQueue[T]) {
		if a != nil {
			iq.depth = a
		} else {
			iq.depth = discard.NewCounter()
		}
	}
}

// WithFailures establishes a metric that counts operations which produced no
// item: try-pops against an empty queue, timed pops that hit their deadline,
// canceled or closed blocking pops, and rejected pushes.  If a nil adder is
// supplied, failure counts are discarded.
func WithFailures[T any](a xmetrics.Adder) InstrumentOption[T] {
	return func(iq *instrumentedQueue[T]) {
		if a != nil {
			iq.failures = a
		} else {
			iq.failures = discard.NewCounter()
		}
	}
}

// Instrument decorates an existing queue with a set of options.
func Instrument[T any](q Interface[T], o ...InstrumentOption[T]) Interface[T] {
	if q == nil {
		panic("A queue is required to instrument")
	}

	iq := &instrumentedQueue[T]{
		Interface: q,
		depth:     discard.NewCounter(),
		failures:  discard.NewCounter(),
	}

	for _, f := range o {
		f(iq)
	}

	return iq
}

type instrumentedQueue[T any] struct {
	Interface[T]
	depth    xmetrics.Adder
	failures xmetrics.Adder
}

func (iq *instrumentedQueue[T]) Push(v T) (err error) {
	err = iq.Interface.Push(v)
	if err != nil {
		iq.failures.Add(1.0)
	} else {
		iq.depth.Add(1.0)
	}

	return
}

func (iq *instrumentedQueue[T]) TryPush(v T) (ok bool) {
	ok = iq.Interface.TryPush(v)
	if ok {
		iq.depth.Add(1.0)
	} else {
		iq.failures.Add(1.0)
	}

	return
}

func (iq *instrumentedQueue[T]) Pop() (v T, err error) {
	v, err = iq.Interface.Pop()
	if err != nil {
		iq.failures.Add(1.0)
	} else {
		iq.depth.Add(-1.0)
	}

	return
}

func (iq *instrumentedQueue[T]) PopCtx(ctx context.Context) (v T, err error) {
	v, err = iq.Interface.PopCtx(ctx)
	if err != nil {
		iq.failures.Add(1.0)
	} else {
		iq.depth.Add(-1.0)
	}

	return
}

func (iq *instrumentedQueue[T]) PopTimeout(d time.Duration) (v T, ok bool) {
	v, ok = iq.Interface.PopTimeout(d)
	if ok {
		iq.depth.Add(-1.0)
	} else {
		iq.failures.Add(1.0)
	}

	return
}

func (iq *instrumentedQueue[T]) TryPop() (v T, ok bool) {
	v, ok = iq.Interface.TryPop()
	if ok {
		iq.depth.Add(-1.0)
	} else {
		iq.failures.Add(1.0)
	}

	return
}
