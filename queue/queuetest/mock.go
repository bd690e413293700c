package queuetest

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/xmidt-org/blockq/queue"
)

// Mock is a stretchr mock for a queue.  In addition to implementing queue.Interface and supplying
// mock behavior, other methods that make mocking a bit easier are supplied.
type Mock[T any] struct {
	mock.Mock
}

var _ queue.Interface[int] = (*Mock[int])(nil)

func (m *Mock[T]) Push(v T) error {
	return m.Called(v).Error(0)
}

func (m *Mock[T]) OnPush(v T, err error) *mock.Call {
	return m.On("Push", v).Return(err)
}

func (m *Mock[T]) TryPush(v T) bool {
	return m.Called(v).Bool(0)
}

func (m *Mock[T]) OnTryPush(v T, ok bool) *mock.Call {
	return m.On("TryPush", v).Return(ok)
}

func (m *Mock[T]) Pop() (T, error) {
	arguments := m.Called()
	return arguments.Get(0).(T), arguments.Error(1)
}

func (m *Mock[T]) OnPop(v T, err error) *mock.Call {
	return m.On("Pop").Return(v, err)
}

func (m *Mock[T]) PopCtx(ctx context.Context) (T, error) {
	arguments := m.Called(ctx)
	return arguments.Get(0).(T), arguments.Error(1)
}

func (m *Mock[T]) OnPopCtx(ctx context.Context, v T, err error) *mock.Call {
	return m.On("PopCtx", ctx).Return(v, err)
}

func (m *Mock[T]) PopTimeout(d time.Duration) (T, bool) {
	arguments := m.Called(d)
	return arguments.Get(0).(T), arguments.Bool(1)
}

func (m *Mock[T]) OnPopTimeout(d time.Duration, v T, ok bool) *mock.Call {
	return m.On("PopTimeout", d).Return(v, ok)
}

func (m *Mock[T]) TryPop() (T, bool) {
	arguments := m.Called()
	return arguments.Get(0).(T), arguments.Bool(1)
}

func (m *Mock[T]) OnTryPop(v T, ok bool) *mock.Call {
	return m.On("TryPop").Return(v, ok)
}

func (m *Mock[T]) Peek() (T, bool) {
	arguments := m.Called()
	return arguments.Get(0).(T), arguments.Bool(1)
}

func (m *Mock[T]) OnPeek(v T, ok bool) *mock.Call {
	return m.On("Peek").Return(v, ok)
}

func (m *Mock[T]) Len() int {
	return m.Called().Int(0)
}

func (m *Mock[T]) OnLen(n int) *mock.Call {
	return m.On("Len").Return(n)
}

func (m *Mock[T]) Empty() bool {
	return m.Called().Bool(0)
}

func (m *Mock[T]) OnEmpty(v bool) *mock.Call {
	return m.On("Empty").Return(v)
}

func (m *Mock[T]) NotifyAll() {
	m.Called()
}

func (m *Mock[T]) OnNotifyAll() *mock.Call {
	return m.On("NotifyAll")
}
