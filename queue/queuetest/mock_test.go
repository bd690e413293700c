package queuetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMock(t *testing.T) {
	var (
		assert = assert.New(t)
		ctx    = context.Background()
		m      = new(Mock[string])
	)

	m.OnPush("value", nil).Once()
	m.OnTryPush("value", true).Once()
	m.OnPop("value", nil).Once()
	m.OnPopCtx(ctx, "value", nil).Once()
	m.OnPopTimeout(time.Second, "", false).Once()
	m.OnTryPop("value", true).Once()
	m.OnPeek("value", true).Once()
	m.OnLen(1).Once()
	m.OnEmpty(false).Once()
	m.OnNotifyAll().Once()

	assert.NoError(m.Push("value"))
	assert.True(m.TryPush("value"))

	v, err := m.Pop()
	assert.NoError(err)
	assert.Equal("value", v)

	v, err = m.PopCtx(ctx)
	assert.NoError(err)
	assert.Equal("value", v)

	_, ok := m.PopTimeout(time.Second)
	assert.False(ok)

	v, ok = m.TryPop()
	assert.True(ok)
	assert.Equal("value", v)

	v, ok = m.Peek()
	assert.True(ok)
	assert.Equal("value", v)

	assert.Equal(1, m.Len())
	assert.False(m.Empty())
	m.NotifyAll()

	m.AssertExpectations(t)
}
