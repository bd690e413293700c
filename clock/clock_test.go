package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystemNow(t *testing.T) {
	var (
		assert = assert.New(t)
		before = time.Now()
		actual = System().Now()
	)

	assert.False(actual.Before(before))
}

func TestSystemNewTimer(t *testing.T) {
	var (
		assert = assert.New(t)
		timer  = System().NewTimer(time.Millisecond)
	)

	defer timer.Stop()

	select {
	case <-timer.C():
		// passing
	case <-time.After(time.Second):
		assert.FailNow("the timer did not fire")
	}
}

func TestWrapTimer(t *testing.T) {
	var (
		assert = assert.New(t)
		timer  = WrapTimer(time.NewTimer(time.Millisecond))
	)

	defer timer.Stop()

	select {
	case <-timer.C():
		// passing
	case <-time.After(time.Second):
		assert.FailNow("the wrapped timer did not fire")
	}
}
