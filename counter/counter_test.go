package counter

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounterIncrement(t *testing.T) {
	const (
		routineCount         = 10
		incrementsPerRoutine = 100
	)

	var (
		assert = assert.New(t)
		c      = new(Counter)
		wg     = new(sync.WaitGroup)
	)

	wg.Add(routineCount)
	for i := 0; i < routineCount; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < incrementsPerRoutine; j++ {
				c.Increment()
			}
		}()
	}

	wg.Wait()
	assert.Equal(int64(routineCount*incrementsPerRoutine), c.Get())
}

func TestCounterAdd(t *testing.T) {
	var (
		assert = assert.New(t)
		c      = new(Counter)
	)

	c.Add(10)
	c.Add(-3)
	assert.Equal(int64(7), c.Get())
}

func TestCounterReset(t *testing.T) {
	var (
		assert = assert.New(t)
		c      = new(Counter)
	)

	c.Increment()
	c.Increment()
	assert.Equal(int64(2), c.Get())

	c.Reset()
	assert.Zero(c.Get())

	c.Increment()
	assert.Equal(int64(1), c.Get())
}
