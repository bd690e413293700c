// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package counter

import "sync/atomic"

// Counter is a goroutine-safe, monotonically incrementable tally.  The zero
// value is ready for use.  Instances are intended to be passed explicitly to
// the goroutines that share them, rather than held as package-level state.
type Counter struct {
	value atomic.Int64
}

// Increment atomically adds one to the tally.
func (c *Counter) Increment() {
	c.value.Add(1)
}

// Add atomically applies an arbitrary delta to the tally.
func (c *Counter) Add(delta int64) {
	c.value.Add(delta)
}

// Get atomically reads the current tally.
func (c *Counter) Get() int64 {
	return c.value.Load()
}

// Reset atomically sets the tally back to zero.
func (c *Counter) Reset() {
	c.value.Store(0)
}
