// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package counter provides a trivially small atomic tally, used by producer and
consumer goroutines to account for work items without any additional locking.

A Counter imposes no ordering with respect to other shared state.  In
particular, incrementing a counter and then pushing onto a queue is not an
atomic pair unless both happen under the queue's own synchronization.
*/
package counter
