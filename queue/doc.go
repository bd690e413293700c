// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package queue provides a goroutine-safe, strictly FIFO blocking queue shared by
any number of producers and consumers.  Retrieval comes in blocking,
context-aware, timed, and non-blocking flavors.

A queue created by New has no notion of shutdown: a blocked Pop returns only
when an item arrives.  NotifyAll wakes every waiter so that an external
shutdown protocol can layer its own flag on top, but woken waiters that find
the queue still empty simply resume waiting.  When built-in shutdown semantics
are wanted, use NewCloseable instead.
*/
package queue
