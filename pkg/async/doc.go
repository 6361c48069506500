// Package async provides small generic helpers for running computations
// concurrently and joining on their completion.
//
// Async starts a function in its own goroutine and returns a *Future. The
// caller waits with Await, bounds the wait with AwaitWithTimeout, or selects
// on Done.
//
// Settle implements an all-settled join: it waits for every future and then
// reports the earliest failure by completion time. The validator package uses
// it for asynchronous validation rounds, where a rejection decides the
// message but the round only counts as finished once every validator has
// answered.
//
//	a := async.Async(ctx, "x", slowOK)
//	b := async.Async(ctx, "x", fastFail)
//	_, err := async.Settle(a, b) // err from fastFail, returned after slowOK finished
//
// If the context is already cancelled when the goroutine starts, the future
// completes immediately with ctx.Err().
package async
