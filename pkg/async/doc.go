// Package async runs a function in the background and hands back a Future
// for its result.
//
//	fut := async.Async(ctx, data, submit)
//	receipt, err := fut.AwaitContext(ctx)
//
// Await blocks until the result is ready. AwaitContext stops waiting early
// but leaves the computation running; the function is responsible for
// honouring its own context. A context that is already done when the
// goroutine starts skips the function and completes the Future with the
// context error.
package async
