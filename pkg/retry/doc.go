// Package retry provides exponential backoff retry logic for transient failures.
//
// # Overview
//
// The package retries an operation until it succeeds, the attempt budget is
// spent, the error is marked permanent, or the context ends. Delays grow by
// a configurable multiplier up to a ceiling, with optional jitter.
//
// # Core Functions
//
//   - Do: run a function with retry and exponential backoff
//   - DoWithResult: same schedule, returns the function's result
//   - Permanent / IsPermanent: mark and detect errors not worth retrying
//
// # Configuration Presets
//
//   - DefaultConfig(): 3 attempts, 100ms-5s delay (normal operations)
//   - Quick(): 10 attempts, 50ms-1s delay (startup paths)
//   - Persistent(): 30 attempts, 200ms-10s delay (critical resources)
//
// # Usage
//
// Waiting out a broker that is still starting:
//
//	conn, err := retry.DoWithResult(ctx, retry.Quick(), func() (*nats.Conn, error) {
//	    return nats.Connect(url)
//	})
//
// Failing fast on input that can never succeed:
//
//	err := retry.Do(ctx, retry.DefaultConfig(), func() error {
//	    if badRequest {
//	        return retry.Permanent(errInvalid)
//	    }
//	    return doCall()
//	})
//
// # Context Cancellation
//
// Cancellation is honored between attempts and during backoff sleeps; the
// returned error wraps ctx.Err() in that case.
//
// # Thread Safety
//
// All functions are safe for concurrent use.
package retry
