// Package errors provides standardized error handling patterns for ringkit.
//
// # Overview
//
// The errors package implements a three-class error classification system for
// bounded-container workloads: Transient (the buffer state will clear, try
// again), Invalid (bad input or misuse, do not retry), and Fatal
// (unrecoverable, stop processing).
//
// Classification lets callers make shedding and backoff decisions without
// hardcoded error string matching, and integrates with Go's standard error
// handling patterns, supporting errors.Is(), errors.As(), and error wrapping
// chains.
//
// # Error Classification
//
//   - Transient: ErrFull and ErrEmpty. A full buffer drains, an empty buffer
//     refills; the same call may succeed a moment later. Context timeouts and
//     cancellations also classify transient.
//   - Invalid: ErrNilBuffer, ErrInvalidArgument, ErrInvalidLength. The call
//     was malformed and will never succeed as issued.
//   - Fatal: construction-time failures such as metric registration conflicts
//     that leave a component unusable.
//
// # Quick Start
//
// Return standard error variables for known conditions:
//
//	if buf.IsFull() {
//	    return errors.ErrFull
//	}
//
// Wrap errors with component context for debugging:
//
//	if err := buf.TryPush(item); err != nil {
//	    return errors.Wrap(err, "Collector", "enqueue", "push sample")
//	}
//
// Check classification to decide between shedding and surfacing:
//
//	if err := buf.TryPush(item); err != nil {
//	    if errors.IsTransient(err) {
//	        metrics.shed.Inc() // full right now, drop and move on
//	        return nil
//	    }
//	    return err // invalid usage, surface it
//	}
//
// # Error Wrapping Pattern
//
// All error wrapping follows the standardized format:
//
//	"component.method: action failed: %w"
//
// Three wrapper functions provide classification-aware wrapping:
//
//	errors.WrapTransient(err, "Component", "Method", "action")
//	errors.WrapInvalid(err, "Component", "Method", "action")
//	errors.WrapFatal(err, "Component", "Method", "action")
//
// The generic Wrap() function adds context without asserting a class, so the
// original error's classification is preserved through the chain.
//
// # Standard Error Variables
//
// The package defines the full error surface of the kit:
//
//   - Handle: ErrNilBuffer (operation invoked on a nil container)
//   - Occupancy: ErrEmpty, ErrFull
//   - Input: ErrInvalidArgument (zero-length destination, non-positive
//     capacity or width)
//
// ErrInvalidLength is declared but returned by no current operation. It
// reserves the error-surface slot for bulk-insert extensions where a
// caller-declared element length could disagree with the actual input, so
// adding such an operation later will not change the taxonomy.
//
// # Integration with errors.As/Is
//
// All error types support standard library error inspection:
//
//	var ce *errors.ClassifiedError
//	if errors.As(err, &ce) {
//	    log.Printf("Component: %s, Class: %s", ce.Component, ce.Class)
//	}
//
//	if errors.Is(err, errors.ErrFull) {
//	    // Handle full buffer specifically
//	}
//
// Classification is preserved through error chains:
//
//	wrapped := errors.Wrap(errors.ErrFull, "Collector", "enqueue", "push")
//	errors.IsTransient(wrapped) // true
//
// # Thread Safety
//
// All classification and wrapping operations are thread-safe. Error variables
// are immutable and safe for concurrent access. The ClassifiedError type is
// safe to share across goroutines after creation.
//
// # Design Philosophy
//
//   - Classification over string matching: errors are classified by type,
//     with message patterns only as a fallback for foreign errors
//   - Wrapping over replacement: preserve original errors, add context
//   - Standards over invention: use Go's error handling idioms (Is/As/Unwrap)
//   - Simplicity over completeness: three classes cover the kit's surface
package errors
