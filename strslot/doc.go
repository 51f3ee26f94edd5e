// Package strslot adapts the ring engine to fixed-slot string storage:
// a bounded tail of text lines with hard per-line and total memory limits,
// fixed at construction.
//
// # Overview
//
// A Ring owns one flat arena of capacity x width bytes. Each slot holds up
// to width-1 bytes of text plus a NUL terminator, so both the memory
// ceiling and the longest storable line are known before the first push.
// Push overwrites the oldest line when full, which makes the ring a
// natural last-N-lines buffer for log tails and message taps.
//
// # Quick Start
//
//	tail, err := strslot.New(256, 128) // 256 lines, 127 text bytes each
//	if err != nil {
//		return err
//	}
//
//	tail.Push("subscriber connected")
//	tail.Push(line) // longer than 127 bytes: silently truncated
//
//	dst := make([]byte, 128)
//	if n, ok := tail.PopInto(dst); ok {
//		process(dst[:n])
//	}
//
// # Truncation
//
// Push never fails and never reports truncation; text that does not fit
// the slot is cut at width-1 bytes. Truncation is byte-oriented: a cut may
// land inside a multi-byte UTF-8 sequence, and callers that care should
// size slots generously or pre-trim on rune boundaries.
//
// # Bounded Copy-Out
//
// PopInto mirrors Push's discipline on the read side: it copies at most
// len(dst)-1 bytes and NUL-terminates, so a fixed scratch buffer can drain
// the ring without allocation regardless of what was stored. Pop and
// Snapshot are the allocating conveniences for code that wants strings.
//
// # Threading
//
// Same contract as ring.Buffer: one owning goroutine, no internal locking,
// statistics readable concurrently via Stats().
package strslot
