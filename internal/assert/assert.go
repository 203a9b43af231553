/*
 * Athena - a chess engine search core written in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Athena contributors
 */

// Package assert provides zero-cost debug assertions: calls are left in
// the source for documentation and local debugging, but compile away to
// nothing once DEBUG is false, since DEBUG is a compile-time constant.
package assert

import "fmt"

// DEBUG gates whether Assert actually evaluates its check. Flip to true
// locally when chasing a bug; leave false otherwise so the compiler can
// dead-code-eliminate every call site.
const DEBUG = false

// Assert panics with msg (formatted like fmt.Sprintf) if test is false.
// Callers that do non-trivial work to compute test should guard the call
// with "if assert.DEBUG" themselves, since Go always evaluates arguments
// even when Assert is a no-op.
func Assert(test bool, msg string, a ...interface{}) {
	if !DEBUG {
		return
	}
	if !test {
		panic(fmt.Sprintf(msg, a...))
	}
}
