// Package chk is a convenience shortcut for logging and testing an error in
// one expression: `if chk.E(err) { return }` logs err at error level (if
// non-nil) and reports whether it was non-nil, so call sites read as a
// single guard clause instead of a log-then-check pair.
package chk

import "embernote.dev/pkg/utils/log"

func check(l log.Logger, err error) bool {
	if err == nil {
		return false
	}
	l.F("%s", err)
	return true
}

// E logs and reports errors at error level.
func E(err error) bool { return check(log.E, err) }

// W logs and reports errors at warn level.
func W(err error) bool { return check(log.W, err) }

// D logs and reports errors at debug level.
func D(err error) bool { return check(log.D, err) }

// T logs and reports errors at trace level.
func T(err error) bool { return check(log.T, err) }
