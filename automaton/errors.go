package automaton

import "errors"

// ErrInvalidArgument is returned when a precondition on the arguments of an
// operation is violated: a missing machine, a missing buffer, a zero size
// where one is forbidden, a zero count, a range that overflows or falls
// outside a machine's bit count, or a Step call over a slot that is nil.
var ErrInvalidArgument = errors.New("automaton: invalid argument")

// ErrOutOfMemory is returned when growing a connection list fails. It is
// transient by design: a retry against a now-satisfiable allocator must
// succeed, and Connect leaves prior pairs within the same call linked so a
// retry of the same range re-links correctly via the disconnect-first rule.
var ErrOutOfMemory = errors.New("automaton: out of memory")
