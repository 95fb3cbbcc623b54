package automaton

// Shared transition/output functions used across this package's tests.

// sumTrans sets next_state[0] = old_state[0] + input[0].
func sumTrans(nextState, input, state []uint64, n, s int) {
	nextState[0] = state[0] + input[0]
}

// addOneOutput sets output[0] = state[0] + 1.
func addOneOutput(output, state []uint64, m, s int) {
	output[0] = state[0] + 1
}

// xorTrans sets next_state[0] = old_state[0] ^ input[0], used by the
// ripple-counter scenario and the CreateSimple output test.
func xorTrans(nextState, input, state []uint64, n, s int) {
	nextState[0] = state[0] ^ input[0]
}

// steadyTrans preserves state unchanged.
func steadyTrans(nextState, input, state []uint64, n, s int) {
	copyBits(nextState, state, s)
}

// copyInputTrans copies input verbatim into state, used as an input latch.
func copyInputTrans(nextState, input, state []uint64, n, s int) {
	copyBits(nextState, input, n)
}
