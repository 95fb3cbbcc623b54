package automaton

import "github.com/golang/glog"

// TransitionFunc computes next state from the current input and state.
// It must write exactly wordsFor(s) words into nextState. It must not
// mutate the connection graph. trans is a pure, bounded-time per-machine
// computation.
type TransitionFunc func(nextState, input, state []uint64, n, s int)

// OutputFunc computes output from the current state. It must write exactly
// wordsFor(m) words into output. Like TransitionFunc it must not mutate the
// connection graph.
type OutputFunc func(output, state []uint64, m, s int)

// driverRef is the per-input-bit driver pointer: either unconnected
// (machine == nil) or a reference to the driving machine's output bit and
// this consumer's slot inside that bit's consumer list.
type driverRef struct {
	machine *Machine
	bit     int
	slot    int
}

// edge is a single consumer reference stored in a driver's out-edge list.
type edge struct {
	machine *Machine
	bit     int
}

// Machine is a single synchronous Moore machine: a packed state vector, a
// packed input vector sampled from wired peers or set directly, a packed
// output vector computed from state alone, and the bidirectional wiring
// tables that let any of its input bits be driven by any output bit of any
// other machine (or itself).
//
// A Machine exclusively owns its buffers and edge tables. The connection
// graph holds peer references, not ownership. Lifetimes are the caller's
// responsibility.
type Machine struct {
	n, m, s int

	state     []uint64
	nextState []uint64
	input     []uint64 // nil when n == 0
	output    []uint64

	trans TransitionFunc
	out   OutputFunc

	inEdges  []driverRef // len n
	outEdges [][]edge    // len m, each lazily allocated on first push

	alloc allocator
}

// IdentityOutput copies state bits verbatim into output. It is the output
// function CreateSimple wires in.
func IdentityOutput(output, state []uint64, m, s int) {
	copyBits(output, state, m)
}

// ZeroState returns an all-zero state buffer of width s bits (wordsFor(s)
// words), the initial state CreateSimple wires in.
func ZeroState(s int) []uint64 {
	return make([]uint64, wordsFor(s))
}

// CreateFull allocates a machine with independently chosen input, output
// and state widths and explicit transition/output callbacks and initial
// state. It fails with ErrInvalidArgument if m or s is zero, trans or out
// is nil, or q is nil or shorter than wordsFor(s) words.
func CreateFull(n, m, s int, trans TransitionFunc, out OutputFunc, q []uint64) (*Machine, error) {
	if m == 0 || s == 0 || trans == nil || out == nil || q == nil || len(q) < wordsFor(s) {
		return nil, ErrInvalidArgument
	}

	mach := &Machine{
		n: n, m: m, s: s,
		state:     make([]uint64, wordsFor(s)),
		nextState: make([]uint64, wordsFor(s)),
		output:    make([]uint64, wordsFor(m)),
		trans:     trans,
		out:       out,
		alloc:     realAllocator{},
	}

	if n > 0 {
		mach.input = make([]uint64, wordsFor(n))
		mach.inEdges = make([]driverRef, n)
	}
	mach.outEdges = make([][]edge, m)

	copyBits(mach.state, q, s)
	mach.out(mach.output, mach.state, mach.m, mach.s)

	return mach, nil
}

// CreateSimple is a convenience constructor for the common case: state
// width equals output width, the output function copies state verbatim,
// and the initial state is all zero.
func CreateSimple(n, m int, trans TransitionFunc) (*Machine, error) {
	if m == 0 || trans == nil {
		return nil, ErrInvalidArgument
	}
	return CreateFull(n, m, m, trans, IdentityOutput, ZeroState(m))
}

// Destroy severs every edge the machine participates in, as driver and as
// consumer, then abandons its buffers to the garbage collector. Destroy
// tolerates a nil receiver.
func (mach *Machine) Destroy() {
	if mach == nil {
		return
	}
	glog.V(1).Infof("destroying machine n=%d m=%d s=%d", mach.n, mach.m, mach.s)
	for i := 0; i < mach.n; i++ {
		disconnectInputEdge(mach, i)
	}
	for bit := 0; bit < mach.m; bit++ {
		for len(mach.outEdges[bit]) > 0 {
			last := len(mach.outEdges[bit]) - 1
			consumer := mach.outEdges[bit][last]
			consumer.machine.inEdges[consumer.bit] = driverRef{}
			mach.outEdges[bit] = mach.outEdges[bit][:last]
		}
	}
}

// SetState copies wordsFor(s) words from q into the machine's state and
// recomputes output := out(state). Wired consumers observe the new output
// only at the next Step's sample phase.
func (mach *Machine) SetState(q []uint64) error {
	if mach == nil || q == nil || len(q) < wordsFor(mach.s) {
		return ErrInvalidArgument
	}
	copyBits(mach.state, q, mach.s)
	mach.out(mach.output, mach.state, mach.m, mach.s)
	return nil
}

// SetInput copies each unconnected input bit from x into the machine's
// input buffer. Connected input bits are left untouched; they are driven
// by Step, not by SetInput. SetInput fails with ErrInvalidArgument if the
// machine has no input bits at all.
func (mach *Machine) SetInput(x []uint64) error {
	if mach == nil || x == nil || mach.n == 0 || len(x) < wordsFor(mach.n) {
		return ErrInvalidArgument
	}
	for i := 0; i < mach.n; i++ {
		if mach.inEdges[i].machine != nil {
			continue
		}
		copyBit(mach.input, i, getBit(x, i))
	}
	return nil
}

// GetOutput returns the machine's packed output buffer. The returned slice
// aliases internal storage and is valid only until the next SetState or
// Step commit on this machine.
func (mach *Machine) GetOutput() ([]uint64, error) {
	if mach == nil {
		return nil, ErrInvalidArgument
	}
	return mach.output, nil
}

// StateWidth returns the machine's state width in bits, the size callers
// need to build a correctly-sized buffer for SetState.
func (mach *Machine) StateWidth() int {
	if mach == nil {
		return 0
	}
	return mach.s
}
