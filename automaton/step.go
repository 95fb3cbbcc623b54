package automaton

import "github.com/golang/glog"

// Step advances every machine in machines by exactly one synchronous tick.
// It is two-phase, producing the classical synchronous semantics in which
// every machine's next state is computed from the *old* outputs of its
// peers:
//
//  1. Sample phase: for each machine, each connected input bit copies the
//     corresponding bit of its driver's pre-step output into its input.
//     Unconnected bits are left as whatever SetInput last wrote.
//  2. Commit phase: for each machine, trans computes next state from the
//     sampled input and old state, next state is committed over state, and
//     out recomputes output from the new state.
//
// Because phase 1 reads every output before phase 2 mutates any state or
// output, the step is simultaneous with respect to peer outputs regardless
// of machines' order in the slice. Step allocates nothing and fails only at
// argument validation: machines must be non-empty and every slot non-nil.
func Step(machines []*Machine) error {
	if len(machines) == 0 {
		return ErrInvalidArgument
	}
	for _, mach := range machines {
		if mach == nil {
			return ErrInvalidArgument
		}
	}

	for _, mach := range machines {
		for i := 0; i < mach.n; i++ {
			ref := mach.inEdges[i]
			if ref.machine == nil {
				continue
			}
			copyBit(mach.input, i, getBit(ref.machine.output, ref.bit))
		}
	}

	for _, mach := range machines {
		mach.trans(mach.nextState, mach.input, mach.state, mach.n, mach.s)
		copyBits(mach.state, mach.nextState, mach.s)
		mach.out(mach.output, mach.state, mach.m, mach.s)
	}

	glog.V(3).Infof("stepped %d machines", len(machines))
	return nil
}
