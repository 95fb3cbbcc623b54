package automaton

import (
	"math"

	"github.com/golang/glog"
)

// validRange reports whether [start, start+num) lies within [0, total),
// guarding against start+num overflowing int.
func validRange(start, total, num int) bool {
	if start < 0 || num <= 0 || total < 0 {
		return false
	}
	if num > math.MaxInt-start {
		return false
	}
	return start+num <= total
}

// removeConsumerEdge deletes slot from driver's consumer list for the given
// output bit using swap-with-last-then-pop, updating the slot stored by
// whichever peer's edge got swapped into the vacated position. This keeps
// Disconnect O(1) from either side.
func removeConsumerEdge(driver *Machine, bit, slot int) {
	list := driver.outEdges[bit]
	last := len(list) - 1
	list[slot] = list[last]
	driver.outEdges[bit] = list[:last]
	if slot != last {
		swapped := driver.outEdges[bit][slot]
		swapped.machine.inEdges[swapped.bit].slot = slot
	}
}

// disconnectInputEdge tears down the driver for consumer's input bit inBit,
// if any, updating both sides. A no-op if the bit is already unconnected.
func disconnectInputEdge(consumer *Machine, inBit int) {
	ref := consumer.inEdges[inBit]
	if ref.machine == nil {
		return
	}
	removeConsumerEdge(ref.machine, ref.bit, ref.slot)
	consumer.inEdges[inBit] = driverRef{}
}

// appendConsumerEdge pushes e onto driver's consumer list for outBit,
// growing the list through driver's allocator with amortized doubling,
// lazily allocating on first push. Reports the new slot index, or false if
// growth failed (ErrOutOfMemory at the call site).
func appendConsumerEdge(driver *Machine, outBit int, e edge) (int, bool) {
	list := driver.outEdges[outBit]
	if len(list) == cap(list) {
		newCap := initEdgeCapacity
		if cap(list) != 0 {
			newCap = cap(list) * 2
		}
		grown, ok := driver.alloc.grow(newCap)
		if !ok {
			return 0, false
		}
		list = append(grown, list...)
	}
	list = append(list, e)
	driver.outEdges[outBit] = list
	return len(list) - 1, true
}

// Connect links k consecutive input bits [i, i+k) of mach to k consecutive
// output bits [o, o+k) of driver, bit-pair by bit-pair. Connecting an
// already-connected consumer bit overrides its previous driver. Self-
// connections (mach == driver) are permitted.
//
// Connect is not atomic across the k-bit range: if growing a consumer list
// fails partway through, the pairs already linked in this call remain
// linked, and a retry of the same call re-links correctly because step 1
// of each pair unconditionally disconnects any existing driver first.
func (mach *Machine) Connect(i int, driver *Machine, o, k int) error {
	if mach == nil || driver == nil || k <= 0 {
		return ErrInvalidArgument
	}
	if !validRange(i, mach.n, k) || !validRange(o, driver.m, k) {
		return ErrInvalidArgument
	}

	for t := 0; t < k; t++ {
		inBit, outBit := i+t, o+t

		disconnectInputEdge(mach, inBit)

		slot, ok := appendConsumerEdge(driver, outBit, edge{machine: mach, bit: inBit})
		if !ok {
			return ErrOutOfMemory
		}
		mach.inEdges[inBit] = driverRef{machine: driver, bit: outBit, slot: slot}
	}
	glog.V(2).Infof("connected %d bit(s): in=[%d,%d) <- out=[%d,%d)", k, i, i+k, o, o+k)
	return nil
}

// Disconnect removes any driver for each of mach's input bits in
// [i, i+k). Always succeeds for valid arguments; unconnected bits in the
// range are silently skipped.
func (mach *Machine) Disconnect(i, k int) error {
	if mach == nil || k <= 0 || !validRange(i, mach.n, k) {
		return ErrInvalidArgument
	}
	for t := 0; t < k; t++ {
		disconnectInputEdge(mach, i+t)
	}
	glog.V(2).Infof("disconnected %d bit(s): in=[%d,%d)", k, i, i+k)
	return nil
}
