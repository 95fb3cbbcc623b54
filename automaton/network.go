package automaton

// Network is a reusable, ordered collection of machines stepped together,
// sparing callers from assembling a fresh slice on every tick.
// Network.Step is defined directly in terms of the package-level Step.
type Network struct {
	machines []*Machine
}

// NewNetwork returns an empty network.
func NewNetwork() *Network {
	return &Network{}
}

// Add appends mach to the network. It is a no-op if mach is nil.
func (net *Network) Add(mach *Machine) {
	if mach == nil {
		return
	}
	net.machines = append(net.machines, mach)
}

// Remove destroys mach (severing its edges) and drops it from the network.
// It is a no-op if mach is not a member.
func (net *Network) Remove(mach *Machine) {
	for idx, m := range net.machines {
		if m == mach {
			m.Destroy()
			net.machines = append(net.machines[:idx], net.machines[idx+1:]...)
			return
		}
	}
}

// Machines returns the network's members in insertion order. The returned
// slice aliases internal storage and must not be mutated by the caller.
func (net *Network) Machines() []*Machine {
	return net.machines
}

// Step advances every machine in the network by one synchronous tick.
func (net *Network) Step() error {
	return Step(net.machines)
}
