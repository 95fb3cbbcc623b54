package console

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/corewire/mooreweave/automaton"
)

func counter(nextState, input, state []uint64, n, s int) {
	nextState[0] = state[0] + 1
}

func newTestConsole(t *testing.T, script string) (*Console, *bytes.Buffer, *automaton.Network) {
	t.Helper()
	mach, err := automaton.CreateSimple(0, 8, counter)
	if err != nil {
		t.Fatalf("CreateSimple: %v", err)
	}
	net := automaton.NewNetwork()
	net.Add(mach)

	var out bytes.Buffer
	c := &Console{
		net: net,
		in:  bufio.NewReader(strings.NewReader(script)),
		out: &out,
	}
	return c, &out, net
}

func TestStepCommandAdvancesNetwork(t *testing.T) {
	c, out, net := newTestConsole(t, "s 3\n")
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if c.ticks != 3 {
		t.Fatalf("ticks = %d, want 3", c.ticks)
	}
	mach := net.Machines()[0]
	state, _ := mach.GetOutput()
	if state[0] != 3 {
		t.Fatalf("output = %d, want 3", state[0])
	}
	if !strings.Contains(out.String(), "Ticks: 3") {
		t.Fatalf("print output missing tick count: %q", out.String())
	}
}

func TestStepCommandDefaultsToOne(t *testing.T) {
	c, _, _ := newTestConsole(t, "s\n")
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if c.ticks != 1 {
		t.Fatalf("ticks = %d, want 1", c.ticks)
	}
}

func TestBreakpointStopsStepping(t *testing.T) {
	c, out, _ := newTestConsole(t, "br 0 0 1\ns 10\n")
	if err := c.Run(); err != nil {
		t.Fatalf("Run (br): %v", err)
	}
	if err := c.Run(); err != nil {
		t.Fatalf("Run (s): %v", err)
	}
	if c.ticks != 1 {
		t.Fatalf("ticks = %d, want 1 (breakpoint should stop at the first tick)", c.ticks)
	}
	if !strings.Contains(out.String(), "Break:") {
		t.Fatalf("output missing break notice: %q", out.String())
	}
}

func TestResetCommandZeroesState(t *testing.T) {
	c, _, net := newTestConsole(t, "s 5\nreset 0\n")
	if err := c.Run(); err != nil {
		t.Fatalf("Run (s): %v", err)
	}
	if err := c.Run(); err != nil {
		t.Fatalf("Run (reset): %v", err)
	}
	mach := net.Machines()[0]
	out, _ := mach.GetOutput()
	if out[0] != 0 {
		t.Fatalf("output after reset = %d, want 0", out[0])
	}
}

func TestUnknownCommandReportsError(t *testing.T) {
	c, _, _ := newTestConsole(t, "bogus\n")
	if err := c.Run(); err == nil {
		t.Fatalf("Run(bogus): want error, got nil")
	}
}

func TestBreakpointCommandInvalidArguments(t *testing.T) {
	c, _, _ := newTestConsole(t, "br 0\n")
	if err := c.Run(); err == nil {
		t.Fatalf("Run(br 0): want error, got nil")
	}
}

func TestBreakpointCommandRejectsOutOfRangeBit(t *testing.T) {
	c, _, _ := newTestConsole(t, "br 0 64 1\n")
	if err := c.Run(); err == nil {
		t.Fatalf("Run(br 0 64 1): want error for a bit beyond the machine's output width, got nil")
	}
}
