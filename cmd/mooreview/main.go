// Command mooreview builds a small demo network and drives it either
// through the interactive console or the live GLFW/OpenGL viewer.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/corewire/mooreweave/automaton"
	"github.com/corewire/mooreweave/console"
	"github.com/corewire/mooreweave/visualize"
)

var (
	visual = flag.Bool("visual", false, "drive the demo network through the GLFW/OpenGL viewer instead of the console")
	width  = flag.Int("width", 256, "viewer window width")
	height = flag.Int("height", 64, "viewer window height")
)

// xorTrans toggles state on every 1-valued input bit, used to give the
// demo network visible motion.
func xorTrans(nextState, input, state []uint64, n, s int) {
	nextState[0] = state[0] ^ input[0]
}

func buildDemoNetwork() (*automaton.Network, error) {
	net := automaton.NewNetwork()
	var prev *automaton.Machine
	for i := 0; i < 4; i++ {
		mach, err := automaton.CreateSimple(1, 1, xorTrans)
		if err != nil {
			return nil, fmt.Errorf("mooreview: create machine %d: %w", i, err)
		}
		if prev == nil {
			if err := mach.SetInput([]uint64{1}); err != nil {
				return nil, fmt.Errorf("mooreview: seed machine 0: %w", err)
			}
		} else {
			if err := mach.Connect(0, prev, 0, 1); err != nil {
				return nil, fmt.Errorf("mooreview: wire machine %d: %w", i, err)
			}
		}
		net.Add(mach)
		prev = mach
	}
	return net, nil
}

func runVisual(net *automaton.Network) error {
	viewer, err := visualize.Open("mooreweave", *width, *height)
	if err != nil {
		return err
	}
	defer viewer.Close()
	for !viewer.ShouldClose() {
		if err := net.Step(); err != nil {
			return err
		}
		if err := viewer.Render(net); err != nil {
			return err
		}
	}
	return nil
}

func runConsole(net *automaton.Network) error {
	c := console.New(net)
	for {
		if err := c.Run(); err != nil {
			return err
		}
	}
}

func main() {
	flag.Parse()
	defer glog.Flush()

	net, err := buildDemoNetwork()
	if err != nil {
		glog.Fatalf("mooreview: %v", err)
	}

	var runErr error
	if *visual {
		runErr = runVisual(net)
	} else {
		runErr = runConsole(net)
	}
	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr)
		os.Exit(1)
	}
}
