// Package visualize renders a running automaton network live: one row per
// machine, one pixel per output bit, drawn through GLFW/OpenGL, with a
// short audible click sonifying every tick through PortAudio.
package visualize

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/golang/glog"

	"github.com/corewire/mooreweave/automaton"
)

// maxOutputWidth caps how many of a machine's output bits are drawn per
// row; wider machines are truncated rather than stretching the window.
const maxOutputWidth = 256

// Viewer owns a GLFW window and renders an automaton.Network's output bits
// on every call to Render.
type Viewer struct {
	window *glfw.Window
	prog   *glProgram
	sound  *sonifier
}

// Open creates a width x height window titled title. Call Close when done.
func Open(title string, width, height int) (*Viewer, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("visualize: glfw.Init: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("visualize: CreateWindow: %w", err)
	}
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("visualize: gl.Init: %w", err)
	}
	prog, err := newGLProgram()
	if err != nil {
		glfw.Terminate()
		return nil, err
	}

	sound, err := newSonifier()
	if err != nil {
		glog.Warningf("visualize: audio disabled: %v", err)
		sound = nil
	}

	return &Viewer{window: window, prog: prog, sound: sound}, nil
}

// ShouldClose reports whether the window's close button was pressed.
func (v *Viewer) ShouldClose() bool {
	return v.window.ShouldClose()
}

// Render draws one row per machine in net, one pixel per output bit (up to
// maxOutputWidth), and swaps buffers. Call after every automaton.Network.Step.
func (v *Viewer) Render(net *automaton.Network) error {
	machines := net.Machines()
	if len(machines) == 0 {
		return nil
	}
	grid := newBitGrid(maxOutputWidth, len(machines))
	for row, mach := range machines {
		out, err := mach.GetOutput()
		if err != nil {
			continue
		}
		width := maxOutputWidth
		for col := 0; col < width; col++ {
			word, bit := col/64, col%64
			if word >= len(out) {
				break
			}
			grid.setBit(col, row, (out[word]>>uint(bit))&1 == 1)
		}
	}
	v.prog.draw(grid)
	v.window.SwapBuffers()
	glfw.PollEvents()

	if v.sound != nil {
		v.sound.tick()
	}
	return nil
}

// Close releases the window, GL program, and the audio stream.
func (v *Viewer) Close() {
	if v.sound != nil {
		v.sound.close()
	}
	v.prog.close()
	glfw.Terminate()
}
