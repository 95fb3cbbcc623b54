package visualize

import (
	"fmt"
	"math"

	"github.com/gordonklaus/portaudio"
)

const sampleRate = 44100

// tickToneHz and tickDuration define the short click played for every
// network step.
const (
	tickToneHz   = 880.0
	tickDuration = 0.015 // seconds
)

// sonifier plays one short tone burst per network step, queued onto a
// channel drained by the PortAudio callback.
type sonifier struct {
	stream  *portaudio.Stream
	channel chan float32
}

func newSonifier() (*sonifier, error) {
	s := &sonifier{channel: make(chan float32, sampleRate)}
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("visualize: portaudio.Initialize: %w", err)
	}
	cb := func(out []float32) {
		for i := range out {
			select {
			case x := <-s.channel:
				out[i] = x * 0.2
			default:
				out[i] = 0
			}
		}
	}
	stream, err := portaudio.OpenDefaultStream(0, 2, sampleRate, 0, cb)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("visualize: OpenDefaultStream: %w", err)
	}
	s.stream = stream
	if err := stream.Start(); err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("visualize: stream.Start: %w", err)
	}
	return s, nil
}

// tick enqueues one tone burst, non-blocking: a full queue drops the click
// rather than stalling the render loop.
func (s *sonifier) tick() {
	n := int(tickDuration * sampleRate)
	for i := 0; i < n; i++ {
		v := float32(math.Sin(2 * math.Pi * tickToneHz * float64(i) / sampleRate))
		select {
		case s.channel <- v:
		default:
			return
		}
	}
}

func (s *sonifier) close() {
	s.stream.Close()
	portaudio.Terminate()
}
