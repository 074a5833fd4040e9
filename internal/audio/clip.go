package audio

import (
	"fmt"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"
)

// DefaultFormat is the mixer format used when a scene does not set one
var DefaultFormat = beep.Format{SampleRate: beep.SampleRate(44100), NumChannels: 2, Precision: 2}

// Clip is a decoded sound held in memory so it can be played any number of
// times without touching the disk again
type Clip struct {
	Name   string
	buffer *beep.Buffer
}

// NewClip buffers the whole streamer
func NewClip(name string, format beep.Format, s beep.Streamer) *Clip {
	buf := beep.NewBuffer(format)
	buf.Append(s)
	return &Clip{Name: name, buffer: buf}
}

// ToneClip renders a sine tone of the given frequency and duration
func ToneClip(name string, format beep.Format, freq float64, duration time.Duration) (*Clip, error) {
	sine, err := generators.SineTone(format.SampleRate, freq)
	if err != nil {
		return nil, fmt.Errorf("tone clip %q: %w", name, err)
	}
	return NewClip(name, format, beep.Take(format.SampleRate.N(duration), sine)), nil
}

// LoadClip decodes a WAV file into memory
func LoadClip(name, path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open clip %q: %w", name, err)
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode clip %q: %w", name, err)
	}
	defer streamer.Close()

	return NewClip(name, format, streamer), nil
}

// Format returns the clip's native format
func (c *Clip) Format() beep.Format {
	return c.buffer.Format()
}

// Len returns the clip length in samples
func (c *Clip) Len() int {
	return c.buffer.Len()
}

// Duration returns the playback length at the clip's own sample rate
func (c *Clip) Duration() time.Duration {
	return c.buffer.Format().SampleRate.D(c.buffer.Len())
}

// Streamer returns a fresh streamer over the whole clip
func (c *Clip) Streamer() beep.StreamSeeker {
	return c.buffer.Streamer(0, c.buffer.Len())
}
