package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// Mixer plays any number of one-shot clips on top of each other. It is a
// beep.Streamer and can be handed to the speaker directly.
type Mixer struct {
	mu     sync.Mutex
	format beep.Format
	mixer  *beep.Mixer
}

func NewMixer(format beep.Format) *Mixer {
	return &Mixer{
		format: format,
		mixer:  &beep.Mixer{},
	}
}

// Format returns the output format all clips are resampled to
func (m *Mixer) Format() beep.Format {
	return m.format
}

// PlayOneShot starts the clip and forgets about it. volume scales the
// amplitude, 1 leaves it unchanged.
func (m *Mixer) PlayOneShot(clip *Clip, volume float64) {
	if clip == nil {
		return
	}

	var s beep.Streamer = clip.Streamer()
	if clip.Format().SampleRate != m.format.SampleRate {
		s = beep.Resample(4, clip.Format().SampleRate, m.format.SampleRate, s)
	}
	if volume != 1 {
		s = &effects.Gain{Streamer: s, Gain: volume - 1}
	}

	m.mu.Lock()
	m.mixer.Add(s)
	m.mu.Unlock()
}

// Active returns the number of clips still playing
func (m *Mixer) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mixer.Len()
}

// Clear stops everything
func (m *Mixer) Clear() {
	m.mu.Lock()
	m.mixer.Clear()
	m.mu.Unlock()
}

func (m *Mixer) Stream(samples [][2]float64) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mixer.Stream(samples)
}

func (m *Mixer) Err() error {
	return nil
}

// OpenSpeaker starts device playback of the mixer
func OpenSpeaker(m *Mixer) error {
	sr := m.format.SampleRate
	if err := speaker.Init(sr, sr.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(m)
	return nil
}

// CloseSpeaker stops device playback
func CloseSpeaker() {
	speaker.Close()
}
