// Package audio plays the game's sounds through the system speaker. Sounds
// are synthesized on load, so the game ships no audio files.
package audio

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-walk/internal/engine"
)

// DefaultSampleRate is used when no rate is configured.
const DefaultSampleRate = 44100

var (
	// ErrUnknownSound is returned for names Synthesize does not know.
	ErrUnknownSound = errors.New("audio: unknown sound")
	// ErrForeignSound is returned when a Sound was not loaded by this player.
	ErrForeignSound = errors.New("audio: sound not loaded by this player")
)

// Speaker implements engine.Audio on top of beep. All sounds share one
// mixer that is handed to the speaker once in Start.
type Speaker struct {
	mu      sync.Mutex
	rate    beep.SampleRate
	mixer   *beep.Mixer
	buffers map[string]*beep.Buffer
	started bool
}

var _ engine.Audio = (*Speaker)(nil)

// NewSpeaker creates a player at the given sample rate (DefaultSampleRate
// if not positive). Nothing is audible until Start.
func NewSpeaker(sampleRate int) *Speaker {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	return &Speaker{
		rate:    beep.SampleRate(sampleRate),
		mixer:   &beep.Mixer{},
		buffers: make(map[string]*beep.Buffer),
	}
}

// Start opens the audio device.
func (s *Speaker) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if err := speaker.Init(s.rate, s.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.started = true
	return nil
}

// Close silences everything and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()

	if s.started {
		speaker.Close()
		s.started = false
	}
}

// LoadSound synthesizes the named sound, once per name.
func (s *Speaker) LoadSound(ctx context.Context, name string) (engine.Sound, error) {
	if err := ctx.Err(); err != nil {
		return engine.Sound{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	buf, ok := s.buffers[name]
	if !ok {
		var err error
		buf, err = Synthesize(name, s.rate)
		if err != nil {
			return engine.Sound{}, err
		}
		s.buffers[name] = buf
	}
	return engine.Sound{Name: name, Data: buf}, nil
}

// PlaySound plays a loaded sound once.
func (s *Speaker) PlaySound(sound engine.Sound) error {
	buf, ok := sound.Data.(*beep.Buffer)
	if !ok {
		return fmt.Errorf("%w: %q", ErrForeignSound, sound.Name)
	}
	s.add(buf.Streamer(0, buf.Len()))
	return nil
}

// PlayLoopingSound plays a loaded sound until Close.
func (s *Speaker) PlayLoopingSound(sound engine.Sound) error {
	buf, ok := sound.Data.(*beep.Buffer)
	if !ok {
		return fmt.Errorf("%w: %q", ErrForeignSound, sound.Name)
	}
	s.add(beep.Loop(-1, buf.Streamer(0, buf.Len())))
	return nil
}

func (s *Speaker) add(streamer beep.Streamer) {
	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

// Playing returns the number of streams in the mixer.
func (s *Speaker) Playing() int {
	speaker.Lock()
	defer speaker.Unlock()
	return s.mixer.Len()
}

// Silent implements engine.Audio without a device, for disabled audio and
// headless runs.
type Silent struct{}

var _ engine.Audio = Silent{}

func (Silent) LoadSound(ctx context.Context, name string) (engine.Sound, error) {
	if err := ctx.Err(); err != nil {
		return engine.Sound{}, err
	}
	return engine.Sound{Name: name}, nil
}

func (Silent) PlaySound(engine.Sound) error        { return nil }
func (Silent) PlayLoopingSound(engine.Sound) error { return nil }
