package audio

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-walk/internal/engine"
)

func TestSynthesize(t *testing.T) {
	rate := beep.SampleRate(DefaultSampleRate)

	tests := []struct {
		name     string
		expected int
	}{
		{JumpSound, rate.N(jumpDuration)},
		{BackgroundMusic, rate.N(noteDuration) * len(backgroundNotes)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf, err := Synthesize(tc.name, rate)
			if err != nil {
				t.Fatalf("Synthesize() error: %v", err)
			}
			if buf.Len() != tc.expected {
				t.Errorf("Len() = %d, expected %d", buf.Len(), tc.expected)
			}
		})
	}
}

func TestSynthesizeUnknown(t *testing.T) {
	if _, err := Synthesize("meow", DefaultSampleRate); !errors.Is(err, ErrUnknownSound) {
		t.Errorf("Synthesize() error = %v, expected ErrUnknownSound", err)
	}
}

func TestToneStaysInRange(t *testing.T) {
	rate := beep.SampleRate(8000)
	tn := newTone(200, 800, 100*time.Millisecond, 0.5, true, rate)

	samples := make([][2]float64, 256)
	total := 0
	for {
		n, ok := tn.Stream(samples)
		for _, s := range samples[:n] {
			if s[0] > 0.5 || s[0] < -0.5 || s[0] != s[1] {
				t.Fatalf("sample %v out of range", s)
			}
		}
		total += n
		if !ok {
			break
		}
	}
	if total != rate.N(100*time.Millisecond) {
		t.Errorf("streamed %d samples, expected %d", total, rate.N(100*time.Millisecond))
	}
}

func TestSpeakerLoadSoundCaches(t *testing.T) {
	s := NewSpeaker(0)
	ctx := context.Background()

	first, err := s.LoadSound(ctx, JumpSound)
	if err != nil {
		t.Fatalf("LoadSound() error: %v", err)
	}
	second, err := s.LoadSound(ctx, JumpSound)
	if err != nil {
		t.Fatalf("LoadSound() error: %v", err)
	}
	if first.Data != second.Data {
		t.Error("LoadSound() synthesized the same sound twice")
	}

	if _, err := s.LoadSound(ctx, "meow"); !errors.Is(err, ErrUnknownSound) {
		t.Errorf("LoadSound() error = %v, expected ErrUnknownSound", err)
	}
}

func TestSpeakerLoadSoundCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewSpeaker(0).LoadSound(ctx, JumpSound); !errors.Is(err, context.Canceled) {
		t.Errorf("LoadSound() error = %v, expected context.Canceled", err)
	}
}

func TestSpeakerPlayAddsToMixer(t *testing.T) {
	s := NewSpeaker(0)
	ctx := context.Background()

	jump, _ := s.LoadSound(ctx, JumpSound)
	music, _ := s.LoadSound(ctx, BackgroundMusic)

	if err := s.PlayLoopingSound(music); err != nil {
		t.Fatalf("PlayLoopingSound() error: %v", err)
	}
	if err := s.PlaySound(jump); err != nil {
		t.Fatalf("PlaySound() error: %v", err)
	}
	if s.Playing() != 2 {
		t.Errorf("Playing() = %d, expected 2", s.Playing())
	}

	s.Close()
	if s.Playing() != 0 {
		t.Errorf("Playing() after Close = %d, expected 0", s.Playing())
	}
}

func TestSpeakerRejectsForeignSound(t *testing.T) {
	s := NewSpeaker(0)
	foreign := engine.Sound{Name: "jump"}

	if err := s.PlaySound(foreign); !errors.Is(err, ErrForeignSound) {
		t.Errorf("PlaySound() error = %v, expected ErrForeignSound", err)
	}
	if err := s.PlayLoopingSound(foreign); !errors.Is(err, ErrForeignSound) {
		t.Errorf("PlayLoopingSound() error = %v, expected ErrForeignSound", err)
	}
}

func TestSilent(t *testing.T) {
	var a engine.Audio = Silent{}
	sound, err := a.LoadSound(context.Background(), "anything")
	if err != nil {
		t.Fatalf("LoadSound() error: %v", err)
	}
	if sound.Name != "anything" {
		t.Errorf("Name = %q, expected %q", sound.Name, "anything")
	}
	if err := a.PlaySound(sound); err != nil {
		t.Errorf("PlaySound() error: %v", err)
	}
	if err := a.PlayLoopingSound(sound); err != nil {
		t.Errorf("PlayLoopingSound() error: %v", err)
	}
}
