package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Sound names the game asks for.
const (
	JumpSound       = "jump"
	BackgroundMusic = "background"
)

const (
	jumpDuration = 180 * time.Millisecond
	noteDuration = 250 * time.Millisecond
)

// backgroundNotes is a one-bar bass line in Hz, looped as the music.
var backgroundNotes = []float64{110, 110, 165, 147, 110, 131, 165, 196}

// tone is a streamer sweeping linearly from one frequency to another with a
// short fade at both ends.
type tone struct {
	from, to float64
	amp      float64
	square   bool
	total    int
	pos      int
	phase    float64
	rate     beep.SampleRate
}

func newTone(from, to float64, d time.Duration, amp float64, square bool, rate beep.SampleRate) *tone {
	return &tone{from: from, to: to, amp: amp, square: square, total: rate.N(d), rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	fade := t.rate.N(5 * time.Millisecond)
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}
		progress := float64(t.pos) / float64(t.total)
		freq := t.from + (t.to-t.from)*progress

		val := math.Sin(2 * math.Pi * t.phase)
		if t.square {
			val = 1
			if t.phase >= 0.5 {
				val = -1
			}
		}

		vol := t.amp
		if t.pos < fade {
			vol *= float64(t.pos) / float64(fade)
		} else if t.total-t.pos < fade {
			vol *= float64(t.total-t.pos) / float64(fade)
		}

		samples[i][0] = val * vol
		samples[i][1] = val * vol

		t.phase += freq / float64(t.rate)
		if t.phase >= 1 {
			t.phase -= 1
		}
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error {
	return nil
}

// Synthesize renders the named sound into a buffer at rate.
func Synthesize(name string, rate beep.SampleRate) (*beep.Buffer, error) {
	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})

	switch name {
	case JumpSound:
		buf.Append(newTone(330, 880, jumpDuration, 0.25, true, rate))
	case BackgroundMusic:
		notes := make([]beep.Streamer, 0, len(backgroundNotes))
		for _, freq := range backgroundNotes {
			notes = append(notes, newTone(freq, freq, noteDuration, 0.15, false, rate))
		}
		buf.Append(beep.Seq(notes...))
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownSound, name)
	}

	return buf, nil
}
