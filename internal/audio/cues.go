package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/skyflap/internal/sim"
)

const (
	flapDuration  = 70 * time.Millisecond
	chimeNote     = 90 * time.Millisecond
	crashDuration = 320 * time.Millisecond
)

// Synthesize builds the streamer for a cue at the given linear gain. Every
// cue is finite; unknown cues yield nil.
func Synthesize(c sim.Cue, rate beep.SampleRate, gain float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case sim.CueFlap:
		s = flapSound(rate)
	case sim.CueScore:
		s = scoreSound(rate)
	case sim.CueHit:
		s = hitSound(rate)
	default:
		return nil
	}
	return newVolume(s, gain)
}

// flapSound is a short rising square chirp.
func flapSound(rate beep.SampleRate) beep.Streamer {
	osc := newOscillator(420, 780, flapDuration, waveSquare, rate)
	return newVolume(newEnvelope(osc, flapDuration, 5*time.Millisecond, 40*time.Millisecond, rate), 0.35)
}

// scoreSound is a two-note rising chime.
func scoreSound(rate beep.SampleRate) beep.Streamer {
	note := func(freq float64) beep.Streamer {
		osc := newOscillator(freq, freq, chimeNote, waveSine, rate)
		return newEnvelope(osc, chimeNote, 4*time.Millisecond, 60*time.Millisecond, rate)
	}
	return beep.Seq(note(988), note(1319))
}

// hitSound is a noise burst over a falling saw.
func hitSound(rate beep.SampleRate) beep.Streamer {
	noise := newOscillator(0, 0, crashDuration, waveNoise, rate)
	thud := newOscillator(160, 55, crashDuration, waveSaw, rate)
	return beep.Mix(
		newVolume(newEnvelope(noise, crashDuration, 2*time.Millisecond, 250*time.Millisecond, rate), 0.6),
		newVolume(newEnvelope(thud, crashDuration, 2*time.Millisecond, 200*time.Millisecond, rate), 0.5),
	)
}
