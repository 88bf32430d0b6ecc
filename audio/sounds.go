package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/allerbees/core"
)

// Config holds mixer format and per-sound volumes
type Config struct {
	SampleRate   beep.SampleRate
	MasterVolume float64
	Volumes      [core.SoundTypeCount]float64
}

// DefaultConfig returns 44.1 kHz output with balanced effect levels
func DefaultConfig() Config {
	cfg := Config{
		SampleRate:   beep.SampleRate(44100),
		MasterVolume: 0.6,
	}
	cfg.Volumes[core.SoundCollect] = 0.5
	cfg.Volumes[core.SoundCache] = 0.6
	cfg.Volumes[core.SoundWiggle] = 0.4
	cfg.Volumes[core.SoundSneeze] = 0.7
	cfg.Volumes[core.SoundWin] = 0.6
	cfg.Volumes[core.SoundLose] = 0.6
	return cfg
}

// Sound synthesizes the effect for st, nil for unknown types
func Sound(st core.SoundType, cfg Config) beep.Streamer {
	rate := cfg.SampleRate
	var s beep.Streamer

	switch st {
	case core.SoundCollect:
		// Short high blip
		s = beep.Mix(
			newVolume(tone(1320, 1320, 90*time.Millisecond, WaveSine, rate), 0.7),
			newVolume(tone(2640, 2640, 60*time.Millisecond, WaveSine, rate), 0.3),
		)
	case core.SoundCache:
		// Rising two-note chime
		s = beep.Seq(
			tone(987.77, 987.77, 80*time.Millisecond, WaveSquare, rate),
			tone(1318.51, 1318.51, 160*time.Millisecond, WaveSquare, rate),
		)
	case core.SoundWiggle:
		// Warbling glide up and back
		s = beep.Seq(
			tone(440, 660, 120*time.Millisecond, WaveSaw, rate),
			tone(660, 440, 120*time.Millisecond, WaveSaw, rate),
		)
	case core.SoundSneeze:
		// Intake whistle then noisy burst
		s = beep.Seq(
			newVolume(tone(300, 700, 150*time.Millisecond, WaveSine, rate), 0.5),
			beep.Mix(
				tone(0, 0, 250*time.Millisecond, WaveNoise, rate),
				newVolume(tone(220, 90, 250*time.Millisecond, WaveSaw, rate), 0.5),
			),
		)
	case core.SoundWin:
		s = beep.Seq(
			tone(523.25, 523.25, 110*time.Millisecond, WaveSine, rate),
			tone(659.25, 659.25, 110*time.Millisecond, WaveSine, rate),
			tone(783.99, 783.99, 110*time.Millisecond, WaveSine, rate),
			tone(1046.5, 1046.5, 260*time.Millisecond, WaveSine, rate),
		)
	case core.SoundLose:
		s = beep.Seq(
			tone(392, 392, 180*time.Millisecond, WaveSquare, rate),
			tone(311.13, 311.13, 180*time.Millisecond, WaveSquare, rate),
			tone(261.63, 196, 400*time.Millisecond, WaveSquare, rate),
		)
	default:
		return nil
	}

	return newVolume(s, cfg.Volumes[st]*cfg.MasterVolume)
}

// render synthesizes every sound into memory once
func render(cfg Config) [core.SoundTypeCount]*beep.Buffer {
	var out [core.SoundTypeCount]*beep.Buffer
	format := beep.Format{SampleRate: cfg.SampleRate, NumChannels: 2, Precision: 2}
	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		s := Sound(st, cfg)
		if s == nil {
			continue
		}
		buf := beep.NewBuffer(format)
		buf.Append(s)
		out[st] = buf
	}
	return out
}
