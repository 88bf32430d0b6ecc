package audio

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/allerbees/core"
)

func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestOscillatorLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		n, peak := drain(NewOscillator(440, 100*time.Millisecond, wave, rate))
		if n != rate.N(100*time.Millisecond) {
			t.Errorf("wave %d: expected %d samples, got %d", wave, rate.N(100*time.Millisecond), n)
		}
		if peak > 1.0 {
			t.Errorf("wave %d: sample out of range, peak %f", wave, peak)
		}
	}
}

func TestEnvelopeRamps(t *testing.T) {
	rate := beep.SampleRate(1000)
	env := NewEnvelope(NewOscillator(0, time.Second, WaveSquare, rate), time.Second, 100*time.Millisecond, 100*time.Millisecond, rate)

	samples := make([][2]float64, 1000)
	n, _ := env.Stream(samples)
	if n != 1000 {
		t.Fatalf("expected 1000 samples, got %d", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("expected silent first sample, got %f", samples[0][0])
	}
	if math.Abs(samples[50][0]-0.5) > 1e-9 {
		t.Errorf("expected half volume mid-attack, got %f", samples[50][0])
	}
	if samples[500][0] != 1 {
		t.Errorf("expected full volume in sustain, got %f", samples[500][0])
	}
	if samples[999][0] >= 0.02 {
		t.Errorf("expected near silence at end, got %f", samples[999][0])
	}
}

func TestEverySoundRenders(t *testing.T) {
	cfg := DefaultConfig()
	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		s := Sound(st, cfg)
		if s == nil {
			t.Errorf("%s: no streamer", st)
			continue
		}
		n, peak := drain(s)
		if n == 0 || peak == 0 {
			t.Errorf("%s: empty sound (n=%d peak=%f)", st, n, peak)
		}
		if n > cfg.SampleRate.N(2*time.Second) {
			t.Errorf("%s: too long, %d samples", st, n)
		}
	}
	if Sound(core.SoundTypeCount, cfg) != nil {
		t.Error("expected nil for unknown sound")
	}
}

func TestPlayerMixing(t *testing.T) {
	p := newPlayer(DefaultConfig(), func() {}, func() {})

	if p.Play(core.SoundCollect) {
		t.Error("expected Play to fail before running")
	}

	p.running.Store(true)
	if !p.IsRunning() {
		t.Fatal("expected running player")
	}
	if !p.Play(core.SoundSneeze) {
		t.Fatal("expected Play to succeed")
	}
	if p.Voices() != 1 {
		t.Errorf("expected 1 voice, got %d", p.Voices())
	}

	for i := 0; i < maxVoices*2; i++ {
		p.Play(core.SoundCollect)
	}
	if p.Voices() != maxVoices {
		t.Errorf("expected voices capped at %d, got %d", maxVoices, p.Voices())
	}

	if !p.ToggleMute() || !p.IsMuted() {
		t.Fatal("expected muted after toggle")
	}
	if p.Play(core.SoundWin) {
		t.Error("expected muted player to refuse")
	}
	if p.ToggleMute() {
		t.Error("expected unmuted after second toggle")
	}
}

func TestMutedServiceSkipsDevice(t *testing.T) {
	s := NewService()
	s.muted = true
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("muted start: %v", err)
	}
	defer s.Stop()

	if s.Player() == nil || !s.Player().IsMuted() {
		t.Fatal("expected a muted player")
	}
	if s.opened {
		t.Error("speaker must not open while muted")
	}

	var published []any
	s.Contribute(func(r any) { published = append(published, r) })
	if len(published) != 1 {
		t.Errorf("expected audio resource published, got %d", len(published))
	}
}
