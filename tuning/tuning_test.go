package tuning

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	d := Default()
	if err := d.Validate(); err != nil {
		t.Fatalf("Default tuning failed validation: %v", err)
	}
	if d.Pollen.WinThreshold != 20 {
		t.Errorf("Expected win threshold 20, got %d", d.Pollen.WinThreshold)
	}
	if d.Sneeze.Stagger != 500*time.Millisecond {
		t.Errorf("Expected stagger 500ms, got %v", d.Sneeze.Stagger)
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	raw := []byte(`
pollen:
  win_threshold: 50
wiggle:
  cooldown: 3s
`)
	got, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got.Pollen.WinThreshold != 50 {
		t.Errorf("Expected win threshold 50, got %d", got.Pollen.WinThreshold)
	}
	if got.Wiggle.Cooldown != 3*time.Second {
		t.Errorf("Expected cooldown 3s, got %v", got.Wiggle.Cooldown)
	}
	if got.Allergy.Max != Default().Allergy.Max {
		t.Errorf("Expected untouched allergy max, got %f", got.Allergy.Max)
	}
}

func TestParseEmptyReturnsDefaults(t *testing.T) {
	got, err := Parse([]byte("# nothing here\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got != Default() {
		t.Error("Expected defaults for empty document")
	}
}

func TestParseRejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"unknown section", "bogus:\n  x: 1\n"},
		{"unknown field", "allergy:\n  maximum: 5\n"},
		{"negative speed", "movement:\n  bee_speed: -10\n"},
		{"bad duration", "wiggle:\n  cooldown: soon\n"},
		{"fraction out of range", "sneeze:\n  drop_percentage: 1.5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.raw)); err == nil {
				t.Errorf("Expected schema error for %q", tt.raw)
			}
		})
	}
}

func TestValidateCrossField(t *testing.T) {
	tu := Default()
	tu.Rizz.Low = 80
	tu.Sneeze.Threshold = 150

	err := tu.Validate()
	if err == nil {
		t.Fatal("Expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "rizz.low") || !strings.Contains(msg, "sneeze.threshold") {
		t.Errorf("Expected both violations reported, got %v", msg)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")

	tu := Default()
	tu.Game.MaxSneezes = 5
	raw, err := tu.Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != tu {
		t.Errorf("Round trip mismatch:\n got %+v\nwant %+v", got, tu)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
	if _, err := Load(""); err != nil {
		t.Errorf("Expected defaults for empty path, got %v", err)
	}
}
