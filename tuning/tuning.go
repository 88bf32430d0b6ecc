package tuning

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/allerbees/parameter"
)

//go:embed tuning.schema.json
var schemaSource string

// Tuning holds every gameplay number; zero-valued fields in a file keep their defaults
type Tuning struct {
	Allergy  Allergy  `yaml:"allergy" json:"allergy"`
	Sneeze   Sneeze   `yaml:"sneeze" json:"sneeze"`
	Pollen   Pollen   `yaml:"pollen" json:"pollen"`
	Movement Movement `yaml:"movement" json:"movement"`
	Game     Game     `yaml:"game" json:"game"`
	Wiggle   Wiggle   `yaml:"wiggle" json:"wiggle"`
	Rizz     Rizz     `yaml:"rizz" json:"rizz"`
	Flower   Flower   `yaml:"flower" json:"flower"`
	Diva     Diva     `yaml:"diva" json:"diva"`
	Healer   Healer   `yaml:"healer" json:"healer"`
}

type Allergy struct {
	Max                 float64 `yaml:"max" json:"max"`
	BaseDecayRate       float64 `yaml:"base_decay_rate" json:"base_decay_rate"`
	ProximityMultiplier float64 `yaml:"proximity_multiplier" json:"proximity_multiplier"`
	ProximityThreshold  float64 `yaml:"proximity_threshold" json:"proximity_threshold"`
}

type Sneeze struct {
	Threshold       float64       `yaml:"threshold" json:"threshold"`
	DropPercentage  float64       `yaml:"drop_percentage" json:"drop_percentage"`
	PostValue       float64       `yaml:"post_value" json:"post_value"`
	Stagger         time.Duration `yaml:"stagger" json:"stagger"`
	ScatterRadius   float64       `yaml:"scatter_radius" json:"scatter_radius"`
	ScatterSpeed    float64       `yaml:"scatter_speed" json:"scatter_speed"`
	ScatterFriction float64       `yaml:"scatter_friction" json:"scatter_friction"`
}

type Pollen struct {
	BaseValue        int           `yaml:"base_value" json:"base_value"`
	CacheValue       int           `yaml:"cache_value" json:"cache_value"`
	WinThreshold     int           `yaml:"win_threshold" json:"win_threshold"`
	MaxGround        int           `yaml:"max_ground" json:"max_ground"`
	CollectionRadius float64       `yaml:"collection_radius" json:"collection_radius"`
	DropInterval     time.Duration `yaml:"drop_interval" json:"drop_interval"`
}

type Movement struct {
	BeeSpeed float64 `yaml:"bee_speed" json:"bee_speed"`
}

type Game struct {
	MaxSneezes int `yaml:"max_sneezes" json:"max_sneezes"`
}

type Wiggle struct {
	Duration  time.Duration `yaml:"duration" json:"duration"`
	Cooldown  time.Duration `yaml:"cooldown" json:"cooldown"`
	Range     float64       `yaml:"range" json:"range"`
	RizzBase  float64       `yaml:"rizz_base" json:"rizz_base"`
	Frequency float64       `yaml:"frequency" json:"frequency"`
	Amplitude float64       `yaml:"amplitude" json:"amplitude"`
}

type Rizz struct {
	Max        float64 `yaml:"max" json:"max"`
	DecayRate  float64 `yaml:"decay_rate" json:"decay_rate"`
	Low        float64 `yaml:"low" json:"low"`
	High       float64 `yaml:"high" json:"high"`
	TickleDrop float64 `yaml:"tickle_drop" json:"tickle_drop"`
}

type Flower struct {
	BaseHeight   float64       `yaml:"base_height" json:"base_height"`
	PursuitSpeed float64       `yaml:"pursuit_speed" json:"pursuit_speed"`
	SnapDuration time.Duration `yaml:"snap_duration" json:"snap_duration"`
	SnapSpeed    float64       `yaml:"snap_speed" json:"snap_speed"`
	BlissRadius  float64       `yaml:"bliss_radius" json:"bliss_radius"`
	BlissSpeed   float64       `yaml:"bliss_speed" json:"bliss_speed"`
	CacheRespawn time.Duration `yaml:"cache_respawn" json:"cache_respawn"`
}

type Diva struct {
	WiggleThreshold float64 `yaml:"wiggle_threshold" json:"wiggle_threshold"`
	Speed           float64 `yaml:"speed" json:"speed"`
	SafeDistance    float64 `yaml:"safe_distance" json:"safe_distance"`
	OptimalRange    float64 `yaml:"optimal_range" json:"optimal_range"`
	TooFarRange     float64 `yaml:"too_far_range" json:"too_far_range"`
	Step            float64 `yaml:"step" json:"step"`
	WiggleCheck     float64 `yaml:"wiggle_check_range" json:"wiggle_check_range"`
}

type Healer struct {
	Threshold   float64 `yaml:"threshold" json:"threshold"`
	Rate        float64 `yaml:"rate" json:"rate"`
	Range       float64 `yaml:"range" json:"range"`
	Speed       float64 `yaml:"speed" json:"speed"`
	Sensitivity float64 `yaml:"sensitivity" json:"sensitivity"`
	Buildup     float64 `yaml:"buildup_multiplier" json:"buildup_multiplier"`
}

// Default returns the built-in tuning
func Default() Tuning {
	return Tuning{
		Allergy: Allergy{
			Max:                 parameter.AllergyMax,
			BaseDecayRate:       parameter.AllergyBaseDecayRate,
			ProximityMultiplier: parameter.AllergyProximityMultiplier,
			ProximityThreshold:  parameter.AllergyProximityThreshold,
		},
		Sneeze: Sneeze{
			Threshold:       parameter.SneezeThreshold,
			DropPercentage:  parameter.SneezeDropPercentage,
			PostValue:       parameter.SneezePostValue,
			Stagger:         parameter.SneezeStagger,
			ScatterRadius:   parameter.SneezeScatterRadius,
			ScatterSpeed:    parameter.SneezeScatterSpeed,
			ScatterFriction: parameter.SneezeScatterFriction,
		},
		Pollen: Pollen{
			BaseValue:        parameter.PollenBaseValue,
			CacheValue:       parameter.PollenCacheValue,
			WinThreshold:     parameter.PollenWinThreshold,
			MaxGround:        parameter.PollenMaxGround,
			CollectionRadius: parameter.PollenCollectionRadius,
			DropInterval:     parameter.PollenDropInterval,
		},
		Movement: Movement{BeeSpeed: parameter.BeeSpeed},
		Game:     Game{MaxSneezes: parameter.GameMaxSneezes},
		Wiggle: Wiggle{
			Duration:  parameter.WiggleDuration,
			Cooldown:  parameter.WiggleCooldown,
			Range:     parameter.WiggleRange,
			RizzBase:  parameter.WiggleRizzBase,
			Frequency: parameter.WiggleFrequency,
			Amplitude: parameter.WiggleAmplitude,
		},
		Rizz: Rizz{
			Max:        parameter.RizzMax,
			DecayRate:  parameter.RizzDecayRate,
			Low:        parameter.RizzLow,
			High:       parameter.RizzHigh,
			TickleDrop: parameter.RizzTickleDrop,
		},
		Flower: Flower{
			BaseHeight:   parameter.FlowerBaseHeight,
			PursuitSpeed: parameter.FlowerPursuitSpeed,
			SnapDuration: parameter.FlowerSnapDuration,
			SnapSpeed:    parameter.FlowerSnapSpeed,
			BlissRadius:  parameter.FlowerBlissRadius,
			BlissSpeed:   parameter.FlowerBlissSpeed,
			CacheRespawn: parameter.CacheRespawn,
		},
		Diva: Diva{
			WiggleThreshold: parameter.DivaWiggleThreshold,
			Speed:           parameter.DivaSpeed,
			SafeDistance:    parameter.DivaSafeDistance,
			OptimalRange:    parameter.DivaOptimalRange,
			TooFarRange:     parameter.DivaTooFarRange,
			Step:            parameter.DivaStep,
			WiggleCheck:     parameter.DivaWiggleCheck,
		},
		Healer: Healer{
			Threshold:   parameter.HealerThreshold,
			Rate:        parameter.HealerRate,
			Range:       parameter.HealerRange,
			Speed:       parameter.HealerSpeed,
			Sensitivity: parameter.HealerSensitivity,
			Buildup:     parameter.HealerBuildup,
		},
	}
}

// Load reads a YAML tuning file over the defaults
// Empty path returns defaults
func Load(path string) (Tuning, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("read tuning: %w", err)
	}
	t, err := Parse(raw)
	if err != nil {
		return Tuning{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse checks raw YAML against the schema, then decodes it over the defaults and validates ranges
func Parse(raw []byte) (Tuning, error) {
	if err := validateSchema(raw); err != nil {
		return Tuning{}, err
	}

	t := Default()
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return Tuning{}, fmt.Errorf("decode tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Marshal renders the tuning as YAML, durations as strings
func (t Tuning) Marshal() ([]byte, error) {
	return yaml.Marshal(t)
}

// Validate checks cross-field constraints the schema cannot express
func (t Tuning) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(t.Allergy.Max > 0, "allergy.max must be positive")
	check(t.Allergy.ProximityThreshold > 0, "allergy.proximity_threshold must be positive")
	check(t.Sneeze.Threshold > 0 && t.Sneeze.Threshold <= t.Allergy.Max,
		"sneeze.threshold %.1f must be in (0, allergy.max %.1f]", t.Sneeze.Threshold, t.Allergy.Max)
	check(t.Sneeze.PostValue < t.Sneeze.Threshold, "sneeze.post_value must be below sneeze.threshold")
	check(t.Sneeze.DropPercentage >= 0 && t.Sneeze.DropPercentage <= 1, "sneeze.drop_percentage must be in [0, 1]")
	check(t.Sneeze.ScatterFriction > 0 && t.Sneeze.ScatterFriction < 1, "sneeze.scatter_friction must be in (0, 1)")
	check(t.Rizz.Low < t.Rizz.High, "rizz.low %.1f must be below rizz.high %.1f", t.Rizz.Low, t.Rizz.High)
	check(t.Rizz.High <= t.Rizz.Max, "rizz.high must not exceed rizz.max")
	check(t.Pollen.WinThreshold > 0, "pollen.win_threshold must be positive")
	check(t.Game.MaxSneezes > 0, "game.max_sneezes must be positive")
	check(t.Healer.Threshold > 0 && t.Healer.Threshold <= 1, "healer.threshold must be a fraction in (0, 1]")
	check(t.Diva.OptimalRange < t.Diva.TooFarRange, "diva.optimal_range must be below diva.too_far_range")

	for name, d := range map[string]time.Duration{
		"sneeze.stagger":       t.Sneeze.Stagger,
		"pollen.drop_interval": t.Pollen.DropInterval,
		"wiggle.duration":      t.Wiggle.Duration,
		"wiggle.cooldown":      t.Wiggle.Cooldown,
		"flower.snap_duration": t.Flower.SnapDuration,
		"flower.cache_respawn": t.Flower.CacheRespawn,
	} {
		check(d > 0, "%s must be positive", name)
	}

	return errors.Join(errs...)
}

// JSON renders the tuning for the observer bootstrap endpoint
func (t Tuning) JSON() ([]byte, error) {
	return json.Marshal(t)
}

var schema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	s, err := jsonschema.CompileString("tuning.schema.json", schemaSource)
	if err != nil {
		return nil, fmt.Errorf("compile tuning schema: %w", err)
	}
	return s, nil
})

func validateSchema(raw []byte) error {
	if strings.TrimSpace(string(raw)) == "" {
		return nil
	}

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decode tuning: %w", err)
	}
	if doc == nil {
		return nil
	}

	// Normalize YAML scalars to JSON types before schema validation
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("normalize tuning: %w", err)
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("normalize tuning: %w", err)
	}

	s, err := schema()
	if err != nil {
		return err
	}
	if err := s.Validate(v); err != nil {
		return fmt.Errorf("tuning schema: %w", err)
	}
	return nil
}
