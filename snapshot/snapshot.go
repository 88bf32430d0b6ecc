// Package snapshot captures a read-only view of the world for hosts and spectators
package snapshot

import (
	"github.com/lixenwraith/allerbees/core"
	"github.com/lixenwraith/allerbees/engine"
)

// Point is a world position
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func point(v core.Vec2) Point {
	return Point{X: v.X, Y: v.Y}
}

// Vec returns p as a vector
func (p Point) Vec() core.Vec2 {
	return core.Vec2{X: p.X, Y: p.Y}
}

// Player is the gatherer state shown by the HUD
type Player struct {
	Pos            Point   `json:"pos"`
	Allergy        float64 `json:"allergy"`
	AllergyMax     float64 `json:"allergy_max"`
	Pollen         int     `json:"pollen"`
	Sneezes        int     `json:"sneezes"`
	Sneezing       bool    `json:"sneezing"`
	Wiggling       bool    `json:"wiggling"`
	CooldownMs     int64   `json:"cooldown_ms"`
	Scale          float64 `json:"scale"`
	Target         *Point  `json:"target,omitempty"`
	AllergyPercent float64 `json:"allergy_percent"`
}

// Companion is an AI bee
type Companion struct {
	Role     string  `json:"role"`
	Pos      Point   `json:"pos"`
	Allergy  float64 `json:"allergy"`
	Wiggling bool    `json:"wiggling"`
}

// Head is a flower head
type Head struct {
	Pos      Point   `json:"pos"`
	Rizz     float64 `json:"rizz"`
	RizzMax  float64 `json:"rizz_max"`
	Behavior string  `json:"behavior"`
	Snapping bool    `json:"snapping"`
}

// Cache is a stem pollen cache
type Cache struct {
	Pos    Point `json:"pos"`
	Active bool  `json:"active"`
	Value  int   `json:"value"`
}

// Particle is a fading sparkle
type Particle struct {
	Pos   Point   `json:"pos"`
	Alpha float64 `json:"alpha"`
}

// Text is a floating label
type Text struct {
	Pos  Point  `json:"pos"`
	Text string `json:"text"`
}

// Frame is one captured tick
type Frame struct {
	Tick        int64       `json:"tick"`
	Phase       string      `json:"phase"`
	Session     int         `json:"session"`
	SessionTime string      `json:"session_time"`
	WinTarget   int         `json:"win_target"`
	MaxSneezes  int         `json:"max_sneezes"`
	Player      *Player     `json:"player,omitempty"`
	Companions  []Companion `json:"companions"`
	Stems       []Point     `json:"stems"`
	Heads       []Head      `json:"heads"`
	Caches      []Cache     `json:"caches"`
	Pollen      []Point     `json:"pollen"`
	Particles   []Particle  `json:"particles"`
	Texts       []Text      `json:"texts"`
	Shake       Point       `json:"shake"`
}

// Playing reports whether the frame was captured during play
func (f *Frame) Playing() bool {
	return f.Phase == engine.PhasePlaying.String()
}

// Capture copies the world into a Frame
// Caller must hold the world lock or run inside a system Update
func Capture(w *engine.World) Frame {
	cs := &w.Components
	res := w.Resources
	tu := &res.Tuning.Tuning

	f := Frame{
		Tick:        w.FrameNumber(),
		Phase:       res.Game.Phase.String(),
		Session:     res.Game.Session,
		SessionTime: engine.FormatSessionTime(res.Game.SessionTime),
		WinTarget:   tu.Pollen.WinThreshold,
		MaxSneezes:  tu.Game.MaxSneezes,
		Shake:       point(res.Transient.Shake.Offset()),
	}

	for _, e := range cs.Bee.GetAllEntities() {
		pos, ok := cs.Position.GetComponent(e)
		if !ok {
			continue
		}
		bee, _ := cs.Bee.GetComponent(e)
		allergy, _ := cs.Allergy.GetComponent(e)

		if cs.Player.HasEntity(e) {
			p := &Player{
				Pos:            point(pos.Pos),
				Allergy:        allergy.Value,
				AllergyMax:     allergy.Max,
				AllergyPercent: allergy.Percentage(),
				Sneezing:       cs.Sneezing.HasEntity(e),
				Wiggling:       cs.Wiggling.HasEntity(e),
				Scale:          1,
			}
			if pollen, ok := cs.Pollen.GetComponent(e); ok {
				p.Pollen = pollen.Count
			}
			if count, ok := cs.SneezeCount.GetComponent(e); ok {
				p.Sneezes = count.Count
			}
			if cd, ok := cs.WiggleCooldown.GetComponent(e); ok && cd.Remaining > 0 {
				p.CooldownMs = cd.Remaining.Milliseconds()
			}
			if pulse, ok := cs.Pulse.GetComponent(e); ok {
				p.Scale = pulse.Scale()
			}
			if target, ok := cs.MoveTarget.GetComponent(e); ok && target.Active {
				t := point(target.Destination)
				p.Target = &t
			}
			f.Player = p
			continue
		}

		f.Companions = append(f.Companions, Companion{
			Role:     bee.Role.String(),
			Pos:      point(pos.Pos),
			Allergy:  allergy.Value,
			Wiggling: cs.Wiggling.HasEntity(e),
		})
	}

	for _, e := range cs.Flower.GetAllEntities() {
		if pos, ok := cs.Position.GetComponent(e); ok {
			f.Stems = append(f.Stems, point(pos.Pos))
		}
	}

	for _, e := range cs.FlowerHead.GetAllEntities() {
		pos, ok := cs.Position.GetComponent(e)
		if !ok {
			continue
		}
		head, _ := cs.FlowerHead.GetComponent(e)
		f.Heads = append(f.Heads, Head{
			Pos:      point(pos.Pos),
			Rizz:     head.Rizz,
			RizzMax:  tu.Rizz.Max,
			Behavior: head.Behavior.String(),
			Snapping: cs.AttentionSnap.HasEntity(e),
		})
	}

	for _, e := range cs.Cache.GetAllEntities() {
		pos, ok := cs.Position.GetComponent(e)
		if !ok {
			continue
		}
		cache, _ := cs.Cache.GetComponent(e)
		f.Caches = append(f.Caches, Cache{Pos: point(pos.Pos), Active: cache.Active, Value: cache.Value})
	}

	for _, e := range cs.PollenGrain.GetAllEntities() {
		if pos, ok := cs.Position.GetComponent(e); ok {
			f.Pollen = append(f.Pollen, point(pos.Pos))
		}
	}

	for _, e := range cs.Particle.GetAllEntities() {
		pos, ok := cs.Position.GetComponent(e)
		if !ok {
			continue
		}
		p, _ := cs.Particle.GetComponent(e)
		f.Particles = append(f.Particles, Particle{Pos: point(pos.Pos), Alpha: p.Alpha()})
	}

	for _, e := range cs.Achoo.GetAllEntities() {
		pos, ok := cs.Position.GetComponent(e)
		if !ok {
			continue
		}
		a, _ := cs.Achoo.GetComponent(e)
		f.Texts = append(f.Texts, Text{Pos: point(pos.Pos), Text: a.Text})
	}

	return f
}
