package component

// DivaComponent marks the companion that lures flower attention by wiggling
type DivaComponent struct{}

// HealerComponent marks the companion that lowers player allergy
type HealerComponent struct {
	Rate  float64 // Allergy removed per second
	Range float64
}
