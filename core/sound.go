package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundCollect SoundType = iota // Ground pollen pickup
	SoundCache                    // Pollen cache pickup
	SoundWiggle                   // Wiggle started
	SoundSneeze                   // Sneeze burst
	SoundWin                      // Session won
	SoundLose                     // Session lost
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{"collect", "cache", "wiggle", "sneeze", "win", "lose"}

// String returns the lowercase sound name
func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}
