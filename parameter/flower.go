package parameter

import "time"

// Rizz Thresholds
const (
	RizzMax       = 100.0
	RizzDecayRate = 5.0
	RizzLow       = 30.0
	RizzHigh      = 70.0

	// RizzTickleDrop is subtracted from the nearest head when a cache is taken
	RizzTickleDrop = 30.0
)

// Flower Head Motion
const (
	FlowerBaseHeight   = 120.0
	FlowerPursuitSpeed = 80.0
	FlowerSnapDuration = 1 * time.Second
	FlowerSnapSpeed    = 150.0
	FlowerBlissRadius  = 20.0
	FlowerBlissSpeed   = 0.3
)

// Cache
const (
	CacheRespawn = 10 * time.Second
)

// Scene Layout
const (
	FlowerStemX = 150.0
	FlowerStemY = -100.0

	DivaSpawnX   = -150.0
	DivaSpawnY   = 50.0
	HealerSpawnX = -100.0
	HealerSpawnY = -50.0
)

// CacheOffsets are local positions of caches relative to the stem
var CacheOffsets = [3][2]float64{{0, 30}, {0, 60}, {0, 90}}
