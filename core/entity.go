package core

// Entity is a unique identifier for a game object
// Zero is reserved and never allocated by the world
type Entity uint64

// NoEntity marks an unset entity reference
const NoEntity Entity = 0
