package parameter

// ECS Limits
const (
	// EventQueueSize bounds pending events between two dispatches
	EventQueueSize = 2048
)
