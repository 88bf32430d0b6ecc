package event

// EventType represents the type of game event
type EventType int

const (
	// EventNone is the zero value, never pushed
	EventNone EventType = iota

	// === Audio Event ===

	// EventSoundRequest requests audio playback
	// Trigger: Systems requiring audio feedback
	// Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest

	// === Input Event ===

	// EventMoveRequest sets the player bee destination (click), restarts when not playing
	// Trigger: Terminal host mouse click, AutopilotSystem
	// Consumer: MovementSystem, GameSystem | Payload: *MoveRequestPayload
	EventMoveRequest

	// EventWiggleRequest starts a player wiggle
	// Trigger: Terminal host space/right click, AutopilotSystem
	// Consumer: WiggleSystem | Payload: nil
	EventWiggleRequest

	// EventRestartRequest returns to Playing from Won/Lost
	// Trigger: Terminal host key, AutopilotSystem
	// Consumer: GameSystem | Payload: nil
	EventRestartRequest

	// === Gameplay Event ===

	// EventPollenCollected signals pollen added to the player
	// Trigger: CollectionSystem, CacheSystem
	// Consumer: EffectSystem, AudioSystem, JournalSystem | Payload: *PollenCollectedPayload
	EventPollenCollected

	// EventTickle signals a cache was taken, nearest head loses rizz and snaps
	// Trigger: CacheSystem
	// Consumer: RizzSystem | Payload: *TicklePayload
	EventTickle

	// EventSneeze signals a sneeze burst on the player
	// Trigger: SneezeSystem
	// Consumer: EffectSystem, AudioSystem, JournalSystem | Payload: *SneezePayload
	EventSneeze

	// EventWiggleStarted signals any bee began a wiggle
	// Trigger: WiggleSystem, DivaSystem
	// Consumer: AudioSystem, JournalSystem | Payload: *WigglePayload
	EventWiggleStarted

	// EventWiggleComplete signals rizz applied at the end of a wiggle
	// Trigger: WiggleSystem
	// Consumer: JournalSystem | Payload: *WigglePayload
	EventWiggleComplete

	// === Session Event ===

	// EventGameStateChanged signals a phase transition
	// Trigger: GameSystem
	// Consumer: JournalSystem, ObserverSystem | Payload: *GameStateChangedPayload
	EventGameStateChanged

	// EventSessionStart signals a new session entered Playing
	// Trigger: GameSystem on first tick and every restart
	// Consumer: TelemetrySystem, JournalSystem | Payload: *SessionStartPayload
	EventSessionStart

	// EventSessionEnd carries the result of a finished session
	// Trigger: GameSystem on Won/Lost
	// Consumer: HistorySystem, TelemetrySystem, JournalSystem, AutopilotSystem | Payload: *SessionEndPayload
	EventSessionEnd

	// === Meta Event ===

	// EventGameReset signals all systems to reset session state
	// Trigger: GameSystem on restart
	// Consumer: Systems | Payload: nil
	EventGameReset

	// EventMetaSystemCommandRequest enables or disables a system by name
	// Trigger: CLI flags, tests
	// Consumer: Systems | Payload: *MetaSystemCommandPayload
	EventMetaSystemCommandRequest
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64 // Frame number when event was created
}
