package network

import "encoding/json"

// Version is the observer protocol version
const Version = "1"

// Message types
const (
	TypeSubscribe = "SUBSCRIBE"
	TypeFrame     = "FRAME"
)

// SubscribeMsg is the first client message and may be resent to change the rate
// Every N delivers one frame per N ticks; zero or negative means every tick
type SubscribeMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version,omitempty"`
	Every           int    `json:"every"`
}

// FrameMsg wraps one captured frame
type FrameMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	Tick            int64  `json:"tick"`
	Frame           any    `json:"frame"`
}

// BootstrapResponse is served on GET /bootstrap
type BootstrapResponse struct {
	ProtocolVersion string          `json:"protocol_version"`
	TickRateHz      int             `json:"tick_rate_hz"`
	Tuning          json.RawMessage `json:"tuning"`
}

const maxEvery = 600

func normalizeSubscribe(sub *SubscribeMsg) {
	if sub.Every <= 0 {
		sub.Every = 1
	}
	if sub.Every > maxEvery {
		sub.Every = maxEvery
	}
}

func validSubscribe(sub SubscribeMsg) bool {
	if sub.Type != TypeSubscribe {
		return false
	}
	return sub.ProtocolVersion == "" || sub.ProtocolVersion == Version
}
