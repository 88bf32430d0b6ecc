package core

import "time"

// SessionResult is the outcome record of one finished session
type SessionResult struct {
	Session   int
	Outcome   string
	Reason    string
	StartedAt time.Time
	EndedAt   time.Time
	Elapsed   time.Duration
	Pollen    int
	Sneezes   int
}
