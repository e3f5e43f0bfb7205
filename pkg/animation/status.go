package animation

import "fmt"

// Status represents where an animator is in its lifecycle.
//
// The status follows this state machine:
//
//	         Start()                 Update() at 100%
//	Idle ──────────────► Running ──────────────────► Completed
//	 ▲                     │  ▲                          │
//	 │       Stop()        │  │         Start()          │
//	 └─────────────────────┘  └──────────────────────────┘
//
// Completed behaves like Idle except that it records that the last run
// reached its end values, which were committed as the new start values.
type Status int

const (
	// StatusIdle means the animator has not started or was stopped.
	StatusIdle Status = iota
	// StatusRunning means Update advances the current values.
	StatusRunning
	// StatusCompleted means the last run reached its end values.
	StatusCompleted
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}
