package state

import "fmt"

// TransitionState is where the scene manager is in a scene change
type TransitionState int

const (
	Idle TransitionState = iota
	LeavingOld
	EnteringNew
)

// String returns the string representation of the transition state
func (s TransitionState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case LeavingOld:
		return "LeavingOld"
	case EnteringNew:
		return "EnteringNew"
	default:
		return "Unknown"
	}
}

// InFlight reports whether a transition is animating
func (s TransitionState) InFlight() bool {
	return s != Idle
}

// ReentryPolicy decides what happens to a scene change requested while
// another one is still animating
type ReentryPolicy int

const (
	// ReentryDrop ignores the request
	ReentryDrop ReentryPolicy = iota
	// ReentryQueue keeps the latest request and starts it once Idle
	ReentryQueue
)

// String returns the string representation of the policy
func (p ReentryPolicy) String() string {
	switch p {
	case ReentryDrop:
		return "drop"
	case ReentryQueue:
		return "queue"
	default:
		return "unknown"
	}
}

// ParseReentryPolicy converts a config value to a ReentryPolicy.
// The empty string selects ReentryDrop.
func ParseReentryPolicy(s string) (ReentryPolicy, error) {
	switch s {
	case "", "drop":
		return ReentryDrop, nil
	case "queue":
		return ReentryQueue, nil
	default:
		return ReentryDrop, fmt.Errorf("unknown reentry policy %q", s)
	}
}
