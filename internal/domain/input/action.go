// Package input defines the logical actions the game reacts to.
//
// Raw keys are mapped to actions outside the core (see system.InputSystem);
// entities and scenes only ask whether an action is currently held.
package input

// Action is a logical input action
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionLeft
	ActionDown
	ActionRight
	ActionConfirm
	ActionCancel
	ActionX
	ActionY
	ActionStart
	ActionSelect
	ActionReset
	ActionToggleFullscreen
	ActionToggleDebug
	ActionQuit

	actionCount
)

// Actions lists every real action in declaration order
func Actions() []Action {
	out := make([]Action, 0, actionCount-1)
	for a := ActionUp; a < actionCount; a++ {
		out = append(out, a)
	}
	return out
}

// String returns the string representation of the action
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionLeft:
		return "Left"
	case ActionDown:
		return "Down"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionCancel:
		return "Cancel"
	case ActionX:
		return "X"
	case ActionY:
		return "Y"
	case ActionStart:
		return "Start"
	case ActionSelect:
		return "Select"
	case ActionReset:
		return "Reset"
	case ActionToggleFullscreen:
		return "ToggleFullscreen"
	case ActionToggleDebug:
		return "ToggleDebug"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Source answers whether a logical action is currently held
type Source interface {
	Pressing(a Action) bool
}

// State is a snapshot of held actions. The zero value holds nothing.
type State map[Action]bool

// Pressing implements Source
func (s State) Pressing(a Action) bool {
	return s[a]
}

// Held builds a State with the given actions held
func Held(actions ...Action) State {
	s := make(State, len(actions))
	for _, a := range actions {
		s[a] = true
	}
	return s
}

// Nothing is a Source with no actions held
var Nothing Source = State(nil)
