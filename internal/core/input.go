package core

// Action is a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // K, Up arrow
	ActionDown           // J, Down arrow
	ActionLeft           // H, Left arrow
	ActionRight          // L, Right arrow
	ActionRestart        // R - rebuild the current level
	ActionReload         // Ctrl+R - reload the map set from its source
	ActionDebug          // D - toggle engine tracing
	ActionHelp           // ? - toggle the full help view
	ActionBack           // Esc, B - leave a sub view
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionReload:
		return "Reload"
	case ActionDebug:
		return "Debug"
	case ActionHelp:
		return "Help"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action is one of the four directions.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionRight
}
