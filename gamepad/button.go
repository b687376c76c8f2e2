// Package gamepad aggregates raw controller events into the per-tick input
// view the overlay consumes: buttons newly pressed this tick, time since
// last input, and connect/disconnect notices.
//
// Raw device polling lives behind the Backend interface; enumeration and
// filtering heuristics are a backend concern, not handled here.
package gamepad

// Button identifies one of the physical controls the overlay binds commands to.
type Button int

const (
	East Button = iota
	South
	North
	West
	L1
	L2
	R1
	R2
	DPadUp
	DPadDown
	DPadLeft
	DPadRight
	Select
	Start
	Home

	// ButtonCount is the size of a complete button->command table.
	ButtonCount int = iota
)

// String returns the conventional controller label for the button.
func (b Button) String() string {
	switch b {
	case East:
		return "A"
	case South:
		return "B"
	case North:
		return "X"
	case West:
		return "Y"
	case L1:
		return "L1"
	case L2:
		return "L2"
	case R1:
		return "R1"
	case R2:
		return "R2"
	case DPadUp:
		return "Up"
	case DPadDown:
		return "Down"
	case DPadLeft:
		return "Left"
	case DPadRight:
		return "Right"
	case Select:
		return "Select"
	case Start:
		return "Start"
	case Home:
		return "Home"
	default:
		return "?"
	}
}
