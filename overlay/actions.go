package overlay

import (
	"github.com/samber/lo"

	"github.com/couchpad-app/couchpad/gamepad"
)

// Actions maps every physical button to a Command. Unset fields stay None.
// Views rebuild it from scratch each tick, nothing is carried over.
type Actions struct {
	A  Command // east
	B  Command // south
	X  Command // north
	Y  Command // west
	L1 Command
	L2 Command
	R1 Command
	R2 Command

	Up    Command
	Down  Command
	Left  Command
	Right Command

	Select Command
	Start  Command
	Home   Command
}

// Iter returns the full button to command table in a fixed order.
func (a Actions) Iter() []lo.Tuple2[gamepad.Button, Command] {
	return []lo.Tuple2[gamepad.Button, Command]{
		lo.T2(gamepad.East, a.A),
		lo.T2(gamepad.South, a.B),
		lo.T2(gamepad.North, a.X),
		lo.T2(gamepad.West, a.Y),
		lo.T2(gamepad.L1, a.L1),
		lo.T2(gamepad.L2, a.L2),
		lo.T2(gamepad.R1, a.R1),
		lo.T2(gamepad.R2, a.R2),
		lo.T2(gamepad.DPadUp, a.Up),
		lo.T2(gamepad.DPadDown, a.Down),
		lo.T2(gamepad.DPadLeft, a.Left),
		lo.T2(gamepad.DPadRight, a.Right),
		lo.T2(gamepad.Select, a.Select),
		lo.T2(gamepad.Start, a.Start),
		lo.T2(gamepad.Home, a.Home),
	}
}

// Get returns the command bound to button, None when unbound.
func (a Actions) Get(button gamepad.Button) Command {
	for _, pair := range a.Iter() {
		if pair.A == button {
			return pair.B
		}
	}
	return None
}
