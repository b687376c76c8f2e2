package overlay

// Event is something that happened outside the button pipeline: connection
// changes and discoveries. Events are handled before any button command on
// each tick.
type Event interface{ event() }

// ToastEvent spawns a toast.
type ToastEvent struct{ Toast Toast }

// LastGamepadDisconnectedEvent fires when no used controller remains. The
// overlay hides itself since nobody can drive it anymore.
type LastGamepadDisconnectedEvent struct{}

func (ToastEvent) event() {}
func (LastGamepadDisconnectedEvent) event() {}

// Execute applies the event to the application.
func (e ToastEvent) Execute(app *App) {
	app.SpawnToast(e.Toast)
}

func (LastGamepadDisconnectedEvent) Execute(app *App) {
	if _, hidden := app.view.(HiddenView); !hidden {
		app.SpawnToast(LastGamepadDisconnectedToast{})
		app.ChangeView(HiddenView{})
	}
}
