package ui

import (
	"fyne.io/fyne/v2/driver/mobile"
)

// TouchHandler maps raw touch events to press/release visuals. Taps are
// delivered separately through fyne.Tappable, so no action runs here.
type TouchHandler struct {
	onDown  func()
	onUp    func()
	pressed bool
}

// NewTouchHandler creates a new touch handler
func NewTouchHandler(onDown, onUp func()) *TouchHandler {
	return &TouchHandler{
		onDown: onDown,
		onUp:   onUp,
	}
}

// TouchDown handles touch down events
func (th *TouchHandler) TouchDown(*mobile.TouchEvent) {
	th.pressed = true
	if th.onDown != nil {
		th.onDown()
	}
}

// TouchUp handles touch up events
func (th *TouchHandler) TouchUp(*mobile.TouchEvent) {
	th.finish()
}

// TouchCancel restores the released look when the touch leaves the widget
func (th *TouchHandler) TouchCancel(*mobile.TouchEvent) {
	th.finish()
}

// Pressed reports whether a touch is currently held
func (th *TouchHandler) Pressed() bool {
	return th.pressed
}

func (th *TouchHandler) finish() {
	if !th.pressed {
		return
	}
	th.pressed = false
	if th.onUp != nil {
		th.onUp()
	}
}
