package ui

import (
	"testing"

	"fyne.io/fyne/v2/driver/mobile"
)

func TestTouchHandler(t *testing.T) {
	var downs, ups int
	th := NewTouchHandler(func() { downs++ }, func() { ups++ })

	th.TouchDown(&mobile.TouchEvent{})
	if !th.Pressed() {
		t.Fatal("Expected handler to be pressed after TouchDown")
	}

	th.TouchUp(&mobile.TouchEvent{})
	if th.Pressed() {
		t.Error("Expected handler to be released after TouchUp")
	}

	// A second up without a down must not fire again
	th.TouchUp(&mobile.TouchEvent{})
	if downs != 1 || ups != 1 {
		t.Errorf("Expected 1 down and 1 up, got %d and %d", downs, ups)
	}

	th.TouchDown(&mobile.TouchEvent{})
	th.TouchCancel(&mobile.TouchEvent{})
	if th.Pressed() || ups != 2 {
		t.Errorf("Expected cancel to release, pressed=%v ups=%d", th.Pressed(), ups)
	}
}

func TestTouchHandler_NilCallbacks(t *testing.T) {
	th := NewTouchHandler(nil, nil)
	th.TouchDown(&mobile.TouchEvent{})
	th.TouchUp(&mobile.TouchEvent{})
	if th.Pressed() {
		t.Error("Expected handler to be released")
	}
}
