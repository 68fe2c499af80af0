package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// MobileUI provides mobile-specific UI enhancements
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// GetPadding returns appropriate outer padding for the device
func (m *MobileUI) GetPadding() float32 {
	if m.IsMobileDevice() {
		return 10
	}
	return 20 // matches the desktop layout padding
}

// WrapRefreshable adds pull-to-refresh to content on mobile devices only
func (m *MobileUI) WrapRefreshable(content fyne.CanvasObject, refresh func()) fyne.CanvasObject {
	if !m.IsMobileDevice() {
		return content
	}
	return NewPullToRefresh(content, refresh)
}

// Pad surrounds content with device-appropriate padding
func (m *MobileUI) Pad(content fyne.CanvasObject) fyne.CanvasObject {
	p := m.GetPadding()
	return container.New(&paddedLayout{padding: p}, content)
}

// paddedLayout insets every object by a fixed amount on all sides
type paddedLayout struct {
	padding float32
}

func (l *paddedLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	pos := fyne.NewPos(l.padding, l.padding)
	inner := fyne.NewSize(size.Width-2*l.padding, size.Height-2*l.padding)
	for _, o := range objects {
		o.Move(pos)
		o.Resize(inner)
	}
}

func (l *paddedLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	minSize := fyne.NewSize(0, 0)
	for _, o := range objects {
		minSize = minSize.Max(o.MinSize())
	}
	return minSize.Add(fyne.NewSize(2*l.padding, 2*l.padding))
}
