package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// Clickable is a region exposing a single release event
type Clickable interface {
	OnRelease()
}

// RefreshButton is a rounded button that shrinks slightly while pressed and
// fires OnReleased when tapped
type RefreshButton struct {
	widget.BaseWidget

	Text       string
	OnReleased func()

	scale     float32
	disabled  bool
	animation *fyne.Animation
	touch     *TouchHandler
}

var (
	_ Clickable          = (*RefreshButton)(nil)
	_ fyne.Tappable      = (*RefreshButton)(nil)
	_ fyne.Disableable   = (*RefreshButton)(nil)
	_ desktop.Mouseable  = (*RefreshButton)(nil)
	_ desktop.Cursorable = (*RefreshButton)(nil)
	_ mobile.Touchable   = (*RefreshButton)(nil)
)

// NewRefreshButton creates a new refresh button
func NewRefreshButton(text string, onReleased func()) *RefreshButton {
	b := &RefreshButton{
		Text:       text,
		OnReleased: onReleased,
		scale:      1,
	}
	b.touch = NewTouchHandler(b.press, b.release)
	b.ExtendBaseWidget(b)
	return b
}

// CreateRenderer implements fyne.Widget
func (b *RefreshButton) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewRectangle(ColorButton)
	background.CornerRadius = RefreshButtonRadius

	label := canvas.NewText(b.Text, ColorText)
	label.Alignment = fyne.TextAlignCenter
	label.TextStyle = fyne.TextStyle{Bold: true}

	return &refreshButtonRenderer{
		button:     b,
		background: background,
		label:      label,
		objects:    []fyne.CanvasObject{background, label},
	}
}

// SetText updates the caption
func (b *RefreshButton) SetText(text string) {
	b.Text = text
	b.Refresh()
}

// OnRelease dispatches the release event unless the button is disabled
func (b *RefreshButton) OnRelease() {
	if b.disabled || b.OnReleased == nil {
		return
	}
	b.OnReleased()
}

// Tapped implements fyne.Tappable
func (b *RefreshButton) Tapped(*fyne.PointEvent) {
	b.OnRelease()
}

// MouseDown implements desktop.Mouseable
func (b *RefreshButton) MouseDown(*desktop.MouseEvent) {
	b.press()
}

// MouseUp implements desktop.Mouseable
func (b *RefreshButton) MouseUp(*desktop.MouseEvent) {
	b.release()
}

// Cursor implements desktop.Cursorable
func (b *RefreshButton) Cursor() desktop.Cursor {
	if b.disabled {
		return desktop.DefaultCursor
	}
	return desktop.PointerCursor
}

// TouchDown implements mobile.Touchable
func (b *RefreshButton) TouchDown(event *mobile.TouchEvent) {
	b.touch.TouchDown(event)
}

// TouchUp implements mobile.Touchable
func (b *RefreshButton) TouchUp(event *mobile.TouchEvent) {
	b.touch.TouchUp(event)
}

// TouchCancel implements mobile.Touchable
func (b *RefreshButton) TouchCancel(event *mobile.TouchEvent) {
	b.touch.TouchCancel(event)
}

// Disable implements fyne.Disableable
func (b *RefreshButton) Disable() {
	if b.disabled {
		return
	}
	b.disabled = true
	b.Refresh()
}

// Enable implements fyne.Disableable
func (b *RefreshButton) Enable() {
	if !b.disabled {
		return
	}
	b.disabled = false
	b.Refresh()
}

// Disabled implements fyne.Disableable
func (b *RefreshButton) Disabled() bool {
	return b.disabled
}

// Scale returns the current press scale of the background
func (b *RefreshButton) Scale() float32 {
	return b.scale
}

func (b *RefreshButton) press() {
	if b.disabled {
		return
	}
	b.animateTo(PressScale)
}

func (b *RefreshButton) release() {
	b.animateTo(1)
}

// animateTo tweens the background scale towards target
func (b *RefreshButton) animateTo(target float32) {
	if b.animation != nil {
		b.animation.Stop()
	}
	from := b.scale
	b.animation = fyne.NewAnimation(PressAnimationTime, func(progress float32) {
		b.scale = from + (target-from)*progress
		b.Refresh()
	})
	b.animation.Curve = fyne.AnimationEaseOut
	b.animation.Start()
}

type refreshButtonRenderer struct {
	button     *RefreshButton
	background *canvas.Rectangle
	label      *canvas.Text
	objects    []fyne.CanvasObject
}

func (r *refreshButtonRenderer) Layout(size fyne.Size) {
	scale := r.button.scale
	bg := fyne.NewSize(size.Width*scale, size.Height*scale)
	r.background.Resize(bg)
	r.background.Move(fyne.NewPos((size.Width-bg.Width)/2, (size.Height-bg.Height)/2))

	textSize := r.label.MinSize()
	r.label.Resize(fyne.NewSize(size.Width, textSize.Height))
	r.label.Move(fyne.NewPos(0, (size.Height-textSize.Height)/2))
}

func (r *refreshButtonRenderer) MinSize() fyne.Size {
	minSize := fyne.NewSize(RefreshButtonWidth, RefreshButtonHeight)
	if fyne.CurrentDevice().IsMobile() {
		minSize = fyne.NewSize(MobileButtonWidth, MobileButtonHeight)
	}
	text := r.label.MinSize()
	return fyne.NewSize(fyne.Max(minSize.Width, text.Width+MinTouchTargetSize), fyne.Max(minSize.Height, text.Height))
}

func (r *refreshButtonRenderer) Refresh() {
	r.label.Text = r.button.Text
	r.background.FillColor = ColorButton
	if r.button.disabled {
		r.background.FillColor = darken(ColorButton, PressedButtonDarkenBy*2)
	}
	r.Layout(r.button.Size())
	r.background.Refresh()
	r.label.Refresh()
}

func (r *refreshButtonRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *refreshButtonRenderer) Destroy() {
	if r.button.animation != nil {
		r.button.animation.Stop()
	}
}

// darken lowers each channel by amount, saturating at zero
func darken(c color.RGBA, amount uint8) color.RGBA {
	sub := func(v uint8) uint8 {
		if v < amount {
			return 0
		}
		return v - amount
	}
	return color.RGBA{R: sub(c.R), G: sub(c.G), B: sub(c.B), A: c.A}
}
