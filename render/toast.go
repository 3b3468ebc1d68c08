package render

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/hamidzr/gwidgets/component"
)

const accentWidth = float32(4)

// ToastView draws a component.Toast: a colored accent bar for the severity,
// optional bold title, the message and a close control when dismissible.
// When the toast starts exiting its background fades out over the
// transition duration; once unmounted the view hides itself.
type ToastView struct {
	widget.BaseWidget
	toast *component.Toast

	background *canvas.Rectangle
	accent     *canvas.Rectangle
	title      *widget.Label
	message    *widget.Label
	closeBtn   *widget.Button

	exit        *fyne.Animation
	unsubscribe func()
}

// NewToastView builds the view and keeps it in sync with toast.
func NewToastView(toast *component.Toast) *ToastView {
	v := &ToastView{
		toast:      toast,
		background: canvas.NewRectangle(themeColor(theme.ColorNameOverlayBackground)),
		accent:     canvas.NewRectangle(color.Transparent),
		title:      widget.NewLabel(""),
		message:    widget.NewLabel(""),
	}
	v.background.CornerRadius = theme.InputRadiusSize()
	v.accent.SetMinSize(fyne.NewSize(accentWidth, 1))
	v.title.TextStyle = fyne.TextStyle{Bold: true}
	v.message.Wrapping = fyne.TextWrapWord
	v.closeBtn = widget.NewButtonWithIcon("", theme.CancelIcon(), toast.Dismiss)
	v.closeBtn.Importance = widget.LowImportance

	v.ExtendBaseWidget(v)
	v.apply()
	v.unsubscribe = toast.Subscribe(v.apply)
	return v
}

// Detach stops following the component and any running transition.
func (v *ToastView) Detach() {
	if v.unsubscribe != nil {
		v.unsubscribe()
		v.unsubscribe = nil
	}
	if v.exit != nil {
		v.exit.Stop()
	}
}

func (v *ToastView) apply() {
	state := v.toast.State()

	v.accent.FillColor = themeColor(KindColorName(state.Kind))
	v.accent.Refresh()
	setVisible(v.title, state.Title != "")
	v.title.SetText(state.Title)
	v.message.SetText(state.Message)
	setVisible(v.closeBtn, state.ShowClose && state.Shown())

	if !state.Shown() && state.Rendered() && v.exit == nil {
		v.startExit(state)
	}
	setVisible(v, state.Rendered())
}

func (v *ToastView) startExit(state component.ToastState) {
	start := themeColor(theme.ColorNameOverlayBackground)
	r, g, b, _ := start.RGBA()
	end := color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0}
	v.exit = canvas.NewColorRGBAAnimation(start, end, component.TransitionDuration(state.Transition), func(c color.Color) {
		v.background.FillColor = c
		canvas.Refresh(v.background)
	})
	v.exit.Start()
}

func (v *ToastView) CreateRenderer() fyne.WidgetRenderer {
	text := container.NewVBox(v.title, v.message)
	body := container.NewBorder(nil, nil, v.accent, v.closeBtn, text)
	return widget.NewSimpleRenderer(container.NewStack(v.background, container.NewPadded(body)))
}
