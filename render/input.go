package render

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/hamidzr/gwidgets/component"
	"github.com/hamidzr/gwidgets/model"
)

// InputEntry is a widget.Entry that captures certain key events.
type InputEntry struct {
	widget.Entry
	OnKeyDown            func(key *fyne.KeyEvent)
	PropagationBlacklist map[fyne.KeyName]bool
	kind                 model.InputKind
}

// NewInputEntry returns an extended single line entry.
func NewInputEntry() *InputEntry {
	e := &InputEntry{}
	e.ExtendBaseWidget(e)
	return e
}

// TypedKey implements the fyne.TypedKeyReceiver interface.
func (e *InputEntry) TypedKey(key *fyne.KeyEvent) {
	if e.OnKeyDown != nil {
		e.OnKeyDown(key)
	}
	if e.PropagationBlacklist != nil {
		if e.PropagationBlacklist[key.Name] {
			return
		}
	}
	e.Entry.TypedKey(key)
}

// Keyboard picks the virtual keyboard on mobile drivers.
func (e *InputEntry) Keyboard() mobile.KeyboardType {
	switch {
	case e.Password:
		return mobile.PasswordKeyboard
	case e.kind == model.InputNumber:
		return mobile.NumberKeyboard
	default:
		return mobile.SingleLineKeyboard
	}
}

// InputField draws a component.Input: label, entry, trailing clear and
// visibility controls, and helper text. The error state outlines the field
// and turns the helper red.
type InputField struct {
	widget.BaseWidget
	input *component.Input

	label    *widget.Label
	entry    *InputEntry
	clearBtn *widget.Button
	eyeBtn   *widget.Button
	helper   *widget.Label
	controls *fyne.Container
	frame    *canvas.Rectangle

	// syncing is set while the entry is written from component state so the
	// resulting OnChanged is not mistaken for a user edit.
	syncing     bool
	unsubscribe func()
}

// NewInputField builds the widget and keeps it in sync with input.
func NewInputField(input *component.Input) *InputField {
	f := &InputField{
		input:  input,
		label:  widget.NewLabel(""),
		entry:  NewInputEntry(),
		helper: widget.NewLabel(""),
		frame:  canvas.NewRectangle(color.Transparent),
	}
	f.frame.StrokeWidth = 2
	f.frame.CornerRadius = theme.InputRadiusSize()
	f.label.TextStyle = fyne.TextStyle{Bold: true}
	f.helper.Wrapping = fyne.TextWrapWord
	f.clearBtn = widget.NewButtonWithIcon("", theme.ContentClearIcon(), input.Clear)
	f.clearBtn.Importance = widget.LowImportance
	f.eyeBtn = widget.NewButtonWithIcon("", theme.VisibilityIcon(), input.TogglePasswordVisibility)
	f.eyeBtn.Importance = widget.LowImportance
	f.controls = container.NewHBox(f.eyeBtn, f.clearBtn)

	f.entry.OnChanged = func(text string) {
		if f.syncing {
			return
		}
		f.input.Type(text)
	}
	f.entry.OnKeyDown = func(key *fyne.KeyEvent) {
		if key.Name == fyne.KeyEscape && f.input.State().ShowClear {
			f.input.Clear()
		}
	}

	f.ExtendBaseWidget(f)
	f.apply()
	f.unsubscribe = input.Subscribe(f.apply)
	return f
}

// Entry exposes the text entry, mostly for focusing.
func (f *InputField) Entry() *InputEntry {
	return f.entry
}

// Detach stops following the component.
func (f *InputField) Detach() {
	if f.unsubscribe != nil {
		f.unsubscribe()
		f.unsubscribe = nil
	}
}

func (f *InputField) apply() {
	state := f.input.State()

	setVisible(f.label, state.Label != "")
	f.label.SetText(state.Label)

	f.entry.kind = state.Kind
	f.entry.SetPlaceHolder(state.Placeholder)
	password := state.EffectiveKind == model.InputPassword
	if f.entry.Password != password {
		f.entry.Password = password
		f.entry.Refresh()
	}
	if f.entry.Text != state.Value {
		f.syncing = true
		f.entry.SetText(state.Value)
		f.syncing = false
	}
	if state.Disabled || state.ReadOnly {
		f.entry.Disable()
	} else {
		f.entry.Enable()
	}

	setVisible(f.clearBtn, state.ShowClear)
	setVisible(f.eyeBtn, state.ShowToggle)
	if state.PasswordVisible {
		f.eyeBtn.SetIcon(theme.VisibilityOffIcon())
	} else {
		f.eyeBtn.SetIcon(theme.VisibilityIcon())
	}
	setVisible(f.controls, state.HasControls())

	f.frame.StrokeColor = themeColor(theme.ColorNameError)
	setVisible(f.frame, state.Error)
	f.frame.Refresh()

	setVisible(f.helper, state.HelperText != "")
	f.helper.SetText(state.HelperText)
	if state.Error {
		f.helper.Importance = widget.DangerImportance
	} else {
		f.helper.Importance = widget.MediumImportance
	}
	f.helper.Refresh()
}

func setVisible(o fyne.CanvasObject, visible bool) {
	if visible {
		o.Show()
	} else {
		o.Hide()
	}
}

func (f *InputField) CreateRenderer() fyne.WidgetRenderer {
	row := container.New(NewTrailingLayout(), f.entry, f.controls)
	return widget.NewSimpleRenderer(container.NewVBox(f.label, container.NewStack(row, f.frame), f.helper))
}
