package component

import (
	"sync"

	"github.com/google/uuid"
	"github.com/hamidzr/gwidgets/model"
	"github.com/sirupsen/logrus"
)

// ValueMode tells who owns the value of an Input.
type ValueMode int

const (
	// ModeUncontrolled keeps a component-owned copy seeded once.
	ModeUncontrolled ValueMode = iota
	// ModeControlled displays whatever the host last supplied.
	ModeControlled
)

func (m ValueMode) String() string {
	if m == ModeControlled {
		return "controlled"
	}
	return "uncontrolled"
}

// InputProps configures an Input.
type InputProps struct {
	ID          string
	Label       string
	HelperText  string
	Placeholder string
	Kind        model.InputKind
	Error       bool
	Clearable   bool
	// Value makes the input controlled when it is non-nil at construction,
	// including a pointer to an empty string.
	Value *string
	// DefaultValue seeds an uncontrolled input once.
	DefaultValue string
	OnChange     func(value string)
	OnClear      func()
	// Attrs are passed through to the rendered field, e.g. min, max,
	// placeholder, disabled, readonly.
	Attrs map[string]string
}

// Controlled returns a pointer suitable for InputProps.Value.
func Controlled(value string) *string {
	return &value
}

// inputValue is the tagged ownership variant. Only the field matching mode
// is authoritative.
type inputValue struct {
	mode     ValueMode
	external string
	internal string
}

func (v inputValue) current() string {
	if v.mode == ModeControlled {
		return v.external
	}
	return v.internal
}

// InputState is a consistent snapshot for renderers.
type InputState struct {
	ID              string
	Label           string
	HelperText      string
	Placeholder     string
	Kind            model.InputKind
	EffectiveKind   model.InputKind
	Mode            ValueMode
	Value           string
	Error           bool
	Clearable       bool
	PasswordVisible bool
	ShowClear       bool
	ShowToggle      bool
	Disabled        bool
	ReadOnly        bool
	Attrs           map[string]string
}

// HasControls reports whether any trailing control is rendered.
func (s InputState) HasControls() bool {
	return s.ShowClear || s.ShowToggle
}

// Input is a labelled text field. Its value mode is decided once, at
// construction, and never flips afterwards.
type Input struct {
	notifier
	mu           sync.Mutex
	props        InputProps
	id           string
	value        inputValue
	showPassword bool
}

// NewInput creates an input. Supplying props.Value makes it controlled for
// its whole lifetime.
func NewInput(props InputProps) *Input {
	in := &Input{props: normalizeInputProps(props), id: props.ID}
	if in.id == "" {
		in.id = "input-" + uuid.NewString()
	}
	if props.Value != nil {
		in.value = inputValue{mode: ModeControlled, external: *props.Value}
	} else {
		in.value = inputValue{mode: ModeUncontrolled, internal: props.DefaultValue}
	}
	return in
}

func normalizeInputProps(props InputProps) InputProps {
	if props.Kind == "" {
		props.Kind = model.InputText
	}
	return props
}

// SetProps applies a host re-render. A controlled input re-synchronises to
// props.Value; when that value went missing the last known value is kept and
// ErrControlledValueMissing is returned. An uncontrolled input ignores
// props.Value and returns ErrUncontrolledValueSupplied.
func (in *Input) SetProps(props InputProps) error {
	in.mu.Lock()
	var err error
	switch in.value.mode {
	case ModeControlled:
		if props.Value == nil {
			err = model.ErrControlledValueMissing
		} else {
			in.value.external = *props.Value
		}
	case ModeUncontrolled:
		if props.Value != nil {
			err = model.ErrUncontrolledValueSupplied
		}
	}
	if props.ID != "" {
		in.id = props.ID
	}
	in.props = normalizeInputProps(props)
	id := in.id
	in.mu.Unlock()

	if err != nil {
		logrus.WithField("input", id).WithError(err).Warn("ignoring value supplied in the wrong mode")
	}
	in.notify()
	return err
}

// SetValue pushes a new external value into a controlled input.
func (in *Input) SetValue(value string) error {
	in.mu.Lock()
	if in.value.mode != ModeControlled {
		id := in.id
		in.mu.Unlock()
		logrus.WithField("input", id).Warn("SetValue on an uncontrolled input")
		return model.ErrUncontrolledValueSupplied
	}
	in.value.external = value
	in.mu.Unlock()
	in.notify()
	return nil
}

// Type records a user edit. An uncontrolled input stores it; a controlled
// input keeps displaying the host value until the host pushes a new one.
func (in *Input) Type(text string) {
	in.mu.Lock()
	if in.value.mode == ModeUncontrolled {
		in.value.internal = text
	}
	onChange := in.props.OnChange
	in.mu.Unlock()

	if onChange != nil {
		onChange(text)
	}
	in.notify()
}

// Clear empties the value, then emits a change to "" followed by the clear
// notification.
func (in *Input) Clear() {
	in.mu.Lock()
	if in.value.mode == ModeUncontrolled {
		in.value.internal = ""
	}
	onChange, onClear := in.props.OnChange, in.props.OnClear
	id := in.id
	in.mu.Unlock()

	logrus.WithField("input", id).Trace("input cleared")
	if onChange != nil {
		onChange("")
	}
	if onClear != nil {
		onClear()
	}
	in.notify()
}

// TogglePasswordVisibility flips whether a password field is obscured.
func (in *Input) TogglePasswordVisibility() {
	in.mu.Lock()
	in.showPassword = !in.showPassword
	in.mu.Unlock()
	in.notify()
}

// Value is the authoritative value for the current mode.
func (in *Input) Value() string {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.value.current()
}

// Mode is fixed at construction.
func (in *Input) Mode() ValueMode {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.value.mode
}

// ID is the supplied or generated field identifier.
func (in *Input) ID() string {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.id
}

// State snapshots everything a renderer needs.
func (in *Input) State() InputState {
	in.mu.Lock()
	defer in.mu.Unlock()

	value := in.value.current()
	kind := in.props.Kind
	effective := kind
	if kind == model.InputPassword && in.showPassword {
		effective = model.InputText
	}
	attrs := make(map[string]string, len(in.props.Attrs))
	for k, v := range in.props.Attrs {
		attrs[k] = v
	}
	placeholder := in.props.Placeholder
	if placeholder == "" {
		placeholder = attrs["placeholder"]
	}
	_, disabled := attrs["disabled"]
	_, readOnly := attrs["readonly"]

	return InputState{
		ID:              in.id,
		Label:           in.props.Label,
		HelperText:      in.props.HelperText,
		Placeholder:     placeholder,
		Kind:            kind,
		EffectiveKind:   effective,
		Mode:            in.value.mode,
		Value:           value,
		Error:           in.props.Error,
		Clearable:       in.props.Clearable,
		PasswordVisible: in.showPassword,
		ShowClear:       in.props.Clearable && value != "",
		ShowToggle:      kind == model.InputPassword,
		Disabled:        disabled,
		ReadOnly:        readOnly,
		Attrs:           attrs,
	}
}
