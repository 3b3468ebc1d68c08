package model

// InputKind is the declared kind of a text field.
type InputKind string

const (
	InputText     InputKind = "text"
	InputPassword InputKind = "password"
	InputEmail    InputKind = "email"
	InputNumber   InputKind = "number"
)

// ParseInputKind maps unknown or empty values to InputText.
func ParseInputKind(s string) InputKind {
	switch InputKind(s) {
	case InputPassword, InputEmail, InputNumber:
		return InputKind(s)
	default:
		return InputText
	}
}

// ToastKind only affects styling.
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
	ToastInfo    ToastKind = "info"
	ToastWarning ToastKind = "warning"
)

// ToastKinds lists every severity in display order.
var ToastKinds = []ToastKind{ToastSuccess, ToastError, ToastInfo, ToastWarning}

// ParseToastKind maps unknown or empty values to ToastInfo.
func ParseToastKind(s string) ToastKind {
	for _, k := range ToastKinds {
		if string(k) == s {
			return k
		}
	}
	return ToastInfo
}

// Transition selects the exit animation of a toast.
type Transition string

const (
	TransitionSlide Transition = "slide"
	TransitionFade  Transition = "fade"
)

// ParseTransition maps unknown or empty values to TransitionSlide.
func ParseTransition(s string) Transition {
	if Transition(s) == TransitionFade {
		return TransitionFade
	}
	return TransitionSlide
}
