package component

import (
	"sync"
	"time"

	"github.com/frostbyte73/core"
	"github.com/hamidzr/gwidgets/model"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultToastLifetime applies when the configured lifetime is not positive.
	DefaultToastLifetime = 3000 * time.Millisecond
	// SlideDuration is the exit transition of a sliding toast.
	SlideDuration = 300 * time.Millisecond
	// FadeDuration is the exit transition of a fading toast.
	FadeDuration = 350 * time.Millisecond
)

// ToastPhase is where a toast is in its lifecycle.
type ToastPhase int

const (
	PhaseVisible ToastPhase = iota
	PhaseExiting
	PhaseUnmounted
)

func (p ToastPhase) String() string {
	switch p {
	case PhaseVisible:
		return "visible"
	case PhaseExiting:
		return "exiting"
	case PhaseUnmounted:
		return "unmounted"
	default:
		return "unknown"
	}
}

// ToastProps configures a Toast. The zero value is not dismissible; use
// DefaultToastProps for the usual defaults.
type ToastProps struct {
	Message string
	Title   string
	Kind    model.ToastKind
	// Lifetime of the visible phase. Zero or negative means
	// DefaultToastLifetime, not forever; disable Dismissible to keep a toast.
	Lifetime    time.Duration
	Dismissible bool
	Transition  model.Transition
	OnClose     func()
}

// DefaultToastProps is an info toast that slides out after the default
// lifetime and can be closed by the user.
func DefaultToastProps(message string) ToastProps {
	return ToastProps{
		Message:     message,
		Kind:        model.ToastInfo,
		Lifetime:    DefaultToastLifetime,
		Dismissible: true,
		Transition:  model.TransitionSlide,
	}
}

// ResolveLifetime maps non-positive lifetimes to the default.
func ResolveLifetime(d time.Duration) time.Duration {
	if d <= 0 {
		return DefaultToastLifetime
	}
	return d
}

// TransitionDuration is how long the exit transition of t takes.
func TransitionDuration(t model.Transition) time.Duration {
	if t == model.TransitionFade {
		return FadeDuration
	}
	return SlideDuration
}

func normalizeToastProps(props ToastProps) ToastProps {
	if props.Kind == "" {
		props.Kind = model.ToastInfo
	}
	if props.Transition == "" {
		props.Transition = model.TransitionSlide
	}
	return props
}

// ToastState is a consistent snapshot for renderers.
type ToastState struct {
	Phase      ToastPhase
	Message    string
	Title      string
	Kind       model.ToastKind
	Transition model.Transition
	// ShowClose is whether the close control is rendered.
	ShowClose bool
}

// Rendered is false once the toast unmounted.
func (s ToastState) Rendered() bool {
	return s.Phase != PhaseUnmounted
}

// Shown selects the "shown" styling; an exiting toast uses "hidden" styling
// while its transition plays.
func (s ToastState) Shown() bool {
	return s.Phase == PhaseVisible
}

// ToastOption customises a Toast.
type ToastOption func(*Toast)

// WithToastScheduler replaces the wall clock used by both toast timers.
func WithToastScheduler(sched Scheduler) ToastOption {
	return func(t *Toast) {
		t.sched = sched
	}
}

// Toast is a notification that goes visible -> exiting -> unmounted. The
// auto-dismiss timer ends the visible phase, the transition timer ends the
// exiting phase and notifies the host exactly once.
type Toast struct {
	notifier
	mu          sync.Mutex
	props       ToastProps
	phase       ToastPhase
	autoDismiss timerSlot
	hide        timerSlot
	sched       Scheduler
	closed      core.Fuse
	tornDown    bool
}

// NewToast presents a toast right away and arms its auto-dismiss timer.
func NewToast(props ToastProps, opts ...ToastOption) *Toast {
	t := &Toast{
		props: normalizeToastProps(props),
		phase: PhaseVisible,
		sched: ClockScheduler{},
	}
	for _, opt := range opts {
		opt(t)
	}
	t.mu.Lock()
	t.armAutoDismissLocked()
	t.mu.Unlock()
	return t
}

// loggerLocked must be called with t.mu held.
func (t *Toast) loggerLocked() *logrus.Entry {
	return logrus.WithFields(logrus.Fields{"toast": t.props.Title, "kind": t.props.Kind})
}

func (t *Toast) armAutoDismissLocked() {
	t.autoDismiss.cancel()
	if t.props.Dismissible {
		t.autoDismiss.arm(t.sched, ResolveLifetime(t.props.Lifetime), t.expire)
	}
}

func (t *Toast) expire(gen uint64) {
	t.mu.Lock()
	if t.tornDown || !t.autoDismiss.claim(gen) || t.phase != PhaseVisible {
		t.mu.Unlock()
		return
	}
	t.beginExitLocked()
	log := t.loggerLocked()
	t.mu.Unlock()
	log.Debug("toast expired")
	t.notify()
}

func (t *Toast) beginExitLocked() {
	t.phase = PhaseExiting
	t.autoDismiss.cancel()
	t.hide.arm(t.sched, TransitionDuration(t.props.Transition), t.finish)
}

func (t *Toast) finish(gen uint64) {
	t.mu.Lock()
	if t.tornDown || !t.hide.claim(gen) {
		t.mu.Unlock()
		return
	}
	t.phase = PhaseUnmounted
	onClose := t.props.OnClose
	log := t.loggerLocked()
	t.mu.Unlock()

	log.Debug("toast unmounted")
	if !t.closed.IsBroken() {
		t.closed.Break()
		if onClose != nil {
			onClose()
		}
	}
	t.notify()
}

// Dismiss is the close control: a visible toast starts exiting now and its
// auto-dismiss timer is cancelled. Other phases ignore it.
func (t *Toast) Dismiss() {
	t.mu.Lock()
	if t.tornDown || t.phase != PhaseVisible {
		t.mu.Unlock()
		return
	}
	t.beginExitLocked()
	log := t.loggerLocked()
	t.mu.Unlock()
	log.Debug("toast dismissed")
	t.notify()
}

// Reconfigure applies new props. While visible, a change of lifetime or
// dismissibility restarts the auto-dismiss timer from scratch with the new
// settings. While exiting, a change of transition restarts the transition
// timer with the new duration.
func (t *Toast) Reconfigure(props ToastProps) {
	t.mu.Lock()
	if t.tornDown {
		t.mu.Unlock()
		return
	}
	props = normalizeToastProps(props)
	old := t.props
	t.props = props
	switch t.phase {
	case PhaseVisible:
		if old.Dismissible != props.Dismissible || ResolveLifetime(old.Lifetime) != ResolveLifetime(props.Lifetime) {
			t.armAutoDismissLocked()
		}
	case PhaseExiting:
		if TransitionDuration(old.Transition) != TransitionDuration(props.Transition) {
			t.hide.arm(t.sched, TransitionDuration(props.Transition), t.finish)
		}
	}
	t.mu.Unlock()
	t.notify()
}

// Teardown is called when the host removes the toast. Pending timers are
// cancelled and the close callback will never run.
func (t *Toast) Teardown() {
	t.mu.Lock()
	t.tornDown = true
	t.autoDismiss.cancel()
	t.hide.cancel()
	t.mu.Unlock()
}

// Phase is the current lifecycle phase.
func (t *Toast) Phase() ToastPhase {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.phase
}

// AutoDismissArmed reports whether the auto-dismiss timer is pending.
func (t *Toast) AutoDismissArmed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.autoDismiss.active()
}

// Done is closed once the toast unmounted and notified its host.
func (t *Toast) Done() <-chan struct{} {
	return t.closed.Watch()
}

// State snapshots everything a renderer needs.
func (t *Toast) State() ToastState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return ToastState{
		Phase:      t.phase,
		Message:    t.props.Message,
		Title:      t.props.Title,
		Kind:       t.props.Kind,
		Transition: t.props.Transition,
		ShowClose:  t.props.Dismissible,
	}
}
