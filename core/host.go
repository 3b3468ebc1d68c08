package core

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hamidzr/gwidgets/component"
	"github.com/hamidzr/gwidgets/model"
	"github.com/sirupsen/logrus"
)

const (
	// maxToasts caps the stack; pushing past it dismisses the oldest toast.
	maxToasts = 4
	// maxEvents caps the event log shown in the demos.
	maxEvents = 50
)

// Host plays the page that owns the widgets. It keeps the controlled email
// value, the sidebar's open flag and the stack of live toasts, and answers
// the widgets' callbacks the way an application would.
type Host struct {
	config *model.Config
	sched  component.Scheduler

	Name     *component.Input
	Email    *component.Input
	Password *component.Input
	Age      *component.Input
	Sidebar  *component.Sidebar

	mu        sync.Mutex
	email     string
	toasts    []*component.Toast
	events    []string
	listeners []func()
	unsubs    []func()
}

// HostOption customises a Host.
type HostOption func(*Host)

// WithScheduler drives every widget timer from sched.
func WithScheduler(sched component.Scheduler) HostOption {
	return func(h *Host) {
		h.sched = sched
	}
}

// NewHost wires the demo widgets from cfg. items becomes the sidebar tree;
// nil means model.SampleMenu.
func NewHost(cfg *model.Config, items []model.MenuItem, opts ...HostOption) *Host {
	if items == nil {
		items = model.SampleMenu
	}
	h := &Host{config: cfg, sched: component.ClockScheduler{}}
	for _, opt := range opts {
		opt(h)
	}

	h.Name = component.NewInput(component.InputProps{
		Label:       "Name",
		Placeholder: "Ada Lovelace",
		Clearable:   true,
		OnChange:    func(v string) { h.record("name changed: %q", v) },
		OnClear:     func() { h.record("name cleared") },
	})
	h.Email = component.NewInput(h.emailProps())
	h.Password = component.NewInput(component.InputProps{
		Label:      "Password",
		Kind:       model.InputPassword,
		HelperText: "Toggle the eye to reveal it",
		Clearable:  true,
		OnClear:    func() { h.record("password cleared") },
	})
	h.Age = component.NewInput(component.InputProps{
		Label:        "Age",
		Kind:         model.InputNumber,
		DefaultValue: "36",
		Attrs:        map[string]string{"min": "0", "max": "150"},
	})

	sidebarOpts := []component.SidebarOption{
		component.WithSidebarScheduler(h.sched),
		component.WithNavigator(func(href string) { h.record("navigate to %s", href) }),
	}
	if cfg.SidebarGraceMs > 0 {
		sidebarOpts = append(sidebarOpts, component.WithGracePeriod(time.Duration(cfg.SidebarGraceMs)*time.Millisecond))
	}
	h.Sidebar = component.NewSidebar(h.sidebarProps(false, items), sidebarOpts...)

	for _, in := range h.Inputs() {
		h.unsubs = append(h.unsubs, in.Subscribe(h.changed))
	}
	h.unsubs = append(h.unsubs, h.Sidebar.Subscribe(h.changed))
	return h
}

// Inputs lists the demo fields in display order.
func (h *Host) Inputs() []*component.Input {
	return []*component.Input{h.Name, h.Email, h.Password, h.Age}
}

func (h *Host) emailProps() component.InputProps {
	h.mu.Lock()
	email := h.email
	h.mu.Unlock()
	invalid := email != "" && !strings.Contains(email, "@")
	helper := "Controlled by the page"
	if invalid {
		helper = "That does not look like an email address"
	}
	return component.InputProps{
		Label:       "Email",
		Kind:        model.InputEmail,
		Placeholder: "you@example.com",
		HelperText:  helper,
		Error:       invalid,
		Clearable:   true,
		Value:       component.Controlled(email),
		OnChange:    h.setEmail,
		OnClear:     func() { h.record("email cleared") },
	}
}

func (h *Host) setEmail(v string) {
	h.mu.Lock()
	h.email = v
	h.mu.Unlock()
	if err := h.Email.SetProps(h.emailProps()); err != nil {
		logrus.WithError(err).Error("email re-render failed")
	}
}

func (h *Host) sidebarProps(open bool, items []model.MenuItem) component.SidebarProps {
	return component.SidebarProps{
		Open:               open,
		Title:              h.config.SidebarTitle,
		Items:              items,
		DefaultExpandedIDs: h.config.SidebarDefaultExpanded,
		OnClose:            h.CloseSidebar,
	}
}

// OpenSidebar sets the sidebar's open flag.
func (h *Host) OpenSidebar() {
	h.record("sidebar open")
	h.Sidebar.SetOpen(true)
}

// CloseSidebar answers the sidebar's close requests.
func (h *Host) CloseSidebar() {
	if !h.Sidebar.IsOpen() {
		return
	}
	h.record("sidebar close")
	h.Sidebar.SetOpen(false)
}

// ToggleSidebar flips the open flag.
func (h *Host) ToggleSidebar() {
	if h.Sidebar.IsOpen() {
		h.CloseSidebar()
	} else {
		h.OpenSidebar()
	}
}

// ToastProps builds props from the configured defaults.
func (h *Host) ToastProps(kind model.ToastKind, title, message string) component.ToastProps {
	return component.ToastProps{
		Message:     message,
		Title:       title,
		Kind:        kind,
		Lifetime:    time.Duration(h.config.ToastLifetimeMs) * time.Millisecond,
		Dismissible: h.config.ToastDismissible,
		Transition:  model.ParseTransition(h.config.ToastTransition),
	}
}

// PushToast shows a new toast on top of the stack. The toast removes itself
// from the stack when it unmounts.
func (h *Host) PushToast(props component.ToastProps) *component.Toast {
	var toast *component.Toast
	props.OnClose = func() { h.removeToast(toast) }

	h.mu.Lock()
	toast = component.NewToast(props, component.WithToastScheduler(h.sched))
	h.toasts = append(h.toasts, toast)
	live := append([]*component.Toast(nil), h.toasts...)
	h.mu.Unlock()

	toast.Subscribe(h.changed)
	h.record("toast %s: %s", props.Kind, props.Message)
	for _, evicted := range overflow(live) {
		evicted.Dismiss()
	}
	return toast
}

// overflow returns the oldest visible toasts beyond maxToasts. Toasts that
// are already exiting do not count against the cap.
func overflow(toasts []*component.Toast) []*component.Toast {
	var visible []*component.Toast
	for _, t := range toasts {
		if t.Phase() == component.PhaseVisible {
			visible = append(visible, t)
		}
	}
	if len(visible) <= maxToasts {
		return nil
	}
	return visible[:len(visible)-maxToasts]
}

func (h *Host) removeToast(toast *component.Toast) {
	h.mu.Lock()
	for i, t := range h.toasts {
		if t == toast {
			h.toasts = append(h.toasts[:i], h.toasts[i+1:]...)
			break
		}
	}
	h.mu.Unlock()
	h.record("toast closed")
}

// Toasts returns the live toasts, oldest first.
func (h *Host) Toasts() []*component.Toast {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]*component.Toast, len(h.toasts))
	copy(out, h.toasts)
	return out
}

// DismissNewest closes the most recent toast that is still visible.
func (h *Host) DismissNewest() bool {
	toasts := h.Toasts()
	for i := len(toasts) - 1; i >= 0; i-- {
		if toasts[i].Phase() == component.PhaseVisible {
			toasts[i].Dismiss()
			return true
		}
	}
	return false
}

// OnChange registers fn to run after any widget or host state change.
func (h *Host) OnChange(fn func()) {
	h.mu.Lock()
	h.listeners = append(h.listeners, fn)
	h.mu.Unlock()
}

func (h *Host) changed() {
	h.mu.Lock()
	listeners := make([]func(), len(h.listeners))
	copy(listeners, h.listeners)
	h.mu.Unlock()
	for _, fn := range listeners {
		fn()
	}
}

func (h *Host) record(format string, args ...any) {
	event := fmt.Sprintf(format, args...)
	logrus.Debug(event)
	h.mu.Lock()
	h.events = append(h.events, event)
	if len(h.events) > maxEvents {
		h.events = h.events[len(h.events)-maxEvents:]
	}
	h.mu.Unlock()
	h.changed()
}

// Events is the log of callbacks the widgets fired, oldest first.
func (h *Host) Events() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.events))
	copy(out, h.events)
	return out
}

// LastEvent is the most recent event, or "".
func (h *Host) LastEvent() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.events) == 0 {
		return ""
	}
	return h.events[len(h.events)-1]
}

// Close tears every widget down. No callback fires afterwards.
func (h *Host) Close() {
	for _, t := range h.Toasts() {
		t.Teardown()
	}
	h.Sidebar.Dispose()
	h.mu.Lock()
	unsubs := h.unsubs
	h.unsubs = nil
	h.listeners = nil
	h.mu.Unlock()
	for _, unsub := range unsubs {
		unsub()
	}
}
