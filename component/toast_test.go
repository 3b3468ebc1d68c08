package component

import (
	"testing"
	"time"

	"github.com/hamidzr/gwidgets/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestToast(props ToastProps) (*Toast, *ManualScheduler, *int) {
	closes := countCloses(&props)
	sched := NewManualScheduler()
	return NewToast(props, WithToastScheduler(sched)), sched, closes
}

// countCloses installs a counting OnClose on props.
func countCloses(props *ToastProps) *int {
	closes := 0
	props.OnClose = func() { closes++ }
	return &closes
}

func isClosed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

func TestToastLifecycle(t *testing.T) {
	props := DefaultToastProps("Saved")
	props.Lifetime = 2000 * time.Millisecond
	toast, sched, closes := newTestToast(props)

	assert.Equal(t, PhaseVisible, toast.Phase())
	assert.True(t, toast.AutoDismissArmed())

	sched.Advance(1999 * time.Millisecond)
	assert.Equal(t, PhaseVisible, toast.Phase())

	sched.Advance(time.Millisecond)
	assert.Equal(t, PhaseExiting, toast.Phase())
	assert.False(t, toast.AutoDismissArmed())
	assert.Equal(t, 0, *closes)

	sched.Advance(SlideDuration - time.Millisecond)
	assert.Equal(t, PhaseExiting, toast.Phase())

	sched.Advance(time.Millisecond)
	assert.Equal(t, PhaseUnmounted, toast.Phase())
	assert.Equal(t, 1, *closes)
	assert.True(t, isClosed(toast.Done()))

	sched.Advance(time.Hour)
	assert.Equal(t, 1, *closes)
	assert.Equal(t, 0, sched.Pending())
}

func TestToastFadeDuration(t *testing.T) {
	props := DefaultToastProps("Faded")
	props.Transition = model.TransitionFade
	toast, sched, closes := newTestToast(props)

	sched.Advance(DefaultToastLifetime)
	require.Equal(t, PhaseExiting, toast.Phase())
	sched.Advance(SlideDuration)
	assert.Equal(t, PhaseExiting, toast.Phase())
	sched.Advance(FadeDuration - SlideDuration)
	assert.Equal(t, PhaseUnmounted, toast.Phase())
	assert.Equal(t, 1, *closes)
}

func TestTransitionDuration(t *testing.T) {
	assert.Equal(t, 300*time.Millisecond, TransitionDuration(model.TransitionSlide))
	assert.Equal(t, 350*time.Millisecond, TransitionDuration(model.TransitionFade))
	assert.Equal(t, 300*time.Millisecond, TransitionDuration(""))
}

func TestResolveLifetime(t *testing.T) {
	assert.Equal(t, DefaultToastLifetime, ResolveLifetime(0))
	assert.Equal(t, DefaultToastLifetime, ResolveLifetime(-time.Second))
	assert.Equal(t, time.Second, ResolveLifetime(time.Second))
}

func TestToastNonPositiveLifetimeUsesDefault(t *testing.T) {
	props := DefaultToastProps("Zero")
	props.Lifetime = 0
	toast, sched, _ := newTestToast(props)

	sched.Advance(DefaultToastLifetime - time.Millisecond)
	assert.Equal(t, PhaseVisible, toast.Phase())
	sched.Advance(time.Millisecond)
	assert.Equal(t, PhaseExiting, toast.Phase())
}

func TestToastNotDismissibleStays(t *testing.T) {
	props := DefaultToastProps("Sticky")
	props.Dismissible = false
	toast, sched, closes := newTestToast(props)

	assert.False(t, toast.AutoDismissArmed())
	sched.Advance(time.Hour)
	assert.Equal(t, PhaseVisible, toast.Phase())
	assert.Equal(t, 0, *closes)
	assert.False(t, toast.State().ShowClose)
}

func TestToastManualDismiss(t *testing.T) {
	toast, sched, closes := newTestToast(DefaultToastProps("Bye"))

	sched.Advance(time.Second)
	toast.Dismiss()
	assert.Equal(t, PhaseExiting, toast.Phase())
	assert.False(t, toast.AutoDismissArmed())

	toast.Dismiss()
	sched.Advance(SlideDuration)
	assert.Equal(t, PhaseUnmounted, toast.Phase())

	sched.Advance(DefaultToastLifetime)
	assert.Equal(t, 1, *closes)
}

func TestToastDismissIgnoresDismissibleFlag(t *testing.T) {
	props := DefaultToastProps("Sticky")
	props.Dismissible = false
	toast, sched, closes := newTestToast(props)

	toast.Dismiss()
	sched.Advance(SlideDuration)
	assert.Equal(t, PhaseUnmounted, toast.Phase())
	assert.Equal(t, 1, *closes)
}

func TestToastReconfigureRestartsLifetime(t *testing.T) {
	props := DefaultToastProps("Longer")
	props.Lifetime = 2 * time.Second
	toast, sched, _ := newTestToast(props)

	sched.Advance(1500 * time.Millisecond)
	props.Lifetime = time.Second
	toast.Reconfigure(props)

	sched.Advance(999 * time.Millisecond)
	assert.Equal(t, PhaseVisible, toast.Phase(), "new lifetime counts from the change")
	sched.Advance(time.Millisecond)
	assert.Equal(t, PhaseExiting, toast.Phase())
}

func TestToastReconfigureSameLifetimeKeepsTimer(t *testing.T) {
	props := DefaultToastProps("Same")
	props.Lifetime = 2 * time.Second
	toast, sched, _ := newTestToast(props)

	sched.Advance(1500 * time.Millisecond)
	props.Message = "Same, reworded"
	toast.Reconfigure(props)

	sched.Advance(500 * time.Millisecond)
	assert.Equal(t, PhaseExiting, toast.Phase())
	assert.Equal(t, "Same, reworded", toast.State().Message)
}

func TestToastReconfigureDismissible(t *testing.T) {
	props := DefaultToastProps("Toggle")
	toast, sched, _ := newTestToast(props)

	sched.Advance(2 * time.Second)
	props.Dismissible = false
	toast.Reconfigure(props)
	assert.False(t, toast.AutoDismissArmed())
	sched.Advance(time.Hour)
	assert.Equal(t, PhaseVisible, toast.Phase())

	props.Dismissible = true
	toast.Reconfigure(props)
	assert.True(t, toast.AutoDismissArmed())
	sched.Advance(DefaultToastLifetime - time.Millisecond)
	assert.Equal(t, PhaseVisible, toast.Phase())
	sched.Advance(time.Millisecond)
	assert.Equal(t, PhaseExiting, toast.Phase())
}

func TestToastReconfigureTransitionWhileExiting(t *testing.T) {
	props := DefaultToastProps("Switch")
	closes := countCloses(&props)
	sched := NewManualScheduler()
	toast := NewToast(props, WithToastScheduler(sched))

	toast.Dismiss()
	sched.Advance(200 * time.Millisecond)
	props.Transition = model.TransitionFade
	toast.Reconfigure(props)

	sched.Advance(FadeDuration - time.Millisecond)
	assert.Equal(t, PhaseExiting, toast.Phase())
	sched.Advance(time.Millisecond)
	assert.Equal(t, PhaseUnmounted, toast.Phase())
	assert.Equal(t, 1, *closes)
}

func TestToastReconfigureKeepsCloseCallback(t *testing.T) {
	props := DefaultToastProps("Keep")
	closes := countCloses(&props)
	sched := NewManualScheduler()
	toast := NewToast(props, WithToastScheduler(sched))

	props.Message = "Keep, edited"
	props.Lifetime = 1000 * time.Millisecond
	toast.Reconfigure(props)

	sched.Advance(1000*time.Millisecond + SlideDuration)
	assert.Equal(t, PhaseUnmounted, toast.Phase())
	assert.Equal(t, 1, *closes)
	assert.Equal(t, "Keep, edited", toast.State().Message)
}

func TestToastReconfigureReplacesCloseCallback(t *testing.T) {
	props := DefaultToastProps("Swap")
	first := countCloses(&props)
	sched := NewManualScheduler()
	toast := NewToast(props, WithToastScheduler(sched))

	second := countCloses(&props)
	toast.Reconfigure(props)
	toast.Dismiss()
	sched.Advance(SlideDuration)

	assert.Equal(t, 0, *first)
	assert.Equal(t, 1, *second)
}

func TestToastTeardownBeforeExpiry(t *testing.T) {
	toast, sched, closes := newTestToast(DefaultToastProps("Gone"))

	toast.Teardown()
	assert.Equal(t, 0, sched.Pending())
	sched.Advance(time.Hour)
	assert.Equal(t, PhaseVisible, toast.Phase())
	assert.Equal(t, 0, *closes)
	assert.False(t, isClosed(toast.Done()))
}

func TestToastTeardownWhileExiting(t *testing.T) {
	toast, sched, closes := newTestToast(DefaultToastProps("Gone"))

	toast.Dismiss()
	toast.Teardown()
	sched.Advance(time.Hour)
	assert.Equal(t, 0, *closes)

	toast.Dismiss()
	toast.Reconfigure(DefaultToastProps("ignored"))
	assert.Equal(t, 0, sched.Pending())
	assert.Equal(t, "Gone", toast.State().Message)
}

func TestToastState(t *testing.T) {
	toast, sched, _ := newTestToast(ToastProps{Message: "m", Title: "T", Dismissible: true})

	state := toast.State()
	assert.Equal(t, model.ToastInfo, state.Kind)
	assert.Equal(t, model.TransitionSlide, state.Transition)
	assert.True(t, state.Rendered())
	assert.True(t, state.Shown())
	assert.True(t, state.ShowClose)

	toast.Dismiss()
	state = toast.State()
	assert.True(t, state.Rendered())
	assert.False(t, state.Shown())

	sched.Advance(SlideDuration)
	assert.False(t, toast.State().Rendered())
}

func TestToastPhaseString(t *testing.T) {
	assert.Equal(t, "visible", PhaseVisible.String())
	assert.Equal(t, "exiting", PhaseExiting.String())
	assert.Equal(t, "unmounted", PhaseUnmounted.String())
	assert.Equal(t, "unknown", ToastPhase(9).String())
}

func TestToastNotifiesEachPhase(t *testing.T) {
	toast, sched, _ := newTestToast(DefaultToastProps("watch"))
	var phases []ToastPhase
	toast.Subscribe(func() { phases = append(phases, toast.Phase()) })

	sched.Advance(DefaultToastLifetime + SlideDuration)
	assert.Equal(t, []ToastPhase{PhaseExiting, PhaseUnmounted}, phases)
}

func TestToastOnWallClock(t *testing.T) {
	closed := make(chan struct{}, 1)
	props := DefaultToastProps("quick")
	props.Lifetime = 10 * time.Millisecond
	props.OnClose = func() { closed <- struct{}{} }
	toast := NewToast(props)

	select {
	case <-toast.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("toast did not unmount")
	}
	require.Eventually(t, func() bool { return len(closed) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, PhaseUnmounted, toast.Phase())
}
