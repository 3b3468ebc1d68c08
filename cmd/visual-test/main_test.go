package main

import (
	"testing"
	"time"

	"github.com/hamidzr/gwidgets/component"
	"github.com/hamidzr/gwidgets/core"
	"github.com/hamidzr/gwidgets/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRequiresArgument(t *testing.T) {
	err := run([]string{"gwidgets-visual-test"})
	assert.Error(t, err)

	code, cause := model.ExitCodeFromError(err)
	assert.Equal(t, model.UnknownError, code)
	assert.Nil(t, cause)
}

func TestRunUnknownTestType(t *testing.T) {
	err := run([]string{"gwidgets-visual-test", "not-real"})
	assert.Error(t, err)

	code, cause := model.ExitCodeFromError(err)
	assert.Equal(t, model.UnknownError, code)
	assert.Nil(t, cause)
}

// playScript runs a script on the virtual clock and drains every timer.
func playScript(t *testing.T, name string) (*core.Host, *component.ManualScheduler) {
	t.Helper()
	s, ok := scripts[name]
	require.True(t, ok)

	sched := component.NewManualScheduler()
	cfg := model.DefaultConfig()
	host := core.NewHost(&cfg, nil, core.WithScheduler(sched))
	t.Cleanup(host.Close)

	play(host, s.steps(), sched.Advance)
	return host, sched
}

func TestCyclesScript(t *testing.T) {
	host, sched := playScript(t, "cycles")

	assert.False(t, host.Sidebar.IsOpen())
	assert.False(t, host.Sidebar.ShouldRender())
	assert.False(t, host.Sidebar.IsExpanded("archive"))

	sched.Advance(10 * time.Second)
	assert.Empty(t, host.Toasts())
	assert.Zero(t, sched.Pending())
}

func TestToastsScriptNeverExceedsStack(t *testing.T) {
	s := scripts["toasts"]
	sched := component.NewManualScheduler()
	cfg := model.DefaultConfig()
	host := core.NewHost(&cfg, nil, core.WithScheduler(sched))
	defer host.Close()

	maxLive := 0
	play(host, s.steps(), func(d time.Duration) {
		live := 0
		for _, toast := range host.Toasts() {
			if toast.Phase() == component.PhaseVisible {
				live++
			}
		}
		if live > maxLive {
			maxLive = live
		}
		sched.Advance(d)
	})

	assert.Equal(t, 4, maxLive)
	assert.Empty(t, host.Toasts())
}

func TestStressScriptSettles(t *testing.T) {
	host, sched := playScript(t, "stress")

	assert.False(t, host.Sidebar.IsOpen())
	assert.False(t, host.Sidebar.ShouldRender())

	sched.Advance(10 * time.Second)
	assert.Empty(t, host.Toasts())
	assert.Zero(t, sched.Pending())
}

func TestScriptsHaveSteps(t *testing.T) {
	for name, s := range scripts {
		assert.NotEmpty(t, s.description, name)
		assert.NotEmpty(t, s.steps(), name)
	}
}
