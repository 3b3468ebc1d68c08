package term

import (
	"strings"
	"testing"

	"github.com/hamidzr/gwidgets/component"
	"github.com/hamidzr/gwidgets/model"
	"github.com/stretchr/testify/assert"
)

func TestDisplayValueMasksPasswords(t *testing.T) {
	state := component.InputState{Value: "héllo", EffectiveKind: model.InputPassword}
	assert.Equal(t, strings.Repeat(maskRune, 5), DisplayValue(state))

	state.EffectiveKind = model.InputText
	assert.Equal(t, "héllo", DisplayValue(state))
}

func TestRenderInputControls(t *testing.T) {
	input := component.NewInput(component.InputProps{
		Label:        "Password",
		Kind:         model.InputPassword,
		Clearable:    true,
		DefaultValue: "hunter2",
		HelperText:   "at least 8 characters",
	})

	out := RenderInput(input.State(), true, 40)
	assert.Contains(t, out, "Password")
	assert.Contains(t, out, showMarker)
	assert.Contains(t, out, clearMarker)
	assert.Contains(t, out, "at least 8 characters")
	assert.NotContains(t, out, "hunter2")

	input.TogglePasswordVisibility()
	out = RenderInput(input.State(), true, 40)
	assert.Contains(t, out, "hunter2")
	assert.Contains(t, out, hideMarker)

	input.Clear()
	out = RenderInput(input.State(), true, 40)
	assert.NotContains(t, out, clearMarker)
}

func TestRenderInputPlaceholder(t *testing.T) {
	input := component.NewInput(component.InputProps{Placeholder: "you@example.com", Kind: model.InputEmail})
	out := RenderInput(input.State(), false, 0)
	assert.Contains(t, out, "you@example.com")
	assert.NotContains(t, out, showMarker)
}

func TestRenderSidebar(t *testing.T) {
	sched := component.NewManualScheduler()
	sidebar := component.NewSidebar(component.SidebarProps{
		Open:               true,
		Title:              "Workspace",
		Items:              model.SampleMenu,
		DefaultExpandedIDs: []string{"projects"},
	}, component.WithSidebarScheduler(sched))

	out := RenderSidebar(sidebar.State(), 1, 30, 0)
	assert.Contains(t, out, "Workspace")
	assert.Contains(t, out, expandedMark+" Projects")
	assert.Contains(t, out, collapsedMark+" Archive")
	assert.Contains(t, out, cursorMark)

	sidebar.SetOpen(false)
	assert.NotEmpty(t, RenderSidebar(sidebar.State(), 0, 30, 0))
	sched.Advance(component.DefaultGracePeriod)
	assert.Empty(t, RenderSidebar(sidebar.State(), 0, 30, 0))
}

func TestRenderToast(t *testing.T) {
	sched := component.NewManualScheduler()
	props := component.DefaultToastProps("Upload failed")
	props.Kind = model.ToastError
	props.Title = "Sync"
	toast := component.NewToast(props, component.WithToastScheduler(sched))

	out := RenderToast(toast.State(), 40)
	assert.Contains(t, out, "ERROR")
	assert.Contains(t, out, "Sync")
	assert.Contains(t, out, "Upload failed")
	assert.Contains(t, out, closeMarker)

	toast.Dismiss()
	out = RenderToast(toast.State(), 40)
	assert.Contains(t, out, "Upload failed")
	assert.NotContains(t, out, closeMarker)

	sched.Advance(component.SlideDuration)
	assert.Empty(t, RenderToast(toast.State(), 40))
}

func TestKindColorDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, kind := range model.ToastKinds {
		seen[string(KindColor(kind))] = true
	}
	assert.Len(t, seen, len(model.ToastKinds))
}
