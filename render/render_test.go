package render

import (
	"image/color"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/hamidzr/gwidgets/component"
	"github.com/hamidzr/gwidgets/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInputEntryKeyHandling tests key event handling
func TestInputEntryKeyHandling(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	entry := NewInputEntry()

	var lastKey *fyne.KeyEvent
	entry.OnKeyDown = func(key *fyne.KeyEvent) {
		lastKey = key
	}

	keyEvent := &fyne.KeyEvent{Name: fyne.KeyDown}
	entry.TypedKey(keyEvent)

	assert.Equal(t, keyEvent, lastKey)
}

// TestInputEntryPropagationBlacklist tests key propagation blocking
func TestInputEntryPropagationBlacklist(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	entry := NewInputEntry()
	entry.PropagationBlacklist = map[fyne.KeyName]bool{
		fyne.KeyBackspace: true,
	}
	entry.SetText("test")
	entry.CursorColumn = 4

	entry.TypedKey(&fyne.KeyEvent{Name: fyne.KeyBackspace})

	assert.Equal(t, "test", entry.Text)
}

func TestInputEntryKeyboard(t *testing.T) {
	entry := NewInputEntry()
	assert.Equal(t, mobile.SingleLineKeyboard, entry.Keyboard())

	entry.kind = model.InputNumber
	assert.Equal(t, mobile.NumberKeyboard, entry.Keyboard())

	entry.Password = true
	assert.Equal(t, mobile.PasswordKeyboard, entry.Keyboard())
}

func TestInputFieldUncontrolledTyping(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var changes []string
	input := component.NewInput(component.InputProps{
		Label:        "Name",
		DefaultValue: "",
		OnChange:     func(v string) { changes = append(changes, v) },
	})
	field := NewInputField(input)
	w := test.NewWindow(field)
	defer w.Close()

	test.Type(field.Entry(), "ada")

	assert.Equal(t, "ada", input.Value())
	assert.Equal(t, []string{"a", "ad", "ada"}, changes)
	assert.True(t, field.label.Visible())
	assert.Equal(t, "Name", field.label.Text)
}

func TestInputFieldShowsDefaultValue(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	field := NewInputField(component.NewInput(component.InputProps{DefaultValue: "seed"}))
	assert.Equal(t, "seed", field.Entry().Text)
	assert.False(t, field.label.Visible())
	assert.False(t, field.helper.Visible())
}

func TestInputFieldControlledRevertsWithoutHost(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var changes []string
	input := component.NewInput(component.InputProps{
		Value:    component.Controlled("fixed"),
		OnChange: func(v string) { changes = append(changes, v) },
	})
	field := NewInputField(input)

	field.Entry().SetText("fixedx")

	assert.Equal(t, []string{"fixedx"}, changes)
	assert.Equal(t, "fixed", field.Entry().Text, "display stays on the host value")
}

func TestInputFieldControlledFollowsHost(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var input *component.Input
	input = component.NewInput(component.InputProps{
		Value:    component.Controlled(""),
		OnChange: func(v string) { _ = input.SetValue(v) },
	})
	field := NewInputField(input)

	test.Type(field.Entry(), "hey")
	assert.Equal(t, "hey", input.Value())
	assert.Equal(t, "hey", field.Entry().Text)

	require.NoError(t, input.SetValue("pushed"))
	assert.Equal(t, "pushed", field.Entry().Text)
}

func TestInputFieldClearButton(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	cleared := 0
	input := component.NewInput(component.InputProps{
		Clearable:    true,
		DefaultValue: "abc",
		OnClear:      func() { cleared++ },
	})
	field := NewInputField(input)
	require.True(t, field.clearBtn.Visible())

	test.Tap(field.clearBtn)

	assert.Equal(t, 1, cleared)
	assert.Equal(t, "", input.Value())
	assert.Equal(t, "", field.Entry().Text)
	assert.False(t, field.clearBtn.Visible())
	assert.False(t, field.controls.Visible())
}

func TestInputFieldEscapeClears(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	input := component.NewInput(component.InputProps{Clearable: true, DefaultValue: "abc"})
	field := NewInputField(input)

	field.Entry().TypedKey(&fyne.KeyEvent{Name: fyne.KeyEscape})
	assert.Equal(t, "", input.Value())
}

func TestInputFieldPasswordToggle(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	input := component.NewInput(component.InputProps{Kind: model.InputPassword, DefaultValue: "secret"})
	field := NewInputField(input)

	assert.True(t, field.Entry().Password)
	require.True(t, field.eyeBtn.Visible())

	test.Tap(field.eyeBtn)
	assert.False(t, field.Entry().Password)
	assert.Equal(t, "secret", field.Entry().Text)

	test.Tap(field.eyeBtn)
	assert.True(t, field.Entry().Password)
}

func TestInputFieldTextHasNoToggle(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	field := NewInputField(component.NewInput(component.InputProps{Kind: model.InputEmail}))
	assert.False(t, field.eyeBtn.Visible())
	assert.False(t, field.Entry().Password)
}

func TestInputFieldErrorHelper(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	props := component.InputProps{HelperText: "Required", Error: true}
	input := component.NewInput(props)
	field := NewInputField(input)

	assert.True(t, field.helper.Visible())
	assert.Equal(t, "Required", field.helper.Text)
	assert.Equal(t, widget.DangerImportance, field.helper.Importance)
	assert.True(t, field.frame.Visible())
	assert.Equal(t, themeColor(theme.ColorNameError), field.frame.StrokeColor)

	props.Error = false
	require.NoError(t, input.SetProps(props))
	assert.Equal(t, widget.MediumImportance, field.helper.Importance)
	assert.False(t, field.frame.Visible())
}

func TestInputFieldErrorWithoutHelperText(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	field := NewInputField(component.NewInput(component.InputProps{Error: true}))
	assert.False(t, field.helper.Visible())
	assert.True(t, field.frame.Visible(), "the field is outlined even without helper text")
}

func TestInputFieldDisabledAttr(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	props := component.InputProps{Attrs: map[string]string{"disabled": "", "placeholder": "n/a"}}
	input := component.NewInput(props)
	field := NewInputField(input)

	assert.True(t, field.Entry().Disabled())
	assert.Equal(t, "n/a", field.Entry().PlaceHolder)

	props.Attrs = nil
	require.NoError(t, input.SetProps(props))
	assert.False(t, field.Entry().Disabled())
}

func TestInputFieldDetach(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	input := component.NewInput(component.InputProps{Value: component.Controlled("a")})
	field := NewInputField(input)
	field.Detach()

	require.NoError(t, input.SetValue("b"))
	assert.Equal(t, "a", field.Entry().Text)
}

func newTestSidebarView(open bool) (*SidebarView, *component.Sidebar, *component.ManualScheduler, *int) {
	sched := component.NewManualScheduler()
	closes := 0
	sidebar := component.NewSidebar(component.SidebarProps{
		Open:               open,
		Items:              model.SampleMenu,
		DefaultExpandedIDs: []string{"projects"},
		OnClose:            func() { closes++ },
	}, component.WithSidebarScheduler(sched))
	return NewSidebarView(sidebar), sidebar, sched, &closes
}

func TestSidebarViewRendersRows(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	view, _, _, _ := newTestSidebarView(true)
	w := test.NewWindow(view)
	defer w.Close()
	w.Resize(fyne.NewSize(600, 400))

	assert.True(t, view.Visible())
	assert.Equal(t, component.DefaultSidebarTitle, view.title.Text)
	// six rows plus the trailing spacer
	assert.Len(t, view.rows.Container.Objects, 7)
}

func rowButton(t *testing.T, rows *MenuRows, i int) *widget.Button {
	row, ok := rows.Container.Objects[i].(*fyne.Container)
	require.True(t, ok)
	for _, o := range row.Objects {
		if btn, ok := o.(*widget.Button); ok {
			return btn
		}
	}
	t.Fatalf("row %d has no button", i)
	return nil
}

func TestSidebarViewRowActivation(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	view, sidebar, _, closes := newTestSidebarView(true)

	projects := rowButton(t, view.rows, 1)
	assert.Equal(t, "Projects", projects.Text)
	test.Tap(projects)
	assert.False(t, sidebar.IsExpanded("projects"))
	assert.Len(t, view.rows.Container.Objects, 4)
	assert.Equal(t, 0, *closes)

	test.Tap(rowButton(t, view.rows, 0))
	assert.Equal(t, 1, *closes)
}

func rowButtons(t *testing.T, rows *MenuRows, i int) []*widget.Button {
	row, ok := rows.Container.Objects[i].(*fyne.Container)
	require.True(t, ok)
	var buttons []*widget.Button
	for _, o := range row.Objects {
		if btn, ok := o.(*widget.Button); ok {
			buttons = append(buttons, btn)
		}
	}
	return buttons
}

func TestRenderRowBranchHasToggle(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	clicks, toggled := 0, ""
	var activated []string
	item := model.MenuItem{
		ID:       "projects",
		Label:    "Projects",
		OnClick:  func() { clicks++ },
		Children: []model.MenuItem{{ID: "current", Label: "Current"}},
	}
	row := RenderRow(component.SidebarRow{Item: item, Path: []string{"projects"}, HasChildren: true, Expanded: true}, RowActions{
		Activate: func(path []string) { activated = path },
		Toggle:   func(id string) { toggled = id },
	})

	var buttons []*widget.Button
	for _, o := range row.Objects {
		if btn, ok := o.(*widget.Button); ok {
			buttons = append(buttons, btn)
		}
	}
	require.Len(t, buttons, 2)
	assert.Equal(t, "Projects", buttons[0].Text)
	assert.Empty(t, buttons[1].Text)

	test.Tap(buttons[1])
	assert.Equal(t, "projects", toggled)
	assert.Nil(t, activated)
	assert.Equal(t, 0, clicks)

	test.Tap(buttons[0])
	assert.Equal(t, []string{"projects"}, activated)
}

func TestRenderRowLeafHasNoToggle(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	row := RenderRow(component.SidebarRow{Item: model.MenuItem{ID: "dashboard", Label: "Dashboard"}, Path: []string{"dashboard"}}, RowActions{})
	count := 0
	for _, o := range row.Objects {
		if _, ok := o.(*widget.Button); ok {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestSidebarViewToggleSkipsItemCallback(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	clicks, closes := 0, 0
	sidebar := component.NewSidebar(component.SidebarProps{
		Open: true,
		Items: []model.MenuItem{{
			ID:       "projects",
			Label:    "Projects",
			OnClick:  func() { clicks++ },
			Children: []model.MenuItem{{ID: "current", Label: "Current"}},
		}},
		OnClose: func() { closes++ },
	}, component.WithSidebarScheduler(component.NewManualScheduler()))
	view := NewSidebarView(sidebar)

	buttons := rowButtons(t, view.rows, 0)
	require.Len(t, buttons, 2)
	test.Tap(buttons[1])
	assert.True(t, sidebar.IsExpanded("projects"))
	assert.Equal(t, 0, clicks)
	// the expanded child plus the trailing spacer
	assert.Len(t, view.rows.Container.Objects, 3)

	test.Tap(rowButtons(t, view.rows, 0)[1])
	assert.False(t, sidebar.IsExpanded("projects"))
	assert.Equal(t, 0, clicks)
	assert.Equal(t, 0, closes)

	test.Tap(rowButtons(t, view.rows, 0)[0])
	assert.Equal(t, 1, clicks)
	assert.True(t, sidebar.IsExpanded("projects"))
}

func TestSidebarViewBackdropAndCloseButton(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	view, _, _, closes := newTestSidebarView(true)
	test.Tap(view.backdrop)
	test.Tap(view.closeBtn)
	assert.Equal(t, 2, *closes)
}

func TestSidebarViewHidesAfterGrace(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	view, sidebar, sched, _ := newTestSidebarView(true)
	sidebar.SetOpen(false)
	assert.True(t, view.Visible())

	sched.Advance(component.DefaultGracePeriod)
	assert.False(t, view.Visible())

	sidebar.SetOpen(true)
	assert.True(t, view.Visible())
}

func TestSidebarViewStartsHidden(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	view, _, _, _ := newTestSidebarView(false)
	assert.False(t, view.Visible())
}

func TestToastViewLifecycle(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	sched := component.NewManualScheduler()
	props := component.DefaultToastProps("Saved")
	props.Title = "Done"
	props.Kind = model.ToastSuccess
	toast := component.NewToast(props, component.WithToastScheduler(sched))
	view := NewToastView(toast)
	defer view.Detach()

	assert.True(t, view.Visible())
	assert.True(t, view.title.Visible())
	assert.Equal(t, "Saved", view.message.Text)
	assert.True(t, view.closeBtn.Visible())

	test.Tap(view.closeBtn)
	assert.Equal(t, component.PhaseExiting, toast.Phase())
	assert.True(t, view.Visible())
	assert.False(t, view.closeBtn.Visible())
	assert.NotNil(t, view.exit)

	sched.Advance(time.Second)
	assert.False(t, view.Visible())
}

func TestToastViewNotDismissible(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	props := component.DefaultToastProps("Sticky")
	props.Dismissible = false
	view := NewToastView(component.NewToast(props, component.WithToastScheduler(component.NewManualScheduler())))

	assert.False(t, view.closeBtn.Visible())
	assert.False(t, view.title.Visible())
}

func TestKindColorName(t *testing.T) {
	names := map[fyne.ThemeColorName]bool{}
	for _, kind := range model.ToastKinds {
		names[KindColorName(kind)] = true
	}
	assert.Len(t, names, len(model.ToastKinds))
}

func TestTrailingLayout(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	entry := widget.NewEntry()
	btn := widget.NewButton("x", nil)
	l := NewTrailingLayout()
	l.Layout([]fyne.CanvasObject{entry, btn}, fyne.NewSize(300, 40))

	assert.Equal(t, btn.MinSize().Width, btn.Size().Width)
	assert.Equal(t, float32(300)-btn.MinSize().Width, entry.Size().Width)
	assert.Equal(t, entry.Size().Width, btn.Position().X)

	btn.Hide()
	l.Layout([]fyne.CanvasObject{entry, btn}, fyne.NewSize(300, 40))
	assert.Equal(t, float32(300), entry.Size().Width)
}

func TestPanelLayout(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	backdrop := NewBackdrop(color.Transparent, nil)
	panel := widget.NewLabel("panel")
	l := NewPanelLayout(200)

	l.Layout([]fyne.CanvasObject{backdrop, panel}, fyne.NewSize(500, 300))
	assert.Equal(t, fyne.NewSize(500, 300), backdrop.Size())
	assert.Equal(t, fyne.NewSize(200, 300), panel.Size())

	l.Layout([]fyne.CanvasObject{backdrop, panel}, fyne.NewSize(150, 300))
	assert.Equal(t, float32(150), panel.Size().Width)
}
