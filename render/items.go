package render

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/hamidzr/gwidgets/component"
)

// indentWidth is the horizontal offset per nesting level.
const indentWidth = float32(16)

// MenuRows is a vertical list of sidebar rows.
type MenuRows struct {
	Container *fyne.Container
}

// NewMenuRows initializes MenuRows with an empty container.
func NewMenuRows() *MenuRows {
	return &MenuRows{Container: container.NewVBox()}
}

// RowActions are the callbacks a rendered row invokes. Activate is the
// primary action of the label; Toggle flips expansion of a branch without
// running the item's own callback.
type RowActions struct {
	Activate func(path []string)
	Toggle   func(id string)
}

// RenderRow draws one row: an indent proportional to the nesting level, the
// label as a flat button and, for items with children, a trailing
// expand/collapse toggle.
func RenderRow(row component.SidebarRow, actions RowActions) *fyne.Container {
	indent := canvas.NewRectangle(color.Transparent)
	indent.SetMinSize(fyne.NewSize(float32(row.Level)*indentWidth, 1))

	path := row.Path
	btn := widget.NewButton(row.Item.ComputedLabel(), func() {
		if actions.Activate != nil {
			actions.Activate(path)
		}
	})
	btn.Alignment = widget.ButtonAlignLeading
	btn.Importance = widget.LowImportance

	if !row.HasChildren {
		return container.NewBorder(nil, nil, indent, nil, btn)
	}

	icon := theme.MenuExpandIcon()
	if row.Expanded {
		icon = theme.MenuDropDownIcon()
	}
	id := row.Item.ID
	toggle := widget.NewButtonWithIcon("", icon, func() {
		if actions.Toggle != nil {
			actions.Toggle(id)
		}
	})
	toggle.Importance = widget.LowImportance
	return container.NewBorder(nil, nil, indent, toggle, btn)
}

// Render replaces the rows.
func (c *MenuRows) Render(rows []component.SidebarRow, actions RowActions) {
	if c == nil || c.Container == nil {
		return
	}
	c.Container.Objects = nil
	for _, row := range rows {
		c.Container.Add(RenderRow(row, actions))
	}
	c.Container.Add(layout.NewSpacer())
	c.Container.Refresh()
}
