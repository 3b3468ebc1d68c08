package render

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/hamidzr/gwidgets/component"
	"github.com/sirupsen/logrus"
)

// DefaultPanelWidth is the width of the sidebar panel.
const DefaultPanelWidth = float32(260)

// SidebarView draws a component.Sidebar as an overlay: a backdrop covering
// its area and a panel on the leading edge. It hides itself once the sidebar
// should no longer render.
type SidebarView struct {
	widget.BaseWidget
	sidebar *component.Sidebar

	backdrop *Backdrop
	title    *widget.Label
	closeBtn *widget.Button
	rows     *MenuRows
	panelBg  *canvas.Rectangle

	unsubscribe func()
}

// NewSidebarView builds the overlay and keeps it in sync with sidebar.
func NewSidebarView(sidebar *component.Sidebar) *SidebarView {
	v := &SidebarView{
		sidebar: sidebar,
		title:   widget.NewLabel(""),
		rows:    NewMenuRows(),
		panelBg: canvas.NewRectangle(themeColor(theme.ColorNameBackground)),
	}
	v.title.TextStyle = fyne.TextStyle{Bold: true}
	v.backdrop = NewBackdrop(themeColor(theme.ColorNameShadow), sidebar.RequestClose)
	v.closeBtn = widget.NewButtonWithIcon("", theme.CancelIcon(), sidebar.RequestClose)
	v.closeBtn.Importance = widget.LowImportance

	v.ExtendBaseWidget(v)
	v.apply()
	v.unsubscribe = sidebar.Subscribe(v.apply)
	return v
}

// Detach stops following the component.
func (v *SidebarView) Detach() {
	if v.unsubscribe != nil {
		v.unsubscribe()
		v.unsubscribe = nil
	}
}

func (v *SidebarView) activate(path []string) {
	if err := v.sidebar.Activate(path...); err != nil {
		logrus.WithError(err).Warn("sidebar row activation failed")
	}
}

func (v *SidebarView) apply() {
	state := v.sidebar.State()
	v.title.SetText(state.Title)
	v.rows.Render(state.Rows, RowActions{Activate: v.activate, Toggle: v.sidebar.Toggle})
	if state.Open {
		v.backdrop.SetFill(themeColor(theme.ColorNameShadow))
	} else {
		// closing: the panel stays for the grace period, the backdrop fades
		v.backdrop.SetFill(color.Transparent)
	}
	setVisible(v, state.ShouldRender)
}

func (v *SidebarView) CreateRenderer() fyne.WidgetRenderer {
	header := container.NewBorder(nil, nil, nil, v.closeBtn, v.title)
	body := container.NewBorder(header, nil, nil, nil, container.NewVScroll(v.rows.Container))
	panel := container.NewStack(v.panelBg, container.NewPadded(body))
	return widget.NewSimpleRenderer(container.New(NewPanelLayout(DefaultPanelWidth), v.backdrop, panel))
}
