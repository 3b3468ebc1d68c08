package core

import (
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/hamidzr/gwidgets/component"
	"github.com/hamidzr/gwidgets/model"
	"github.com/hamidzr/gwidgets/render"
	"github.com/sirupsen/logrus"
)

const (
	toastWidth  = float32(300)
	toastHeight = float32(96)
)

// Dimensions define geometry of the application window.
type Dimensions struct {
	MinWidth  float32
	MinHeight float32
}

// GUI holds ui pieces.
type GUI struct {
	MainWindow fyne.Window
	Fields     []*render.InputField
	Sidebar    *render.SidebarView
	Toasts     *fyne.Container
	Status     *widget.Label
	MenuButton *widget.Button
}

// Gallery is a fyne window showing every widget, driven by a Host.
type Gallery struct {
	AppTitle string
	config   *model.Config
	host     *Host
	app      fyne.App
	dims     Dimensions
	ui       *GUI
	uiMutex  sync.Mutex
	// toastViews maps live toasts to their views so the stack can be
	// diffed on every host change.
	toastViews map[*component.Toast]*render.ToastView
	nextKind   int

	exitCode  model.ExitCode
	exitMutex sync.Mutex
	isRunning bool
}

// GalleryOption customises a Gallery.
type GalleryOption func(*Gallery)

// WithFyneApp runs the gallery inside an existing app, e.g. a test app.
func WithFyneApp(a fyne.App) GalleryOption {
	return func(g *Gallery) {
		g.app = a
	}
}

// NewGallery creates the window for host.
func NewGallery(cfg *model.Config, host *Host, opts ...GalleryOption) (*Gallery, error) {
	g := &Gallery{
		AppTitle:   cfg.Title,
		config:     cfg,
		host:       host,
		exitCode:   model.Unset,
		toastViews: map[*component.Toast]*render.ToastView{},
		dims:       windowDimensions(cfg),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.initUI()
	host.OnChange(g.refresh)
	g.refresh()
	return g, nil
}

// windowDimensions clamps the configured size to the largest screen.
func windowDimensions(cfg *model.Config) Dimensions {
	dims := Dimensions{MinWidth: cfg.MinWidth, MinHeight: cfg.MinHeight}
	screenW, screenH := getLargestScreenSize()
	if maxW := float32(screenW) * 0.9; screenW > 0 && dims.MinWidth > maxW {
		dims.MinWidth = maxW
	}
	if maxH := float32(screenH) * 0.9; screenH > 0 && dims.MinHeight > maxH {
		dims.MinHeight = maxH
	}
	return dims
}

func (g *Gallery) isUIInitialized() bool {
	return g.ui != nil
}

// one time init for ui elements.
func (g *Gallery) initUI() {
	if g.isUIInitialized() {
		panic("ui is already initialized")
	}
	if g.app == nil {
		g.app = app.New()
	}
	g.app.Settings().SetTheme(render.NewMainTheme())

	window := g.app.NewWindow(g.AppTitle)
	ui := &GUI{
		MainWindow: window,
		Sidebar:    render.NewSidebarView(g.host.Sidebar),
		Toasts:     container.NewGridWrap(fyne.NewSize(toastWidth, toastHeight)),
		Status:     widget.NewLabel(""),
	}
	ui.Status.Truncation = fyne.TextTruncateEllipsis

	fields := container.NewVBox()
	for _, in := range g.host.Inputs() {
		field := render.NewInputField(in)
		ui.Fields = append(ui.Fields, field)
		fields.Add(field)
	}

	ui.MenuButton = widget.NewButtonWithIcon("Menu", theme.MenuIcon(), g.host.ToggleSidebar)
	toolbar := container.NewHBox(ui.MenuButton, layout.NewSpacer())
	for _, kind := range model.ToastKinds {
		kind := kind
		toolbar.Add(widget.NewButton(string(kind), func() { g.PushToast(kind) }))
	}
	toolbar.Add(widget.NewButtonWithIcon("", theme.CancelIcon(), func() { g.host.DismissNewest() }))

	main := container.NewBorder(toolbar, ui.Status, nil, nil, container.NewVScroll(container.NewPadded(fields)))
	toastLayer := container.NewBorder(nil, nil, nil, container.NewVBox(ui.Toasts, layout.NewSpacer()))
	window.SetContent(container.NewStack(main, ui.Sidebar, toastLayer))
	window.Resize(fyne.NewSize(g.dims.MinWidth, g.dims.MinHeight))
	window.SetCloseIntercept(func() {
		g.QuitWithCode(model.NoError)
	})

	g.ui = ui
	g.setKeyHandlers()
	if len(ui.Fields) > 0 {
		window.Canvas().Focus(ui.Fields[0].Entry())
	}
	window.Show()
}

// PushToast shows a toast of kind with the configured defaults.
func (g *Gallery) PushToast(kind model.ToastKind) *component.Toast {
	g.uiMutex.Lock()
	g.nextKind++
	n := g.nextKind
	g.uiMutex.Unlock()
	logrus.WithField("kind", kind).Debug("gallery toast")
	return g.host.PushToast(g.host.ToastProps(kind, toastTitle(kind), toastMessage(kind, n)))
}

// refresh syncs the status line and the toast stack with the host.
func (g *Gallery) refresh() {
	g.uiMutex.Lock()
	defer g.uiMutex.Unlock()
	if g.ui == nil {
		return
	}
	g.ui.Status.SetText(g.host.LastEvent())

	live := g.host.Toasts()
	alive := make(map[*component.Toast]bool, len(live))
	objects := make([]fyne.CanvasObject, 0, len(live))
	// newest on top
	for i := len(live) - 1; i >= 0; i-- {
		toast := live[i]
		alive[toast] = true
		view, ok := g.toastViews[toast]
		if !ok {
			view = render.NewToastView(toast)
			g.toastViews[toast] = view
		}
		objects = append(objects, view)
	}
	for toast, view := range g.toastViews {
		if !alive[toast] {
			view.Detach()
			delete(g.toastViews, toast)
		}
	}
	if !sameObjects(g.ui.Toasts.Objects, objects) {
		g.ui.Toasts.Objects = objects
		g.ui.Toasts.Refresh()
	}
}

func sameObjects(a, b []fyne.CanvasObject) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ToggleVisibility toggles the visibility of the gallery window.
func (g *Gallery) ToggleVisibility() {
	if g.ui.MainWindow.Content().Visible() {
		g.ui.MainWindow.Hide()
	} else {
		g.ui.MainWindow.Show()
	}
}

func toastTitle(kind model.ToastKind) string {
	switch kind {
	case model.ToastSuccess:
		return "Saved"
	case model.ToastError:
		return "Sync failed"
	case model.ToastWarning:
		return "Heads up"
	default:
		return ""
	}
}

func toastMessage(kind model.ToastKind, n int) string {
	switch kind {
	case model.ToastSuccess:
		return "Your changes are stored."
	case model.ToastError:
		return "The server did not answer. Retry later."
	case model.ToastWarning:
		return "Your session expires in five minutes."
	default:
		return fmt.Sprintf("Notification #%d", n)
	}
}
