package render

import (
	"fyne.io/fyne/v2"
)

// TrailingLayout gives the trailing objects their minimum width and
// allocates the remaining space to the first object. Hidden objects take no
// space.
type TrailingLayout struct{}

// NewTrailingLayout creates a new instance of TrailingLayout.
func NewTrailingLayout() *TrailingLayout {
	return &TrailingLayout{}
}

// Layout is called to position the contained objects within the specified size.
func (l *TrailingLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) == 0 {
		return
	}
	x := size.Width
	for i := len(objects) - 1; i > 0; i-- {
		o := objects[i]
		if !o.Visible() {
			continue
		}
		w := o.MinSize().Width
		x -= w
		o.Resize(fyne.NewSize(w, size.Height))
		o.Move(fyne.NewPos(x, 0))
	}
	if x < 0 {
		x = 0
	}
	objects[0].Resize(fyne.NewSize(x, size.Height))
	objects[0].Move(fyne.NewPos(0, 0))
}

// MinSize calculates the minimum size of a container that uses this layout.
func (l *TrailingLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var minWidth, minHeight float32
	for _, o := range objects {
		if !o.Visible() {
			continue
		}
		min := o.MinSize()
		minWidth += min.Width
		if min.Height > minHeight {
			minHeight = min.Height
		}
	}
	return fyne.NewSize(minWidth, minHeight)
}

// PanelLayout stretches the first object over the whole area and pins the
// second one to the leading edge with a fixed width, the way an off-canvas
// panel sits over its backdrop.
type PanelLayout struct {
	panelWidth float32
}

// NewPanelLayout creates a new instance of PanelLayout.
func NewPanelLayout(panelWidth float32) *PanelLayout {
	return &PanelLayout{panelWidth: panelWidth}
}

// Layout is called to position the contained objects within the specified size.
func (l *PanelLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) != 2 {
		return // backdrop and panel only
	}
	objects[0].Resize(size)
	objects[0].Move(fyne.NewPos(0, 0))

	width := l.panelWidth
	if width > size.Width {
		width = size.Width
	}
	objects[1].Resize(fyne.NewSize(width, size.Height))
	objects[1].Move(fyne.NewPos(0, 0))
}

// MinSize calculates the minimum size of a container that uses this layout.
func (l *PanelLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var minWidth, minHeight float32
	for _, o := range objects {
		min := o.MinSize()
		if min.Width > minWidth {
			minWidth = min.Width
		}
		if min.Height > minHeight {
			minHeight = min.Height
		}
	}
	if l.panelWidth > minWidth {
		minWidth = l.panelWidth
	}
	return fyne.NewSize(minWidth, minHeight)
}
