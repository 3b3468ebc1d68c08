package render

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// Backdrop is a tappable surface behind an overlay. It takes no space of its
// own and is stretched by its container.
type Backdrop struct {
	widget.BaseWidget
	OnTapped func()
	rect     *canvas.Rectangle
}

// NewBackdrop creates a backdrop filled with fill.
func NewBackdrop(fill color.Color, onTapped func()) *Backdrop {
	b := &Backdrop{
		OnTapped: onTapped,
		rect:     canvas.NewRectangle(fill),
	}
	b.ExtendBaseWidget(b)
	return b
}

// SetFill changes the backdrop color.
func (b *Backdrop) SetFill(fill color.Color) {
	b.rect.FillColor = fill
	b.rect.Refresh()
}

func (b *Backdrop) Tapped(_ *fyne.PointEvent) {
	if b.OnTapped != nil {
		b.OnTapped()
	}
}

func (b *Backdrop) CreateRenderer() fyne.WidgetRenderer {
	return &backdropRenderer{rect: b.rect}
}

type backdropRenderer struct {
	rect *canvas.Rectangle
}

func (r *backdropRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

func (r *backdropRenderer) Layout(size fyne.Size) {
	r.rect.Resize(size)
}

func (r *backdropRenderer) Refresh() {
	canvas.Refresh(r.rect)
}

func (r *backdropRenderer) Destroy() {}

func (r *backdropRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.rect}
}
