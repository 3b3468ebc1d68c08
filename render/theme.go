package render

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/hamidzr/gwidgets/model"
)

// MainTheme tightens the default fyne sizes and colors for small widgets.
type MainTheme struct {
	fyne.Theme
}

// NewMainTheme wraps the default theme.
func NewMainTheme() MainTheme {
	return MainTheme{Theme: theme.DefaultTheme()}
}

func themeSizes() map[fyne.ThemeSizeName]float32 {
	return map[fyne.ThemeSizeName]float32{
		theme.SizeNameInlineIcon:         float32(18),
		theme.SizeNameInnerPadding:       float32(6),
		theme.SizeNameLineSpacing:        float32(4),
		theme.SizeNamePadding:            float32(4),
		theme.SizeNameScrollBar:          float32(10),
		theme.SizeNameScrollBarSmall:     float32(2),
		theme.SizeNameSeparatorThickness: float32(1),
		theme.SizeNameText:               float32(15),
		theme.SizeNameCaptionText:        float32(12),
		theme.SizeNameInputBorder:        float32(2),
		theme.SizeNameInputRadius:        float32(6),
	}
}

func (m MainTheme) Size(name fyne.ThemeSizeName) float32 {
	if size, ok := themeSizes()[name]; ok {
		return size
	}
	return m.Theme.Size(name)
}

func (m MainTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSelection:
		return color.NRGBA{R: 0x3d, G: 0x9f, B: 0xff, A: 0xff}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
		}
		return color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}
		}
		return color.NRGBA{R: 0xf8, G: 0xf8, B: 0xf8, A: 0xff}
	case theme.ColorNameInputBackground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 0x2d, G: 0x2d, B: 0x2d, A: 0xff}
		}
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	case theme.ColorNamePlaceHolder:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
		}
		return color.NRGBA{R: 0x90, G: 0x90, B: 0x90, A: 0xff}
	case theme.ColorNameShadow:
		// sidebar backdrop
		return color.NRGBA{A: 0x66}
	default:
		return m.Theme.Color(name, variant)
	}
}

// KindColorName maps a toast severity to the theme color of its accent bar.
func KindColorName(kind model.ToastKind) fyne.ThemeColorName {
	switch kind {
	case model.ToastSuccess:
		return theme.ColorNameSuccess
	case model.ToastError:
		return theme.ColorNameError
	case model.ToastWarning:
		return theme.ColorNameWarning
	default:
		return theme.ColorNamePrimary
	}
}

// themeColor resolves name against the running app's theme, falling back to
// the default theme when no app exists.
func themeColor(name fyne.ThemeColorName) color.Color {
	if a := fyne.CurrentApp(); a != nil {
		s := a.Settings()
		return s.Theme().Color(name, s.ThemeVariant())
	}
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}
