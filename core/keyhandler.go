package core

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/hamidzr/gwidgets/model"
)

// toastKeyKind maps the digit shortcuts to toast severities.
func toastKeyKind(keyName fyne.KeyName) (model.ToastKind, bool) {
	switch keyName {
	case fyne.Key1:
		return model.ToastSuccess, true
	case fyne.Key2:
		return model.ToastError, true
	case fyne.Key3:
		return model.ToastInfo, true
	case fyne.Key4:
		return model.ToastWarning, true
	default:
		return "", false
	}
}

// handleKey runs for keys no focused widget consumed.
func (g *Gallery) handleKey(key *fyne.KeyEvent) {
	switch key.Name {
	case fyne.KeyEscape:
		if g.host.Sidebar.IsOpen() {
			g.host.Sidebar.RequestClose()
			return
		}
		g.QuitWithCode(model.UserCanceled)
	default:
		if kind, ok := toastKeyKind(key.Name); ok {
			g.PushToast(kind)
		}
	}
}

func (g *Gallery) setKeyHandlers() {
	canvas := g.ui.MainWindow.Canvas()
	canvas.SetOnTypedKey(g.handleKey)
	canvas.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyM, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) {
		g.host.ToggleSidebar()
	})
	canvas.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyD, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) {
		g.host.DismissNewest()
	})
	for _, field := range g.ui.Fields {
		field.Entry().OnSubmitted = func(string) { g.PushToast(model.ToastSuccess) }
	}
}
