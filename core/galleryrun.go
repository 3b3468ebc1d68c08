package core

import (
	"github.com/hamidzr/gwidgets/model"
	"github.com/sirupsen/logrus"
)

// SetExitCode sets the exit code for the application.
func (g *Gallery) SetExitCode(code model.ExitCode) {
	logrus.Debug("setting exit code to: ", code)
	g.exitMutex.Lock()
	defer g.exitMutex.Unlock()
	if g.exitCode != model.Unset && g.exitCode != code {
		logrus.Warnf("exit code already set to %d, ignoring %d", g.exitCode, code)
		return
	}
	g.exitCode = code
}

// ExitCode is the code the gallery quit with, or model.Unset.
func (g *Gallery) ExitCode() model.ExitCode {
	g.exitMutex.Lock()
	defer g.exitMutex.Unlock()
	return g.exitCode
}

// QuitWithCode exits the application.
func (g *Gallery) QuitWithCode(code model.ExitCode) {
	g.SetExitCode(code)
	g.Quit()
}

// Quit tears the widgets down and stops the app.
func (g *Gallery) Quit() {
	if g.ExitCode() == model.Unset {
		g.SetExitCode(model.NoError)
	}
	g.host.Close()
	g.app.Quit()
}

// Run shows the window and blocks until the app quits. A cancelled run
// returns an *model.ExitError.
func (g *Gallery) Run() error {
	if g.isRunning {
		panic("Run called multiple times")
	}
	g.isRunning = true
	g.app.Run()
	return g.exitError()
}

func (g *Gallery) exitError() error {
	switch code := g.ExitCode(); code {
	case model.Unset, model.NoError:
		return nil
	default:
		return model.NewExitError(code, nil)
	}
}
