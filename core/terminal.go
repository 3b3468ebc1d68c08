package core

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/hamidzr/gwidgets/component"
	"github.com/hamidzr/gwidgets/model"
	"github.com/hamidzr/gwidgets/render/term"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	xterm "golang.org/x/term"
)

const (
	keyCtrlC     = 3
	keyBackspace = 8
	keyTab       = 9
	keyCtrlU     = 21
	keyDelete    = 127
)

// feedKey applies one byte of raw terminal input to in. It reports whether
// the line is finished and whether it was cancelled.
func feedKey(in *component.Input, char byte) (done bool, canceled bool) {
	switch {
	case char == '\r' || char == '\n':
		return true, false
	case char == keyCtrlC:
		return true, true
	case char == keyDelete || char == keyBackspace:
		value := []rune(in.Value())
		if len(value) > 0 {
			in.Type(string(value[:len(value)-1]))
		}
	case char == keyCtrlU:
		if in.State().ShowClear {
			in.Clear()
		}
	case char == keyTab:
		if in.State().ShowToggle {
			in.TogglePasswordVisibility()
		}
	case char >= 32 && char <= 126:
		in.Type(in.Value() + string(rune(char)))
	}
	return false, false
}

// promptLine is the single output line: prompt, displayed value and the
// available controls.
func promptLine(prompt string, state component.InputState) string {
	line := "\r\033[K" + prompt + term.DisplayValue(state)
	if state.ShowToggle {
		line += "  (tab: reveal)"
	}
	if state.ShowClear {
		line += "  (ctrl+u: clear)"
	}
	return line
}

// ReadInputLive feeds raw bytes from r into in, redrawing a single line on w
// after every key, until Enter or Ctrl+C. Ctrl+C returns an *model.ExitError
// with model.UserCanceled.
func ReadInputLive(in *component.Input, prompt string, r io.Reader, w io.Writer) (string, error) {
	reader := bufio.NewReader(r)
	redraw := func() {
		fmt.Fprint(w, promptLine(prompt, in.State()))
	}
	redraw()
	for {
		char, err := reader.ReadByte()
		if err == io.EOF {
			fmt.Fprint(w, "\r\n")
			return in.Value(), nil
		}
		if err != nil {
			return "", errors.Wrap(err, "reading input")
		}
		done, canceled := feedKey(in, char)
		if canceled {
			fmt.Fprint(w, "\r\n")
			return "", model.NewExitError(model.UserCanceled, nil)
		}
		if done {
			fmt.Fprint(w, "\r\n")
			return in.Value(), nil
		}
		redraw()
	}
}

// ReadTerminalInput runs ReadInputLive on the process terminal in raw mode.
// Stdin that is not a terminal is read as is.
func ReadTerminalInput(in *component.Input, prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if xterm.IsTerminal(fd) {
		oldState, err := xterm.MakeRaw(fd)
		if err != nil {
			return "", errors.Wrap(err, "setting raw terminal mode")
		}
		defer func() {
			if err := xterm.Restore(fd, oldState); err != nil {
				logrus.Errorf("Failed to restore terminal: %v", err)
			}
		}()
	}
	return ReadInputLive(in, prompt, os.Stdin, os.Stdout)
}
