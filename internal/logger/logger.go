package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// StderrHook writes warnings and worse to Err and everything else to Out.
type StderrHook struct {
	Out io.Writer
	Err io.Writer
}

func (h *StderrHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *StderrHook) Fire(entry *logrus.Entry) error {
	line, err := entry.Bytes()
	if err != nil {
		return err
	}
	out := h.Out
	if entry.Level <= logrus.WarnLevel {
		out = h.Err
	}
	_, err = out.Write(line)
	return err
}

// Configure points logger at out and errOut and applies level.
func Configure(logger *logrus.Logger, level string, out, errOut io.Writer) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger.SetOutput(io.Discard)
	logger.SetLevel(lvl)
	logger.ReplaceHooks(make(logrus.LevelHooks))
	logger.AddHook(&StderrHook{Out: out, Err: errOut})
	return nil
}

// SetupLogger configures the standard logger for the binaries.
func SetupLogger(level string) error {
	return Configure(logrus.StandardLogger(), level, os.Stdout, os.Stderr)
}
