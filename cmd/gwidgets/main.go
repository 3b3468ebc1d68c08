package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/hamidzr/gwidgets/internal/cli"
	"github.com/hamidzr/gwidgets/internal/logger"
	"github.com/hamidzr/gwidgets/model"
	"github.com/sirupsen/logrus"
)

func main() {
	os.Exit(run())
}

func run() int {
	stopProfiling := startProfiling()
	defer stopProfiling()

	if err := logger.SetupLogger("info"); err != nil {
		logrus.Error(err)
		return int(model.UnknownError)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := cli.InitCLI()
	err := cmd.ExecuteContext(ctx)
	code, cause := model.ExitCodeFromError(err)
	if cause != nil && code != model.UserCanceled {
		logrus.Error(cause)
	}
	return int(code)
}
