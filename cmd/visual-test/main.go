package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/hamidzr/gwidgets/core"
	"github.com/hamidzr/gwidgets/model"
)

// step is one scripted action followed by a pause so the result is visible.
type step struct {
	label string
	do    func(h *core.Host)
	pause time.Duration
}

type script struct {
	description string
	steps       func() []step
}

var scripts = map[string]script{
	"cycles": {"Open, browse and close the sidebar three times", cycleSteps},
	"toasts": {"Stack every toast kind and overflow the stack", toastSteps},
	"stress": {"Toggle the sidebar inside its grace period and churn toasts", stressSteps},
}

func main() {
	if err := run(os.Args); err != nil {
		code, _ := model.ExitCodeFromError(err)
		os.Exit(int(code))
	}
}

func usage() {
	fmt.Println("Usage: go run ./cmd/visual-test <test-type>")
	fmt.Println("Available tests:")
	names := make([]string, 0, len(scripts))
	for name := range scripts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-8s - %s\n", name, scripts[name].description)
	}
}

func run(args []string) error {
	if len(args) < 2 {
		usage()
		return model.NewExitError(model.UnknownError, nil)
	}
	s, ok := scripts[args[1]]
	if !ok {
		fmt.Printf("Unknown test type: %s\n", args[1])
		usage()
		return model.NewExitError(model.UnknownError, nil)
	}

	cfg := model.DefaultConfig()
	cfg.Title = "Visual test - " + args[1]
	host := core.NewHost(&cfg, nil)
	gallery, err := core.NewGallery(&cfg, host)
	if err != nil {
		host.Close()
		return err
	}

	go func() {
		// let the window come up first
		time.Sleep(time.Second)
		play(host, s.steps(), time.Sleep)
		fmt.Println("Script finished, closing in 2 seconds...")
		time.Sleep(2 * time.Second)
		gallery.QuitWithCode(model.NoError)
	}()

	return gallery.Run()
}

// play runs steps in order, calling wait for every pause.
func play(h *core.Host, steps []step, wait func(time.Duration)) {
	for i, st := range steps {
		fmt.Printf("[%02d] %s\n", i+1, st.label)
		st.do(h)
		if st.pause > 0 {
			wait(st.pause)
		}
	}
}

func pushToast(kind model.ToastKind, title, message string) func(h *core.Host) {
	return func(h *core.Host) {
		h.PushToast(h.ToastProps(kind, title, message))
	}
}

func activate(path ...string) func(h *core.Host) {
	return func(h *core.Host) {
		if err := h.Sidebar.Activate(path...); err != nil {
			fmt.Printf("activate %v: %v\n", path, err)
		}
	}
}

func cycleSteps() []step {
	var steps []step
	for cycle := 1; cycle <= 3; cycle++ {
		steps = append(steps,
			step{fmt.Sprintf("cycle %d: open sidebar", cycle), (*core.Host).OpenSidebar, 1500 * time.Millisecond},
			step{"expand archive", activate("projects", "archive"), time.Second},
			step{"collapse archive", activate("projects", "archive"), time.Second},
			step{"pick a leaf (closes the sidebar)", activate("projects", "current"), time.Second},
			step{"announce the pick", pushToast(model.ToastSuccess, "Opened", fmt.Sprintf("Cycle %d picked Current", cycle)), 2 * time.Second},
		)
	}
	return steps
}

func toastSteps() []step {
	steps := []step{}
	for i, kind := range model.ToastKinds {
		steps = append(steps, step{"push " + string(kind), pushToast(kind, "", fmt.Sprintf("Toast %d", i+1)), 500 * time.Millisecond})
	}
	steps = append(steps,
		step{"overflow the stack", pushToast(model.ToastInfo, "Overflow", "The oldest toast slides out"), time.Second},
		step{"dismiss the newest", func(h *core.Host) { h.DismissNewest() }, time.Second},
		step{"let the rest expire", func(*core.Host) {}, 4 * time.Second},
	)
	return steps
}

func stressSteps() []step {
	var steps []step
	for i := 0; i < 100; i++ {
		i := i
		steps = append(steps, step{fmt.Sprintf("toggle %d", i), func(h *core.Host) {
			h.ToggleSidebar()
			if i%5 == 0 {
				kind := model.ToastKinds[i/5%len(model.ToastKinds)]
				h.PushToast(h.ToastProps(kind, "", fmt.Sprintf("Stress %d", i)))
			}
			if i%7 == 0 {
				h.DismissNewest()
			}
		}, 100 * time.Millisecond})
	}
	steps = append(steps, step{"close", (*core.Host).CloseSidebar, time.Second})
	return steps
}
