package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hamidzr/gwidgets/component"
	"github.com/hamidzr/gwidgets/core"
	"github.com/hamidzr/gwidgets/model"
	"github.com/hamidzr/gwidgets/render/term"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

const termWidth = 44

// readTerminal is swapped out in tests.
var readTerminal = core.ReadTerminalInput

func newInputCmd() *cobra.Command {
	var (
		label     string
		kind      string
		clearable bool
	)
	cmd := &cobra.Command{
		Use:   "input [initial value]",
		Short: "Edit a single field in the terminal and print its final value",
		Long: "Edit a single field in the terminal. Enter accepts, Ctrl+U clears " +
			"(when clearable) and Tab toggles password visibility.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, err := loadConfig(cmd); err != nil {
				return err
			}
			props := component.InputProps{
				Label:     label,
				Kind:      model.ParseInputKind(kind),
				Clearable: clearable,
				OnChange:  func(v string) { logrus.WithField("len", len(v)).Trace("input changed") },
				OnClear:   func() { logrus.Trace("input cleared") },
			}
			if len(args) == 1 {
				props.DefaultValue = args[0]
			}
			in := component.NewInput(props)
			value, err := readTerminal(in, label+": ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
	cmd.Flags().StringVar(&label, "label", "Value", "Field label")
	cmd.Flags().StringVar(&kind, "input-kind", string(model.InputText), "Field kind: text, password, email, number")
	cmd.Flags().BoolVar(&clearable, "clearable", true, "Allow clearing with Ctrl+U")
	return cmd
}

func newToastCmd() *cobra.Command {
	var (
		title        string
		dismissAfter time.Duration
	)
	cmd := &cobra.Command{
		Use:   "toast [message]",
		Short: "Show one toast in the terminal until it unmounts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			message := "Hello from gwidgets"
			if len(args) == 1 {
				message = args[0]
			}
			props := component.ToastProps{
				Message:     message,
				Title:       title,
				Kind:        model.ParseToastKind(cfg.ToastKind),
				Lifetime:    time.Duration(cfg.ToastLifetimeMs) * time.Millisecond,
				Dismissible: cfg.ToastDismissible,
				Transition:  model.ParseTransition(cfg.ToastTransition),
			}
			if !props.Dismissible && dismissAfter <= 0 {
				logrus.Warn("toast is not dismissible; pass --dismiss-after or press Ctrl+C")
			}
			return showToast(cmd.Context(), cmd.OutOrStdout(), props, dismissAfter)
		},
	}
	cmd.Flags().StringVar(&title, "toast-title", "", "Toast title")
	cmd.Flags().DurationVar(&dismissAfter, "dismiss-after", 0, "Dismiss the toast manually after this long (0 waits for the timer)")
	return cmd
}

// showToast prints a frame for every phase of a toast and returns once it
// unmounted.
func showToast(ctx context.Context, w io.Writer, props component.ToastProps, dismissAfter time.Duration) error {
	frames := make(chan struct{}, 1)
	toast := component.NewToast(props)
	defer toast.Teardown()
	unsubscribe := toast.Subscribe(func() {
		select {
		case frames <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	var last component.ToastPhase = -1
	draw := func() {
		state := toast.State()
		if state.Phase == last || !state.Rendered() {
			return
		}
		last = state.Phase
		fmt.Fprintln(w, term.RenderToast(state, termWidth))
	}
	draw()

	var dismiss <-chan time.Time
	if dismissAfter > 0 {
		timer := time.NewTimer(dismissAfter)
		defer timer.Stop()
		dismiss = timer.C
	}
	for {
		select {
		case <-frames:
			draw()
		case <-dismiss:
			toast.Dismiss()
		case <-toast.Done():
			logrus.Debug("toast unmounted")
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func newSidebarCmd() *cobra.Command {
	var (
		expand    []string
		expandAll bool
		query     string
		method    string
		height    int
	)
	cmd := &cobra.Command{
		Use:   "sidebar",
		Short: "Print the menu tree the way the sidebar renders it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, items, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			search, ok := component.SearchMethods[method]
			if !ok {
				return fmt.Errorf("invalid search method: %s", method)
			}
			expanded := append(slices.Clone(cfg.SidebarDefaultExpanded), expand...)
			if expandAll {
				expanded = append(expanded, branchIDs(items)...)
			}
			sb := component.NewSidebar(component.SidebarProps{
				Open:               true,
				Title:              cfg.SidebarTitle,
				Items:              items,
				DefaultExpandedIDs: expanded,
			})
			defer sb.Dispose()
			return printSidebar(cmd.OutOrStdout(), sb, items, search, query, height)
		},
	}
	cmd.Flags().StringSliceVarP(&expand, "expand", "e", nil, "Additional item ids to expand")
	cmd.Flags().BoolVarP(&expandAll, "all", "a", false, "Expand every branch")
	cmd.Flags().StringVarP(&query, "find", "f", "", "Reveal and highlight the best match for a label")
	cmd.Flags().StringVarP(&method, "search-method", "s", "fuzzy", "Search method: fuzzy, direct")
	cmd.Flags().IntVar(&height, "height", 0, "Panel height (0 fits the rows)")
	return cmd
}

func branchIDs(items []model.MenuItem) []string {
	var ids []string
	model.Walk(items, func(item *model.MenuItem, path []string, level int) bool {
		if item.HasChildren() {
			ids = append(ids, item.ID)
		}
		return true
	})
	return ids
}

func printSidebar(w io.Writer, sb *component.Sidebar, items []model.MenuItem, search component.SearchMethod, query string, height int) error {
	cursor := -1
	if query != "" {
		matches := search(items, query, 1)
		if len(matches) == 0 {
			if s, ok := component.Suggest(items, query); ok {
				fmt.Fprintf(w, "no item matches %q, did you mean %q?\n", query, s.Item.ComputedLabel())
			} else {
				fmt.Fprintf(w, "no item matches %q\n", query)
			}
		} else {
			match := matches[0]
			if err := sb.Reveal(match.Path); err != nil {
				return err
			}
			fmt.Fprintf(w, "found %s\n", strings.Join(match.Path, " / "))
			for i, row := range sb.Rows() {
				if slices.Equal(row.Path, match.Path) {
					cursor = i
					break
				}
			}
		}
	}
	fmt.Fprintln(w, term.RenderSidebar(sb.State(), cursor, termWidth, height))
	return nil
}
