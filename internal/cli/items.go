package cli

import (
	"fmt"

	"github.com/hamidzr/gwidgets/component"
	"github.com/hamidzr/gwidgets/render/term"
	"github.com/hamidzr/gwidgets/store"
	"github.com/spf13/cobra"
)

func newItemsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Manage saved menu fixtures",
	}
	cmd.AddCommand(newItemsInitCmd(), newItemsShowCmd(), newItemsListCmd())
	return cmd
}

func newItemsInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [name]",
		Short: "Save the sample menu as a named fixture",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "sample"
			if len(args) == 1 {
				name = args[0]
			}
			menus, err := store.NewMenuStore("")
			if err != nil {
				return err
			}
			if menus.Exists(name) && !force {
				return fmt.Errorf("fixture %q already exists at %s (use --force to overwrite)", name, menus.Path(name))
			}
			if err := menus.Save(name, store.SampleFixture()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved fixture %q to %s\n", name, menus.Path(name))
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing fixture")
	return cmd
}

func newItemsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name|file>",
		Short: "Print a fixture fully expanded",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fixture, err := store.LoadMenu(args[0])
			if err != nil {
				return err
			}
			title := fixture.Title
			if title == "" {
				title = args[0]
			}
			sb := component.NewSidebar(component.SidebarProps{
				Open:               true,
				Title:              title,
				Items:              fixture.Items,
				DefaultExpandedIDs: branchIDs(fixture.Items),
			})
			defer sb.Dispose()
			fmt.Fprintln(cmd.OutOrStdout(), term.RenderSidebar(sb.State(), -1, termWidth, 0))
			return nil
		},
	}
}

func newItemsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved fixtures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			menus, err := store.NewMenuStore("")
			if err != nil {
				return err
			}
			names, err := menus.List()
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
