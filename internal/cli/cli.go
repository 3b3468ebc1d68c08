package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hamidzr/gwidgets/constant"
	"github.com/hamidzr/gwidgets/core"
	"github.com/hamidzr/gwidgets/internal/config"
	"github.com/hamidzr/gwidgets/model"
	"github.com/hamidzr/gwidgets/store"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func InitCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          constant.ProjectName,
		Short:        "gwidgets is a gallery of input, sidebar and toast widgets",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			initConfig, _ := cmd.Flags().GetBool("init-config")
			if initConfig {
				profile, _ := cmd.Flags().GetString("profile")
				configPath, err := config.InitConfigFile(profile)
				if err != nil {
					return fmt.Errorf("failed to initialize config: %w", err)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Config file created at: %s\n", configPath)
				if profile != "" {
					fmt.Fprintf(out, "Use with: %s --profile %s\n", constant.ProjectName, profile)
				}
				return nil
			}

			cfg, items, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return run(cfg, items)
		},
	}

	config.BindFlags(rootCmd)
	rootCmd.AddCommand(newInputCmd(), newToastCmd(), newSidebarCmd(), newItemsCmd())

	return rootCmd
}

// loadConfig resolves the config, applies its log level and loads the menu
// fixture it names.
func loadConfig(cmd *cobra.Command) (*model.Config, []model.MenuItem, error) {
	cfg, err := config.InitConfig(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(lvl)
	}

	fixture, err := store.LoadMenu(cfg.SidebarItemsFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load menu: %w", err)
	}
	applyFixture(cfg, fixture)
	logrus.WithFields(logrus.Fields{
		"items":    len(fixture.Items),
		"expanded": cfg.SidebarDefaultExpanded,
	}).Debug("menu loaded")
	return cfg, fixture.Items, nil
}

// applyFixture lets a fixture supply the sidebar title and expansion set.
// An explicitly configured title wins over the fixture's.
func applyFixture(cfg *model.Config, fixture store.MenuFixture) {
	if fixture.Title != "" && cfg.SidebarTitle == model.DefaultConfig().SidebarTitle {
		cfg.SidebarTitle = fixture.Title
	}
	if cfg.SidebarItemsFile != "" && fixture.DefaultExpanded != nil {
		cfg.SidebarDefaultExpanded = fixture.DefaultExpanded
	}
}

func run(cfg *model.Config, items []model.MenuItem) error {
	host := core.NewHost(cfg, items)

	if cfg.TerminalMode {
		logrus.Debug("Running in terminal mode")
		return core.RunPlayground(host, tea.WithAltScreen())
	}

	gallery, err := core.NewGallery(cfg, host)
	if err != nil {
		host.Close()
		return fmt.Errorf("failed to create gallery: %w", err)
	}
	return gallery.Run()
}
