package config

import (
	"strings"

	"github.com/hamidzr/gwidgets/constant"
	"github.com/hamidzr/gwidgets/model"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagBinding ties a CLI flag to the config key it overrides.
type flagBinding struct {
	flag string
	key  string
}

var flagBindings = []flagBinding{
	{flag: "title", key: "title"},
	{flag: "profile", key: "profile"},
	{flag: "log-level", key: "log_level"},
	{flag: "terminal", key: "terminal_mode"},
	{flag: "min-width", key: "min_width"},
	{flag: "min-height", key: "min_height"},
	{flag: "sidebar-title", key: "sidebar_title"},
	{flag: "items", key: "sidebar_items_file"},
	{flag: "expanded", key: "sidebar_default_expanded"},
	{flag: "grace-ms", key: "sidebar_grace_ms"},
	{flag: "lifetime-ms", key: "toast_lifetime_ms"},
	{flag: "kind", key: "toast_kind"},
	{flag: "transition", key: "toast_transition"},
	{flag: "dismissible", key: "toast_dismissible"},
}

// BindFlags registers the config flags on cmd as persistent flags.
func BindFlags(cmd *cobra.Command) {
	defaults := model.DefaultConfig()
	flags := cmd.PersistentFlags()

	flags.StringP("title", "t", defaults.Title, "Title of the gallery window")
	flags.StringP("profile", "p", defaults.Profile, "Config profile (reads ~/.config/gwidgets/<profile>/config.yaml)")
	flags.StringP("log-level", "l", defaults.LogLevel, "Log level (trace, debug, info, warn, error)")
	flags.Bool("terminal", defaults.TerminalMode, "Run the terminal playground instead of the GUI")
	flags.Float32("min-width", defaults.MinWidth, "Minimum window width")
	flags.Float32("min-height", defaults.MinHeight, "Minimum window height")
	flags.String("sidebar-title", defaults.SidebarTitle, "Sidebar header title")
	flags.StringP("items", "i", defaults.SidebarItemsFile, "Menu fixture: a yaml file or a saved fixture name")
	flags.StringSlice("expanded", defaults.SidebarDefaultExpanded, "Menu item ids expanded when the sidebar opens")
	flags.Int("grace-ms", defaults.SidebarGraceMs, "Milliseconds the sidebar stays mounted after closing")
	flags.Int("lifetime-ms", defaults.ToastLifetimeMs, "Toast lifetime in milliseconds (<= 0 uses 3000)")
	flags.StringP("kind", "k", defaults.ToastKind, "Toast kind: success, error, info, warning")
	flags.String("transition", defaults.ToastTransition, "Toast exit transition: slide, fade")
	flags.Bool("dismissible", defaults.ToastDismissible, "Whether toasts dismiss themselves")
	flags.Bool("init-config", false, "Generate and save default config file")
}

// lookupFlag finds name among the local, persistent and inherited flags of cmd.
func lookupFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f
	}
	if f := cmd.PersistentFlags().Lookup(name); f != nil {
		return f
	}
	return cmd.InheritedFlags().Lookup(name)
}

func bindViperFlags(v *viper.Viper, cmd *cobra.Command) error {
	for _, b := range flagBindings {
		f := lookupFlag(cmd, b.flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(b.key, f); err != nil {
			return err
		}
	}
	return nil
}

// SetViperDefaults sets default values in viper configuration
func SetViperDefaults(v *viper.Viper) {
	defaults := model.DefaultConfig()
	v.SetDefault("title", defaults.Title)
	v.SetDefault("profile", defaults.Profile)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("terminal_mode", defaults.TerminalMode)
	v.SetDefault("min_width", defaults.MinWidth)
	v.SetDefault("min_height", defaults.MinHeight)
	v.SetDefault("sidebar_title", defaults.SidebarTitle)
	v.SetDefault("sidebar_items_file", defaults.SidebarItemsFile)
	v.SetDefault("sidebar_default_expanded", defaults.SidebarDefaultExpanded)
	v.SetDefault("sidebar_grace_ms", defaults.SidebarGraceMs)
	v.SetDefault("toast_lifetime_ms", defaults.ToastLifetimeMs)
	v.SetDefault("toast_kind", defaults.ToastKind)
	v.SetDefault("toast_transition", defaults.ToastTransition)
	v.SetDefault("toast_dismissible", defaults.ToastDismissible)
}

// SetViperEnvSettings configures viper environment variable settings
func SetViperEnvSettings(v *viper.Viper) {
	v.SetEnvPrefix(constant.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}
