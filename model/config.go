package model

import "github.com/hamidzr/gwidgets/constant"

// Config holds the demo harness configuration.
type Config struct {
	Title        string  `mapstructure:"title" yaml:"title"`
	Profile      string  `mapstructure:"profile" yaml:"profile"`
	LogLevel     string  `mapstructure:"log_level" yaml:"log_level"`
	TerminalMode bool    `mapstructure:"terminal_mode" yaml:"terminal_mode"`
	MinWidth     float32 `mapstructure:"min_width" yaml:"min_width"`
	MinHeight    float32 `mapstructure:"min_height" yaml:"min_height"`

	SidebarTitle           string   `mapstructure:"sidebar_title" yaml:"sidebar_title"`
	SidebarItemsFile       string   `mapstructure:"sidebar_items_file" yaml:"sidebar_items_file"`
	SidebarDefaultExpanded []string `mapstructure:"sidebar_default_expanded" yaml:"sidebar_default_expanded"`
	SidebarGraceMs         int      `mapstructure:"sidebar_grace_ms" yaml:"sidebar_grace_ms"`

	ToastLifetimeMs  int    `mapstructure:"toast_lifetime_ms" yaml:"toast_lifetime_ms"`
	ToastKind        string `mapstructure:"toast_kind" yaml:"toast_kind"`
	ToastTransition  string `mapstructure:"toast_transition" yaml:"toast_transition"`
	ToastDismissible bool   `mapstructure:"toast_dismissible" yaml:"toast_dismissible"`
}

func DefaultConfig() Config {
	return Config{
		Title:                  constant.ProjectName,
		Profile:                "",
		LogLevel:               "info",
		TerminalMode:           false,
		MinWidth:               720,
		MinHeight:              480,
		SidebarTitle:           "Menu",
		SidebarItemsFile:       "",
		SidebarDefaultExpanded: []string{"projects"},
		SidebarGraceMs:         250,
		ToastLifetimeMs:        3000,
		ToastKind:              string(ToastInfo),
		ToastTransition:        string(TransitionSlide),
		ToastDismissible:       true,
	}
}
