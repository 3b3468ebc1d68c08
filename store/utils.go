package store

import (
	"os"
	"path/filepath"

	"github.com/hamidzr/gwidgets/constant"
)

func ConfigDir() string {
	return filepath.Join(os.Getenv("HOME"), ".config", constant.ProjectName)
}

// MenuDir is where named menu fixtures live.
func MenuDir() string {
	return filepath.Join(ConfigDir(), "menus")
}
