package store

import "github.com/hamidzr/gwidgets/model"

// MenuFixture is a sidebar menu tree saved for the demos.
type MenuFixture struct {
	Title           string           `yaml:"title,omitempty" json:"title,omitempty"`
	DefaultExpanded []string         `yaml:"default_expanded,omitempty" json:"defaultExpanded,omitempty"`
	Items           []model.MenuItem `yaml:"items" json:"items"`
}

// Store persists named documents of a single type.
type Store[T any] interface {
	Save(name string, data T) error
	Load(name string) (T, error)
	Exists(name string) bool
	List() ([]string, error)
}

var _ Store[MenuFixture] = (*FileStore[MenuFixture])(nil)
