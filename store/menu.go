package store

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hamidzr/gwidgets/model"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// NewMenuStore opens the named-fixture store. An empty dir means MenuDir().
func NewMenuStore(dir string) (*FileStore[MenuFixture], error) {
	if dir == "" {
		dir = MenuDir()
	}
	return NewFileStore[MenuFixture](dir, "yaml")
}

// SampleFixture wraps model.SampleMenu.
func SampleFixture() MenuFixture {
	return MenuFixture{
		Title:           "Menu",
		DefaultExpanded: []string{"projects"},
		Items:           model.SampleMenu,
	}
}

// ValidateMenu checks that every item has an ID and that siblings do not share one.
func ValidateMenu(items []model.MenuItem) error {
	return validateLevel(items, nil)
}

func validateLevel(items []model.MenuItem, parent []string) error {
	seen := make(map[string]bool, len(items))
	for i := range items {
		item := &items[i]
		if item.ID == "" {
			return errors.Errorf("item %d under %q has no id", i, strings.Join(parent, "/"))
		}
		if seen[item.ID] {
			return errors.Errorf("duplicate id %q under %q", item.ID, strings.Join(parent, "/"))
		}
		seen[item.ID] = true
		if err := validateLevel(item.Children, append(parent, item.ID)); err != nil {
			return err
		}
	}
	return nil
}

// LoadMenu resolves ref to a fixture. A bare name (no extension, no
// separator) is looked up in the named store; anything else is read as a
// file path.
func LoadMenu(ref string) (MenuFixture, error) {
	if ref == "" {
		return SampleFixture(), nil
	}
	if filepath.Ext(ref) == "" && !strings.ContainsAny(ref, `/\`) {
		menus, err := NewMenuStore("")
		if err != nil {
			return MenuFixture{}, err
		}
		fixture, err := menus.Load(ref)
		if err != nil {
			return MenuFixture{}, err
		}
		return fixture, errors.Wrapf(ValidateMenu(fixture.Items), "fixture %s", ref)
	}
	return LoadMenuFile(ref)
}

// LoadMenuFile reads a fixture from path. Both a full fixture document and a
// bare list of items are accepted.
func LoadMenuFile(path string) (MenuFixture, error) {
	var fixture MenuFixture
	raw, err := os.ReadFile(path)
	if err != nil {
		return fixture, errors.Wrapf(err, "reading menu file %s", path)
	}

	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return fixture, errors.Wrapf(err, "parsing menu file %s", path)
	}
	if len(node.Content) > 0 && node.Content[0].Kind == yaml.SequenceNode {
		err = node.Content[0].Decode(&fixture.Items)
	} else {
		err = node.Decode(&fixture)
	}
	if err != nil {
		return fixture, errors.Wrapf(err, "decoding menu file %s", path)
	}
	if len(fixture.Items) == 0 {
		return fixture, errors.Errorf("menu file %s has no items", path)
	}
	return fixture, errors.Wrapf(ValidateMenu(fixture.Items), "menu file %s", path)
}

// SaveMenuFile writes fixture to path as yaml.
func SaveMenuFile(path string, fixture MenuFixture) error {
	if err := ValidateMenu(fixture.Items); err != nil {
		return err
	}
	raw, err := yaml.Marshal(fixture)
	if err != nil {
		return errors.Wrap(err, "encoding menu")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "creating %s", filepath.Dir(path))
	}
	return errors.Wrapf(os.WriteFile(path, raw, 0o644), "writing menu file %s", path)
}
