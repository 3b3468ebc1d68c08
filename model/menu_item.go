package model

// MenuItem is a node in a sidebar menu tree.
// IDs only need to be unique among siblings.
type MenuItem struct {
	ID    string `yaml:"id" json:"id"`
	Label string `yaml:"label" json:"label"`
	// Href is an optional navigation target for leaf items.
	Href string `yaml:"href,omitempty" json:"href,omitempty"`
	// OnClick runs when the item is activated, before toggling or closing.
	OnClick  func()     `yaml:"-" json:"-"`
	Children []MenuItem `yaml:"children,omitempty" json:"children,omitempty"`
}

// HasChildren reports whether activating the item toggles a sub menu.
func (m *MenuItem) HasChildren() bool {
	return len(m.Children) > 0
}

// ComputedLabel returns the label of the menu item, falling back to its ID.
func (m *MenuItem) ComputedLabel() string {
	if m.Label != "" {
		return m.Label
	}
	return m.ID
}

// FindPath walks the tree following a sequence of sibling-scoped IDs.
func FindPath(items []MenuItem, path []string) (*MenuItem, bool) {
	if len(path) == 0 {
		return nil, false
	}
	level := items
	var found *MenuItem
	for _, id := range path {
		found = nil
		for i := range level {
			if level[i].ID == id {
				found = &level[i]
				break
			}
		}
		if found == nil {
			return nil, false
		}
		level = found.Children
	}
	return found, true
}

// Walk visits every item depth first. Returning false from fn skips the
// children of that item.
func Walk(items []MenuItem, fn func(item *MenuItem, path []string, level int) bool) {
	walk(items, nil, 0, fn)
}

func walk(items []MenuItem, parent []string, level int, fn func(*MenuItem, []string, int) bool) {
	for i := range items {
		path := make([]string, len(parent)+1)
		copy(path, parent)
		path[len(parent)] = items[i].ID
		if fn(&items[i], path, level) {
			walk(items[i].Children, path, level+1, fn)
		}
	}
}

// SampleMenu is the workspace tree used by the demos when no fixture is given.
var SampleMenu = []MenuItem{
	{ID: "dashboard", Label: "Dashboard"},
	{
		ID:    "projects",
		Label: "Projects",
		Children: []MenuItem{
			{ID: "current", Label: "Current"},
			{ID: "upcoming", Label: "Upcoming"},
			{
				ID:    "archive",
				Label: "Archive",
				Children: []MenuItem{
					{ID: "2025", Label: "2025"},
					{ID: "2024", Label: "2024"},
				},
			},
		},
	},
	{ID: "settings", Label: "Settings", Href: "https://example.com/settings"},
}
