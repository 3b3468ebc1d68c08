package component

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/hamidzr/gwidgets/model"
	"github.com/sahilm/fuzzy"
)

// MenuMatch is a menu item found by a search, anywhere in the tree.
type MenuMatch struct {
	Item  model.MenuItem
	Path  []string
	Level int
	Score int
}

// SearchMethod finds menu items for a query. A limit of 0 means unlimited.
type SearchMethod func(items []model.MenuItem, query string, limit int) []MenuMatch

// SearchMethods maps method names accepted on the command line.
var SearchMethods = map[string]SearchMethod{
	"fuzzy":  FuzzySearch,
	"direct": DirectSearch,
}

type flatItem struct {
	item  model.MenuItem
	path  []string
	level int
}

func flatten(items []model.MenuItem) []flatItem {
	var flat []flatItem
	model.Walk(items, func(item *model.MenuItem, path []string, level int) bool {
		flat = append(flat, flatItem{item: *item, path: path, level: level})
		return true
	})
	return flat
}

func limitMatches(matches []MenuMatch, limit int) []MenuMatch {
	if limit > 0 && len(matches) > limit {
		return matches[:limit]
	}
	return matches
}

// IsDirectMatch checks if s contains keyword. An upper case letter in the
// keyword makes the match case sensitive.
func IsDirectMatch(s, keyword string) bool {
	if strings.ToLower(keyword) != keyword {
		return strings.Contains(s, keyword)
	}
	return strings.Contains(strings.ToLower(s), keyword)
}

// DirectSearch keeps tree order and matches substrings of labels.
func DirectSearch(items []model.MenuItem, query string, limit int) []MenuMatch {
	matches := make([]MenuMatch, 0)
	for _, f := range flatten(items) {
		if query == "" || IsDirectMatch(f.item.ComputedLabel(), query) {
			matches = append(matches, MenuMatch{Item: f.item, Path: f.path, Level: f.level})
		}
	}
	return limitMatches(matches, limit)
}

// FuzzySearch ranks labels by fuzzy score, best first.
func FuzzySearch(items []model.MenuItem, query string, limit int) []MenuMatch {
	flat := flatten(items)
	if query == "" {
		return DirectSearch(items, query, limit)
	}
	labels := make([]string, len(flat))
	for i, f := range flat {
		labels[i] = f.item.ComputedLabel()
	}

	found := fuzzy.Find(query, labels)
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Score > found[j].Score
	})

	matches := make([]MenuMatch, 0, len(found))
	for _, m := range found {
		f := flat[m.Index]
		matches = append(matches, MenuMatch{Item: f.item, Path: f.path, Level: f.level, Score: m.Score})
	}
	return limitMatches(matches, limit)
}

// Suggest returns the item whose label is closest to query by edit distance,
// for "did you mean" hints when a search finds nothing. Labels further away
// than a third of the query length (at least 2 edits) are not suggested.
func Suggest(items []model.MenuItem, query string) (MenuMatch, bool) {
	query = strings.ToLower(query)
	maxDistance := len(query) / 3
	if maxDistance < 2 {
		maxDistance = 2
	}
	best, bestDistance := MenuMatch{}, -1
	for _, f := range flatten(items) {
		d := levenshtein.ComputeDistance(query, strings.ToLower(f.item.ComputedLabel()))
		if d > maxDistance {
			continue
		}
		if bestDistance == -1 || d < bestDistance {
			best = MenuMatch{Item: f.item, Path: f.path, Level: f.level, Score: -d}
			bestDistance = d
		}
	}
	return best, bestDistance >= 0
}
