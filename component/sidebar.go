package component

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/hamidzr/gwidgets/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
)

const (
	// DefaultSidebarTitle is shown when the host supplies no title.
	DefaultSidebarTitle = "Menu"
	// DefaultGracePeriod matches the panel's closing animation.
	DefaultGracePeriod = 250 * time.Millisecond
)

// SidebarProps configures a Sidebar.
type SidebarProps struct {
	Open               bool
	Title              string
	Items              []model.MenuItem
	DefaultExpandedIDs []string
	OnClose            func()
}

// SidebarRow is one visible line of the menu.
type SidebarRow struct {
	Item        model.MenuItem
	Path        []string
	Level       int
	HasChildren bool
	Expanded    bool
}

// SidebarState is a consistent snapshot for renderers.
type SidebarState struct {
	Open         bool
	ShouldRender bool
	Title        string
	Rows         []SidebarRow
}

// SidebarOption customises a Sidebar.
type SidebarOption func(*Sidebar)

// WithSidebarScheduler replaces the wall clock used for the unmount grace.
func WithSidebarScheduler(sched Scheduler) SidebarOption {
	return func(s *Sidebar) {
		s.sched = sched
	}
}

// WithGracePeriod sets how long the panel stays rendered after closing.
// Negative values keep the default.
func WithGracePeriod(d time.Duration) SidebarOption {
	return func(s *Sidebar) {
		if d >= 0 {
			s.grace = d
		}
	}
}

// WithNavigator is called with the Href of an activated leaf before the
// close request.
func WithNavigator(navigate func(href string)) SidebarOption {
	return func(s *Sidebar) {
		s.navigate = navigate
	}
}

// Sidebar is an off-canvas panel with a nested menu. Open is the host's
// intent; ShouldRender is whether the panel is still on screen, which lags
// behind a close by the grace period so the exit animation can play.
type Sidebar struct {
	notifier
	mu           sync.Mutex
	props        SidebarProps
	expanded     map[string]struct{}
	shouldRender bool
	disposed     bool
	unmount      timerSlot
	sched        Scheduler
	grace        time.Duration
	navigate     func(href string)
}

// NewSidebar creates a sidebar that is rendered iff props.Open.
func NewSidebar(props SidebarProps, opts ...SidebarOption) *Sidebar {
	s := &Sidebar{
		props:        props,
		expanded:     toSet(props.DefaultExpandedIDs),
		shouldRender: props.Open,
		sched:        ClockScheduler{},
		grace:        DefaultGracePeriod,
	}
	s.props.DefaultExpandedIDs = cloneIDs(props.DefaultExpandedIDs)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func cloneIDs(ids []string) []string {
	if ids == nil {
		return nil
	}
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

func sameSet(a, b []string) bool {
	sa, sb := toSet(a), toSet(b)
	if len(sa) != len(sb) {
		return false
	}
	for id := range sa {
		if _, ok := sb[id]; !ok {
			return false
		}
	}
	return true
}

// SetOpen changes the host's intent. Opening renders immediately and cancels
// a pending unmount; closing unmounts after the grace period.
func (s *Sidebar) SetOpen(open bool) {
	s.mu.Lock()
	changed := s.setOpenLocked(open)
	s.mu.Unlock()
	if changed {
		s.notify()
	}
}

func (s *Sidebar) setOpenLocked(open bool) bool {
	if s.disposed || s.props.Open == open {
		return false
	}
	s.props.Open = open
	if open {
		s.unmount.cancel()
		s.shouldRender = true
		logrus.Debug("sidebar opened")
		return true
	}
	if s.shouldRender {
		s.unmount.arm(s.sched, s.grace, s.finishUnmount)
		logrus.WithField("grace", s.grace).Debug("sidebar closing")
	}
	return true
}

func (s *Sidebar) finishUnmount(gen uint64) {
	s.mu.Lock()
	if s.disposed || !s.unmount.claim(gen) {
		s.mu.Unlock()
		return
	}
	s.shouldRender = false
	s.mu.Unlock()
	logrus.Debug("sidebar unmounted")
	s.notify()
}

// SetProps applies a host re-render. The expansion state is replaced only
// when the default expanded set differs from the previous one.
func (s *Sidebar) SetProps(props SidebarProps) {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.setOpenLocked(props.Open)
	if !sameSet(props.DefaultExpandedIDs, s.props.DefaultExpandedIDs) {
		s.expanded = toSet(props.DefaultExpandedIDs)
		s.props.DefaultExpandedIDs = cloneIDs(props.DefaultExpandedIDs)
	}
	s.props.Title = props.Title
	s.props.Items = props.Items
	s.props.OnClose = props.OnClose
	s.mu.Unlock()
	s.notify()
}

// SetItems replaces the menu tree. Expansion state is kept.
func (s *Sidebar) SetItems(items []model.MenuItem) {
	s.mu.Lock()
	s.props.Items = items
	s.mu.Unlock()
	s.notify()
}

// SetDefaultExpanded replaces the expansion state wholesale, dropping any
// toggles made since the previous default.
func (s *Sidebar) SetDefaultExpanded(ids []string) {
	s.mu.Lock()
	s.expanded = toSet(ids)
	s.props.DefaultExpandedIDs = cloneIDs(ids)
	s.mu.Unlock()
	s.notify()
}

// Toggle flips the expansion of every item with the given identifier.
func (s *Sidebar) Toggle(id string) {
	s.mu.Lock()
	s.toggleLocked(id)
	s.mu.Unlock()
	s.notify()
}

func (s *Sidebar) toggleLocked(id string) {
	if _, ok := s.expanded[id]; ok {
		delete(s.expanded, id)
	} else {
		s.expanded[id] = struct{}{}
	}
}

// Reveal expands every ancestor on path so the target row becomes visible.
func (s *Sidebar) Reveal(path []string) error {
	s.mu.Lock()
	if _, ok := model.FindPath(s.props.Items, path); !ok {
		s.mu.Unlock()
		return errors.Wrapf(model.ErrItemNotFound, "path %q", strings.Join(path, "/"))
	}
	for _, id := range path[:len(path)-1] {
		s.expanded[id] = struct{}{}
	}
	s.mu.Unlock()
	s.notify()
	return nil
}

// IsExpanded reports whether id is in the expansion set.
func (s *Sidebar) IsExpanded(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.expanded[id]
	return ok
}

// ExpandedIDs returns the expansion set, sorted.
func (s *Sidebar) ExpandedIDs() []string {
	s.mu.Lock()
	ids := maps.Keys(s.expanded)
	s.mu.Unlock()
	sort.Strings(ids)
	return ids
}

// Activate is the primary action of the item at path. The item's callback
// runs first; an item with children then toggles, a leaf navigates to its
// Href (when a navigator is set) and requests the menu to close.
func (s *Sidebar) Activate(path ...string) error {
	s.mu.Lock()
	item, ok := model.FindPath(s.props.Items, path)
	if !ok {
		s.mu.Unlock()
		return errors.Wrapf(model.ErrItemNotFound, "path %q", strings.Join(path, "/"))
	}
	onClick, id, href, hasChildren := item.OnClick, item.ID, item.Href, item.HasChildren()
	navigate := s.navigate
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{"item": id, "branch": hasChildren}).Debug("sidebar item activated")
	if onClick != nil {
		onClick()
	}
	if hasChildren {
		s.Toggle(id)
		return nil
	}
	if href != "" && navigate != nil {
		navigate(href)
	}
	s.RequestClose()
	return nil
}

// RequestClose asks the host to close the menu. Backdrop, header close
// control and leaf activation all end up here.
func (s *Sidebar) RequestClose() {
	s.mu.Lock()
	onClose := s.props.OnClose
	s.mu.Unlock()
	if onClose != nil {
		onClose()
	}
}

// IsOpen is the host's intent.
func (s *Sidebar) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.props.Open
}

// ShouldRender is whether the panel is present in the output.
func (s *Sidebar) ShouldRender() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shouldRender
}

// Rows flattens the visible part of the tree, depth first.
func (s *Sidebar) Rows() []SidebarRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rowsLocked()
}

func (s *Sidebar) rowsLocked() []SidebarRow {
	rows := make([]SidebarRow, 0, len(s.props.Items))
	model.Walk(s.props.Items, func(item *model.MenuItem, path []string, level int) bool {
		_, expanded := s.expanded[item.ID]
		hasChildren := item.HasChildren()
		rows = append(rows, SidebarRow{
			Item:        *item,
			Path:        path,
			Level:       level,
			HasChildren: hasChildren,
			Expanded:    hasChildren && expanded,
		})
		return hasChildren && expanded
	})
	return rows
}

// State snapshots everything a renderer needs.
func (s *Sidebar) State() SidebarState {
	s.mu.Lock()
	defer s.mu.Unlock()
	title := s.props.Title
	if title == "" {
		title = DefaultSidebarTitle
	}
	return SidebarState{
		Open:         s.props.Open,
		ShouldRender: s.shouldRender,
		Title:        title,
		Rows:         s.rowsLocked(),
	}
}

// Find searches every item label, expanded or not.
func (s *Sidebar) Find(query string) []MenuMatch {
	s.mu.Lock()
	items := s.props.Items
	s.mu.Unlock()
	return FuzzySearch(items, query, 0)
}

// Dispose cancels the pending unmount. Call it when the host drops the
// sidebar; later SetOpen and SetProps calls are ignored.
func (s *Sidebar) Dispose() {
	s.mu.Lock()
	s.disposed = true
	s.unmount.cancel()
	s.mu.Unlock()
}
