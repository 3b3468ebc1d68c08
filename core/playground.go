package core

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hamidzr/gwidgets/component"
	"github.com/hamidzr/gwidgets/model"
	"github.com/hamidzr/gwidgets/render/term"
	"github.com/sirupsen/logrus"
)

const (
	sidebarWidth = 30
	toastColumn  = 40
)

// changedMsg tells the program that host state moved, possibly from a timer
// goroutine.
type changedMsg struct{}

// waitForChange blocks until the host reports a change.
func waitForChange(changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return changedMsg{}
	}
}

// playground is the bubbletea model of the terminal demo.
type playground struct {
	host     *Host
	changes  chan struct{}
	focus    int
	cursor   int
	toasts   int
	width    int
	height   int
	exitCode model.ExitCode
}

// NewPlayground creates the terminal demo model for host.
func NewPlayground(host *Host) tea.Model {
	p := playground{
		host:     host,
		changes:  make(chan struct{}, 1),
		exitCode: model.Unset,
		width:    100,
		height:   30,
	}
	changes := p.changes
	host.OnChange(func() {
		select {
		case changes <- struct{}{}:
		default:
			// a wakeup is already pending
		}
	})
	return p
}

func (p playground) Init() tea.Cmd {
	return waitForChange(p.changes)
}

func (p playground) focused() *component.Input {
	inputs := p.host.Inputs()
	return inputs[p.focus%len(inputs)]
}

func (p playground) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		return p, nil
	case changedMsg:
		p.clampCursor()
		return p, waitForChange(p.changes)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			p.exitCode = model.UserCanceled
			return p, tea.Quit
		}
		if p.host.Sidebar.IsOpen() {
			return p.updateSidebar(msg)
		}
		return p.updateFields(msg)
	}
	return p, nil
}

func (p *playground) clampCursor() {
	rows := p.host.Sidebar.Rows()
	if p.cursor >= len(rows) {
		p.cursor = len(rows) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p playground) updateSidebar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := p.host.Sidebar.Rows()
	switch msg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(rows)-1 {
			p.cursor++
		}
	case "enter", " ":
		if p.cursor < len(rows) {
			if err := p.host.Sidebar.Activate(rows[p.cursor].Path...); err != nil {
				logrus.WithError(err).Warn("sidebar activation failed")
			}
		}
	case "right", "l":
		if p.cursor < len(rows) && rows[p.cursor].HasChildren && !rows[p.cursor].Expanded {
			p.host.Sidebar.Toggle(rows[p.cursor].Item.ID)
		}
	case "left", "h":
		if p.cursor < len(rows) && rows[p.cursor].HasChildren && rows[p.cursor].Expanded {
			p.host.Sidebar.Toggle(rows[p.cursor].Item.ID)
		}
	case "esc", "ctrl+o":
		p.host.Sidebar.RequestClose()
	}
	p.clampCursor()
	return p, nil
}

func (p playground) updateFields(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	input := p.focused()
	switch msg.String() {
	case "esc":
		p.exitCode = model.NoError
		return p, tea.Quit
	case "tab", "down":
		p.focus = (p.focus + 1) % len(p.host.Inputs())
	case "shift+tab", "up":
		p.focus = (p.focus + len(p.host.Inputs()) - 1) % len(p.host.Inputs())
	case "ctrl+o":
		p.cursor = 0
		p.host.OpenSidebar()
	case "ctrl+t":
		kind := model.ToastKinds[p.toasts%len(model.ToastKinds)]
		p.toasts++
		p.host.PushToast(p.host.ToastProps(kind, toastTitle(kind), toastMessage(kind, p.toasts)))
	case "ctrl+d":
		p.host.DismissNewest()
	case "ctrl+u":
		if input.State().ShowClear {
			input.Clear()
		}
	case "ctrl+p":
		if input.State().ShowToggle {
			input.TogglePasswordVisibility()
		}
	case "backspace":
		value := []rune(input.Value())
		if len(value) > 0 {
			input.Type(string(value[:len(value)-1]))
		}
	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			state := input.State()
			if !state.Disabled && !state.ReadOnly {
				input.Type(state.Value + string(msg.Runes))
			}
		}
	}
	return p, nil
}

func (p playground) View() string {
	var fields []string
	fieldWidth := p.width - toastColumn - 2
	if p.host.Sidebar.ShouldRender() {
		fieldWidth -= sidebarWidth
	}
	if fieldWidth < 20 {
		fieldWidth = 20
	}
	for i, in := range p.host.Inputs() {
		fields = append(fields, term.RenderInput(in.State(), i == p.focus%len(p.host.Inputs()), fieldWidth))
	}
	main := lipgloss.JoinVertical(lipgloss.Left, fields...)

	var toasts []string
	live := p.host.Toasts()
	for i := len(live) - 1; i >= 0; i-- {
		if s := term.RenderToast(live[i].State(), toastColumn); s != "" {
			toasts = append(toasts, s)
		}
	}

	columns := []string{}
	if s := term.RenderSidebar(p.host.Sidebar.State(), p.cursor, sidebarWidth, p.height-3); s != "" {
		columns = append(columns, s)
	}
	columns = append(columns, main, "  ", strings.Join(toasts, "\n"))
	body := lipgloss.JoinHorizontal(lipgloss.Top, columns...)

	keys := "tab focus • ctrl+o menu • ctrl+t toast • ctrl+d dismiss • ctrl+u clear • ctrl+p reveal • esc quit"
	if p.host.Sidebar.IsOpen() {
		keys = "↑/↓ move • enter select • →/← expand/collapse • esc close"
	}
	help := lipgloss.NewStyle().Faint(true).Render(keys)
	status := lipgloss.NewStyle().Faint(true).Render(p.host.LastEvent())
	return lipgloss.JoinVertical(lipgloss.Left, body, "", status, help)
}

// RunPlayground runs the terminal demo until the user quits. Ctrl+C
// returns an *model.ExitError with model.UserCanceled.
func RunPlayground(host *Host, opts ...tea.ProgramOption) error {
	final, err := tea.NewProgram(NewPlayground(host), opts...).Run()
	host.Close()
	if err != nil {
		return err
	}
	if p, ok := final.(playground); ok && p.exitCode == model.UserCanceled {
		return model.NewExitError(model.UserCanceled, nil)
	}
	return nil
}
