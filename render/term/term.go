// Package term renders component state as styled terminal text.
package term

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hamidzr/gwidgets/component"
	"github.com/hamidzr/gwidgets/model"
)

// Catppuccin Mocha, the subset the widgets use.
const (
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
)

const (
	maskRune      = "•"
	clearMarker   = "[x]"
	showMarker    = "[show]"
	hideMarker    = "[hide]"
	closeMarker   = "×"
	collapsedMark = "▸"
	expandedMark  = "▾"
	cursorMark    = "›"
)

// KindColor is the accent of a toast severity.
func KindColor(kind model.ToastKind) lipgloss.Color {
	switch kind {
	case model.ToastSuccess:
		return colorGreen
	case model.ToastError:
		return colorRed
	case model.ToastWarning:
		return colorYellow
	default:
		return colorTeal
	}
}

// DisplayValue is the value as shown in the field: masked while the
// effective kind is password.
func DisplayValue(state component.InputState) string {
	if state.EffectiveKind == model.InputPassword {
		return strings.Repeat(maskRune, len([]rune(state.Value)))
	}
	return state.Value
}

// RenderInput draws the label, a bordered value box with its trailing
// controls and the helper text.
func RenderInput(state component.InputState, focused bool, width int) string {
	var lines []string
	if state.Label != "" {
		lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(colorText).Render(state.Label))
	}

	value := DisplayValue(state)
	if value == "" {
		value = lipgloss.NewStyle().Foreground(colorOverlay1).Render(state.Placeholder)
	}
	var controls []string
	if state.ShowToggle {
		if state.PasswordVisible {
			controls = append(controls, hideMarker)
		} else {
			controls = append(controls, showMarker)
		}
	}
	if state.ShowClear {
		controls = append(controls, clearMarker)
	}
	content := value
	if len(controls) > 0 {
		content += " " + lipgloss.NewStyle().Foreground(colorSubtext0).Render(strings.Join(controls, " "))
	}

	border := colorSurface1
	switch {
	case state.Error:
		border = colorRed
	case focused:
		border = colorLavender
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
	if width > 2 {
		box = box.Width(width - 2)
	}
	if state.Disabled || state.ReadOnly {
		box = box.Faint(true)
	}
	lines = append(lines, box.Render(content))

	if state.HelperText != "" {
		helper := lipgloss.NewStyle().Foreground(colorSubtext0)
		if state.Error {
			helper = helper.Foreground(colorRed)
		}
		lines = append(lines, helper.Render(state.HelperText))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderSidebar draws the panel, or nothing once the sidebar unmounted.
// cursor indexes state.Rows; a closing panel is drawn faint.
func RenderSidebar(state component.SidebarState, cursor, width, height int) string {
	if !state.ShouldRender {
		return ""
	}
	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(colorPeach).Render(state.Title) + "  " +
			lipgloss.NewStyle().Foreground(colorOverlay1).Render(closeMarker),
		"",
	}
	for i, row := range state.Rows {
		marker := " "
		if row.HasChildren {
			marker = collapsedMark
			if row.Expanded {
				marker = expandedMark
			}
		}
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(colorText)
		if i == cursor {
			prefix = cursorMark + " "
			style = style.Bold(true).Foreground(colorLavender)
		}
		lines = append(lines, prefix+strings.Repeat("  ", row.Level)+style.Render(marker+" "+row.Item.ComputedLabel()))
	}

	panel := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(colorSurface1).
		Padding(0, 1)
	if width > 3 {
		panel = panel.Width(width - 3)
	}
	if height > 0 {
		panel = panel.Height(height)
	}
	if !state.Open {
		panel = panel.Faint(true)
	}
	return panel.Render(strings.Join(lines, "\n"))
}

// RenderToast draws a bordered card in the severity color, or nothing once
// unmounted. An exiting toast is drawn faint while its transition runs.
func RenderToast(state component.ToastState, width int) string {
	if !state.Rendered() {
		return ""
	}
	accent := KindColor(state.Kind)
	var lines []string
	header := lipgloss.NewStyle().Bold(true).Foreground(accent).Render(strings.ToUpper(string(state.Kind)))
	if state.Title != "" {
		header += " " + lipgloss.NewStyle().Bold(true).Foreground(colorText).Render(state.Title)
	}
	if state.ShowClose && state.Shown() {
		header += "  " + lipgloss.NewStyle().Foreground(colorOverlay1).Render(closeMarker)
	}
	lines = append(lines, header, lipgloss.NewStyle().Foreground(colorText).Render(state.Message))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1)
	if width > 2 {
		card = card.Width(width - 2)
	}
	if !state.Shown() {
		card = card.Faint(true)
	}
	return card.Render(strings.Join(lines, "\n"))
}
