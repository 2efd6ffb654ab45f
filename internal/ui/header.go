package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the title bar.
func (m Model) renderHeader() string {
	// Header uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	parts := []string{
		bg.Render("studentsearch", styles.Logo),
		bg.Render(fmt.Sprintf("%d students", m.results.total), styles.MutedText),
	}
	if m.query != m.settledQuery {
		parts = append(parts, bg.Render("searching...", styles.WarningText))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(bg.Space() + strings.Join(parts, sep))
}

// renderSelector renders a "< value >" dropdown stand-in.
func (m Model) renderSelector(label, value string, focused bool) string {
	styles := m.theme.Styles().WithBackground(m.theme.Background)
	bg := NewBgStyle(m.theme.Background)

	valueStyle := styles.Text
	arrowStyle := styles.FaintText
	if focused {
		valueStyle = styles.AccentText.Bold(true)
		arrowStyle = styles.AccentText
	}
	return bg.Render(label, styles.MutedText) + bg.Space() +
		bg.Render("<", arrowStyle) + bg.Space() +
		bg.Render(value, valueStyle) + bg.Space() +
		bg.Render(">", arrowStyle)
}

// renderFieldLabel renders a field label, accented when the field has focus.
func (m Model) renderFieldLabel(label string, focused bool) string {
	styles := m.theme.Styles().WithBackground(m.theme.Background)
	bg := NewBgStyle(m.theme.Background)
	if focused {
		return bg.Render(label, styles.AccentText.Bold(true))
	}
	return bg.Render(label, styles.MutedText)
}

// renderSearchRow renders the search field and the branch dropdown.
func (m Model) renderSearchRow() string {
	bg := NewBgStyle(m.theme.Background)
	row := bg.Space() +
		m.renderFieldLabel("Search", m.focus == focusSearch) + bg.Space() +
		m.searchInput.View() + bg.Spaces(3) +
		m.renderSelector("Branch", m.branchFilter.Label(), m.focus == focusFilter)
	return bg.FillLine(row, m.width)
}

// renderFormRow renders the add-student form on one line.
func (m Model) renderFormRow() string {
	styles := m.theme.Styles().WithBackground(m.theme.Background)
	bg := NewBgStyle(m.theme.Background)

	submitStyle := styles.FaintText
	if m.focus == focusName || m.focus == focusRoll || m.focus == focusFormBranch {
		submitStyle = styles.SuccessText
	}

	row := bg.Space() +
		bg.Render("Add", styles.InfoText.Bold(true)) + bg.Spaces(2) +
		m.renderFieldLabel("Name", m.focus == focusName) + bg.Space() +
		m.addForm.name.View() + bg.Spaces(2) +
		m.renderFieldLabel("Roll", m.focus == focusRoll) + bg.Space() +
		m.addForm.roll.View() + bg.Spaces(2) +
		m.renderSelector("Branch", string(m.addForm.branch), m.focus == focusFormBranch) + bg.Spaces(2) +
		bg.Render("[enter] Add", submitStyle)
	return bg.FillLine(row, m.width)
}

// renderCommandBar renders the command hints bar.
func (m Model) renderCommandBar() string {
	// Command bar uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.focus {
	case focusFilter, focusFormBranch:
		commands = []cmd{
			{"h/l", "Change"},
			{"tab", "Next"},
		}
	case focusName, focusRoll:
		commands = []cmd{
			{"enter", "Add"},
			{"tab", "Next"},
		}
	case focusList:
		commands = []cmd{
			{"j/k", "Scroll"},
			{"g/G", "Top/Bottom"},
			{"tab", "Next"},
		}
	default:
		commands = []cmd{
			{"tab", "Next"},
			{"ctrl+n", "Add"},
		}
	}
	commands = append(commands,
		cmd{"ctrl+b", ternary(compact, "Branch", "Branch filter")},
		cmd{"f1", "Help"},
		cmd{"ctrl+c", "Quit"},
	)

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	if !compact {
		segments = append(segments,
			bg.Render("ctrl+t", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))
	}

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}
