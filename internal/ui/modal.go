package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// noticeModal blocks input until the user acknowledges a message.
type noticeModal struct {
	title   string
	message string
}

func newNoticeModal(title, message string) noticeModal {
	return noticeModal{title: title, message: message}
}

// Update closes the notice on any key press.
func (n noticeModal) Update(msg tea.Msg, _ keyMap) (Modal, tea.Cmd, bool) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return n, nil, true
	}
	return n, nil, false
}

// View renders the notice centered over the screen.
func (n noticeModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.DangerText.Render(n.title))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(n.message))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("Press any key to continue"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Danger)).
		Padding(1, 2).
		Width(minModalWidth(width, 44)).
		Render(b.String())

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}

// minModalWidth fits a modal of the preferred width into the terminal.
func minModalWidth(termWidth, preferred int) int {
	if termWidth > 0 && termWidth-4 < preferred {
		return maxInt(termWidth-4, 20)
	}
	return preferred
}
