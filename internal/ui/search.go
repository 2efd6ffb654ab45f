package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/studentsearch/internal/debounce"
)

// querySettledMsg carries a search query that stayed unchanged for the
// debounce delay.
type querySettledMsg struct {
	query string
}

// querySource debounces raw search input and hands settled queries to the
// event loop through a one-slot channel.
type querySource struct {
	debouncer *debounce.Debouncer[string]
	settled   chan string
}

func newQuerySource(delay time.Duration, opts ...debounce.Option) *querySource {
	q := &querySource{settled: make(chan string, 1)}
	q.debouncer = debounce.New(delay, q.deliver, opts...)
	return q
}

// deliver runs on the timer goroutine. A value the UI has not picked up yet
// is replaced, so the channel only ever holds the freshest query.
func (q *querySource) deliver(query string) {
	for {
		select {
		case q.settled <- query:
			return
		default:
		}
		select {
		case <-q.settled:
		default:
		}
	}
}

func (q *querySource) push(query string) {
	q.debouncer.Push(query)
}

func (q *querySource) stop() {
	q.debouncer.Stop()
}

// waitForSettled blocks until the next settled query or until ctx ends.
func (q *querySource) waitForSettled(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case query := <-q.settled:
			return querySettledMsg{query: query}
		}
	}
}

// newSearchInput builds the search field.
func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Search by name or roll number..."
	ti.Prompt = "/ "
	ti.CharLimit = searchCharLimit
	return ti
}

// updateSearchInput forwards a key to the search field and debounces the
// new value when the text changed.
func (m *Model) updateSearchInput(msg tea.KeyMsg) tea.Cmd {
	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if after := m.searchInput.Value(); after != before {
		m.query = after
		m.queries.push(after)
	}
	return cmd
}

// handleQuerySettled applies a debounced query and re-arms the listener.
func (m Model) handleQuerySettled(msg querySettledMsg) (tea.Model, tea.Cmd) {
	m.settledQuery = msg.query
	m.refreshResults()
	return m, m.queries.waitForSettled(m.ctx)
}
