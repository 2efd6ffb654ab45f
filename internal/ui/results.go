package ui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/studentsearch/internal/match"
	"github.com/five82/studentsearch/internal/search"
	"github.com/five82/studentsearch/internal/student"
)

const emptyResultsText = "No matching students found"

// resultCache remembers the filtered records for one combination of settled
// query, store version and branch filter.
type resultCache struct {
	valid   bool
	query   string
	version uint64
	branch  search.BranchFilter

	records []student.Record
	total   int
}

func (c resultCache) matches(query string, version uint64, branch search.BranchFilter) bool {
	return c.valid && c.query == query && c.version == version && c.branch == branch
}

// refreshResults recomputes the visible records when any input of the
// filter changed since the last run.
func (m *Model) refreshResults() {
	version := m.store.Version()
	if m.results.matches(m.settledQuery, version, m.branchFilter) {
		return
	}
	all := m.store.All()
	m.results = resultCache{
		valid:   true,
		query:   m.settledQuery,
		version: version,
		branch:  m.branchFilter,
		records: search.Filter(all, m.settledQuery, m.branchFilter),
		total:   len(all),
	}
	m.syncList()
	m.list.GotoTop()
}

// initList initializes the results viewport.
func (m *Model) initList() {
	m.list = viewport.New(maxInt(m.width-2, 1), m.listHeight())
	m.list.Style = lipgloss.NewStyle()
}

func (m Model) listHeight() int {
	return maxInt(m.height-chromeHeight, 1)
}

// syncList sizes the viewport and renders the cached records into it.
func (m *Model) syncList() {
	if !m.ready {
		return
	}
	m.list.Width = maxInt(m.width-2, 1)
	m.list.Height = m.listHeight()
	m.list.Style = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.Surface))
	m.list.SetContent(m.renderRows())
}

// renderRows renders one line per visible record with matches highlighted.
func (m Model) renderRows() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	width := m.list.Width

	if len(m.results.records) == 0 {
		return bg.FillLine(bg.Render(emptyResultsText, styles.MutedText), width)
	}

	nameWidth := nameColumnWidth
	if m.width < LayoutCompactWidth {
		nameWidth = compactNameColumnWidth
	}

	lines := make([]string, 0, len(m.results.records)+1)
	header := bg.Render(padRight("NAME", nameWidth), styles.FaintText) + bg.Spaces(2) +
		bg.Render(padRight("ROLL", rollColumnWidth), styles.FaintText) + bg.Spaces(2) +
		bg.Render("BRANCH", styles.FaintText)
	lines = append(lines, bg.FillLine(header, width))

	for _, rec := range m.results.records {
		name := fitSegments(rec.Name, m.results.query, nameWidth)
		roll := fitSegments(rec.RollNumber, m.results.query, rollColumnWidth)

		var b strings.Builder
		b.WriteString(renderSegments(name, styles.Text, styles.Highlight, bg))
		b.WriteString(bg.Spaces(nameWidth - segmentsWidth(name) + 2))
		b.WriteString(renderSegments(roll, styles.MutedText, styles.Highlight, bg))
		b.WriteString(bg.Spaces(rollColumnWidth - segmentsWidth(roll) + 2))
		b.WriteString(styles.BranchStyle(string(rec.Branch)).Render(padRight(string(rec.Branch), branchColumnWidth)))

		lines = append(lines, bg.FillLine(b.String(), width))
	}
	return strings.Join(lines, "\n")
}

// renderSegments draws matched runs in the highlight style.
func renderSegments(segs []match.Segment, base, highlight lipgloss.Style, bg BgStyle) string {
	var b strings.Builder
	for _, seg := range segs {
		if seg.Match {
			b.WriteString(highlight.Render(seg.Text))
			continue
		}
		b.WriteString(bg.Render(seg.Text, base))
	}
	return b.String()
}

const ellipsis = "..."

// fitSegments splits text on needle and cuts the result to limit runes.
// When a head cut would hide the first match, the window slides so the
// match stays visible. Ellipses are never marked as matches.
func fitSegments(text, needle string, limit int) []match.Segment {
	segs := match.Split(text, needle)
	n := utf8.RuneCountInString(text)
	if limit <= 0 || n <= limit {
		return segs
	}
	dots := len(ellipsis)
	if limit <= 2*dots {
		return clipSegments(segs, 0, limit)
	}

	start, end, found := firstMatch(segs)
	keep := limit - dots
	switch {
	case !found || end <= keep:
		return append(clipSegments(segs, 0, keep), match.Segment{Text: ellipsis})
	case start >= n-keep:
		return append([]match.Segment{{Text: ellipsis}}, clipSegments(segs, n-keep, n)...)
	default:
		keep = limit - 2*dots
		out := []match.Segment{{Text: ellipsis}}
		out = append(out, clipSegments(segs, start, start+keep)...)
		return append(out, match.Segment{Text: ellipsis})
	}
}

// firstMatch returns the rune range of the first matched run.
func firstMatch(segs []match.Segment) (start, end int, ok bool) {
	pos := 0
	for _, seg := range segs {
		size := utf8.RuneCountInString(seg.Text)
		if seg.Match {
			return pos, pos + size, true
		}
		pos += size
	}
	return 0, 0, false
}

// clipSegments keeps the runes of segs in [from, to), preserving each
// run's match flag.
func clipSegments(segs []match.Segment, from, to int) []match.Segment {
	out := make([]match.Segment, 0, len(segs))
	pos := 0
	for _, seg := range segs {
		runes := []rune(seg.Text)
		lo, hi := max(from, pos), min(to, pos+len(runes))
		if lo < hi {
			out = append(out, match.Segment{Text: string(runes[lo-pos : hi-pos]), Match: seg.Match})
		}
		pos += len(runes)
	}
	return out
}

func segmentsWidth(segs []match.Segment) int {
	width := 0
	for _, seg := range segs {
		width += utf8.RuneCountInString(seg.Text)
	}
	return width
}

// renderList renders the bordered results box.
func (m Model) renderList() string {
	border := m.theme.Border
	if m.focus == focusList {
		border = m.theme.BorderFocus
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		BorderBackground(lipgloss.Color(m.theme.Background)).
		Render(m.list.View())
}

// renderCountLine renders "Showing N of M students" plus the active filters.
func (m Model) renderCountLine() string {
	styles := m.theme.Styles().WithBackground(m.theme.Background)
	bg := NewBgStyle(m.theme.Background)

	parts := []string{bg.Render(search.Summary(len(m.results.records), m.results.total), styles.MutedText)}
	if m.results.query != "" {
		parts = append(parts, bg.Render("matching \""+truncate(m.results.query, 24)+"\"", styles.FaintText))
	}
	if m.branchFilter != search.All {
		parts = append(parts, bg.Render("in "+m.branchFilter.Label(), styles.FaintText))
	}
	return bg.FillLine(bg.Space()+bg.Join(parts, " "), m.width)
}
