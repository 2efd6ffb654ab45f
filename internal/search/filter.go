package search

import (
	"fmt"
	"strings"

	"github.com/five82/studentsearch/internal/match"
	"github.com/five82/studentsearch/internal/student"
)

// BranchFilter restricts results to a single branch, or to none with All.
type BranchFilter string

// All disables branch filtering.
const All BranchFilter = "all"

// BranchFilterOptions returns the dropdown choices in display order.
func BranchFilterOptions() []BranchFilter {
	branches := student.Branches()
	out := make([]BranchFilter, 0, len(branches)+1)
	out = append(out, All)
	for _, b := range branches {
		out = append(out, BranchFilter(b))
	}
	return out
}

// ParseBranchFilter accepts "all" (or blank) and any known branch.
func ParseBranchFilter(value string) (BranchFilter, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || strings.EqualFold(trimmed, string(All)) {
		return All, true
	}
	if b, ok := student.ParseBranch(trimmed); ok {
		return BranchFilter(b), true
	}
	return "", false
}

// Label is the text shown in the dropdown.
func (f BranchFilter) Label() string {
	if f == All || f == "" {
		return "All Branches"
	}
	return string(f)
}

// Next returns the following dropdown option, wrapping around.
func (f BranchFilter) Next() BranchFilter {
	return f.step(1)
}

// Prev returns the preceding dropdown option, wrapping around.
func (f BranchFilter) Prev() BranchFilter {
	return f.step(-1)
}

func (f BranchFilter) step(delta int) BranchFilter {
	opts := BranchFilterOptions()
	for i, opt := range opts {
		if opt == f {
			return opts[(i+delta+len(opts))%len(opts)]
		}
	}
	return All
}

func (f BranchFilter) allows(b student.Branch) bool {
	return f == All || f == "" || student.Branch(f) == b
}

// Filter returns the records whose branch passes branch and whose name or
// roll number contains query, ignoring case. Store order is preserved and
// records is never modified.
func Filter(records []student.Record, query string, branch BranchFilter) []student.Record {
	out := make([]student.Record, 0, len(records))
	for _, r := range records {
		if !branch.allows(r.Branch) {
			continue
		}
		if match.Matches(r.Name, query) || match.Matches(r.RollNumber, query) {
			out = append(out, r)
		}
	}
	return out
}

// Summary renders the result count line.
func Summary(visible, total int) string {
	return fmt.Sprintf("Showing %d of %d students", visible, total)
}
