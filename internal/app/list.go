package app

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.uber.org/zap"

	"github.com/five82/studentsearch/internal/search"
	"github.com/five82/studentsearch/internal/student"
)

// ListOptions select the records printed by List.
type ListOptions struct {
	Query  string
	Branch string // "all", empty, or a branch name
}

// List applies the same filter as the TUI to the starting roster and prints
// the result to w.
func List(opts Options, list ListOptions, w io.Writer) error {
	filter, ok := search.ParseBranchFilter(list.Branch)
	if !ok {
		return fmt.Errorf("unknown branch %q", list.Branch)
	}

	s, err := open(opts)
	if err != nil {
		return err
	}
	defer s.close()

	records := s.store.All()
	visible := search.Filter(records, list.Query, filter)
	s.logger.Debug("list",
		zap.String("query", list.Query),
		zap.String("branch", string(filter)),
		zap.Int("visible", len(visible)),
	)

	if len(visible) == 0 {
		if _, err := fmt.Fprintln(w, "No matching students found"); err != nil {
			return err
		}
	} else if _, err := fmt.Fprintln(w, renderTable(visible)); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, search.Summary(len(visible), len(records)))
	return err
}

func renderTable(records []student.Record) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "ROLL", "BRANCH")
	for _, r := range records {
		t.Row(r.ID, r.Name, r.RollNumber, string(r.Branch))
	}
	return t.Render()
}
