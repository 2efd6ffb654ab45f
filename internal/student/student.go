package student

import (
	"strings"

	"github.com/google/uuid"
)

// Branch is the academic branch a student is enrolled in.
type Branch string

const (
	BranchCSE Branch = "CSE"
	BranchECE Branch = "ECE"
	BranchME  Branch = "ME"
)

// DefaultBranch is preselected in the add form.
const DefaultBranch = BranchCSE

var branchOrder = []Branch{BranchCSE, BranchECE, BranchME}

// Branches returns the known branches in display order.
func Branches() []Branch {
	out := make([]Branch, len(branchOrder))
	copy(out, branchOrder)
	return out
}

// ParseBranch resolves a user supplied branch name, ignoring case and
// surrounding whitespace.
func ParseBranch(value string) (Branch, bool) {
	trimmed := strings.ToUpper(strings.TrimSpace(value))
	for _, b := range branchOrder {
		if string(b) == trimmed {
			return b, true
		}
	}
	return "", false
}

// Next returns the branch after b in display order, wrapping around.
func (b Branch) Next() Branch {
	return b.step(1)
}

// Prev returns the branch before b in display order, wrapping around.
func (b Branch) Prev() Branch {
	return b.step(-1)
}

func (b Branch) step(delta int) Branch {
	n := len(branchOrder)
	for i, candidate := range branchOrder {
		if candidate == b {
			return branchOrder[(i+delta+n)%n]
		}
	}
	return branchOrder[0]
}

// Record is a single student entry. Records are never mutated once created.
type Record struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	RollNumber string `yaml:"roll"`
	Branch     Branch `yaml:"branch"`
}

// Seed returns the roster every session starts with.
func Seed() []Record {
	return []Record{
		{ID: "1", Name: "Amit Kumar", RollNumber: "CSE1201", Branch: BranchCSE},
		{ID: "2", Name: "Sneha Patel", RollNumber: "CSE1202", Branch: BranchCSE},
		{ID: "3", Name: "Ravi Sharma", RollNumber: "ECE1101", Branch: BranchECE},
		{ID: "4", Name: "Priya Singh", RollNumber: "ME1301", Branch: BranchME},
	}
}

// NewID returns a time-ordered identifier for a freshly created record.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
