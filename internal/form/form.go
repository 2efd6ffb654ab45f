// Package form validates add-student submissions and appends accepted records
// to the roster.
package form

import (
	"fmt"
	"strings"

	"github.com/five82/studentsearch/internal/student"
)

// Field names reported in ValidationError.Missing.
const (
	FieldName = "name"
	FieldRoll = "roll number"
)

// Adder receives accepted records.
type Adder interface {
	Add(student.Record)
}

// Fields are the form inputs.
type Fields struct {
	Name       string
	RollNumber string
	Branch     student.Branch
}

// ValidationError lists the fields a submission was rejected for.
type ValidationError struct {
	Missing []string
	Branch  string // set when the branch was not recognised
}

func (e *ValidationError) Error() string {
	if len(e.Missing) == 2 {
		return "Name and Roll Number are required"
	}
	if len(e.Missing) == 1 {
		switch e.Missing[0] {
		case FieldName:
			return "Name is required"
		case FieldRoll:
			return "Roll Number is required"
		}
	}
	if e.Branch != "" {
		return fmt.Sprintf("Unknown branch %q", e.Branch)
	}
	return "invalid submission"
}

// Option customises a Controller.
type Option func(*Controller)

// WithIDFunc replaces the record id source.
func WithIDFunc(fn func() string) Option {
	return func(c *Controller) {
		if fn != nil {
			c.newID = fn
		}
	}
}

// WithDefaultBranch changes the branch used when none is supplied and the
// value fields reset to.
func WithDefaultBranch(b student.Branch) Option {
	return func(c *Controller) {
		if parsed, ok := student.ParseBranch(string(b)); ok {
			c.defaultBranch = parsed
		}
	}
}

// Controller turns form submissions into roster records.
type Controller struct {
	store         Adder
	newID         func() string
	defaultBranch student.Branch
}

// New returns a Controller writing to store.
func New(store Adder, opts ...Option) *Controller {
	c := &Controller{
		store:         store,
		newID:         student.NewID,
		defaultBranch: student.DefaultBranch,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Defaults returns the values the form resets to after a successful submit.
func (c *Controller) Defaults() Fields {
	return Fields{Branch: c.defaultBranch}
}

// Submit validates the inputs and, when they pass, adds a new record to the
// store and returns it. On failure the store is untouched and the error is a
// *ValidationError.
func (c *Controller) Submit(name, roll string, branch student.Branch) (student.Record, error) {
	name = strings.TrimSpace(name)
	roll = strings.TrimSpace(roll)

	verr := &ValidationError{}
	if name == "" {
		verr.Missing = append(verr.Missing, FieldName)
	}
	if roll == "" {
		verr.Missing = append(verr.Missing, FieldRoll)
	}

	resolved := c.defaultBranch
	if strings.TrimSpace(string(branch)) != "" {
		parsed, ok := student.ParseBranch(string(branch))
		if !ok {
			verr.Branch = string(branch)
		}
		resolved = parsed
	}

	if len(verr.Missing) > 0 || verr.Branch != "" {
		return student.Record{}, verr
	}

	rec := student.Record{
		ID:         c.newID(),
		Name:       name,
		RollNumber: roll,
		Branch:     resolved,
	}
	c.store.Add(rec)
	return rec, nil
}
