package ui

import (
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/studentsearch/internal/form"
	"github.com/five82/studentsearch/internal/student"
)

// addFormState holds the add-student inputs.
type addFormState struct {
	name   textinput.Model
	roll   textinput.Model
	branch student.Branch
}

func newAddFormState(defaults form.Fields) addFormState {
	name := textinput.New()
	name.Placeholder = "Student name"
	name.Prompt = ""
	name.CharLimit = nameCharLimit
	name.Width = 22

	roll := textinput.New()
	roll.Placeholder = "Roll number"
	roll.Prompt = ""
	roll.CharLimit = rollCharLimit
	roll.Width = 12

	s := addFormState{name: name, roll: roll}
	s.reset(defaults)
	return s
}

// reset restores the inputs to the controller defaults.
func (s *addFormState) reset(defaults form.Fields) {
	s.name.SetValue(defaults.Name)
	s.roll.SetValue(defaults.RollNumber)
	s.branch = defaults.Branch
	if s.branch == "" {
		s.branch = student.DefaultBranch
	}
}

// submitForm hands the inputs to the form controller. Validation failures
// open a notice and leave every field as typed.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	rec, err := m.form.Submit(m.addForm.name.Value(), m.addForm.roll.Value(), m.addForm.branch)
	if err != nil {
		var verr *form.ValidationError
		if errors.As(err, &verr) {
			m.modal = newNoticeModal("Cannot add student", verr.Error())
			return m, nil
		}
		m.logger.Error("add student failed", zap.Error(err))
		m.modal = newNoticeModal("Cannot add student", err.Error())
		return m, nil
	}

	m.logger.Info("student added",
		zap.String("id", rec.ID),
		zap.String("branch", string(rec.Branch)),
	)

	m.addForm.reset(m.form.Defaults())
	m.setFocus(focusName)
	m.refreshResults()
	return m, nil
}

// updateFormInput forwards a key to whichever form text field has focus.
func (m *Model) updateFormInput(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case focusName:
		m.addForm.name, cmd = m.addForm.name.Update(msg)
	case focusRoll:
		m.addForm.roll, cmd = m.addForm.roll.Update(msg)
	}
	return cmd
}
