package form

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/studentsearch/internal/roster"
	"github.com/five82/studentsearch/internal/search"
	"github.com/five82/studentsearch/internal/student"
)

func newController(t *testing.T) (*Controller, *roster.Store) {
	t.Helper()
	store := roster.New(student.Seed()...)
	n := 0
	c := New(store, WithIDFunc(func() string {
		n++
		return "new-" + string(rune('0'+n))
	}))
	return c, store
}

func TestSubmit_AddsTrimmedRecordAtTop(t *testing.T) {
	c, store := newController(t)

	rec, err := c.Submit("  Zara Ali ", " CSE1999  ", student.BranchCSE)
	require.NoError(t, err)

	assert.Equal(t, student.Record{ID: "new-1", Name: "Zara Ali", RollNumber: "CSE1999", Branch: student.BranchCSE}, rec)

	all := store.All()
	require.Len(t, all, 5)
	assert.Equal(t, rec, all[0])

	got := search.Filter(all, "zara", search.All)
	require.Len(t, got, 1)
	assert.Equal(t, rec, got[0])
}

func TestSubmit_WhitespaceNameRejected(t *testing.T) {
	c, store := newController(t)
	before := store.All()

	_, err := c.Submit(" ", "CSE9999", student.BranchCSE)
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{FieldName}, verr.Missing)
	assert.Equal(t, "Name is required", err.Error())
	assert.Equal(t, before, store.All(), "store must be unchanged on failure")
}

func TestSubmit_ReportsBothMissingFields(t *testing.T) {
	c, store := newController(t)

	_, err := c.Submit("", "\t", student.BranchECE)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{FieldName, FieldRoll}, verr.Missing)
	assert.Equal(t, "Name and Roll Number are required", err.Error())
	assert.Equal(t, 4, store.Len())
}

func TestSubmit_MissingRoll(t *testing.T) {
	c, _ := newController(t)

	_, err := c.Submit("Zara", "", "")
	require.EqualError(t, err, "Roll Number is required")
}

func TestSubmit_EmptyBranchDefaultsToCSE(t *testing.T) {
	c, _ := newController(t)

	rec, err := c.Submit("Kiran", "X1", "")
	require.NoError(t, err)
	assert.Equal(t, student.BranchCSE, rec.Branch)
}

func TestSubmit_BranchIsNormalised(t *testing.T) {
	c, _ := newController(t)

	rec, err := c.Submit("Kiran", "X1", "me")
	require.NoError(t, err)
	assert.Equal(t, student.BranchME, rec.Branch)
}

func TestSubmit_UnknownBranchRejected(t *testing.T) {
	c, store := newController(t)

	_, err := c.Submit("Kiran", "X1", "CIVIL")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, verr.Missing)
	assert.Equal(t, "CIVIL", verr.Branch)
	assert.Equal(t, 4, store.Len())
}

func TestSubmit_DuplicateRollAllowed(t *testing.T) {
	c, store := newController(t)

	_, err := c.Submit("Someone Else", "CSE1201", student.BranchCSE)
	require.NoError(t, err)
	assert.Equal(t, 5, store.Len())
}

func TestSubmit_FreshIDs(t *testing.T) {
	store := roster.New()
	c := New(store)

	a, err := c.Submit("A", "1", "")
	require.NoError(t, err)
	b, err := c.Submit("B", "2", "")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEmpty(t, a.ID)
}

func TestDefaults(t *testing.T) {
	c, _ := newController(t)
	assert.Equal(t, Fields{Branch: student.BranchCSE}, c.Defaults())

	ece := New(roster.New(), WithDefaultBranch(student.BranchECE))
	assert.Equal(t, Fields{Branch: student.BranchECE}, ece.Defaults())

	bogus := New(roster.New(), WithDefaultBranch("XX"))
	assert.Equal(t, student.BranchCSE, bogus.Defaults().Branch)
}
