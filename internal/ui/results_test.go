package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/studentsearch/internal/match"
	"github.com/five82/studentsearch/internal/student"
)

const longName = "Venkataraghavan Subramaniam Iyer"

func TestFitSegments(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		needle string
		limit  int
		want   []match.Segment
	}{
		{
			name:   "fits unchanged",
			text:   "Amit Kumar",
			needle: "ami",
			limit:  28,
			want:   []match.Segment{{Text: "Ami", Match: true}, {Text: "t Kumar"}},
		},
		{
			name:   "match in head keeps the start",
			text:   longName,
			needle: "venk",
			limit:  28,
			want: []match.Segment{
				{Text: "Venk", Match: true},
				{Text: "ataraghavan Subramani"},
				{Text: "..."},
			},
		},
		{
			name:   "match in tail slides to the end",
			text:   longName,
			needle: "iyer",
			limit:  28,
			want: []match.Segment{
				{Text: "..."},
				{Text: "raghavan Subramaniam "},
				{Text: "Iyer", Match: true},
			},
		},
		{
			name:   "match in middle is framed",
			text:   strings.Repeat("a", 30) + "XYZ" + strings.Repeat("b", 30),
			needle: "xyz",
			limit:  20,
			want: []match.Segment{
				{Text: "..."},
				{Text: "XYZ", Match: true},
				{Text: strings.Repeat("b", 11)},
				{Text: "..."},
			},
		},
		{
			name:   "no match keeps the head",
			text:   "CSE-2024-000123-EXT",
			needle: "",
			limit:  14,
			want:   []match.Segment{{Text: "CSE-2024-000"}, {Text: "..."}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := fitSegments(tc.text, tc.needle, tc.limit)
			assert.Equal(t, tc.want, got)
			assert.LessOrEqual(t, segmentsWidth(got), tc.limit)
		})
	}
}

func TestFitSegmentsNeverMarksEllipsis(t *testing.T) {
	got := fitSegments("A.B.C.D.E.F.G.H.I.J.K.L", ".", 10)

	require.NotEmpty(t, got)
	assert.Equal(t, match.Segment{Text: "..."}, got[len(got)-1])
	assert.Equal(t, 10, segmentsWidth(got))
}

func TestLongNameMatchStaysVisible(t *testing.T) {
	env := newTestEnv(t)
	env.store.Add(student.Record{ID: "x", Name: longName, RollNumber: "CSE2024000123", Branch: student.BranchCSE})

	env.typeText("iyer")
	env.settle(t)

	require.Equal(t, []string{longName}, visibleNames(env.model))
	assert.Contains(t, env.model.renderRows(), "Iyer")
}

func TestLongRollMatchStaysVisible(t *testing.T) {
	env := newTestEnv(t)
	env.store.Add(student.Record{ID: "x", Name: "Meera Nair", RollNumber: "ECE-2024-000123-LAT", Branch: student.BranchECE})

	env.typeText("lat")
	env.settle(t)

	require.Equal(t, []string{"Meera Nair"}, visibleNames(env.model))
	assert.Contains(t, env.model.renderRows(), "LAT")
}
