package filter_test

import (
	"testing"
	"time"

	"github.com/fadilmartias/assessment-board/internal/filter"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		raw  any
		want []any
	}{
		{"nil", nil, nil},
		{"scalar", "Go", []any{"Go"}},
		{"empty scalar", "", []any{}},
		{"list", []any{"Go", "", nil, "Java"}, []any{"Go", "Java"}},
		{"string list", []string{"a", "", "b"}, []any{"a", "b"}},
		{"number", float64(3), []any{float64(3)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, filter.Normalize(tc.raw))
		})
	}
}

func TestParseSpec(t *testing.T) {
	raw := gjson.Parse(`{
		"technology": ["Go", "Rust"],
		"task_status": "completed",
		"deadline": null,
		"unknown": "ignored"
	}`)

	spec := filter.ParseSpec(filter.ResponseSchema, raw)
	assert.Equal(t, filter.Spec{
		filter.Technology: []any{"Go", "Rust"},
		filter.TaskStatus: "completed",
		filter.Deadline:   nil,
	}, spec)

	assessments := filter.ParseSpec(filter.AssessmentSchema, raw)
	assert.NotContains(t, assessments, filter.TaskStatus)
	assert.Contains(t, assessments, filter.Technology)

	assert.Empty(t, filter.ParseSpec(filter.ResponseSchema, gjson.Parse(`["technology"]`)))
}

func TestFieldKinds(t *testing.T) {
	for _, f := range filter.ResponseSchema {
		want := filter.Categorical
		if f == filter.Deadline || f == filter.EmailDatetimeEST {
			want = filter.DateRange
		}
		assert.Equal(t, want, f.Kind(), f)
	}
	assert.Equal(t, "date_range", filter.DateRange.String())
}

func TestParseTime(t *testing.T) {
	want := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	inputs := []any{
		"2024-01-15T10:30:00Z",
		"2024-01-15T05:30:00-05:00",
		"2024-01-15T10:30:00",
		"2024-01-15 10:30:00",
		"2024-01-15 12:30:00+02",
		"2024-01-15 12:30:00+02:00",
		"2024-01-15T10:30",
		[]byte("2024-01-15 10:30"),
		time.Date(2024, 1, 15, 5, 30, 0, 0, time.FixedZone("EST", -5*3600)),
	}
	for _, in := range inputs {
		got, ok := filter.ParseTime(in)
		if assert.True(t, ok, "%v", in) {
			assert.True(t, want.Equal(got), "%v parsed as %v", in, got)
			assert.Equal(t, time.UTC, got.Location())
		}
	}

	dateOnly, ok := filter.ParseTime("2024-01-15")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), dateOnly)

	for _, bad := range []any{"", "  ", "not a date", float64(1), nil, time.Time{}, (*time.Time)(nil)} {
		_, ok := filter.ParseTime(bad)
		assert.False(t, ok, "%#v", bad)
	}
}
