package filter_test

import (
	"time"

	"github.com/fadilmartias/assessment-board/internal/filter"
	"github.com/fadilmartias/assessment-board/internal/model"
)

func str(s string) *string { return &s }

func ts(s string) *time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	t = t.UTC()
	return &t
}

func day(s string) *time.Time {
	return ts(s + "T00:00:00Z")
}

func assessment(name, tech string, deadline *time.Time) model.AssessmentRow {
	return model.AssessmentRow{
		CandidateName: str(name),
		Technology:    str(tech),
		Deadline:      deadline,
	}
}

func response(name string, status, feedback *string, email *time.Time) model.ResponseRow {
	return model.ResponseRow{
		CandidateName:    str(name),
		TaskStatus:       status,
		Feedback:         feedback,
		EmailDatetimeEST: email,
	}
}

// names lists candidate names in row order.
func names[R filter.Row](rows []R) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		s, _ := r.Text(filter.CandidateName)
		out = append(out, s)
	}
	return out
}
