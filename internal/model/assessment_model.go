package model

import (
	"time"

	"github.com/fadilmartias/assessment-board/internal/filter"
)

// AssessmentRow is one record of the assessments table. Nil fields are
// absent and serialize as null.
type AssessmentRow struct {
	CandidateName    *string    `json:"candidate_name"`
	Technology       *string    `json:"technology"`
	Deadline         *time.Time `json:"deadline"`
	EndClient        *string    `json:"end_client"`
	Sender           *string    `json:"sender"`
	EmailDatetimeEST *time.Time `json:"email_datetime_est"`
}

func (r AssessmentRow) Text(f filter.Field) (string, bool) {
	switch f {
	case filter.CandidateName:
		return text(r.CandidateName)
	case filter.Technology:
		return text(r.Technology)
	case filter.EndClient:
		return text(r.EndClient)
	case filter.Sender:
		return text(r.Sender)
	}
	return "", false
}

func (r AssessmentRow) Time(f filter.Field) (time.Time, bool) {
	switch f {
	case filter.Deadline:
		return instant(r.Deadline)
	case filter.EmailDatetimeEST:
		return instant(r.EmailDatetimeEST)
	}
	return time.Time{}, false
}

func text(p *string) (string, bool) {
	if p == nil {
		return "", false
	}
	return *p, true
}

func instant(p *time.Time) (time.Time, bool) {
	if p == nil {
		return time.Time{}, false
	}
	return p.UTC(), true
}
