package model

import (
	"time"

	"github.com/fadilmartias/assessment-board/internal/filter"
)

// ResponseRow is one record of the assessments_response table, in column
// order.
type ResponseRow struct {
	CandidateName    *string    `json:"candidate_name"`
	Technology       *string    `json:"technology"`
	Deadline         *time.Time `json:"deadline"`
	EndClient        *string    `json:"end_client"`
	AssignedTo       *string    `json:"assigned_to"`
	TaskStatus       *string    `json:"task_status"` // e.g. "in_progress", "completed"
	Feedback         *string    `json:"feedback"`
	Sender           *string    `json:"sender"`
	EmailDatetimeEST *time.Time `json:"email_datetime_est"`
}

func (r ResponseRow) Text(f filter.Field) (string, bool) {
	switch f {
	case filter.CandidateName:
		return text(r.CandidateName)
	case filter.Technology:
		return text(r.Technology)
	case filter.EndClient:
		return text(r.EndClient)
	case filter.AssignedTo:
		return text(r.AssignedTo)
	case filter.TaskStatus:
		return text(r.TaskStatus)
	case filter.Feedback:
		return text(r.Feedback)
	case filter.Sender:
		return text(r.Sender)
	}
	return "", false
}

func (r ResponseRow) Time(f filter.Field) (time.Time, bool) {
	switch f {
	case filter.Deadline:
		return instant(r.Deadline)
	case filter.EmailDatetimeEST:
		return instant(r.EmailDatetimeEST)
	}
	return time.Time{}, false
}
