// Package filter selects rows out of assessment datasets.
//
// Filterable columns are declared up front as Fields, each with a Kind that
// decides how criteria are matched. A Schema lists the fields one dataset
// carries; anything a caller sends outside that schema is ignored.
package filter

import "time"

// Kind tells the engine how a field's criteria are evaluated.
type Kind int

const (
	// Categorical fields match by set membership.
	Categorical Kind = iota
	// DateRange fields match by inclusive range or exact instant.
	DateRange
)

func (k Kind) String() string {
	switch k {
	case Categorical:
		return "categorical"
	case DateRange:
		return "date_range"
	default:
		return "unknown"
	}
}

// Field is a filterable column, named as it appears on the wire.
type Field string

const (
	CandidateName    Field = "candidate_name"
	Technology       Field = "technology"
	Deadline         Field = "deadline"
	EndClient        Field = "end_client"
	Sender           Field = "sender"
	EmailDatetimeEST Field = "email_datetime_est"
	AssignedTo       Field = "assigned_to"
	TaskStatus       Field = "task_status"
	Feedback         Field = "feedback"
)

// Kind reports how the field is matched.
func (f Field) Kind() Kind {
	switch f {
	case Deadline, EmailDatetimeEST:
		return DateRange
	case CandidateName, Technology, EndClient, Sender, AssignedTo, TaskStatus, Feedback:
		return Categorical
	default:
		return Categorical
	}
}

// Schema is the ordered set of fields a dataset exposes.
type Schema []Field

var (
	AssessmentSchema = Schema{
		CandidateName, Technology, Deadline, EndClient, Sender, EmailDatetimeEST,
	}
	ResponseSchema = Schema{
		CandidateName, Technology, Deadline, EndClient,
		AssignedTo, TaskStatus, Feedback, Sender, EmailDatetimeEST,
	}
)

// Field resolves a wire name against the schema.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s {
		if string(f) == name {
			return f, true
		}
	}
	return "", false
}

// Row is a single dataset record. Both accessors report false when the value
// is absent, and for fields the row does not carry.
type Row interface {
	Text(f Field) (string, bool)
	Time(f Field) (time.Time, bool)
}
