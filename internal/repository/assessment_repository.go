package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/fadilmartias/assessment-board/internal/filter"
	"github.com/fadilmartias/assessment-board/internal/model"
	"github.com/go-faster/errors"
	"gorm.io/gorm"
)

const (
	assessmentTable = "assessments"
	responseTable   = "assessments_response"
)

var ErrSchemaMismatch = errors.New("unexpected column count")

// AssessmentRepository reads both datasets. Every call hits the database;
// nothing is cached between calls.
type AssessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{db}
}

// Assessments returns every assessment row in table order.
func (r *AssessmentRepository) Assessments(ctx context.Context) ([]model.AssessmentRow, error) {
	records, err := r.selectAll(ctx, assessmentTable, 6)
	if err != nil {
		return nil, err
	}
	rows := make([]model.AssessmentRow, 0, len(records))
	for _, v := range records {
		rows = append(rows, model.AssessmentRow{
			CandidateName:    asText(v[0]),
			Technology:       asText(v[1]),
			Deadline:         asTime(v[2]),
			EndClient:        asText(v[3]),
			Sender:           asText(v[4]),
			EmailDatetimeEST: asTime(v[5]),
		})
	}
	return rows, nil
}

// Responses returns every response row in table order.
func (r *AssessmentRepository) Responses(ctx context.Context) ([]model.ResponseRow, error) {
	records, err := r.selectAll(ctx, responseTable, 9)
	if err != nil {
		return nil, err
	}
	rows := make([]model.ResponseRow, 0, len(records))
	for _, v := range records {
		rows = append(rows, model.ResponseRow{
			CandidateName:    asText(v[0]),
			Technology:       asText(v[1]),
			Deadline:         asTime(v[2]),
			EndClient:        asText(v[3]),
			AssignedTo:       asText(v[4]),
			TaskStatus:       asText(v[5]),
			Feedback:         asText(v[6]),
			Sender:           asText(v[7]),
			EmailDatetimeEST: asTime(v[8]),
		})
	}
	return rows, nil
}

// Ping checks that the database is reachable.
func (r *AssessmentRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return errors.Wrap(err, "get database handle")
	}
	return sqlDB.PingContext(ctx)
}

// selectAll reads a whole table, drops the leading id column and returns the
// remaining values positionally. An empty table yields no records regardless
// of its columns.
func (r *AssessmentRepository) selectAll(ctx context.Context, table string, width int) ([][]any, error) {
	rows, err := r.db.WithContext(ctx).Raw("SELECT * FROM " + table).Rows()
	if err != nil {
		return nil, errors.Wrapf(err, "query %s", table)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, errors.Wrapf(err, "columns of %s", table)
	}

	var records [][]any
	for rows.Next() {
		if len(cols) != width+1 {
			return nil, errors.Wrapf(ErrSchemaMismatch, "%s: got %d columns, want %d", table, len(cols), width+1)
		}
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, errors.Wrapf(err, "scan %s", table)
		}
		records = append(records, values[1:])
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "read %s", table)
	}
	return records, nil
}

func asText(v any) *string {
	var s string
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		s = t
	case []byte:
		s = string(t)
	case time.Time:
		s = t.UTC().Format(time.RFC3339)
	default:
		s = fmt.Sprint(t)
	}
	return &s
}

func asTime(v any) *time.Time {
	t, ok := filter.ParseTime(v)
	if !ok {
		return nil
	}
	return &t
}
