package filter_test

import (
	"testing"

	"github.com/fadilmartias/assessment-board/internal/filter"
	"github.com/fadilmartias/assessment-board/internal/model"
	"github.com/stretchr/testify/assert"
)

func pendingRows() []model.ResponseRow {
	rows := []model.ResponseRow{
		response("no-status-no-feedback", nil, nil, nil),
		response("completed-no-feedback", str("completed"), nil, nil),
		response("no-status-with-feedback", nil, str("strong"), nil),
		response("in-progress-no-feedback", str("in_progress"), nil, nil),
		response("in-progress-with-feedback", str("in_progress"), str("ok"), nil),
		response("completed-with-feedback", str("completed"), str("done"), nil),
		response("blank-status-with-feedback", str(""), str("meh"), nil),
	}
	rows[0].Technology = str("Go")
	rows[3].Technology = str("Java")
	return rows
}

func TestPending_BasePredicate(t *testing.T) {
	got := filter.Pending(pendingRows(), filter.Spec{})
	assert.Equal(t, []string{
		"no-status-no-feedback",
		"no-status-with-feedback",
		"in-progress-no-feedback",
	}, names(got))
}

func TestPending_NarrowsWithSpec(t *testing.T) {
	got := filter.Pending(pendingRows(), filter.Spec{filter.Technology: []any{"Java"}})
	assert.Equal(t, []string{"in-progress-no-feedback"}, names(got))
}

func TestPending_NeverReturnsCompleted(t *testing.T) {
	got := filter.Pending(pendingRows(), filter.Spec{filter.TaskStatus: []any{"completed", "in_progress"}})
	for _, r := range got {
		status, _ := r.Text(filter.TaskStatus)
		assert.NotEqual(t, filter.StatusCompleted, status)
	}
	assert.Equal(t, []string{"in-progress-no-feedback"}, names(got))
}
