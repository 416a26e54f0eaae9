package filter

// StatusCompleted is the terminal task status.
const StatusCompleted = "completed"

// Pending keeps response rows that still lack a status or feedback and are
// not marked completed, then narrows them with spec.
func Pending[R Row](rows []R, spec Spec) []R {
	base := make([]R, 0, len(rows))
	for _, r := range rows {
		status, hasStatus := r.Text(TaskStatus)
		_, hasFeedback := r.Text(Feedback)
		if (!hasStatus || !hasFeedback) && status != StatusCompleted {
			base = append(base, r)
		}
	}
	return Apply(base, spec)
}
