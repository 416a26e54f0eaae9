package filter

import "time"

const (
	DefaultPage     = 1
	DefaultPageSize = 50
)

// endDateSlack widens the lookup end bound so a date-only end_date covers
// that whole day.
const endDateSlack = 24 * time.Hour

// LookupQuery selects one page of unassigned responses. Empty dates are
// treated as not given.
type LookupQuery struct {
	StartDate string
	EndDate   string
	Page      int
	PageSize  int
}

// Page is one slice of a lookup result plus the size of the whole result.
type Page[R any] struct {
	Data     []R `json:"data"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// Lookup returns rows whose task status is absent or empty, narrowed by
// email timestamp, sliced to the requested 1-indexed page. Page and size are
// not validated: both slice bounds are resolved by sliceIndex, so a page that
// ends at or before index 0 comes back empty and negative bounds count back
// from the end of the result.
func Lookup[R Row](rows []R, q LookupQuery) Page[R] {
	survivors := make([]R, 0, len(rows))
	keep := lookupDateBounds(q)
	for _, r := range rows {
		if status, ok := r.Text(TaskStatus); ok && status != "" {
			continue
		}
		if keep(r) {
			survivors = append(survivors, r)
		}
	}

	total := len(survivors)
	start := sliceIndex((q.Page-1)*q.PageSize, total)
	end := sliceIndex((q.Page-1)*q.PageSize+q.PageSize, total)

	data := make([]R, 0, max(end-start, 0))
	if end > start {
		data = append(data, survivors[start:end]...)
	}
	return Page[R]{
		Data:     data,
		Total:    total,
		Page:     q.Page,
		PageSize: q.PageSize,
	}
}

func lookupDateBounds(q LookupQuery) predicate {
	if q.StartDate == "" && q.EndDate == "" {
		return func(Row) bool { return true }
	}

	var start, end time.Time
	if q.StartDate != "" {
		t, ok := ParseTime(q.StartDate)
		if !ok {
			return matchNone
		}
		start = t
	}
	if q.EndDate != "" {
		t, ok := ParseTime(q.EndDate)
		if !ok {
			return matchNone
		}
		end = t.Add(endDateSlack)
	}

	return func(r Row) bool {
		t, ok := r.Time(EmailDatetimeEST)
		if !ok {
			return false
		}
		if q.StartDate != "" && t.Before(start) {
			return false
		}
		if q.EndDate != "" && t.After(end) {
			return false
		}
		return true
	}
}

// sliceIndex resolves i against a sequence of length n. Negative values count
// from the end; the result is clamped to [0, n].
func sliceIndex(i, n int) int {
	if i < 0 {
		i += n
	}
	return clamp(i, 0, n)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
