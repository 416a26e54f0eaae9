package filter

type predicate func(Row) bool

func matchNone(Row) bool { return false }

// Apply returns the rows matching every constraint in spec, in their original
// order. The input slice is never modified.
func Apply[R Row](rows []R, spec Spec) []R {
	preds := compile(spec)
	out := make([]R, 0, len(rows))
	for _, r := range rows {
		if matches(r, preds) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r Row, preds []predicate) bool {
	for _, p := range preds {
		if !p(r) {
			return false
		}
	}
	return true
}

func compile(spec Spec) []predicate {
	preds := make([]predicate, 0, len(spec))
	for f, raw := range spec {
		values := Normalize(raw)
		if len(values) == 0 {
			continue
		}
		switch f.Kind() {
		case DateRange:
			preds = append(preds, datePredicate(f, values))
		case Categorical:
			preds = append(preds, categoricalPredicate(f, values))
		}
	}
	return preds
}

// datePredicate treats two or more values as an inclusive [start, end] range
// and a single value as an exact instant. Unreadable criteria match nothing.
func datePredicate(f Field, values []any) predicate {
	if len(values) >= 2 {
		start, okStart := ParseTime(values[0])
		end, okEnd := ParseTime(values[1])
		if !okStart || !okEnd {
			return matchNone
		}
		return func(r Row) bool {
			t, ok := r.Time(f)
			return ok && !t.Before(start) && !t.After(end)
		}
	}

	at, ok := ParseTime(values[0])
	if !ok {
		return matchNone
	}
	return func(r Row) bool {
		t, ok := r.Time(f)
		return ok && t.Equal(at)
	}
}

// categoricalPredicate matches text values by exact membership. Non-string
// criteria can never equal a text value.
func categoricalPredicate(f Field, values []any) predicate {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			set[s] = struct{}{}
		}
	}
	if len(set) == 0 {
		return matchNone
	}
	return func(r Row) bool {
		s, ok := r.Text(f)
		if !ok {
			return false
		}
		_, hit := set[s]
		return hit
	}
}
