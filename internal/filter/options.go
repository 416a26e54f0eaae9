package filter

// Options lists, for every categorical field in schema, the distinct present
// values in the order they first appear.
func Options[R Row](rows []R, schema Schema) map[Field][]string {
	out := make(map[Field][]string)
	for _, f := range schema {
		if f.Kind() != Categorical {
			continue
		}
		seen := make(map[string]struct{})
		values := []string{}
		for _, r := range rows {
			s, ok := r.Text(f)
			if !ok {
				continue
			}
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			values = append(values, s)
		}
		out[f] = values
	}
	return out
}
