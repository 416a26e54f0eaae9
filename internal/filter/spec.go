package filter

import "github.com/tidwall/gjson"

// Spec maps a field to its raw criteria: nil, a single scalar, or a list.
// Criteria are normalized when the spec is applied.
type Spec map[Field]any

// ParseSpec reads a JSON object of field name to criteria. Names outside the
// schema are dropped; a non-object yields an empty spec.
func ParseSpec(schema Schema, raw gjson.Result) Spec {
	spec := Spec{}
	if !raw.IsObject() {
		return spec
	}
	raw.ForEach(func(key, value gjson.Result) bool {
		if f, ok := schema.Field(key.String()); ok {
			spec[f] = value.Value()
		}
		return true
	})
	return spec
}

// Normalize flattens a raw criterion into a list, dropping nulls and empty
// strings.
func Normalize(raw any) []any {
	var values []any
	switch v := raw.(type) {
	case nil:
		return nil
	case []any:
		values = v
	case []string:
		values = make([]any, len(v))
		for i, s := range v {
			values[i] = s
		}
	default:
		values = []any{v}
	}

	out := make([]any, 0, len(values))
	for _, v := range values {
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
