package validation

// Loose coercion helpers for walking freshly unmarshaled JSON.

func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)

	return m, ok
}

func asSlice(v any) ([]any, bool) {
	s, ok := v.([]any)

	return s, ok
}

func asString(v any) (string, bool) {
	s, ok := v.(string)

	return s, ok
}

func asBool(v any) (bool, bool) {
	b, ok := v.(bool)

	return b, ok
}

// asNumber accepts the numeric types encoding/json can produce.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func asStringSlice(v any) ([]string, bool) {
	raw, ok := asSlice(v)
	if !ok {
		return nil, false
	}

	out := make([]string, 0, len(raw))

	for _, item := range raw {
		if s, ok := asString(item); ok {
			out = append(out, s)
		}
	}

	return out, true
}
