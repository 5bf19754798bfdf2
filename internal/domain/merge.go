package domain

// Merge returns base overridden by override. Nested mappings present on both
// sides merge recursively; any other value from override replaces the base
// value entirely. Neither input is modified.
func Merge(base, override Document) Document {
	merged, _ := mergeValue(map[string]any(base), map[string]any(override)).(map[string]any)
	if merged == nil {
		return Document{}
	}
	return Document(merged)
}

func mergeValue(base, override any) any {
	over, ok := override.(map[string]any)
	if !ok {
		return deepCopy(override)
	}
	result, ok := deepCopy(base).(map[string]any)
	if !ok || result == nil {
		result = map[string]any{}
	}
	for k, v := range over {
		if existing, ok := result[k].(map[string]any); ok {
			result[k] = mergeValue(existing, v)
			continue
		}
		result[k] = deepCopy(v)
	}
	return result
}

func deepCopy(v any) any {
	switch val := v.(type) {
	case Document:
		return deepCopy(map[string]any(val))
	case map[string]any:
		if val == nil {
			return map[string]any(nil)
		}
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = deepCopy(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = deepCopy(item)
		}
		return out
	default:
		return v
	}
}
