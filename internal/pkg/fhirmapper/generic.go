package fhirmapper

// objectSlice views a decoded JSON array as its object elements. Entries
// that are not objects are dropped.
func objectSlice(value any) []map[string]any {
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if object, ok := item.(map[string]any); ok {
			out = append(out, object)
		}
	}
	return out
}

func anySlice(value any) []any {
	items, _ := value.([]any)
	return items
}

func toAnySlice(objects []map[string]any) []any {
	out := make([]any, 0, len(objects))
	for _, object := range objects {
		out = append(out, object)
	}
	return out
}

func stringValue(value any) string {
	s, _ := value.(string)
	return s
}

// intValue accepts the float64 a decoded JSON number arrives as.
func intValue(value any) int {
	switch v := value.(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}
