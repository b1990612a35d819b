// Package fhirjson reads loosely shaped vendor FHIR JSON. Every accessor is
// total: absent paths, nulls and type mismatches yield the zero value.
package fhirjson

import "github.com/tidwall/gjson"

func Parse(raw []byte) gjson.Result {
	if !gjson.ValidBytes(raw) {
		return gjson.Result{}
	}
	return gjson.ParseBytes(raw)
}

// String returns the scalar at path as text, or "".
func String(r gjson.Result, path string) string {
	value := r.Get(path)
	switch value.Type {
	case gjson.String, gjson.Number, gjson.True, gjson.False:
		return value.String()
	default:
		return ""
	}
}

// OptString is String with absence kept distinct from "".
func OptString(r gjson.Result, path string) *string {
	value := String(r, path)
	if value == "" {
		return nil
	}
	return &value
}

func FirstString(r gjson.Result, paths ...string) string {
	for _, path := range paths {
		if value := String(r, path); value != "" {
			return value
		}
	}
	return ""
}

func Int(r gjson.Result, path string) int {
	value := r.Get(path)
	if value.Type != gjson.Number {
		return 0
	}
	return int(value.Int())
}

func OptInt(r gjson.Result, path string) *int {
	value := r.Get(path)
	if value.Type != gjson.Number {
		return nil
	}
	number := int(value.Int())
	return &number
}

func Float(r gjson.Result, path string) float64 {
	value := r.Get(path)
	if value.Type != gjson.Number {
		return 0
	}
	return value.Float()
}

func Bool(r gjson.Result, path string, fallback bool) bool {
	value := r.Get(path)
	switch value.Type {
	case gjson.True:
		return true
	case gjson.False:
		return false
	default:
		return fallback
	}
}

// Array returns the elements at path, or nil when path is not an array.
func Array(r gjson.Result, path string) []gjson.Result {
	value := r.Get(path)
	if !value.IsArray() {
		return nil
	}
	return value.Array()
}

func Strings(r gjson.Result, path string) []string {
	var out []string
	for _, item := range Array(r, path) {
		if item.Type == gjson.String && item.String() != "" {
			out = append(out, item.String())
		}
	}
	return out
}

// First returns the first element of the array at path.
func First(r gjson.Result, path string) gjson.Result {
	items := Array(r, path)
	if len(items) == 0 {
		return gjson.Result{}
	}
	return items[0]
}

// Find returns the first element of the array at path whose key equals value.
func Find(r gjson.Result, path, key, value string) gjson.Result {
	for _, item := range Array(r, path) {
		if String(item, key) == value {
			return item
		}
	}
	return gjson.Result{}
}

// Exists reports whether path resolves to a non-null value.
func Exists(r gjson.Result, path string) bool {
	value := r.Get(path)
	return value.Exists() && value.Type != gjson.Null
}
