package fhirmapper

import (
	"ehr-portal-service/internal/pkg/dto/responses"
	"ehr-portal-service/internal/pkg/fhirjson"

	"github.com/tidwall/gjson"
)

// Entries returns the resources of a Bundle. A missing or malformed entry
// list is an empty result.
func Entries(bundle []byte) []gjson.Result {
	parsed := fhirjson.Parse(bundle)
	items := fhirjson.Array(parsed, "entry")
	resources := make([]gjson.Result, 0, len(items))
	for _, item := range items {
		resource := item.Get("resource")
		if resource.IsObject() {
			resources = append(resources, resource)
		}
	}
	return resources
}

// Total is the Bundle's own total when present, otherwise the number of
// resources actually returned.
func Total(bundle []byte) int {
	parsed := fhirjson.Parse(bundle)
	if total := fhirjson.OptInt(parsed, "total"); total != nil {
		return *total
	}
	return len(Entries(bundle))
}

// MapBundle converts every Bundle resource with mapFn.
func MapBundle[T any](bundle []byte, mapFn func(gjson.Result) T) []T {
	resources := Entries(bundle)
	out := make([]T, 0, len(resources))
	for _, resource := range resources {
		out = append(out, mapFn(resource))
	}
	return out
}

// BuildPagination describes one requested page. A full page is taken to
// mean another page may follow.
func BuildPagination(bundle []byte, page, count int) responses.Pagination {
	returned := len(Entries(bundle))
	return responses.Pagination{
		Total:   Total(bundle),
		Page:    page,
		Count:   count,
		HasNext: count > 0 && returned == count,
		HasPrev: page > 1,
	}
}
