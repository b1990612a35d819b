package fhirmapper

import (
	"fmt"
	"regexp"
	"strings"
)

var referencePattern = regexp.MustCompile(`(?:^|/)([A-Z][A-Za-z]+)/([A-Za-z0-9\-.]{1,64})(?:/_history/[A-Za-z0-9\-.]+)?$`)

// ExtractReferenceID returns the id of a "Type/id" or ".../Type/id"
// reference when its type matches resourceType, otherwise "".
func ExtractReferenceID(reference, resourceType string) string {
	kind, id := ParseReference(reference)
	if kind != resourceType {
		return ""
	}
	return id
}

// ParseReference splits the trailing "Type/id" of a reference.
func ParseReference(reference string) (resourceType, id string) {
	match := referencePattern.FindStringSubmatch(strings.TrimSpace(reference))
	if match == nil {
		return "", ""
	}
	return match[1], match[2]
}

func BuildReference(resourceType, id string) string {
	return fmt.Sprintf("%s/%s", resourceType, id)
}

// PlaceholderDisplay is the stand-in name for an entity the vendor did not
// embed a display for. It is never vendor data.
func PlaceholderDisplay(resourceType, id string) string {
	if id == "" {
		return ""
	}
	return fmt.Sprintf("%s %s", resourceType, id)
}
