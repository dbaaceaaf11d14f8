package utils

import "strings"

// ExtractResourceID returns the id part of a FHIR reference such as
// "Patient/123". Returns "" when the reference has no id part.
func ExtractResourceID(reference string) string {
	if reference == "" {
		return ""
	}
	parts := strings.Split(reference, "/")
	if len(parts) < 2 {
		return ""
	}
	return parts[len(parts)-1]
}

// ExtractResourceIDFromLocation pulls the resource id from a FHIR Location
// header, e.g. "http://host/fhir/Patient/123/_history/1" -> "123".
func ExtractResourceIDFromLocation(location, resourceType string) string {
	if location == "" {
		return ""
	}
	parts := strings.Split(strings.TrimSuffix(location, "/"), "/")
	for i, part := range parts {
		if part == resourceType && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}
