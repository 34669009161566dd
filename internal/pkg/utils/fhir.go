package utils

import (
	"strings"

	"registro-service/internal/pkg/fhir_dto"
)

// GetFullName renders the first name entry of a resource as "given... family",
// joining given parts with single spaces and skipping absent segments. A
// resource with no name entries yields an empty string.
func GetFullName(names []fhir_dto.HumanName) string {
	if len(names) == 0 {
		return ""
	}

	name := names[0]
	segments := make([]string, 0, 2)
	if len(name.Given) > 0 {
		segments = append(segments, strings.Join(name.Given, " "))
	}
	if name.Family != "" {
		segments = append(segments, name.Family)
	}
	return strings.Join(segments, " ")
}
