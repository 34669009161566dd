package registry

import (
	"net/url"
	"registro-service/internal/pkg/constvars"
	"registro-service/internal/pkg/dto/requests"
	"strconv"
)

// BuildSearchQuery converts a PatientSearch into the registry's outbound query
// parameters. A non-empty national ID takes precedence: the name and
// birth-date fields are never concatenated onto an identifier search. Absent
// fields are omitted entirely rather than sent as empty strings. Pagination is
// always appended, converting the 1-based page into a 0-based offset.
func BuildSearchQuery(request *requests.PatientSearch) url.Values {
	q := url.Values{}

	if request.Identifier != "" {
		q.Add(constvars.FhirParamIdentifier, request.Identifier)
	} else {
		if request.GivenName != "" {
			q.Add(constvars.FhirParamGiven, request.GivenName)
		}
		if request.FamilyName != "" {
			q.Add(constvars.FhirParamFamily, request.FamilyName)
		}
		if request.BirthDate != "" {
			q.Add(constvars.FhirParamBirthdate, request.BirthDate)
		}
	}

	q.Add(constvars.FhirParamCount, strconv.Itoa(request.PageSize))
	q.Add(constvars.FhirParamPageOffset, strconv.Itoa((request.Page-1)*request.PageSize))

	return q
}
