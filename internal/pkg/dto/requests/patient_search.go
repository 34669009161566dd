package requests

// PatientSearch carries the human-entered search fields from the registration
// form. When Identifier is filled the name and birth-date fields are ignored
// by the query builder.
type PatientSearch struct {
	Identifier string `json:"identifier"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	BirthDate  string `json:"birth_date"`
	Page       int    `json:"page" validate:"gte=1"`
	PageSize   int    `json:"page_size" validate:"gte=1,lte=100"`
}

// HasCriteria reports whether the request satisfies the search precondition:
// either a national ID, or both a given and a family name. Callers must reject
// the request before any network call when this is false.
func (r *PatientSearch) HasCriteria() bool {
	if r.Identifier != "" {
		return true
	}
	return r.GivenName != "" && r.FamilyName != ""
}

type ResolvePatient struct {
	FullName  string `json:"full_name"`
	BirthDate string `json:"birth_date"`
}
