package fhir_dto

// PatientBundle is the paginated searchset returned by the registry.
// Entry and Total are both optional; an absent entry list means no matches
// regardless of what the payload reports as total.
type PatientBundle struct {
	ResourceType string         `json:"resourceType,omitempty"`
	Type         string         `json:"type,omitempty"`
	Total        int            `json:"total,omitempty"`
	Entry        []PatientEntry `json:"entry,omitempty"`
}

type PatientEntry struct {
	FullUrl  string  `json:"fullUrl,omitempty"`
	Resource Patient `json:"resource"`
}
