package registry

import (
	"registro-service/internal/pkg/dto/responses"
	"registro-service/internal/pkg/fhir_dto"
	"registro-service/internal/pkg/utils"
)

// MapPatientBundle normalizes a registry searchset into the paged shape the
// registration form consumes. A bundle without entries maps to {[], 0}: the
// payload's reported total is ignored in that branch so the caller never shows
// a nonzero match count alongside zero rows.
func MapPatientBundle(bundle *fhir_dto.PatientBundle) *responses.PagedResult {
	result := &responses.PagedResult{
		Results: []responses.PatientSummary{},
	}

	if bundle == nil || len(bundle.Entry) == 0 {
		return result
	}

	result.Total = bundle.Total
	result.Results = make([]responses.PatientSummary, len(bundle.Entry))
	for i, entry := range bundle.Entry {
		resource := entry.Resource
		result.Results[i] = responses.PatientSummary{
			ID:        resource.ID,
			UUID:      resource.ID,
			FullName:  utils.GetFullName(resource.Name),
			Gender:    resource.Gender,
			BirthDate: resource.BirthDate,
		}
	}

	return result
}
