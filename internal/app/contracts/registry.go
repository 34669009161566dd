package contracts

import (
	"context"
	"registro-service/internal/pkg/dto/requests"
	"registro-service/internal/pkg/dto/responses"
	"registro-service/internal/pkg/fhir_dto"
)

// RegistryFhirClient performs the one external HTTP call of this service:
// a paginated Patient search against the national registry.
type RegistryFhirClient interface {
	SearchPatients(ctx context.Context, request *requests.PatientSearch) (*fhir_dto.PatientBundle, error)
}

type RegistrySearchUsecase interface {
	Search(ctx context.Context, sessionKey string, request *requests.PatientSearch) (*responses.PagedResult, error)
	Resolve(ctx context.Context, request *requests.ResolvePatient) *responses.ResolvedNameDate
}
