package registry

import (
	"context"
	"net/http"
	"registro-service/internal/app/config"
	"registro-service/internal/app/contracts"
	"registro-service/internal/pkg/constvars"
	"registro-service/internal/pkg/dto/requests"
	"registro-service/internal/pkg/exceptions"
	"registro-service/internal/pkg/utils"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type RegistryController struct {
	Log             *zap.Logger
	RegistryUsecase contracts.RegistrySearchUsecase
	InternalConfig  *config.InternalConfig
}

func NewRegistryController(logger *zap.Logger, registryUsecase contracts.RegistrySearchUsecase, internalConfig *config.InternalConfig) *RegistryController {
	return &RegistryController{
		Log:             logger,
		RegistryUsecase: registryUsecase,
		InternalConfig:  internalConfig,
	}
}

func (ctrl *RegistryController) SearchPatients(w http.ResponseWriter, r *http.Request) {
	timeout := time.Duration(ctrl.InternalConfig.Registry.RequestTimeoutInSeconds) * time.Second
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	request := ctrl.buildSearchRequest(r)
	sessionKey := sessionKeyFromRequest(r)

	result, err := ctrl.RegistryUsecase.Search(ctx, sessionKey, request)
	if err != nil {
		if exceptions.IsCancelled(err) {
			// The search was superseded or the client went away; nothing
			// caller-visible may change, so no response body is written.
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := constvars.PatientSearchSuccessMessage
	if len(result.Results) == 0 {
		message = constvars.PatientSearchEmptyMessage
	}

	pagination := utils.BuildPaginationResponse(result.Total, request.Page, request.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, message, pagination, result.Results)
}

func (ctrl *RegistryController) ResolvePatient(w http.ResponseWriter, r *http.Request) {
	timeout := time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	request := new(requests.ResolvePatient)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	resolved := ctrl.RegistryUsecase.Resolve(ctx, request)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientResolveSuccessMessage, resolved)
}

func (ctrl *RegistryController) buildSearchRequest(r *http.Request) *requests.PatientSearch {
	query := r.URL.Query()

	page := parsePositiveInt(query.Get(constvars.URLQueryParamPage), 1)
	pageSize := parsePositiveInt(query.Get(constvars.URLQueryParamPageSize), ctrl.InternalConfig.Registry.DefaultPageSize)
	if pageSize > ctrl.InternalConfig.Registry.MaxPageSize {
		pageSize = ctrl.InternalConfig.Registry.MaxPageSize
	}

	return &requests.PatientSearch{
		Identifier: query.Get(constvars.URLQueryParamIdentifier),
		GivenName:  query.Get(constvars.URLQueryParamGivenName),
		FamilyName: query.Get(constvars.URLQueryParamFamilyName),
		BirthDate:  query.Get(constvars.URLQueryParamBirthDate),
		Page:       page,
		PageSize:   pageSize,
	}
}

// sessionKeyFromRequest identifies the logical registration session so a new
// search can cancel the previous one. The header is advisory; without it the
// remote address stands in.
func sessionKeyFromRequest(r *http.Request) string {
	if key := r.Header.Get(constvars.HeaderSessionKey); key != "" {
		return key
	}
	return r.RemoteAddr
}

func parsePositiveInt(raw string, defaultValue int) int {
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return defaultValue
	}
	return value
}
