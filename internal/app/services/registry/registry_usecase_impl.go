package registry

import (
	"context"
	"registro-service/internal/app/config"
	"registro-service/internal/app/contracts"
	"registro-service/internal/pkg/constvars"
	"registro-service/internal/pkg/dto/requests"
	"registro-service/internal/pkg/dto/responses"
	"registro-service/internal/pkg/exceptions"
	"registro-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type registrySearchUsecase struct {
	RegistryClient  contracts.RegistryFhirClient
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger

	mu       sync.Mutex
	inflight map[string]*inflightSearch
}

type inflightSearch struct {
	cancel context.CancelFunc
}

var (
	registrySearchUsecaseInstance contracts.RegistrySearchUsecase
	onceRegistrySearchUsecase     sync.Once
)

func NewRegistrySearchUsecase(
	registryClient contracts.RegistryFhirClient,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.RegistrySearchUsecase {
	onceRegistrySearchUsecase.Do(func() {
		registrySearchUsecaseInstance = &registrySearchUsecase{
			RegistryClient:  registryClient,
			RedisRepository: redisRepository,
			InternalConfig:  internalConfig,
			Log:             logger,
			inflight:        make(map[string]*inflightSearch),
		}
	})
	return registrySearchUsecaseInstance
}

func (uc *registrySearchUsecase) Search(ctx context.Context, sessionKey string, request *requests.PatientSearch) (*responses.PagedResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("registrySearchUsecase.Search called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionKeyKey, sessionKey),
	)

	if !request.HasCriteria() {
		uc.Log.Info("registrySearchUsecase.Search rejected for missing criteria",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrInvalidSearchCriteria(nil)
	}

	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, err
	}

	searchCtx, search := uc.beginSearch(ctx, sessionKey)
	defer uc.endSearch(sessionKey, search)

	cacheKey := uc.cacheKey(request)
	if cacheKey != "" {
		cached, err := uc.RedisRepository.Get(searchCtx, cacheKey)
		if err == nil && cached != "" {
			result := new(responses.PagedResult)
			if json.Unmarshal([]byte(cached), result) == nil {
				uc.Log.Info("registrySearchUsecase.Search served from cache",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Int(constvars.LoggingResultCountKey, len(result.Results)),
				)
				return result, nil
			}
		}
	}

	bundle, err := uc.RegistryClient.SearchPatients(searchCtx, request)
	if err != nil {
		if exceptions.IsCancelled(err) {
			uc.Log.Info("registrySearchUsecase.Search superseded by a newer search",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSessionKeyKey, sessionKey),
			)
		}
		return nil, err
	}

	result := MapPatientBundle(bundle)
	// The registry is expected to honor _count; trim anyway so a page never
	// carries more rows than the caller asked for.
	if len(result.Results) > request.PageSize {
		result.Results = result.Results[:request.PageSize]
	}

	if cacheKey != "" {
		ttl := time.Duration(uc.InternalConfig.Registry.SearchCacheTTLInSeconds) * time.Second
		err = uc.RedisRepository.Set(searchCtx, cacheKey, result, ttl)
		if err != nil {
			uc.Log.Warn("registrySearchUsecase.Search failed caching page",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	uc.Log.Info("registrySearchUsecase.Search succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResultCountKey, len(result.Results)),
		zap.Int(constvars.LoggingTotalKey, result.Total),
	)
	return result, nil
}

func (uc *registrySearchUsecase) Resolve(ctx context.Context, request *requests.ResolvePatient) *responses.ResolvedNameDate {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("registrySearchUsecase.Resolve called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	resolved := ResolveNameDate(request.FullName, request.BirthDate)
	if resolved.BirthDate == nil && request.BirthDate != "" {
		uc.Log.Warn("registrySearchUsecase.Resolve could not parse birth date",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBirthDateKey, request.BirthDate),
		)
	}

	return &resolved
}

// beginSearch registers a cancellable context for the session, cancelling any
// search still in flight for it. Only the most recent search per session may
// complete; an earlier larger-offset response can therefore never overwrite a
// later page.
func (uc *registrySearchUsecase) beginSearch(ctx context.Context, sessionKey string) (context.Context, *inflightSearch) {
	searchCtx, cancel := context.WithCancel(ctx)
	search := &inflightSearch{cancel: cancel}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if previous, ok := uc.inflight[sessionKey]; ok {
		previous.cancel()
	}
	uc.inflight[sessionKey] = search
	return searchCtx, search
}

func (uc *registrySearchUsecase) endSearch(sessionKey string, search *inflightSearch) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	// A newer search may already own the slot; leave its entry alone.
	if uc.inflight[sessionKey] == search {
		delete(uc.inflight, sessionKey)
	}
	search.cancel()
}

func (uc *registrySearchUsecase) cacheKey(request *requests.PatientSearch) string {
	// Identifier lookups are registration-critical, always fetched fresh.
	if request.Identifier != "" {
		return ""
	}
	return constvars.RedisKeySearchPagePrefix + BuildSearchQuery(request).Encode()
}
