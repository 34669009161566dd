package registry

import (
	"context"
	"errors"
	"registro-service/internal/app/config"
	"registro-service/internal/app/contracts"
	"registro-service/internal/pkg/dto/requests"
	"registro-service/internal/pkg/dto/responses"
	"registro-service/internal/pkg/exceptions"
	"registro-service/internal/pkg/fhir_dto"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeRegistryClient struct {
	mu       sync.Mutex
	calls    int
	bundle   *fhir_dto.PatientBundle
	err      error
	onSearch func(ctx context.Context, request *requests.PatientSearch) (*fhir_dto.PatientBundle, error)
}

func (f *fakeRegistryClient) SearchPatients(ctx context.Context, request *requests.PatientSearch) (*fhir_dto.PatientBundle, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.onSearch != nil {
		return f.onSearch(ctx, request)
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.bundle, nil
}

func (f *fakeRegistryClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeRedisRepository struct {
	mu    sync.Mutex
	store map[string]string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{store: make(map[string]string)}
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.store, key)
	return nil
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.store[key] = string(data)
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.store[key], nil
}

func (f *fakeRedisRepository) size() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.store)
}

func newTestSearchUsecase(client contracts.RegistryFhirClient, redisRepository contracts.RedisRepository) *registrySearchUsecase {
	return &registrySearchUsecase{
		RegistryClient:  client,
		RedisRepository: redisRepository,
		InternalConfig: &config.InternalConfig{
			Registry: config.Registry{
				SearchCacheTTLInSeconds: 60,
				DefaultPageSize:         10,
				MaxPageSize:             100,
			},
		},
		Log:      zap.NewNop(),
		inflight: make(map[string]*inflightSearch),
	}
}

func searchBundle(ids ...string) *fhir_dto.PatientBundle {
	bundle := &fhir_dto.PatientBundle{
		ResourceType: "Bundle",
		Type:         "searchset",
		Total:        len(ids),
	}
	for _, id := range ids {
		bundle.Entry = append(bundle.Entry, fhir_dto.PatientEntry{
			Resource: fhir_dto.Patient{
				ID:   id,
				Name: []fhir_dto.HumanName{{Given: []string{"Ana"}, Family: "Lopez"}},
			},
		})
	}
	return bundle
}

func TestRegistrySearchUsecaseSearch(t *testing.T) {
	t.Run("Rejects Request Without Criteria", func(t *testing.T) {
		client := &fakeRegistryClient{bundle: searchBundle("p1")}
		usecase := newTestSearchUsecase(client, newFakeRedisRepository())

		result, err := usecase.Search(context.Background(), "session-1",
			&requests.PatientSearch{Page: 1, PageSize: 10})

		assert.Nil(t, result)
		assert.Error(t, err)
		assert.Equal(t, 0, client.callCount())
	})

	t.Run("Rejects Given Name Without Family Name", func(t *testing.T) {
		client := &fakeRegistryClient{bundle: searchBundle("p1")}
		usecase := newTestSearchUsecase(client, newFakeRedisRepository())

		result, err := usecase.Search(context.Background(), "session-1",
			&requests.PatientSearch{GivenName: "Ana", Page: 1, PageSize: 10})

		assert.Nil(t, result)
		assert.Error(t, err)
		assert.Equal(t, 0, client.callCount())
	})

	t.Run("Rejects Invalid Pagination", func(t *testing.T) {
		client := &fakeRegistryClient{bundle: searchBundle("p1")}
		usecase := newTestSearchUsecase(client, newFakeRedisRepository())

		result, err := usecase.Search(context.Background(), "session-1",
			&requests.PatientSearch{Identifier: "42", Page: 0, PageSize: 10})

		assert.Nil(t, result)
		assert.Error(t, err)
		assert.Equal(t, 0, client.callCount())
	})

	t.Run("Maps Bundle To Paged Result", func(t *testing.T) {
		client := &fakeRegistryClient{bundle: searchBundle("p1", "p2")}
		usecase := newTestSearchUsecase(client, newFakeRedisRepository())

		result, err := usecase.Search(context.Background(), "session-1",
			&requests.PatientSearch{Identifier: "42", Page: 1, PageSize: 10})

		assert.NoError(t, err)
		assert.Equal(t, 2, result.Total)
		assert.Len(t, result.Results, 2)
		assert.Equal(t, "p1", result.Results[0].ID)
	})

	t.Run("Trims Overfull Page To Requested Size", func(t *testing.T) {
		client := &fakeRegistryClient{bundle: searchBundle("p1", "p2", "p3")}
		usecase := newTestSearchUsecase(client, newFakeRedisRepository())

		result, err := usecase.Search(context.Background(), "session-1",
			&requests.PatientSearch{Identifier: "42", Page: 1, PageSize: 2})

		assert.NoError(t, err)
		assert.Len(t, result.Results, 2)
	})

	t.Run("Caches Name Search Pages", func(t *testing.T) {
		client := &fakeRegistryClient{bundle: searchBundle("p1")}
		redisRepository := newFakeRedisRepository()
		usecase := newTestSearchUsecase(client, redisRepository)
		request := &requests.PatientSearch{GivenName: "Ana", FamilyName: "Lopez", Page: 1, PageSize: 10}

		first, err := usecase.Search(context.Background(), "session-1", request)
		assert.NoError(t, err)
		second, err := usecase.Search(context.Background(), "session-1", request)
		assert.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, client.callCount())
		assert.Equal(t, 1, redisRepository.size())
	})

	t.Run("Never Caches Identifier Searches", func(t *testing.T) {
		client := &fakeRegistryClient{bundle: searchBundle("p1")}
		redisRepository := newFakeRedisRepository()
		usecase := newTestSearchUsecase(client, redisRepository)
		request := &requests.PatientSearch{Identifier: "42", Page: 1, PageSize: 10}

		_, err := usecase.Search(context.Background(), "session-1", request)
		assert.NoError(t, err)
		_, err = usecase.Search(context.Background(), "session-1", request)
		assert.NoError(t, err)

		assert.Equal(t, 2, client.callCount())
		assert.Equal(t, 0, redisRepository.size())
	})

	t.Run("Client Error Passes Through", func(t *testing.T) {
		client := &fakeRegistryClient{err: exceptions.ErrSendHTTPRequest(errors.New("connection refused"))}
		usecase := newTestSearchUsecase(client, newFakeRedisRepository())

		result, err := usecase.Search(context.Background(), "session-1",
			&requests.PatientSearch{Identifier: "42", Page: 1, PageSize: 10})

		assert.Nil(t, result)
		assert.Error(t, err)
		assert.False(t, exceptions.IsCancelled(err))
	})

	t.Run("Newer Search Cancels The One In Flight", func(t *testing.T) {
		firstStarted := make(chan struct{})
		release := make(chan struct{})
		client := &fakeRegistryClient{
			onSearch: func(ctx context.Context, request *requests.PatientSearch) (*fhir_dto.PatientBundle, error) {
				if request.Page == 1 {
					close(firstStarted)
					select {
					case <-ctx.Done():
						return nil, exceptions.ErrRequestCancelled(ctx.Err())
					case <-release:
						return searchBundle("stale"), nil
					}
				}
				return searchBundle("fresh"), nil
			},
		}
		usecase := newTestSearchUsecase(client, newFakeRedisRepository())

		type searchResult struct {
			result *responses.PagedResult
			err    error
		}
		firstDone := make(chan searchResult, 1)
		go func() {
			result, err := usecase.Search(context.Background(), "session-1",
				&requests.PatientSearch{Identifier: "42", Page: 1, PageSize: 10})
			firstDone <- searchResult{result, err}
		}()

		<-firstStarted
		fresh, err := usecase.Search(context.Background(), "session-1",
			&requests.PatientSearch{Identifier: "42", Page: 2, PageSize: 10})
		assert.NoError(t, err)
		assert.Equal(t, "fresh", fresh.Results[0].ID)

		close(release)
		first := <-firstDone
		assert.Nil(t, first.result)
		assert.True(t, exceptions.IsCancelled(first.err),
			"the superseded search must not produce a caller-visible page")
	})

	t.Run("Distinct Sessions Do Not Cancel Each Other", func(t *testing.T) {
		client := &fakeRegistryClient{bundle: searchBundle("p1")}
		usecase := newTestSearchUsecase(client, newFakeRedisRepository())

		_, errA := usecase.Search(context.Background(), "session-a",
			&requests.PatientSearch{Identifier: "42", Page: 1, PageSize: 10})
		_, errB := usecase.Search(context.Background(), "session-b",
			&requests.PatientSearch{Identifier: "42", Page: 1, PageSize: 10})

		assert.NoError(t, errA)
		assert.NoError(t, errB)
		assert.Equal(t, 2, client.callCount())
	})

	t.Run("Inflight Map Is Empty After Searches Finish", func(t *testing.T) {
		client := &fakeRegistryClient{bundle: searchBundle("p1")}
		usecase := newTestSearchUsecase(client, newFakeRedisRepository())

		_, err := usecase.Search(context.Background(), "session-1",
			&requests.PatientSearch{Identifier: "42", Page: 1, PageSize: 10})
		assert.NoError(t, err)

		usecase.mu.Lock()
		defer usecase.mu.Unlock()
		assert.Empty(t, usecase.inflight)
	})
}

func TestRegistrySearchUsecaseResolve(t *testing.T) {
	usecase := newTestSearchUsecase(&fakeRegistryClient{}, newFakeRedisRepository())

	t.Run("Resolves Name And Date Together", func(t *testing.T) {
		resolved := usecase.Resolve(context.Background(), &requests.ResolvePatient{
			FullName:  "Ana Maria Lopez",
			BirthDate: "1990-05-02",
		})

		assert.Equal(t, "Ana", resolved.GivenName)
		assert.Equal(t, "Maria", resolved.MiddleName)
		assert.Equal(t, "Lopez", resolved.FamilyName)
		if assert.NotNil(t, resolved.BirthDate) {
			assert.Equal(t, "1990-05-02", resolved.BirthDate.String())
		}
	})

	t.Run("Unparseable Date Resolves To Nil Without Error", func(t *testing.T) {
		resolved := usecase.Resolve(context.Background(), &requests.ResolvePatient{
			FullName:  "Ana Lopez",
			BirthDate: "not-a-date",
		})

		assert.Equal(t, "Ana", resolved.GivenName)
		assert.Nil(t, resolved.BirthDate)
	})
}
