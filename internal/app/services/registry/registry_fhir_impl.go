package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"registro-service/internal/app/contracts"
	"registro-service/internal/pkg/constvars"
	"registro-service/internal/pkg/dto/requests"
	"registro-service/internal/pkg/exceptions"
	"registro-service/internal/pkg/fhir_dto"
	"sync"

	"go.uber.org/zap"
)

var (
	registryFhirClientInstance contracts.RegistryFhirClient
	onceRegistryFhirClient     sync.Once
)

type registryFhirClient struct {
	BaseUrl string
	Log     *zap.Logger
}

func NewRegistryFhirClient(baseUrl string, logger *zap.Logger) contracts.RegistryFhirClient {
	onceRegistryFhirClient.Do(func() {
		client := &registryFhirClient{
			BaseUrl: baseUrl + "/" + constvars.ResourcePatient,
			Log:     logger,
		}
		registryFhirClientInstance = client
	})
	return registryFhirClientInstance
}

func (c *registryFhirClient) SearchPatients(ctx context.Context, request *requests.PatientSearch) (*fhir_dto.PatientBundle, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	queryParams := BuildSearchQuery(request)
	c.Log.Info("registryFhirClient.SearchPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryParamsKey, queryParams.Encode()),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet,
		fmt.Sprintf("%s?%s", c.BaseUrl, queryParams.Encode()), nil)
	if err != nil {
		c.Log.Error("registryFhirClient.SearchPatients error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, c.classifyTransportError(ctx, requestID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			c.Log.Error("registryFhirClient.SearchPatients error reading response body",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrSearchFHIRResource(err, constvars.ResourcePatient)
		}

		var outcome fhir_dto.OperationOutcome
		err = json.Unmarshal(bodyBytes, &outcome)
		if err != nil {
			c.Log.Error("registryFhirClient.SearchPatients error unmarshaling outcome",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrSearchFHIRResource(err, constvars.ResourcePatient)
		}

		fhirError := fmt.Errorf("registry returned status %d", resp.StatusCode)
		if len(outcome.Issue) > 0 {
			fhirError = errors.New(outcome.Issue[0].Diagnostics)
		}
		c.Log.Error("registryFhirClient.SearchPatients FHIR error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(fhirError),
		)
		return nil, exceptions.ErrSearchFHIRResource(fhirError, constvars.ResourcePatient)
	}

	bundle := new(fhir_dto.PatientBundle)
	err = json.NewDecoder(resp.Body).Decode(&bundle)
	if err != nil {
		c.Log.Error("registryFhirClient.SearchPatients error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatient)
	}

	c.Log.Info("registryFhirClient.SearchPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResultCountKey, len(bundle.Entry)),
		zap.Int(constvars.LoggingTotalKey, bundle.Total),
	)
	return bundle, nil
}

// classifyTransportError separates a deliberate cancellation from a genuine
// transport failure so callers can suppress the former. No retries happen at
// this layer; a failed fetch surfaces as-is.
func (c *registryFhirClient) classifyTransportError(ctx context.Context, requestID string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
		c.Log.Info("registryFhirClient.SearchPatients request cancelled",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return exceptions.ErrRequestCancelled(err)
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		c.Log.Error("registryFhirClient.SearchPatients deadline exceeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrServerDeadlineExceeded(err)
	}

	c.Log.Error("registryFhirClient.SearchPatients error sending HTTP request",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)
	return exceptions.ErrSendHTTPRequest(err)
}
