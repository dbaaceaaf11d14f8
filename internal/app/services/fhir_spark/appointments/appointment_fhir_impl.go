package appointments

import (
	"bytes"
	"careslot-service/internal/app/contracts"
	"careslot-service/internal/pkg/constvars"
	"careslot-service/internal/pkg/exceptions"
	"careslot-service/internal/pkg/fhir_dto"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

var (
	appointmentFhirClientInstance contracts.AppointmentFhirClient
	onceAppointmentFhirClient     sync.Once
)

type appointmentFhirClient struct {
	BaseUrl string
	Log     *zap.Logger
}

func NewAppointmentFhirClient(baseUrl string, logger *zap.Logger) contracts.AppointmentFhirClient {
	onceAppointmentFhirClient.Do(func() {
		client := &appointmentFhirClient{
			BaseUrl: fmt.Sprintf("%s/%s", baseUrl, constvars.ResourceAppointment),
			Log:     logger,
		}
		appointmentFhirClientInstance = client
	})
	return appointmentFhirClientInstance
}

func (c *appointmentFhirClient) CreateAppointment(ctx context.Context, appointment *fhir_dto.Appointment) (*fhir_dto.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentFhirClient.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	requestJSON, err := json.Marshal(appointment)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("appointmentFhirClient.CreateAppointment error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("appointmentFhirClient.CreateAppointment error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		bodyBytes, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, exceptions.ErrCreateFHIRResource(readErr, constvars.ResourceAppointment)
		}
		var outcome fhir_dto.OperationOutcome
		if err := json.Unmarshal(bodyBytes, &outcome); err == nil && len(outcome.Issue) > 0 {
			fhirErrorIssue := errors.New(outcome.Issue[0].Diagnostics)
			c.Log.Error("appointmentFhirClient.CreateAppointment FHIR error",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(fhirErrorIssue),
			)
			return nil, exceptions.ErrCreateFHIRResource(fhirErrorIssue, constvars.ResourceAppointment)
		}
		return nil, exceptions.ErrCreateFHIRResource(fmt.Errorf("unexpected status %d", resp.StatusCode), constvars.ResourceAppointment)
	}

	createdAppointment := new(fhir_dto.Appointment)
	err = json.NewDecoder(resp.Body).Decode(createdAppointment)
	if err != nil {
		c.Log.Error("appointmentFhirClient.CreateAppointment error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceAppointment)
	}

	c.Log.Info("appointmentFhirClient.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, createdAppointment.ID),
	)
	return createdAppointment, nil
}

// CreateAppointmentRaw forwards an already-serialized Appointment payload
// and relays the upstream reply verbatim, status and all. Only transport
// failures become errors; application-level rejections travel back to the
// caller untouched.
func (c *appointmentFhirClient) CreateAppointmentRaw(ctx context.Context, body []byte) (*contracts.RawUpstreamResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentFhirClient.CreateAppointmentRaw called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl, bytes.NewReader(body))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("appointmentFhirClient.CreateAppointmentRaw error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrReadBody(err)
	}

	c.Log.Info("appointmentFhirClient.CreateAppointmentRaw relayed upstream response",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
	)
	return &contracts.RawUpstreamResponse{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get(constvars.HeaderContentType),
		Body:        respBody,
	}, nil
}

func (c *appointmentFhirClient) FindRecentWithIncludes(ctx context.Context, count int) ([]fhir_dto.Appointment, map[string]json.RawMessage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	url := fmt.Sprintf("%s?_sort=-_lastUpdated&_count=%d&_include=%s&_include=%s",
		c.BaseUrl, count, constvars.FhirIncludeAppointmentPatient, constvars.FhirIncludeAppointmentSlot)
	c.Log.Info("appointmentFhirClient.FindRecentWithIncludes called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFhirUrlKey, url),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, url, nil)
	if err != nil {
		return nil, nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("appointmentFhirClient.FindRecentWithIncludes error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		bodyBytes, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, nil, exceptions.ErrGetFHIRResource(readErr, constvars.ResourceAppointment)
		}
		var outcome fhir_dto.OperationOutcome
		if err := json.Unmarshal(bodyBytes, &outcome); err == nil && len(outcome.Issue) > 0 {
			fhirErrorIssue := errors.New(outcome.Issue[0].Diagnostics)
			c.Log.Error("appointmentFhirClient.FindRecentWithIncludes FHIR error",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(fhirErrorIssue),
			)
			return nil, nil, exceptions.ErrGetFHIRResource(fhirErrorIssue, constvars.ResourceAppointment)
		}
		return nil, nil, exceptions.ErrGetFHIRResource(fmt.Errorf("unexpected status %d", resp.StatusCode), constvars.ResourceAppointment)
	}

	var bundle fhir_dto.Bundle
	err = json.NewDecoder(resp.Body).Decode(&bundle)
	if err != nil {
		c.Log.Error("appointmentFhirClient.FindRecentWithIncludes error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, exceptions.ErrDecodeResponse(err, constvars.ResourceBundle)
	}

	resources := bundle.ResourceMap()
	appointments := make([]fhir_dto.Appointment, 0, len(bundle.Entry))
	for _, entry := range bundle.Entry {
		var appointment fhir_dto.Appointment
		if err := json.Unmarshal(entry.Resource, &appointment); err != nil {
			continue
		}
		if appointment.ResourceType != constvars.ResourceAppointment {
			continue
		}
		appointments = append(appointments, appointment)
	}

	c.Log.Info("appointmentFhirClient.FindRecentWithIncludes succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(appointments)),
	)
	return appointments, resources, nil
}
