package patients

import (
	"bytes"
	"careslot-service/internal/app/contracts"
	"careslot-service/internal/pkg/constvars"
	"careslot-service/internal/pkg/exceptions"
	"careslot-service/internal/pkg/fhir_dto"
	"careslot-service/internal/pkg/utils"
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
	patientFhirClientInstance contracts.PatientFhirClient
	oncePatientFhirClient     sync.Once
)

type patientFhirClient struct {
	BaseUrl string
	Log     *zap.Logger
}

func NewPatientFhirClient(baseUrl string, logger *zap.Logger) contracts.PatientFhirClient {
	oncePatientFhirClient.Do(func() {
		client := &patientFhirClient{
			BaseUrl: fmt.Sprintf("%s/%s", baseUrl, constvars.ResourcePatient),
			Log:     logger,
		}
		patientFhirClientInstance = client
	})
	return patientFhirClientInstance
}

func (c *patientFhirClient) FindAllPatients(ctx context.Context) (fhir_dto.Bundle, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientFhirClient.FindAllPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl, nil)
	if err != nil {
		c.Log.Error("patientFhirClient.FindAllPatients error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return fhir_dto.Bundle{}, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("patientFhirClient.FindAllPatients error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return fhir_dto.Bundle{}, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return fhir_dto.Bundle{}, c.buildUpstreamError(requestID, resp, "patientFhirClient.FindAllPatients")
	}

	var bundle fhir_dto.Bundle
	err = json.NewDecoder(resp.Body).Decode(&bundle)
	if err != nil {
		c.Log.Error("patientFhirClient.FindAllPatients error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return fhir_dto.Bundle{}, exceptions.ErrDecodeResponse(err, constvars.ResourcePatient)
	}

	c.Log.Info("patientFhirClient.FindAllPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(bundle.Entry)),
	)
	return bundle, nil
}

func (c *patientFhirClient) FindPatientByID(ctx context.Context, patientID string) (*fhir_dto.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientFhirClient.FindPatientByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s/%s", c.BaseUrl, patientID), nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, c.buildUpstreamError(requestID, resp, "patientFhirClient.FindPatientByID")
	}

	patient := new(fhir_dto.Patient)
	err = json.NewDecoder(resp.Body).Decode(patient)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatient)
	}

	return patient, nil
}

func (c *patientFhirClient) CreatePatient(ctx context.Context, patient *fhir_dto.Patient) (*fhir_dto.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientFhirClient.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	requestJSON, err := json.Marshal(patient)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("patientFhirClient.CreatePatient error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("patientFhirClient.CreatePatient error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		bodyBytes, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, exceptions.ErrCreateFHIRResource(readErr, constvars.ResourcePatient)
		}
		var outcome fhir_dto.OperationOutcome
		if err := json.Unmarshal(bodyBytes, &outcome); err == nil && len(outcome.Issue) > 0 {
			fhirErrorIssue := errors.New(outcome.Issue[0].Diagnostics)
			c.Log.Error("patientFhirClient.CreatePatient FHIR error",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(fhirErrorIssue),
			)
			return nil, exceptions.ErrCreateFHIRResource(fhirErrorIssue, constvars.ResourcePatient)
		}
		return nil, exceptions.ErrCreateFHIRResource(fmt.Errorf("unexpected status %d", resp.StatusCode), constvars.ResourcePatient)
	}

	createdPatient := new(fhir_dto.Patient)
	err = json.NewDecoder(resp.Body).Decode(createdPatient)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatient)
	}

	// Some servers answer a create with a bare body and only carry the new
	// id in the Location header.
	if createdPatient.ID == "" {
		createdPatient.ID = utils.ExtractResourceIDFromLocation(resp.Header.Get(constvars.HeaderLocation), constvars.ResourcePatient)
	}
	if createdPatient.ID == "" {
		return nil, exceptions.ErrMissingResourceID(nil, constvars.ResourcePatient)
	}

	c.Log.Info("patientFhirClient.CreatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, createdPatient.ID),
	)
	return createdPatient, nil
}

func (c *patientFhirClient) buildUpstreamError(requestID string, resp *http.Response, caller string) error {
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error(caller+" error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrGetFHIRResource(err, constvars.ResourcePatient)
	}

	var outcome fhir_dto.OperationOutcome
	if err := json.Unmarshal(bodyBytes, &outcome); err == nil && len(outcome.Issue) > 0 {
		fhirErrorIssue := errors.New(outcome.Issue[0].Diagnostics)
		c.Log.Error(caller+" FHIR error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(fhirErrorIssue),
		)
		return exceptions.ErrGetFHIRResource(fhirErrorIssue, constvars.ResourcePatient)
	}

	return exceptions.ErrGetFHIRResource(fmt.Errorf("unexpected status %d", resp.StatusCode), constvars.ResourcePatient)
}
