package persons

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
	"net/url"
	"sync"

	"go.uber.org/zap"
)

var (
	personFhirClientInstance contracts.PersonFhirClient
	oncePersonFhirClient     sync.Once
)

type personFhirClient struct {
	BaseUrl string
	Log     *zap.Logger
}

func NewPersonFhirClient(baseUrl string, logger *zap.Logger) contracts.PersonFhirClient {
	oncePersonFhirClient.Do(func() {
		client := &personFhirClient{
			BaseUrl: fmt.Sprintf("%s/%s", baseUrl, constvars.ResourcePerson),
			Log:     logger,
		}
		personFhirClientInstance = client
	})
	return personFhirClientInstance
}

// FindPersonByIdentifier queries Person by the email identifier search parameter.
func (c *personFhirClient) FindPersonByIdentifier(ctx context.Context, email string) ([]fhir_dto.Person, error) {
	return c.searchPersons(ctx, fmt.Sprintf("%s?identifier=%s", c.BaseUrl, url.QueryEscape(email)))
}

// FindPersonByEmail queries Person by the telecom email search parameter.
func (c *personFhirClient) FindPersonByEmail(ctx context.Context, email string) ([]fhir_dto.Person, error) {
	return c.searchPersons(ctx, fmt.Sprintf("%s?email=%s", c.BaseUrl, url.QueryEscape(email)))
}

func (c *personFhirClient) searchPersons(ctx context.Context, searchUrl string) ([]fhir_dto.Person, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("personFhirClient.searchPersons called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFhirUrlKey, searchUrl),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, searchUrl, nil)
	if err != nil {
		c.Log.Error("personFhirClient.searchPersons error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("personFhirClient.searchPersons error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, c.buildUpstreamError(requestID, resp, "personFhirClient.searchPersons")
	}

	var result struct {
		Total        int    `json:"total"`
		ResourceType string `json:"resourceType"`
		Entry        []struct {
			FullUrl  string          `json:"fullUrl"`
			Resource fhir_dto.Person `json:"resource"`
		} `json:"entry"`
	}
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		c.Log.Error("personFhirClient.searchPersons error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePerson)
	}

	people := make([]fhir_dto.Person, len(result.Entry))
	for i, entry := range result.Entry {
		people[i] = entry.Resource
	}

	c.Log.Info("personFhirClient.searchPersons succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(people)),
	)
	return people, nil
}

func (c *personFhirClient) CreatePerson(ctx context.Context, person *fhir_dto.Person) (*fhir_dto.Person, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("personFhirClient.CreatePerson called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	requestJSON, err := json.Marshal(person)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("personFhirClient.CreatePerson error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("personFhirClient.CreatePerson error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		return nil, c.buildCreateError(requestID, resp)
	}

	createdPerson := new(fhir_dto.Person)
	err = json.NewDecoder(resp.Body).Decode(createdPerson)
	if err != nil {
		c.Log.Error("personFhirClient.CreatePerson error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePerson)
	}

	c.Log.Info("personFhirClient.CreatePerson succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPersonIDKey, createdPerson.ID),
	)
	return createdPerson, nil
}

func (c *personFhirClient) buildUpstreamError(requestID string, resp *http.Response, caller string) error {
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error(caller+" error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrGetFHIRResource(err, constvars.ResourcePerson)
	}

	var outcome fhir_dto.OperationOutcome
	if err := json.Unmarshal(bodyBytes, &outcome); err == nil && len(outcome.Issue) > 0 {
		fhirErrorIssue := errors.New(outcome.Issue[0].Diagnostics)
		c.Log.Error(caller+" FHIR error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(fhirErrorIssue),
		)
		return exceptions.ErrGetFHIRResource(fhirErrorIssue, constvars.ResourcePerson)
	}

	return exceptions.ErrGetFHIRResource(fmt.Errorf("unexpected status %d", resp.StatusCode), constvars.ResourcePerson)
}

func (c *personFhirClient) buildCreateError(requestID string, resp *http.Response) error {
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return exceptions.ErrCreateFHIRResource(err, constvars.ResourcePerson)
	}

	var outcome fhir_dto.OperationOutcome
	if err := json.Unmarshal(bodyBytes, &outcome); err == nil && len(outcome.Issue) > 0 {
		fhirErrorIssue := errors.New(outcome.Issue[0].Diagnostics)
		c.Log.Error("personFhirClient.CreatePerson FHIR error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(fhirErrorIssue),
		)
		return exceptions.ErrCreateFHIRResource(fhirErrorIssue, constvars.ResourcePerson)
	}

	return exceptions.ErrCreateFHIRResource(fmt.Errorf("unexpected status %d", resp.StatusCode), constvars.ResourcePerson)
}
