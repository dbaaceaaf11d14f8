package slots

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
	slotFhirClientInstance contracts.SlotFhirClient
	onceSlotFhirClient     sync.Once
)

type slotFhirClient struct {
	BaseUrl string
	Log     *zap.Logger
}

func NewSlotFhirClient(baseUrl string, logger *zap.Logger) contracts.SlotFhirClient {
	onceSlotFhirClient.Do(func() {
		client := &slotFhirClient{
			BaseUrl: fmt.Sprintf("%s/%s", baseUrl, constvars.ResourceSlot),
			Log:     logger,
		}
		slotFhirClientInstance = client
	})
	return slotFhirClientInstance
}

func (c *slotFhirClient) FindSlotByID(ctx context.Context, slotID string) (*fhir_dto.Slot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("slotFhirClient.FindSlotByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSlotIDKey, slotID),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s/%s", c.BaseUrl, slotID), nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("slotFhirClient.FindSlotByID error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, c.buildUpstreamError(requestID, resp, "slotFhirClient.FindSlotByID")
	}

	slot := new(fhir_dto.Slot)
	err = json.NewDecoder(resp.Body).Decode(slot)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceSlot)
	}

	return slot, nil
}

func (c *slotFhirClient) FindSlotsByStatus(ctx context.Context, status fhir_dto.SlotStatus) ([]fhir_dto.Slot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	searchUrl := fmt.Sprintf("%s?status=%s", c.BaseUrl, status)
	c.Log.Info("slotFhirClient.FindSlotsByStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFhirUrlKey, searchUrl),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, searchUrl, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("slotFhirClient.FindSlotsByStatus error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, c.buildUpstreamError(requestID, resp, "slotFhirClient.FindSlotsByStatus")
	}

	var result struct {
		Total        int    `json:"total"`
		ResourceType string `json:"resourceType"`
		Entry        []struct {
			FullUrl  string        `json:"fullUrl"`
			Resource fhir_dto.Slot `json:"resource"`
		} `json:"entry"`
	}
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		c.Log.Error("slotFhirClient.FindSlotsByStatus error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceSlot)
	}

	slots := make([]fhir_dto.Slot, len(result.Entry))
	for i, entry := range result.Entry {
		slots[i] = entry.Resource
	}

	c.Log.Info("slotFhirClient.FindSlotsByStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(slots)),
	)
	return slots, nil
}

func (c *slotFhirClient) UpdateSlot(ctx context.Context, slot *fhir_dto.Slot) (*fhir_dto.Slot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("slotFhirClient.UpdateSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSlotIDKey, slot.ID),
	)

	if slot.ID == "" {
		return nil, exceptions.ErrMissingResourceID(nil, constvars.ResourceSlot)
	}

	requestJSON, err := json.Marshal(slot)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPut, fmt.Sprintf("%s/%s", c.BaseUrl, slot.ID), bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("slotFhirClient.UpdateSlot error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		bodyBytes, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, exceptions.ErrUpdateFHIRResource(readErr, constvars.ResourceSlot)
		}
		var outcome fhir_dto.OperationOutcome
		if err := json.Unmarshal(bodyBytes, &outcome); err == nil && len(outcome.Issue) > 0 {
			fhirErrorIssue := errors.New(outcome.Issue[0].Diagnostics)
			c.Log.Error("slotFhirClient.UpdateSlot FHIR error",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(fhirErrorIssue),
			)
			return nil, exceptions.ErrUpdateFHIRResource(fhirErrorIssue, constvars.ResourceSlot)
		}
		return nil, exceptions.ErrUpdateFHIRResource(fmt.Errorf("unexpected status %d", resp.StatusCode), constvars.ResourceSlot)
	}

	updatedSlot := new(fhir_dto.Slot)
	err = json.NewDecoder(resp.Body).Decode(updatedSlot)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceSlot)
	}

	c.Log.Info("slotFhirClient.UpdateSlot succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSlotIDKey, updatedSlot.ID),
	)
	return updatedSlot, nil
}

func (c *slotFhirClient) buildUpstreamError(requestID string, resp *http.Response, caller string) error {
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error(caller+" error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrGetFHIRResource(err, constvars.ResourceSlot)
	}

	var outcome fhir_dto.OperationOutcome
	if err := json.Unmarshal(bodyBytes, &outcome); err == nil && len(outcome.Issue) > 0 {
		fhirErrorIssue := errors.New(outcome.Issue[0].Diagnostics)
		c.Log.Error(caller+" FHIR error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(fhirErrorIssue),
		)
		return exceptions.ErrGetFHIRResource(fhirErrorIssue, constvars.ResourceSlot)
	}

	return exceptions.ErrGetFHIRResource(fmt.Errorf("unexpected status %d", resp.StatusCode), constvars.ResourceSlot)
}
