package fhir_dto

import (
	"fmt"
	"time"
)

// SlotStatus enumerates valid FHIR Slot.status values.
// docs: https://hl7.org/fhir/R4/valueset-slotstatus.html
type SlotStatus string

const (
	SlotStatusBusy            SlotStatus = "busy"
	SlotStatusFree            SlotStatus = "free"
	SlotStatusBusyUnavailable SlotStatus = "busy-unavailable"
	SlotStatusBusyTentative   SlotStatus = "busy-tentative"
	SlotStatusEnteredInError  SlotStatus = "entered-in-error"
)

type Slot struct {
	ResourceType string     `json:"resourceType"`
	ID           string     `json:"id,omitempty"`
	Meta         Meta       `json:"meta,omitempty"`
	Schedule     Reference  `json:"schedule,omitempty"`
	Status       SlotStatus `json:"status"`
	Start        time.Time  `json:"start,omitempty"`
	End          time.Time  `json:"end,omitempty"`
	Comment      string     `json:"comment,omitempty"`
}

// ParseSlotStatus converts a string into a SlotStatus, validating the value.
func ParseSlotStatus(s string) (SlotStatus, error) {
	switch SlotStatus(s) {
	case SlotStatusBusy, SlotStatusFree, SlotStatusBusyUnavailable, SlotStatusBusyTentative, SlotStatusEnteredInError:
		return SlotStatus(s), nil
	default:
		return "", fmt.Errorf("invalid slot status; must be one of: busy, busy-tentative, busy-unavailable, free, entered-in-error")
	}
}
