package fhir_dto

import "strings"

type Appointment struct {
	ResourceType string                   `json:"resourceType"`
	ID           string                   `json:"id,omitempty"`
	Meta         Meta                     `json:"meta,omitempty"`
	Status       string                   `json:"status"`
	Description  string                   `json:"description,omitempty"`
	Slot         []Reference              `json:"slot,omitempty"`
	Participant  []AppointmentParticipant `json:"participant,omitempty"`
	Extension    []Extension              `json:"extension,omitempty"`
}

type AppointmentParticipant struct {
	Actor  Reference `json:"actor"`
	Status string    `json:"status"`
}

// PatientReference returns the first Patient-typed participant reference
// (e.g. "Patient/123"), or "" when none exists.
func (a Appointment) PatientReference() string {
	for _, p := range a.Participant {
		if strings.HasPrefix(p.Actor.Reference, "Patient/") {
			return p.Actor.Reference
		}
	}
	return ""
}

// SlotReference returns the first slot reference (e.g. "Slot/52229"),
// or "" when the appointment carries none.
func (a Appointment) SlotReference() string {
	if len(a.Slot) == 0 {
		return ""
	}
	return a.Slot[0].Reference
}

// ExtensionValue returns the valueString of the first extension whose url
// contains the given fragment, or "" when absent.
func (a Appointment) ExtensionValue(urlFragment string) string {
	for _, ext := range a.Extension {
		if strings.Contains(ext.Url, urlFragment) {
			return ext.ValueString
		}
	}
	return ""
}
