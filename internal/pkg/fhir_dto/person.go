package fhir_dto

import "strings"

type Person struct {
	ResourceType string         `json:"resourceType"`
	ID           string         `json:"id,omitempty"`
	Meta         Meta           `json:"meta,omitempty"`
	Active       bool           `json:"active,omitempty"`
	Name         []HumanName    `json:"name,omitempty"`
	Identifier   []Identifier   `json:"identifier,omitempty"`
	Telecom      []ContactPoint `json:"telecom,omitempty"`
	Link         []PersonLink   `json:"link,omitempty"`
}

type PersonLink struct {
	Target Reference `json:"target"`
}

// LinkedPatientID returns the id of the first linked Patient, if any.
// The link is informational on the FHIR side; this service treats the
// first Patient-typed target as the canonical registration record.
func (p Person) LinkedPatientID() string {
	for _, link := range p.Link {
		ref := link.Target.Reference
		if strings.HasPrefix(ref, "Patient/") {
			return strings.TrimPrefix(ref, "Patient/")
		}
	}
	return ""
}
