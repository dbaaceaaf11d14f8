package fhir_dto

import "strings"

type Patient struct {
	ResourceType string         `json:"resourceType"`
	ID           string         `json:"id,omitempty"`
	Meta         Meta           `json:"meta,omitempty"`
	Active       bool           `json:"active,omitempty"`
	Name         []HumanName    `json:"name,omitempty"`
	Gender       string         `json:"gender,omitempty"`
	BirthDate    string         `json:"birthDate,omitempty"`
	Telecom      []ContactPoint `json:"telecom,omitempty"`
	Link         []PatientLink  `json:"link,omitempty"`
}

type PatientLink struct {
	Other Reference `json:"other"`
	Type  string    `json:"type,omitempty"`
}

// FullName returns a best-effort display name: prefer Text, else Given+Family.
func (p Patient) FullName() string {
	if len(p.Name) == 0 {
		return ""
	}
	chosen := p.Name[0]
	for _, n := range p.Name {
		if strings.EqualFold(n.Use, "official") {
			chosen = n
			break
		}
	}
	if s := strings.TrimSpace(chosen.Text); s != "" {
		return s
	}
	parts := []string{}
	if len(chosen.Given) > 0 {
		parts = append(parts, strings.Join(chosen.Given, " "))
	}
	if s := strings.TrimSpace(chosen.Family); s != "" {
		parts = append(parts, s)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// Email returns the value of the first email telecom entry, if any.
func (p Patient) Email() string {
	for _, t := range p.Telecom {
		if strings.EqualFold(t.System, "email") {
			return t.Value
		}
	}
	return ""
}
