package fhir_dto

import "encoding/json"

type Bundle struct {
	ResourceType string        `json:"resourceType"`
	ID           string        `json:"id,omitempty"`
	Type         string        `json:"type,omitempty"`
	Total        int           `json:"total"`
	Entry        []BundleEntry `json:"entry,omitempty"`
}

type BundleEntry struct {
	FullUrl  string          `json:"fullUrl,omitempty"`
	Resource json.RawMessage `json:"resource"`
}

// resourceHeader is the minimal shape needed to key an entry by type and id.
type resourceHeader struct {
	ResourceType string `json:"resourceType"`
	ID           string `json:"id"`
}

// ResourceMap keys every decodable entry by "<ResourceType>/<id>".
// Entries that fail to decode or carry no id are skipped, never fatal.
func (b Bundle) ResourceMap() map[string]json.RawMessage {
	resources := make(map[string]json.RawMessage, len(b.Entry))
	for _, entry := range b.Entry {
		var header resourceHeader
		if err := json.Unmarshal(entry.Resource, &header); err != nil {
			continue
		}
		if header.ResourceType == "" || header.ID == "" {
			continue
		}
		resources[header.ResourceType+"/"+header.ID] = entry.Resource
	}
	return resources
}
