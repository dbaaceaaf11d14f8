package utils

import (
	"careslot-service/internal/app/models"
	"careslot-service/internal/pkg/constvars"
	"careslot-service/internal/pkg/dto/responses"
	"careslot-service/internal/pkg/fhir_dto"
	"encoding/json"
)

// MapPatientDirectory flattens a Patient searchset bundle into id/name pairs.
// Unnamed patients get the unknown sentinel instead of an empty label.
func MapPatientDirectory(bundle fhir_dto.Bundle) []responses.PatientSummary {
	patients := make([]responses.PatientSummary, 0, len(bundle.Entry))
	for _, entry := range bundle.Entry {
		var patient fhir_dto.Patient
		if err := json.Unmarshal(entry.Resource, &patient); err != nil {
			continue
		}
		if patient.ResourceType != constvars.ResourcePatient || patient.ID == "" {
			continue
		}
		name := patient.FullName()
		if name == "" {
			name = constvars.SentinelUnknown
		}
		patients = append(patients, responses.PatientSummary{
			ID:   patient.ID,
			Name: name,
		})
	}
	return patients
}

// MapCatalogSlots renders the configured slot catalog for the front end.
func MapCatalogSlots(catalog *models.SlotCatalog) []responses.Slot {
	entries := catalog.Entries()
	slots := make([]responses.Slot, 0, len(entries))
	for _, entry := range entries {
		slots = append(slots, responses.Slot{
			ID:      entry.ID,
			Display: entry.Display,
			Start:   entry.Start,
		})
	}
	return slots
}

// MapFhirSlots renders upstream Slot resources, resolving each display
// through the catalog so labelled slots keep their configured text.
func MapFhirSlots(fhirSlots []fhir_dto.Slot, catalog *models.SlotCatalog) []responses.Slot {
	slots := make([]responses.Slot, 0, len(fhirSlots))
	for _, slot := range fhirSlots {
		start := ""
		if !slot.Start.IsZero() {
			start = slot.Start.Format("2006-01-02T15:04:05-07:00")
		}
		slots = append(slots, responses.Slot{
			ID:      slot.ID,
			Display: catalog.DisplayForSlot(slot.ID, slot.Start),
			Start:   start,
		})
	}
	return slots
}

// BuildAppointmentSummary derives the admin view of one appointment from the
// appointment itself plus the _include'd resources keyed "<Type>/<id>".
// Every missing intermediate degrades to a sentinel; this mapper never fails
// on partial upstream data.
func BuildAppointmentSummary(
	appointment fhir_dto.Appointment,
	resources map[string]json.RawMessage,
	catalog *models.SlotCatalog,
) responses.AppointmentSummary {
	summary := responses.AppointmentSummary{
		AppointmentID: appointment.ID,
		PatientID:     constvars.SentinelUnknown,
		PatientName:   constvars.SentinelUnknown,
		Email:         constvars.SentinelNotProvided,
		SlotDisplay:   constvars.SentinelSlotUnspecified,
		Diet:          constvars.SentinelNotRecorded,
		Mode:          constvars.SentinelNotRecorded,
		Status:        appointment.Status,
		LastUpdated:   appointment.Meta.LastUpdated,
	}

	if patientRef := appointment.PatientReference(); patientRef != "" {
		if raw, ok := resources[patientRef]; ok {
			var patient fhir_dto.Patient
			if err := json.Unmarshal(raw, &patient); err == nil {
				if patient.ID != "" {
					summary.PatientID = patient.ID
				}
				if name := patient.FullName(); name != "" {
					summary.PatientName = name
				}
				if email := patient.Email(); email != "" {
					summary.Email = email
				}
			}
		}
	}

	if slotRef := appointment.SlotReference(); slotRef != "" {
		slotID := ExtractResourceID(slotRef)
		if catalog.Contains(slotID) {
			summary.SlotDisplay = catalog.DisplayFor(slotID)
		} else if raw, ok := resources[slotRef]; ok {
			var slot fhir_dto.Slot
			if err := json.Unmarshal(raw, &slot); err == nil {
				summary.SlotDisplay = catalog.DisplayForSlot(slotID, slot.Start)
			}
		}
	}

	if diet := appointment.ExtensionValue("diet"); diet != "" {
		summary.Diet = diet
	}
	if mode := appointment.ExtensionValue("mode"); mode != "" {
		summary.Mode = mode
	}

	return summary
}
