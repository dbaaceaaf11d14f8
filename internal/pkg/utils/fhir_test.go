package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractResourceID(t *testing.T) {
	assert.Equal(t, "123", ExtractResourceID("Patient/123"))
	assert.Equal(t, "52229", ExtractResourceID("Slot/52229"))
	assert.Equal(t, "", ExtractResourceID("Patient"))
	assert.Equal(t, "", ExtractResourceID(""))
}

func TestExtractResourceIDFromLocation(t *testing.T) {
	assert.Equal(t, "123", ExtractResourceIDFromLocation("http://host/fhir/Patient/123/_history/1", "Patient"))
	assert.Equal(t, "123", ExtractResourceIDFromLocation("Patient/123", "Patient"))
	assert.Equal(t, "", ExtractResourceIDFromLocation("http://host/fhir/Person/9", "Patient"))
	assert.Equal(t, "", ExtractResourceIDFromLocation("", "Patient"))
}
