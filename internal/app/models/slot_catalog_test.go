package models

import (
	"careslot-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewSlotCatalogFromJSON(t *testing.T) {
	t.Run("Empty payload yields default catalog", func(t *testing.T) {
		catalog := NewSlotCatalogFromJSON("")

		entries := catalog.Entries()
		assert.Len(t, entries, 2)
		assert.Equal(t, "52229", entries[0].ID)
		assert.Equal(t, "上午 10:00 - 12:00", entries[0].Display)
		assert.Equal(t, "52223", entries[1].ID)
	})

	t.Run("Unparseable payload yields default catalog", func(t *testing.T) {
		catalog := NewSlotCatalogFromJSON("{not json")

		assert.Len(t, catalog.Entries(), 2)
	})

	t.Run("Valid payload replaces default catalog", func(t *testing.T) {
		catalog := NewSlotCatalogFromJSON(`[{"id":"900","display":"Morning","start":"2026-01-01T09:00:00+08:00"}]`)

		entries := catalog.Entries()
		assert.Len(t, entries, 1)
		assert.Equal(t, "900", entries[0].ID)
		assert.False(t, catalog.Contains("52229"))
	})

	t.Run("Entries without id are dropped", func(t *testing.T) {
		catalog := NewSlotCatalogFromJSON(`[{"id":"","display":"x"},{"id":"1","display":"y"}]`)

		assert.Len(t, catalog.Entries(), 1)
	})
}

func TestSlotCatalog_DisplayFor(t *testing.T) {
	catalog := DefaultSlotCatalog()

	t.Run("Known id returns configured label", func(t *testing.T) {
		assert.Equal(t, "上午 10:00 - 12:00", catalog.DisplayFor("52229"))
		assert.Equal(t, "下午 02:00 - 04:00", catalog.DisplayFor("52223"))
	})

	t.Run("Unknown id returns sentinel", func(t *testing.T) {
		assert.Equal(t, constvars.SentinelSlotUnspecified, catalog.DisplayFor("nope"))
	})
}

func TestSlotCatalog_DisplayForSlot(t *testing.T) {
	catalog := DefaultSlotCatalog()

	t.Run("Catalog label wins over raw start", func(t *testing.T) {
		start := time.Date(2025, 12, 24, 10, 0, 0, 0, time.UTC)
		assert.Equal(t, "上午 10:00 - 12:00", catalog.DisplayForSlot("52229", start))
	})

	t.Run("Unknown id with start renders raw time", func(t *testing.T) {
		start := time.Date(2025, 12, 24, 9, 30, 0, 0, time.UTC)
		assert.Equal(t, "12/24 09:30 (raw time)", catalog.DisplayForSlot("777", start))
	})

	t.Run("Unknown id without start returns sentinel", func(t *testing.T) {
		assert.Equal(t, constvars.SentinelSlotUnspecified, catalog.DisplayForSlot("777", time.Time{}))
	})
}
