package models

import (
	"careslot-service/internal/pkg/constvars"
	"encoding/json"
	"time"
)

// SlotCatalogEntry labels one bookable slot id with human-readable text.
type SlotCatalogEntry struct {
	ID      string `json:"id"`
	Display string `json:"display"`
	Start   string `json:"start"`
}

// SlotCatalog is the id -> label/start lookup table shared by the slot
// listing, the booking coordinator and the appointment summary mapper.
// It is plain configuration data: built once at startup and never mutated,
// so it is safe to share across requests.
type SlotCatalog struct {
	entries map[string]SlotCatalogEntry
	order   []string
}

func NewSlotCatalog(entries []SlotCatalogEntry) *SlotCatalog {
	catalog := &SlotCatalog{
		entries: make(map[string]SlotCatalogEntry, len(entries)),
		order:   make([]string, 0, len(entries)),
	}
	for _, entry := range entries {
		if entry.ID == "" {
			continue
		}
		if _, exists := catalog.entries[entry.ID]; !exists {
			catalog.order = append(catalog.order, entry.ID)
		}
		catalog.entries[entry.ID] = entry
	}
	return catalog
}

// NewSlotCatalogFromJSON parses a JSON array of entries. An empty or
// unparseable payload yields the default catalog rather than an error so a
// bad env value cannot take the slot listing down.
func NewSlotCatalogFromJSON(raw string) *SlotCatalog {
	if raw == "" {
		return DefaultSlotCatalog()
	}
	var entries []SlotCatalogEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil || len(entries) == 0 {
		return DefaultSlotCatalog()
	}
	return NewSlotCatalog(entries)
}

// DefaultSlotCatalog returns the two fixed event slots.
func DefaultSlotCatalog() *SlotCatalog {
	return NewSlotCatalog([]SlotCatalogEntry{
		{ID: "52229", Display: "上午 10:00 - 12:00", Start: "2025-12-24T10:00:00+08:00"},
		{ID: "52223", Display: "下午 02:00 - 04:00", Start: "2025-12-24T14:00:00+08:00"},
	})
}

// Entries returns the catalog entries in insertion order.
func (c *SlotCatalog) Entries() []SlotCatalogEntry {
	entries := make([]SlotCatalogEntry, 0, len(c.order))
	for _, id := range c.order {
		entries = append(entries, c.entries[id])
	}
	return entries
}

// DisplayFor resolves the label for a slot id, falling back to the
// unspecified sentinel. Never returns an empty string.
func (c *SlotCatalog) DisplayFor(slotID string) string {
	if entry, ok := c.entries[slotID]; ok && entry.Display != "" {
		return entry.Display
	}
	return constvars.SentinelSlotUnspecified
}

// DisplayForSlot resolves the label for a slot id, preferring the catalog
// label, then a fixed-format rendering of the raw start time, then the
// unspecified sentinel. The raw rendering is marked as such so operators can
// tell catalog labels from derived ones.
func (c *SlotCatalog) DisplayForSlot(slotID string, start time.Time) string {
	if entry, ok := c.entries[slotID]; ok && entry.Display != "" {
		return entry.Display
	}
	if !start.IsZero() {
		return start.Format(constvars.SlotRawTimeFormat) + constvars.SlotRawTimeSuffix
	}
	return constvars.SentinelSlotUnspecified
}

// Contains reports whether the catalog labels the given slot id.
func (c *SlotCatalog) Contains(slotID string) bool {
	_, ok := c.entries[slotID]
	return ok
}
