package domain

import (
	"fmt"
	"slices"
	"strings"

	"studylog/internal/platform/dates"
)

const SchemaVersion = 2

// Entry is one logged unit of study activity. JSON tags match the
// versioned export document, so an exported entry round-trips
// byte-for-byte through the archive codec. Score is a pointer because
// "no score" is distinct from a score of 0.
type Entry struct {
	ID              string   `json:"id"`
	Date            string   `json:"date"`
	Subtest         string   `json:"subtest"`
	MaterialType    string   `json:"materialType"`
	Topic           string   `json:"topic"`
	DurationMinutes int      `json:"durationMinutes"`
	Score           *float64 `json:"score,omitempty"`
	ResourceURL     string   `json:"resourceUrl,omitempty"`
	Notes           string   `json:"notes,omitempty"`
	CreatedAt       int64    `json:"createdAt"`
	UpdatedAt       int64    `json:"updatedAt"`
}

// Categories is the configured subject and material vocabulary every
// stored entry must belong to.
type Categories struct {
	Subtests  []string
	Materials []string
}

func (c Categories) Validate(e Entry) error {
	if strings.TrimSpace(e.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if _, err := dates.ParseDayKey(e.Date); err != nil {
		return fmt.Errorf("invalid date %q: %w", e.Date, err)
	}
	if !slices.Contains(c.Subtests, e.Subtest) {
		return fmt.Errorf("unknown subtest %q", e.Subtest)
	}
	if !slices.Contains(c.Materials, e.MaterialType) {
		return fmt.Errorf("unknown material type %q", e.MaterialType)
	}
	if e.DurationMinutes < 0 {
		return fmt.Errorf("duration must be non-negative, got %d", e.DurationMinutes)
	}
	return nil
}

// Patch carries the fields an edit may change. Nil means "leave as
// is"; ClearScore removes an existing score. ID and CreatedAt are
// identity and can never be patched.
type Patch struct {
	Date            *string
	Subtest         *string
	MaterialType    *string
	Topic           *string
	DurationMinutes *int
	Score           *float64
	ClearScore      bool
	ResourceURL     *string
	Notes           *string
}

// Apply merges the patch into e and returns the result.
func (p Patch) Apply(e Entry) Entry {
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Subtest != nil {
		e.Subtest = *p.Subtest
	}
	if p.MaterialType != nil {
		e.MaterialType = *p.MaterialType
	}
	if p.Topic != nil {
		e.Topic = *p.Topic
	}
	if p.DurationMinutes != nil {
		e.DurationMinutes = *p.DurationMinutes
	}
	if p.ClearScore {
		e.Score = nil
	} else if p.Score != nil {
		score := *p.Score
		e.Score = &score
	}
	if p.ResourceURL != nil {
		e.ResourceURL = *p.ResourceURL
	}
	if p.Notes != nil {
		e.Notes = *p.Notes
	}
	return e
}
