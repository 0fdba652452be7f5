package domain

import (
	"encoding/json"
	"fmt"

	apperrors "studylog/internal/platform/errors"
)

// DocumentVersion is the export document schema version.
const DocumentVersion = 2

// EntryRecord is the wire shape of one log entry inside the export
// document. Score must stay a pointer so an absent score survives a
// round-trip distinctly from a zero score.
type EntryRecord struct {
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

// SlotRecord is the wire shape of one weekly plan slot.
type SlotRecord struct {
	DayIndex     int    `json:"dayIndex"`
	Subtest      string `json:"subtest"`
	MaterialType string `json:"materialType"`
	Suggestion   string `json:"suggestion"`
}

// Document is a parsed import payload. Nil pointer/slice fields were
// absent from the payload and must preserve the current value on
// import; entries are always present in a valid document.
type Document struct {
	V          int
	Entries    []EntryRecord
	Reasons    *string
	Motivation *string
	WeeklyPlan []SlotRecord
}

type exportDocument struct {
	V          int           `json:"v"`
	Entries    []EntryRecord `json:"entries"`
	Reasons    string        `json:"reasons"`
	Motivation string        `json:"motivation"`
	WeeklyPlan []SlotRecord  `json:"weeklyPlan"`
}

type rawDocument struct {
	V          int             `json:"v"`
	Entries    json.RawMessage `json:"entries"`
	Reasons    *string         `json:"reasons"`
	Motivation *string         `json:"motivation"`
	WeeklyPlan json.RawMessage `json:"weeklyPlan"`
}

// Render serializes the full state as the versioned export document.
// Output is deterministic for a given state.
func Render(entries []EntryRecord, reasons, motivation string, plan []SlotRecord) ([]byte, error) {
	if entries == nil {
		entries = []EntryRecord{}
	}
	if plan == nil {
		plan = []SlotRecord{}
	}
	payload, err := json.MarshalIndent(exportDocument{
		V:          DocumentVersion,
		Entries:    entries,
		Reasons:    reasons,
		Motivation: motivation,
		WeeklyPlan: plan,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export document: %w", err)
	}
	return payload, nil
}

// Parse validates an import payload against the document contract.
// The only hard requirement is an entries array; everything else is
// optional and reported as absent via nil.
func Parse(raw []byte) (Document, error) {
	var doc rawDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: not a JSON document: %v", apperrors.ErrInvalidDocument, err)
	}
	if doc.Entries == nil || string(doc.Entries) == "null" {
		return Document{}, fmt.Errorf("%w: missing entries", apperrors.ErrInvalidDocument)
	}
	var entries []EntryRecord
	if err := json.Unmarshal(doc.Entries, &entries); err != nil {
		return Document{}, fmt.Errorf("%w: entries is not an array: %v", apperrors.ErrInvalidDocument, err)
	}
	if entries == nil {
		entries = []EntryRecord{}
	}
	out := Document{
		V:          doc.V,
		Entries:    entries,
		Reasons:    doc.Reasons,
		Motivation: doc.Motivation,
	}
	if doc.WeeklyPlan != nil {
		var plan []SlotRecord
		if err := json.Unmarshal(doc.WeeklyPlan, &plan); err != nil {
			return Document{}, fmt.Errorf("%w: weeklyPlan is not an array: %v", apperrors.ErrInvalidDocument, err)
		}
		if plan == nil {
			plan = []SlotRecord{}
		}
		out.WeeklyPlan = plan
	}
	return out, nil
}
