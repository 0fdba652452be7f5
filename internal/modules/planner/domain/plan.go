package domain

// Slot is one day of the weekly rotation. Slots have no identity; a
// regenerated plan replaces the previous one wholesale.
type Slot struct {
	DayIndex     int    `json:"dayIndex"`
	Subtest      string `json:"subtest"`
	MaterialType string `json:"materialType"`
	Suggestion   string `json:"suggestion"`
}

// DefaultSuggestion is the fixed guidance attached to every slot.
const DefaultSuggestion = "Focus for 45-60 minutes, write down 3 key takeaways"

// Generate builds the deterministic 7-slot rotation: one slot per
// configured subject in configured order, cycling through the
// material rotation. Same inputs always yield the same plan.
func Generate(subjects, materialRotation []string) []Slot {
	if len(subjects) == 0 || len(materialRotation) == 0 {
		return nil
	}
	plan := make([]Slot, 0, len(subjects))
	for i, subject := range subjects {
		plan = append(plan, Slot{
			DayIndex:     i,
			Subtest:      subject,
			MaterialType: materialRotation[i%len(materialRotation)],
			Suggestion:   DefaultSuggestion,
		})
	}
	return plan
}
