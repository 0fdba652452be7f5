package dto

type Slot struct {
	DayIndex     int
	Subtest      string
	MaterialType string
	Suggestion   string
}

type CommitOutput struct {
	EntryID string
	Date    string
}
