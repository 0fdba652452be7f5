package dto

type NotesOutput struct {
	Motivation string
	Reasons    string
}

type ImportOutput struct {
	Entries       int
	ReplacedNotes bool
	ReplacedPlan  bool
}
