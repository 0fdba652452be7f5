package dto

// Entry is the wire-complete view of a log record. Score stays a
// pointer so "no score" survives every boundary crossing.
type Entry struct {
	ID              string
	Date            string
	Subtest         string
	MaterialType    string
	Topic           string
	DurationMinutes int
	Score           *float64
	ResourceURL     string
	Notes           string
	CreatedAt       int64
	UpdatedAt       int64
}

type AddInput struct {
	Date            string
	Subtest         string
	MaterialType    string
	Topic           string
	DurationMinutes int
	Score           *float64
	ResourceURL     string
	Notes           string
}

type PatchInput struct {
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

type UpdateInput struct {
	ID    string
	Patch PatchInput
}

type UpdateOutput struct {
	Found bool
	Entry Entry
}

type RemoveOutput struct {
	Found bool
}

// ListInput is the caller-owned filter specification. Zero value
// means "everything, newest first".
type ListInput struct {
	Query    string
	Subtest  string
	Material string
	From     string
	To       string
}
