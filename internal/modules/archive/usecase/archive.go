package usecase

import (
	"context"

	"studylog/internal/modules/archive/domain"
	"studylog/internal/modules/archive/dto"
	archivein "studylog/internal/modules/archive/port/in"
	"studylog/internal/modules/archive/service"
	journaldto "studylog/internal/modules/journal/dto"
	journalin "studylog/internal/modules/journal/port/in"
	plannerdto "studylog/internal/modules/planner/dto"
	plannerin "studylog/internal/modules/planner/port/in"
)

type Interactor struct {
	svc     *service.ArchiveService
	journal journalin.Usecase
	planner plannerin.Usecase
}

func NewInteractor(svc *service.ArchiveService, journal journalin.Usecase, planner plannerin.Usecase) archivein.Usecase {
	return &Interactor{svc: svc, journal: journal, planner: planner}
}

// Export serializes the full in-memory state as the versioned
// document.
func (i *Interactor) Export(ctx context.Context) ([]byte, error) {
	entries, err := i.journal.List(ctx, journaldto.ListInput{})
	if err != nil {
		return nil, err
	}
	plan, err := i.planner.Get(ctx)
	if err != nil {
		return nil, err
	}
	notes := i.svc.Notes(ctx)

	records := make([]domain.EntryRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, entryToRecord(e))
	}
	slots := make([]domain.SlotRecord, 0, len(plan))
	for _, s := range plan {
		slots = append(slots, domain.SlotRecord{DayIndex: s.DayIndex, Subtest: s.Subtest, MaterialType: s.MaterialType, Suggestion: s.Suggestion})
	}
	return domain.Render(records, notes.Reasons, notes.Motivation, slots)
}

// Import validates the document first; nothing is mutated when the
// payload is rejected. Absent optional fields keep their current
// values.
func (i *Interactor) Import(ctx context.Context, raw []byte) (dto.ImportOutput, error) {
	doc, err := domain.Parse(raw)
	if err != nil {
		return dto.ImportOutput{}, err
	}

	entries := make([]journaldto.Entry, 0, len(doc.Entries))
	for _, r := range doc.Entries {
		entries = append(entries, recordToEntry(r))
	}
	if err := i.journal.ReplaceAll(ctx, entries); err != nil {
		return dto.ImportOutput{}, err
	}

	out := dto.ImportOutput{Entries: len(entries)}
	if doc.Reasons != nil || doc.Motivation != nil {
		notes := i.svc.Notes(ctx)
		if doc.Reasons != nil {
			notes.Reasons = *doc.Reasons
		}
		if doc.Motivation != nil {
			notes.Motivation = *doc.Motivation
		}
		if err := i.svc.SaveNotes(ctx, notes); err != nil {
			return dto.ImportOutput{}, err
		}
		out.ReplacedNotes = true
	}
	if doc.WeeklyPlan != nil {
		plan := make([]plannerdto.Slot, 0, len(doc.WeeklyPlan))
		for _, s := range doc.WeeklyPlan {
			plan = append(plan, plannerdto.Slot{DayIndex: s.DayIndex, Subtest: s.Subtest, MaterialType: s.MaterialType, Suggestion: s.Suggestion})
		}
		if err := i.planner.Replace(ctx, plan); err != nil {
			return dto.ImportOutput{}, err
		}
		out.ReplacedPlan = true
	}
	return out, nil
}

// Reset clears entries, both notes, and the weekly plan.
func (i *Interactor) Reset(ctx context.Context) error {
	if err := i.journal.ReplaceAll(ctx, nil); err != nil {
		return err
	}
	if err := i.svc.ClearNotes(ctx); err != nil {
		return err
	}
	return i.planner.Clear(ctx)
}

func (i *Interactor) Notes(ctx context.Context) (dto.NotesOutput, error) {
	notes := i.svc.Notes(ctx)
	return dto.NotesOutput{Motivation: notes.Motivation, Reasons: notes.Reasons}, nil
}

func (i *Interactor) SetMotivation(ctx context.Context, text string) error {
	notes := i.svc.Notes(ctx)
	notes.Motivation = text
	return i.svc.SaveNotes(ctx, notes)
}

func (i *Interactor) SetReasons(ctx context.Context, text string) error {
	notes := i.svc.Notes(ctx)
	notes.Reasons = text
	return i.svc.SaveNotes(ctx, notes)
}

func (i *Interactor) Quote() string {
	return i.svc.Quote()
}

func entryToRecord(e journaldto.Entry) domain.EntryRecord {
	return domain.EntryRecord{
		ID:              e.ID,
		Date:            e.Date,
		Subtest:         e.Subtest,
		MaterialType:    e.MaterialType,
		Topic:           e.Topic,
		DurationMinutes: e.DurationMinutes,
		Score:           e.Score,
		ResourceURL:     e.ResourceURL,
		Notes:           e.Notes,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func recordToEntry(r domain.EntryRecord) journaldto.Entry {
	return journaldto.Entry{
		ID:              r.ID,
		Date:            r.Date,
		Subtest:         r.Subtest,
		MaterialType:    r.MaterialType,
		Topic:           r.Topic,
		DurationMinutes: r.DurationMinutes,
		Score:           r.Score,
		ResourceURL:     r.ResourceURL,
		Notes:           r.Notes,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}
