package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	archiveout "studylog/internal/modules/archive/port/out"
	"studylog/internal/platform/markdown"
)

const notesSchemaVersion = 2

// MarkdownNotesStore keeps the two free-text fields as one markdown
// note: the reasons line lives in the frontmatter, the motivation
// text is the body, so the file stays pleasant to edit by hand.
type MarkdownNotesStore struct {
	path string
}

func NewMarkdownNotesStore(dataPath string) archiveout.NotesStore {
	return &MarkdownNotesStore{path: filepath.Join(dataPath, "notes.md")}
}

func (s *MarkdownNotesStore) Load(_ context.Context) (archiveout.Notes, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return archiveout.Notes{}, nil
		}
		return archiveout.Notes{}, fmt.Errorf("read notes: %w", err)
	}
	meta, body, err := markdown.SplitFrontmatter(string(payload))
	if err != nil {
		return archiveout.Notes{}, fmt.Errorf("parse notes: %w", err)
	}
	notes := archiveout.Notes{Motivation: trimSingleNewline(body)}
	if reasons, ok := meta["reasons"].(string); ok {
		notes.Reasons = reasons
	}
	return notes, nil
}

func (s *MarkdownNotesStore) Save(_ context.Context, notes archiveout.Notes) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	meta := map[string]any{
		"schema_version": notesSchemaVersion,
		"reasons":        notes.Reasons,
	}
	rendered, err := markdown.RenderFrontmatter(meta, notes.Motivation+"\n")
	if err != nil {
		return fmt.Errorf("render notes: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("write notes: %w", err)
	}
	return nil
}

func (s *MarkdownNotesStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("clear notes: %w", err)
	}
	return nil
}

func trimSingleNewline(body string) string {
	if len(body) > 0 && body[0] == '\n' {
		body = body[1:]
	}
	if len(body) > 0 && body[len(body)-1] == '\n' {
		body = body[:len(body)-1]
	}
	return body
}
