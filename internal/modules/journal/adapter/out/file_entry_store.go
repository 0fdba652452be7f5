package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"studylog/internal/modules/journal/domain"
	journalout "studylog/internal/modules/journal/port/out"
)

// FileEntryStore keeps the full log collection as one JSON file under
// the data dir. An absent file is an empty log, not an error.
type FileEntryStore struct {
	path string
}

func NewFileEntryStore(dataPath string) journalout.EntryStore {
	return &FileEntryStore{path: filepath.Join(dataPath, ".studylog", "entries.json")}
}

func (s *FileEntryStore) Load(_ context.Context) ([]domain.Entry, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read entries: %w", err)
	}
	var entries []domain.Entry
	if err := json.Unmarshal(payload, &entries); err != nil {
		return nil, fmt.Errorf("decode entries: %w", err)
	}
	return entries, nil
}

func (s *FileEntryStore) Save(_ context.Context, entries []domain.Entry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if entries == nil {
		entries = []domain.Entry{}
	}
	payload, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal entries: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write entries: %w", err)
	}
	return nil
}
