package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults mirror the tracker's original exam setup. Every value can
// be overridden per data dir via config.yaml.
var (
	DefaultSubtests = []string{
		"Penalaran Umum",
		"Pengetahuan & Pemahaman Umum",
		"Pemahaman Membaca & Menulis",
		"Pengetahuan Kuantitatif",
		"Literasi Bahasa Indonesia",
		"Literasi Bahasa Inggris",
		"Penalaran Matematika",
	}
	DefaultMaterialTypes = []string{
		"Latihan Soal",
		"Materi YouTube",
		"Baca/Rangkuman",
		"Try Out/Mini Tryout",
		"Pembahasan Soal",
		"Kelas/Video Course",
		"Lainnya",
	}
	DefaultMaterialRotation = []string{
		"Latihan Soal",
		"Pembahasan Soal",
		"Materi YouTube",
		"Baca/Rangkuman",
		"Try Out/Mini Tryout",
	}
)

const (
	DefaultTargetDate = "2026-04-24"
	// DefaultScoreMarker selects the practice-test material categories
	// whose scores feed the score trend.
	DefaultScoreMarker = "try"
)

type Config struct {
	DataPath string `yaml:"-"`
	DBPath   string `yaml:"-"`

	StartDate        string   `yaml:"start_date"`
	TargetDate       string   `yaml:"target_date"`
	Subtests         []string `yaml:"subtests"`
	MaterialTypes    []string `yaml:"material_types"`
	MaterialRotation []string `yaml:"material_rotation"`
	ScoreMarker      string   `yaml:"score_marker"`
}

// Load builds the config for a data dir, merging config.yaml over the
// defaults when the file exists. StartDate may legitimately stay empty
// here; the bootstrap pins it to today on first use.
func Load(dataPath string) (Config, error) {
	if dataPath == "" {
		return Config{}, fmt.Errorf("data path is required")
	}
	cfg := Config{
		DataPath:         dataPath,
		DBPath:           filepath.Join(dataPath, ".studylog", "index.db"),
		TargetDate:       DefaultTargetDate,
		Subtests:         DefaultSubtests,
		MaterialTypes:    DefaultMaterialTypes,
		MaterialRotation: DefaultMaterialRotation,
		ScoreMarker:      DefaultScoreMarker,
	}
	raw, err := os.ReadFile(filepath.Join(dataPath, "config.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if len(cfg.Subtests) == 0 {
		cfg.Subtests = DefaultSubtests
	}
	if len(cfg.MaterialTypes) == 0 {
		cfg.MaterialTypes = DefaultMaterialTypes
	}
	if len(cfg.MaterialRotation) == 0 {
		cfg.MaterialRotation = DefaultMaterialRotation
	}
	if cfg.ScoreMarker == "" {
		cfg.ScoreMarker = DefaultScoreMarker
	}
	if cfg.TargetDate == "" {
		cfg.TargetDate = DefaultTargetDate
	}
	return cfg, nil
}

// Save writes the config back to config.yaml. Used to pin the start
// date the first time the tool runs.
func Save(cfg Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(cfg.DataPath, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(cfg.DataPath, "config.yaml"), raw, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
