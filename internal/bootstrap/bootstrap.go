package bootstrap

import (
	"fmt"
	"math/rand"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	archiveinadapter "studylog/internal/modules/archive/adapter/in"
	archiveoutadapter "studylog/internal/modules/archive/adapter/out"
	archiveservice "studylog/internal/modules/archive/service"
	archiveusecase "studylog/internal/modules/archive/usecase"
	insightinadapter "studylog/internal/modules/insight/adapter/in"
	insightservice "studylog/internal/modules/insight/service"
	insightusecase "studylog/internal/modules/insight/usecase"
	journalinadapter "studylog/internal/modules/journal/adapter/in"
	journaloutadapter "studylog/internal/modules/journal/adapter/out"
	journaldomain "studylog/internal/modules/journal/domain"
	journalservice "studylog/internal/modules/journal/service"
	journalusecase "studylog/internal/modules/journal/usecase"
	plannerinadapter "studylog/internal/modules/planner/adapter/in"
	planneroutadapter "studylog/internal/modules/planner/adapter/out"
	plannerservice "studylog/internal/modules/planner/service"
	plannerusecase "studylog/internal/modules/planner/usecase"
	"studylog/internal/platform/clock"
	"studylog/internal/platform/config"
	"studylog/internal/platform/dates"
	"studylog/internal/platform/id"
	"studylog/internal/platform/logger"
	uiapp "studylog/internal/ui/app"
)

type App struct {
	JournalCLI journalinadapter.CLIHandler
	InsightCLI insightinadapter.CLIHandler
	PlannerCLI plannerinadapter.CLIHandler
	ArchiveCLI archiveinadapter.CLIHandler
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.RandomHex{}
	log := logger.New(os.Stderr)

	// First run against a data dir: pin the start date so progress and
	// consistency keep a fixed origin across invocations.
	if cfg.StartDate == "" {
		cfg.StartDate = dates.DayKey(clk.Now())
		if err := config.Save(cfg); err != nil {
			log.Warn("pin start date", "error", err)
		}
	}

	entryStore := journaloutadapter.NewFileEntryStore(cfg.DataPath)
	entryProjector, err := journaloutadapter.NewSQLiteEntryProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new entry projector: %w", err)
	}
	categories := journaldomain.Categories{Subtests: cfg.Subtests, Materials: cfg.MaterialTypes}
	journalUC := journalusecase.NewInteractor(
		journalservice.NewJournalService(clk, ids, entryStore, entryProjector, categories, log),
	)

	insightUC := insightusecase.NewInteractor(
		insightservice.NewInsightService(clk, insightservice.Settings{
			StartDate:   cfg.StartDate,
			TargetDate:  cfg.TargetDate,
			Subtests:    cfg.Subtests,
			Materials:   cfg.MaterialTypes,
			ScoreMarker: cfg.ScoreMarker,
		}),
		journalUC,
	)

	plannerUC := plannerusecase.NewInteractor(
		plannerservice.NewPlanService(cfg.Subtests, cfg.MaterialRotation, planneroutadapter.NewFilePlanStore(cfg.DataPath)),
		journalUC,
		clk,
	)

	archiveUC := archiveusecase.NewInteractor(
		archiveservice.NewArchiveService(
			archiveoutadapter.NewMarkdownNotesStore(cfg.DataPath),
			rand.New(rand.NewSource(clk.Now().UnixNano())),
			log,
		),
		journalUC,
		plannerUC,
	)

	return &App{
		JournalCLI: journalinadapter.NewCLIHandler(journalUC),
		InsightCLI: insightinadapter.NewCLIHandler(insightUC),
		PlannerCLI: plannerinadapter.NewCLIHandler(plannerUC),
		ArchiveCLI: archiveinadapter.NewCLIHandler(archiveUC),
	}, nil
}

func RunTUI(cfg config.Config, app *App) error {
	model := uiapp.NewModel(cfg.DataPath, app.JournalCLI, app.InsightCLI, app.PlannerCLI, app.ArchiveCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
