package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"studylog/internal/bootstrap"
	journaldto "studylog/internal/modules/journal/dto"
	"studylog/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataPath string

	root := &cobra.Command{
		Use:           "studylog",
		Short:         "Personal study log and exam countdown tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataPath, "data", ".", "data directory path")

	root.AddCommand(newTUICmd(&dataPath))
	root.AddCommand(newAddCmd(&dataPath))
	root.AddCommand(newEditCmd(&dataPath))
	root.AddCommand(newDeleteCmd(&dataPath))
	root.AddCommand(newListCmd(&dataPath))
	root.AddCommand(newStatsCmd(&dataPath))
	root.AddCommand(newPlanCmd(&dataPath))
	root.AddCommand(newNoteCmd(&dataPath))
	root.AddCommand(newExportCmd(&dataPath))
	root.AddCommand(newImportCmd(&dataPath))
	root.AddCommand(newResetCmd(&dataPath))
	root.AddCommand(newReindexCmd(&dataPath))
	return root
}

func loadApp(dataPath string) (*bootstrap.App, config.Config, error) {
	cfg, err := config.Load(dataPath)
	if err != nil {
		return nil, config.Config{}, err
	}
	app, err := bootstrap.New(cfg)
	return app, cfg, err
}

func newTUICmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run studylog terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, cfg, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(cfg, app)
		},
	}
}

func printEntry(w io.Writer, e journaldto.Entry) {
	score := "-"
	if e.Score != nil {
		score = fmt.Sprintf("%.1f", *e.Score)
	}
	_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%dmin\tscore=%s\n", e.ID, e.Date, e.Subtest, e.MaterialType, e.DurationMinutes, score)
}

func newAddCmd(dataPath *string) *cobra.Command {
	var date, subtest, material, topic, resourceURL, notes string
	var duration int
	var score float64

	add := &cobra.Command{
		Use:   "add --subtest <name> --material <name>",
		Short: "Add a study log entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(subtest) == "" || strings.TrimSpace(material) == "" {
				return fmt.Errorf("--subtest and --material are required")
			}
			app, _, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			input := journaldto.AddInput{
				Date:            date,
				Subtest:         subtest,
				MaterialType:    material,
				Topic:           topic,
				DurationMinutes: duration,
				ResourceURL:     resourceURL,
				Notes:           notes,
			}
			if cmd.Flags().Changed("score") {
				input.Score = &score
			}
			out, err := app.JournalCLI.Add(context.Background(), input)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s on %s\n", out.ID, out.Date)
			return nil
		},
	}
	add.Flags().StringVar(&date, "date", "", "entry date YYYY-MM-DD (defaults to today)")
	add.Flags().StringVar(&subtest, "subtest", "", "subtest category")
	add.Flags().StringVar(&material, "material", "", "material type")
	add.Flags().StringVar(&topic, "topic", "", "topic studied")
	add.Flags().IntVar(&duration, "duration", 0, "duration in minutes")
	add.Flags().Float64Var(&score, "score", 0, "practice score (omit to record none)")
	add.Flags().StringVar(&resourceURL, "url", "", "resource url")
	add.Flags().StringVar(&notes, "notes", "", "free-form notes")
	return add
}

func newEditCmd(dataPath *string) *cobra.Command {
	var date, subtest, material, topic, resourceURL, notes string
	var duration int
	var score float64
	var clearScore bool

	edit := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, _, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			patch := journaldto.PatchInput{ClearScore: clearScore}
			if cmd.Flags().Changed("date") {
				patch.Date = &date
			}
			if cmd.Flags().Changed("subtest") {
				patch.Subtest = &subtest
			}
			if cmd.Flags().Changed("material") {
				patch.MaterialType = &material
			}
			if cmd.Flags().Changed("topic") {
				patch.Topic = &topic
			}
			if cmd.Flags().Changed("duration") {
				patch.DurationMinutes = &duration
			}
			if cmd.Flags().Changed("score") {
				patch.Score = &score
			}
			if cmd.Flags().Changed("url") {
				patch.ResourceURL = &resourceURL
			}
			if cmd.Flags().Changed("notes") {
				patch.Notes = &notes
			}
			out, err := app.JournalCLI.Update(context.Background(), args[0], patch)
			if err != nil {
				return err
			}
			if !out.Found {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "no entry with id %s\n", args[0])
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", out.Entry.ID)
			return nil
		},
	}
	edit.Flags().StringVar(&date, "date", "", "entry date YYYY-MM-DD")
	edit.Flags().StringVar(&subtest, "subtest", "", "subtest category")
	edit.Flags().StringVar(&material, "material", "", "material type")
	edit.Flags().StringVar(&topic, "topic", "", "topic studied")
	edit.Flags().IntVar(&duration, "duration", 0, "duration in minutes")
	edit.Flags().Float64Var(&score, "score", 0, "practice score")
	edit.Flags().BoolVar(&clearScore, "clear-score", false, "remove the recorded score")
	edit.Flags().StringVar(&resourceURL, "url", "", "resource url")
	edit.Flags().StringVar(&notes, "notes", "", "free-form notes")
	return edit
}

func newDeleteCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, _, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.JournalCLI.Remove(context.Background(), args[0])
			if err != nil {
				return err
			}
			if !out.Found {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "no entry with id %s\n", args[0])
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}

func newListCmd(dataPath *string) *cobra.Command {
	var query, subtest, material, from, to string
	var recent int

	list := &cobra.Command{
		Use:   "list",
		Short: "List entries, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			if recent > 0 {
				entries, err := app.JournalCLI.Recent(context.Background(), recent)
				if err != nil {
					return err
				}
				if len(entries) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no entries")
					return nil
				}
				for _, e := range entries {
					printEntry(cmd.OutOrStdout(), e)
				}
				return nil
			}
			entries, err := app.JournalCLI.List(context.Background(), journaldto.ListInput{
				Query:    query,
				Subtest:  subtest,
				Material: material,
				From:     from,
				To:       to,
			})
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no entries")
				return nil
			}
			for _, e := range entries {
				printEntry(cmd.OutOrStdout(), e)
			}
			return nil
		},
	}
	list.Flags().StringVar(&query, "query", "", "substring match over topic, notes, and url")
	list.Flags().StringVar(&subtest, "subtest", "", "filter by subtest (default all)")
	list.Flags().StringVar(&material, "material", "", "filter by material type (default all)")
	list.Flags().StringVar(&from, "from", "", "inclusive start date YYYY-MM-DD")
	list.Flags().StringVar(&to, "to", "", "inclusive end date YYYY-MM-DD")
	list.Flags().IntVar(&recent, "recent", 0, "read the newest N entries from the index instead")
	return list
}

func newStatsCmd(dataPath *string) *cobra.Command {
	stats := &cobra.Command{Use: "stats", Short: "Derived study statistics"}

	stats.AddCommand(&cobra.Command{
		Use:   "overview",
		Short: "Countdown, progress, streak, and consistency",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.InsightCLI.Overview(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "target: %s (%d days left)\n", out.TargetDate, out.DaysLeft)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "elapsed: %d/%d days (%d%%)\n", out.ElapsedDays, out.TotalSpanDays, out.ProgressPct)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "streak: %d days\tconsistency: %d%%\n", out.StreakDays, out.ConsistencyPct)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged: %d entries, %d active days, %d minutes total\n", out.EntryCount, out.ActiveDays, out.TotalMinutes)
			return nil
		},
	})

	stats.AddCommand(&cobra.Command{
		Use:   "totals",
		Short: "Minutes per subtest and material type",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.InsightCLI.Totals(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "by subtest:")
			for _, t := range out.BySubtest {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %s\t%dmin\n", t.Name, t.Minutes)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "by material:")
			for _, t := range out.ByMaterial {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %s\t%dmin\n", t.Name, t.Minutes)
			}
			return nil
		},
	})

	stats.AddCommand(&cobra.Command{
		Use:   "daily",
		Short: "Minutes per active day, oldest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			points, err := app.InsightCLI.DailyTrend(context.Background())
			if err != nil {
				return err
			}
			if len(points) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no activity yet")
				return nil
			}
			for _, p := range points {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%dmin\n", p.Date, p.Minutes)
			}
			return nil
		},
	})

	stats.AddCommand(&cobra.Command{
		Use:   "scores",
		Short: "Practice-test score trend, oldest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			points, err := app.InsightCLI.ScoreTrend(context.Background())
			if err != nil {
				return err
			}
			if len(points) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no scored practice tests yet")
				return nil
			}
			for _, p := range points {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.1f\n", p.Date, p.Score)
			}
			return nil
		},
	})

	return stats
}

func newPlanCmd(dataPath *string) *cobra.Command {
	plan := &cobra.Command{Use: "plan", Short: "Weekly study plan"}

	plan.AddCommand(&cobra.Command{
		Use:   "generate",
		Short: "Generate a fresh weekly plan from configured subtests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			slots, err := app.PlannerCLI.Generate(context.Background())
			if err != nil {
				return err
			}
			for _, s := range slots {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "day %d\t%s\t%s\n", s.DayIndex+1, s.Subtest, s.MaterialType)
			}
			return nil
		},
	})

	plan.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the stored weekly plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			slots, err := app.PlannerCLI.Get(context.Background())
			if err != nil {
				return err
			}
			if len(slots) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no plan generated")
				return nil
			}
			for _, s := range slots {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "day %d\t%s\t%s\t%s\n", s.DayIndex+1, s.Subtest, s.MaterialType, s.Suggestion)
			}
			return nil
		},
	})

	var day int
	commit := &cobra.Command{
		Use:   "commit --day <1-7>",
		Short: "Log today's entry from a plan slot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if day < 1 || day > 7 {
				return fmt.Errorf("--day must be between 1 and 7")
			}
			app, _, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.PlannerCLI.CommitToday(context.Background(), day-1)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged %s for %s\n", out.EntryID, out.Date)
			return nil
		},
	}
	commit.Flags().IntVar(&day, "day", 0, "plan day to commit (1-7)")
	plan.AddCommand(commit)

	return plan
}

func newNoteCmd(dataPath *string) *cobra.Command {
	note := &cobra.Command{Use: "note", Short: "Motivation and reasons notes"}

	note.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show stored notes and a motivation quote",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.ArchiveCLI.Notes(context.Background())
			if err != nil {
				return err
			}
			if strings.TrimSpace(out.Motivation) != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "motivation:\n%s\n", out.Motivation)
			}
			if strings.TrimSpace(out.Reasons) != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "reasons:\n%s\n", out.Reasons)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "quote: %s\n", app.ArchiveCLI.Quote())
			return nil
		},
	})

	var motivationText string
	motivation := &cobra.Command{
		Use:   "motivation --text <text>",
		Short: "Set the motivation note",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			if err := app.ArchiveCLI.SetMotivation(context.Background(), motivationText); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "motivation saved")
			return nil
		},
	}
	motivation.Flags().StringVar(&motivationText, "text", "", "motivation text")
	note.AddCommand(motivation)

	var reasonsText string
	reasons := &cobra.Command{
		Use:   "reasons --text <text>",
		Short: "Set the reasons note",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			if err := app.ArchiveCLI.SetReasons(context.Background(), reasonsText); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "reasons saved")
			return nil
		},
	}
	reasons.Flags().StringVar(&reasonsText, "text", "", "reasons text")
	note.AddCommand(reasons)

	return note
}

func newExportCmd(dataPath *string) *cobra.Command {
	var outPath string
	export := &cobra.Command{
		Use:   "export",
		Short: "Export the full data set as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			raw, err := app.ArchiveCLI.Export(context.Background())
			if err != nil {
				return err
			}
			if outPath == "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(raw))
				return nil
			}
			if err := os.WriteFile(outPath, raw, 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", outPath)
			return nil
		},
	}
	export.Flags().StringVar(&outPath, "out", "", "file to write (defaults to stdout)")
	return export
}

func newImportCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a previously exported JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read import file: %w", err)
			}
			app, _, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.ArchiveCLI.Import(context.Background(), raw)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %d entries (notes replaced: %t, plan replaced: %t)\n", out.Entries, out.ReplacedNotes, out.ReplacedPlan)
			return nil
		},
	}
}

func newResetCmd(dataPath *string) *cobra.Command {
	var confirmed bool
	reset := &cobra.Command{
		Use:   "reset",
		Short: "Delete all entries, notes, and the weekly plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !confirmed {
				return fmt.Errorf("pass --yes to confirm wiping all data")
			}
			app, _, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			if err := app.ArchiveCLI.Reset(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "all data cleared")
			return nil
		},
	}
	reset.Flags().BoolVar(&confirmed, "yes", false, "confirm the wipe")
	return reset
}

func newReindexCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the SQLite index from the entries file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			if err := app.JournalCLI.Reindex(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "reindex completed")
			return nil
		},
	}
}
