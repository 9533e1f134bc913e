package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"aqualog/internal/bootstrap"
	trackerdto "aqualog/internal/modules/tracker/dto"
	"aqualog/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", "aqualog")
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "aqualog",
		Short:         "Water intake tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data", defaultDataDir(), "data directory")

	root.AddCommand(newDrinkCmd(&dataDir))
	root.AddCommand(newUndoCmd(&dataDir))
	root.AddCommand(newStatusCmd(&dataDir))
	root.AddCommand(newGoalCmd(&dataDir))
	root.AddCommand(newUnitCmd(&dataDir))
	root.AddCommand(newBottleCmd(&dataDir))
	root.AddCommand(newResetCmd(&dataDir))
	root.AddCommand(newArchiveCmd(&dataDir))
	root.AddCommand(newHistoryCmd(&dataDir))
	root.AddCommand(newChartCmd(&dataDir))
	root.AddCommand(newStreakCmd(&dataDir))
	root.AddCommand(newPrefsCmd(&dataDir))
	root.AddCommand(newReindexCmd(&dataDir))
	root.AddCommand(newTUICmd(&dataDir))
	return root
}

func loadApp(ctx context.Context, dataDir string) (*bootstrap.App, error) {
	cfg, err := config.New(dataDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(ctx, cfg)
}

func parseAmount(raw string) (float64, error) {
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", raw)
	}
	return amount, nil
}

func printStatus(cmd *cobra.Command, s trackerdto.StatusOutput) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %g / %g %s (%.0f%%)\n",
		s.DateKey, s.TodayIntake, s.Goal, s.DisplayUnit, s.Progress*100)
	if s.GoalReached {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "goal reached")
	} else {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "remaining: %g %s\n", s.Remaining, s.DisplayUnit)
	}
	if s.Streak > 0 {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "streak: %d\n", s.Streak)
	}
}

func newDrinkCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "drink <amount>",
		Short: "Record an intake amount",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			app, err := loadApp(cmd.Context(), *dataDir)
			if err != nil {
				return err
			}
			out, err := app.TrackerCLI.Drink(cmd.Context(), amount)
			if err != nil {
				return err
			}
			printStatus(cmd, out)
			return nil
		},
	}
}

func newUndoCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "undo",
		Short: "Remove the most recent intake entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.Context(), *dataDir)
			if err != nil {
				return err
			}
			out, err := app.TrackerCLI.Undo(cmd.Context())
			if err != nil {
				return err
			}
			if !out.Undone {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "nothing to undo")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "undid %g, today now %g\n", out.Amount, out.TodayIntake)
			return nil
		},
	}
}

func newStatusCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show today's intake and progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.Context(), *dataDir)
			if err != nil {
				return err
			}
			out, err := app.TrackerCLI.Status(cmd.Context())
			if err != nil {
				return err
			}
			printStatus(cmd, out)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "morning: %g  afternoon: %g  evening: %g\n",
				out.Morning, out.Afternoon, out.Evening)
			return nil
		},
	}
}

func newGoalCmd(dataDir *string) *cobra.Command {
	goal := &cobra.Command{Use: "goal", Short: "Daily goal settings"}

	goal.AddCommand(&cobra.Command{
		Use:   "set <amount>",
		Short: "Set the daily goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			app, err := loadApp(cmd.Context(), *dataDir)
			if err != nil {
				return err
			}
			out, err := app.TrackerCLI.SetGoal(cmd.Context(), amount)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "goal set to %g %s\n", out.Goal, out.DisplayUnit)
			return nil
		},
	})
	goal.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the daily goal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.Context(), *dataDir)
			if err != nil {
				return err
			}
			out, err := app.TrackerCLI.Status(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "goal: %g %s\n", out.Goal, out.DisplayUnit)
			return nil
		},
	})
	return goal
}

func newUnitCmd(dataDir *string) *cobra.Command {
	unit := &cobra.Command{Use: "unit", Short: "Measurement unit settings"}

	unit.AddCommand(&cobra.Command{
		Use:   "set <ml|oz|bottle>",
		Short: "Switch the measurement unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd.Context(), *dataDir)
			if err != nil {
				return err
			}
			out, err := app.TrackerCLI.SetUnit(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "unit set to %s\n", out.DisplayUnit)
			// Stored numbers keep their values across a unit switch.
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "note: existing amounts are not converted")
			return nil
		},
	})
	unit.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the measurement unit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.Context(), *dataDir)
			if err != nil {
				return err
			}
			out, err := app.TrackerCLI.Status(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "unit: %s\n", out.DisplayUnit)
			if out.BottleMode {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "bottle size: %g\n", out.BottleSize)
			}
			return nil
		},
	})
	return unit
}

func newBottleCmd(dataDir *string) *cobra.Command {
	bottle := &cobra.Command{Use: "bottle", Short: "Bottle settings"}
	bottle.AddCommand(&cobra.Command{
		Use:   "set <size>",
		Short: "Set the bottle size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			app, err := loadApp(cmd.Context(), *dataDir)
			if err != nil {
				return err
			}
			out, err := app.TrackerCLI.SetBottleSize(cmd.Context(), size)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "bottle size set to %g\n", out.BottleSize)
			return nil
		},
	})
	return bottle
}

func newResetCmd(dataDir *string) *cobra.Command {
	var yes bool
	reset := &cobra.Command{
		Use:   "reset",
		Short: "Discard today's intake without archiving",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("reset discards today's entries; pass --yes to confirm")
			}
			app, err := loadApp(cmd.Context(), *dataDir)
			if err != nil {
				return err
			}
			if err := app.TrackerCLI.ResetToday(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "today reset")
			return nil
		},
	}
	reset.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return reset
}

func newArchiveCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "archive",
		Short: "Archive today's intake into history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.Context(), *dataDir)
			if err != nil {
				return err
			}
			out, err := app.TrackerCLI.ArchiveToday(cmd.Context())
			if err != nil {
				return err
			}
			if !out.Archived {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "nothing to archive")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "archived %s total=%g\n", out.DateKey, out.TotalIntake)
			return nil
		},
	}
}

func newHistoryCmd(dataDir *string) *cobra.Command {
	var days int
	history := &cobra.Command{
		Use:   "history",
		Short: "List archived days",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.Context(), *dataDir)
			if err != nil {
				return err
			}
			records, err := app.TrackerCLI.History(cmd.Context(), days)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no archived days")
				return nil
			}
			for _, r := range records {
				marker := " "
				if r.GoalMet {
					marker = "✓"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %g / %g %s (%.0f%%)\n",
					marker, r.DateKey, r.TotalIntake, r.Goal, r.Unit, r.Progress*100)
			}
			return nil
		},
	}
	history.Flags().IntVar(&days, "days", 7, "days to look back")
	return history
}

func newChartCmd(dataDir *string) *cobra.Command {
	var days int
	chart := &cobra.Command{
		Use:   "chart",
		Short: "Show per-day intake series",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.Context(), *dataDir)
			if err != nil {
				return err
			}
			points, err := app.TrackerCLI.Chart(cmd.Context(), days)
			if err != nil {
				return err
			}
			for _, p := range points {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%g\t%g\n", p.DateKey, p.Intake, p.Goal)
			}
			return nil
		},
	}
	chart.Flags().IntVar(&days, "days", 7, "days to chart")
	return chart
}

func newStreakCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "streak",
		Short: "Show goal streaks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.Context(), *dataDir)
			if err != nil {
				return err
			}
			out, err := app.TrackerCLI.Streak(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "current: %d\nlongest: %d\n", out.Current, out.Longest)
			return nil
		},
	}
}

func newPrefsCmd(dataDir *string) *cobra.Command {
	prefs := &cobra.Command{Use: "prefs", Short: "Presentation preferences"}

	prefs.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show preferences",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.Context(), *dataDir)
			if err != nil {
				return err
			}
			out, err := app.PrefsCLI.Get(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "dark mode: %t\nlanguage: %s\n", out.DarkMode, out.Language)
			return nil
		},
	})
	prefs.AddCommand(&cobra.Command{
		Use:   "dark",
		Short: "Use the dark theme",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.Context(), *dataDir)
			if err != nil {
				return err
			}
			if _, err := app.PrefsCLI.SetDarkMode(cmd.Context(), true); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "dark theme enabled")
			return nil
		},
	})
	prefs.AddCommand(&cobra.Command{
		Use:   "light",
		Short: "Use the light theme",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.Context(), *dataDir)
			if err != nil {
				return err
			}
			if _, err := app.PrefsCLI.SetDarkMode(cmd.Context(), false); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "light theme enabled")
			return nil
		},
	})
	prefs.AddCommand(&cobra.Command{
		Use:   "lang <code>",
		Short: "Set the display language",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd.Context(), *dataDir)
			if err != nil {
				return err
			}
			out, err := app.PrefsCLI.SetLanguage(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "language set to %s\n", out.Language)
			return nil
		},
	})
	return prefs
}

func newReindexCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the SQLite history projection from the state file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.Context(), *dataDir)
			if err != nil {
				return err
			}
			if err := app.TrackerCLI.Reindex(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "reindex completed")
			return nil
		},
	}
}

func newTUICmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the aqualog terminal UI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.Context(), *dataDir)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(cmd.Context(), app)
		},
	}
}
