package bootstrap

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	prefsinadapter "aqualog/internal/modules/prefs/adapter/in"
	prefsoutadapter "aqualog/internal/modules/prefs/adapter/out"
	prefsservice "aqualog/internal/modules/prefs/service"
	prefsusecase "aqualog/internal/modules/prefs/usecase"
	trackerinadapter "aqualog/internal/modules/tracker/adapter/in"
	trackeroutadapter "aqualog/internal/modules/tracker/adapter/out"
	trackerservice "aqualog/internal/modules/tracker/service"
	trackerusecase "aqualog/internal/modules/tracker/usecase"
	"aqualog/internal/platform/clock"
	"aqualog/internal/platform/config"
	"aqualog/internal/platform/id"
	"aqualog/internal/platform/tx"
	uiapp "aqualog/internal/ui/app"
)

type App struct {
	TrackerCLI trackerinadapter.CLIHandler
	PrefsCLI   prefsinadapter.CLIHandler
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.RandomHex{}

	stateStore := trackeroutadapter.NewFileStateStore(cfg.StatePath)
	projector, err := trackeroutadapter.NewSQLiteHistoryProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new history projector: %w", err)
	}
	journal := trackeroutadapter.NewFileJournalStore(cfg.JournalDir)

	trackerSvc, err := trackerservice.NewTrackerService(ctx, clk, ids, stateStore, projector, journal, tx.NoopManager{})
	if err != nil {
		return nil, fmt.Errorf("new tracker service: %w", err)
	}
	trackerUC := trackerusecase.NewInteractor(trackerSvc)

	prefsSvc, err := prefsservice.NewPrefsService(ctx, prefsoutadapter.NewYAMLPrefsStore(cfg.PrefsPath))
	if err != nil {
		return nil, fmt.Errorf("new prefs service: %w", err)
	}
	prefsUC := prefsusecase.NewInteractor(prefsSvc)

	return &App{
		TrackerCLI: trackerinadapter.NewCLIHandler(trackerUC),
		PrefsCLI:   prefsinadapter.NewCLIHandler(prefsUC),
	}, nil
}

func RunTUI(ctx context.Context, app *App) error {
	prefs, err := app.PrefsCLI.Get(ctx)
	if err != nil {
		return err
	}
	model := uiapp.NewModel(app.TrackerCLI, prefs.DarkMode)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}
