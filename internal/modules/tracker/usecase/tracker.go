package usecase

import (
	"context"
	"fmt"

	"aqualog/internal/modules/tracker/domain"
	"aqualog/internal/modules/tracker/dto"
	trackerin "aqualog/internal/modules/tracker/port/in"
	"aqualog/internal/modules/tracker/service"
	apperrors "aqualog/internal/platform/errors"
)

// Interactor is the presentation-facing boundary. It owns the caller
// contract the engine itself does not enforce: non-positive amounts are
// rejected here, and every user action re-checks day rollover first (the
// analogue of the mobile clients checking on foreground transitions).
type Interactor struct {
	svc *service.TrackerService
}

func NewInteractor(svc *service.TrackerService) trackerin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Drink(ctx context.Context, input dto.DrinkInput) (dto.StatusOutput, error) {
	if input.Amount <= 0 {
		return dto.StatusOutput{}, fmt.Errorf("amount must be positive: %w", apperrors.ErrInvalidInput)
	}
	if _, err := i.svc.CheckRollover(ctx); err != nil {
		return dto.StatusOutput{}, err
	}
	if _, err := i.svc.AddIntake(ctx, input.Amount); err != nil {
		return dto.StatusOutput{}, err
	}
	return i.status(), nil
}

func (i *Interactor) Undo(ctx context.Context) (dto.UndoOutput, error) {
	if _, err := i.svc.CheckRollover(ctx); err != nil {
		return dto.UndoOutput{}, err
	}
	entry, undone, err := i.svc.UndoLast(ctx)
	if err != nil {
		return dto.UndoOutput{}, err
	}
	return dto.UndoOutput{
		Undone:      undone,
		Amount:      entry.Amount,
		TodayIntake: i.svc.State().TodayIntake,
	}, nil
}

func (i *Interactor) Status(ctx context.Context) (dto.StatusOutput, error) {
	if _, err := i.svc.CheckRollover(ctx); err != nil {
		return dto.StatusOutput{}, err
	}
	return i.status(), nil
}

func (i *Interactor) SetGoal(ctx context.Context, goal float64) (dto.StatusOutput, error) {
	if err := i.svc.SetGoal(ctx, goal); err != nil {
		return dto.StatusOutput{}, err
	}
	return i.status(), nil
}

func (i *Interactor) SetUnit(ctx context.Context, raw string) (dto.StatusOutput, error) {
	unit, err := domain.ParseUnit(raw)
	if err != nil {
		return dto.StatusOutput{}, err
	}
	if err := i.svc.SetUnit(ctx, unit); err != nil {
		return dto.StatusOutput{}, err
	}
	return i.status(), nil
}

func (i *Interactor) SetBottleSize(ctx context.Context, size float64) (dto.StatusOutput, error) {
	if err := i.svc.SetBottleSize(ctx, size); err != nil {
		return dto.StatusOutput{}, err
	}
	return i.status(), nil
}

func (i *Interactor) ResetToday(ctx context.Context) error {
	return i.svc.ResetToday(ctx)
}

func (i *Interactor) ArchiveToday(ctx context.Context) (dto.ArchiveOutput, error) {
	if _, err := i.svc.CheckRollover(ctx); err != nil {
		return dto.ArchiveOutput{}, err
	}
	record, archived, err := i.svc.ArchiveToday(ctx)
	if err != nil {
		return dto.ArchiveOutput{}, err
	}
	return dto.ArchiveOutput{
		Archived:    archived,
		DateKey:     string(record.DateKey),
		TotalIntake: record.TotalIntake,
	}, nil
}

func (i *Interactor) History(ctx context.Context, days int) ([]dto.DayOutput, error) {
	if days <= 0 {
		days = 7
	}
	if _, err := i.svc.CheckRollover(ctx); err != nil {
		return nil, err
	}
	now := i.svc.Now()
	from := domain.DayKeyOf(now.AddDate(0, 0, -(days - 1)))
	to := domain.DayKeyOf(now)
	records, err := i.svc.HistoryRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DayOutput, 0, len(records))
	for _, r := range records {
		out = append(out, dto.DayOutput{
			DateKey:     string(r.DateKey),
			TotalIntake: r.TotalIntake,
			Goal:        r.Goal,
			Unit:        string(r.Unit),
			GoalMet:     r.GoalMet(),
			Progress:    r.Progress(),
		})
	}
	return out, nil
}

func (i *Interactor) Chart(ctx context.Context, days int) ([]dto.ChartPointOutput, error) {
	if days <= 0 {
		days = 7
	}
	if _, err := i.svc.CheckRollover(ctx); err != nil {
		return nil, err
	}
	points := i.svc.ChartData(days)
	out := make([]dto.ChartPointOutput, 0, len(points))
	for _, p := range points {
		out = append(out, dto.ChartPointOutput{DateKey: string(p.DateKey), Intake: p.Intake, Goal: p.Goal})
	}
	return out, nil
}

func (i *Interactor) Streak(ctx context.Context) (dto.StreakOutput, error) {
	if _, err := i.svc.CheckRollover(ctx); err != nil {
		return dto.StreakOutput{}, err
	}
	return dto.StreakOutput{
		Current: i.svc.CurrentStreak(),
		Longest: i.svc.LongestStreak(),
	}, nil
}

func (i *Interactor) Reindex(ctx context.Context) error {
	return i.svc.Reindex(ctx)
}

func (i *Interactor) status() dto.StatusOutput {
	state := i.svc.State()
	return dto.StatusOutput{
		DateKey:     string(state.CurrentDateKey),
		TodayIntake: state.TodayIntake,
		Goal:        state.DailyGoal,
		Remaining:   state.Remaining(),
		Progress:    state.Progress(),
		GoalReached: state.GoalReached(),
		Unit:        string(state.Unit),
		DisplayUnit: state.DisplayUnit(),
		BottleMode:  state.IsBottleMode(),
		BottleSize:  state.BottleSize,
		Streak:      i.svc.CurrentStreak(),
		Morning:     state.MorningIntake(),
		Afternoon:   state.AfternoonIntake(),
		Evening:     state.EveningIntake(),
		QuickAdds:   state.QuickAddAmounts(),
		EntryCount:  len(state.Entries),
	}
}
