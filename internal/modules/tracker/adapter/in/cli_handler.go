package in

import (
	"context"

	"aqualog/internal/modules/tracker/dto"
	trackerin "aqualog/internal/modules/tracker/port/in"
)

type CLIHandler struct {
	usecase trackerin.Usecase
}

func NewCLIHandler(usecase trackerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Drink(ctx context.Context, amount float64) (dto.StatusOutput, error) {
	return h.usecase.Drink(ctx, dto.DrinkInput{Amount: amount})
}

func (h CLIHandler) Undo(ctx context.Context) (dto.UndoOutput, error) {
	return h.usecase.Undo(ctx)
}

func (h CLIHandler) Status(ctx context.Context) (dto.StatusOutput, error) {
	return h.usecase.Status(ctx)
}

func (h CLIHandler) SetGoal(ctx context.Context, goal float64) (dto.StatusOutput, error) {
	return h.usecase.SetGoal(ctx, goal)
}

func (h CLIHandler) SetUnit(ctx context.Context, unit string) (dto.StatusOutput, error) {
	return h.usecase.SetUnit(ctx, unit)
}

func (h CLIHandler) SetBottleSize(ctx context.Context, size float64) (dto.StatusOutput, error) {
	return h.usecase.SetBottleSize(ctx, size)
}

func (h CLIHandler) ResetToday(ctx context.Context) error {
	return h.usecase.ResetToday(ctx)
}

func (h CLIHandler) ArchiveToday(ctx context.Context) (dto.ArchiveOutput, error) {
	return h.usecase.ArchiveToday(ctx)
}

func (h CLIHandler) History(ctx context.Context, days int) ([]dto.DayOutput, error) {
	return h.usecase.History(ctx, days)
}

func (h CLIHandler) Chart(ctx context.Context, days int) ([]dto.ChartPointOutput, error) {
	return h.usecase.Chart(ctx, days)
}

func (h CLIHandler) Streak(ctx context.Context) (dto.StreakOutput, error) {
	return h.usecase.Streak(ctx)
}

func (h CLIHandler) Reindex(ctx context.Context) error {
	return h.usecase.Reindex(ctx)
}
