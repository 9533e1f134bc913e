package in

import (
	"context"

	"aqualog/internal/modules/tracker/dto"
)

type Usecase interface {
	Drink(ctx context.Context, input dto.DrinkInput) (dto.StatusOutput, error)
	Undo(ctx context.Context) (dto.UndoOutput, error)
	Status(ctx context.Context) (dto.StatusOutput, error)
	SetGoal(ctx context.Context, goal float64) (dto.StatusOutput, error)
	SetUnit(ctx context.Context, unit string) (dto.StatusOutput, error)
	SetBottleSize(ctx context.Context, size float64) (dto.StatusOutput, error)
	ResetToday(ctx context.Context) error
	ArchiveToday(ctx context.Context) (dto.ArchiveOutput, error)
	History(ctx context.Context, days int) ([]dto.DayOutput, error)
	Chart(ctx context.Context, days int) ([]dto.ChartPointOutput, error)
	Streak(ctx context.Context) (dto.StreakOutput, error)
	Reindex(ctx context.Context) error
}
