package out

import (
	"context"

	"aqualog/internal/modules/tracker/domain"
)

// StateStore is the durable copy of the tracking state. The engine is its
// only writer. Load must fail soft: a missing file yields defaults and a
// malformed entries or history collection yields an empty one.
type StateStore interface {
	Load(ctx context.Context) (domain.TrackingState, error)
	SaveGoal(ctx context.Context, goal float64) error
	SaveUnit(ctx context.Context, unit domain.Unit) error
	SaveBottleSize(ctx context.Context, size float64) error
	SaveToday(ctx context.Context, intake float64, entries []domain.IntakeEntry) error
	SaveHistory(ctx context.Context, history []domain.DailyRecord) error
	// ResetDay atomically zeroes today's intake, clears the entries, and
	// sets the current date key in a single write.
	ResetDay(ctx context.Context, key domain.DayKey) error
}

// HistoryProjector maintains a queryable index of archived days.
// Projection only: it is rebuildable from the state store at any time.
type HistoryProjector interface {
	Upsert(ctx context.Context, record domain.DailyRecord) error
	Reset(ctx context.Context) error
	Range(ctx context.Context, from, to domain.DayKey) ([]domain.DailyRecord, error)
}

// JournalStore writes one human-readable note per archived day.
type JournalStore interface {
	WriteDay(ctx context.Context, record domain.DailyRecord) (string, error)
}
