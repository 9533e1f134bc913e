package service

import (
	"context"
	"sync"
	"time"

	"aqualog/internal/modules/tracker/domain"
	trackerout "aqualog/internal/modules/tracker/port/out"
	"aqualog/internal/platform/clock"
	"aqualog/internal/platform/id"
	"aqualog/internal/platform/tx"
)

// TrackerService is the tracking engine. It exclusively owns the
// in-memory TrackingState; every mutation updates memory first, then
// writes through to the state store, so a query immediately after a
// command always observes that command's effect.
//
// All commands and queries take the one mutex. The CLI is effectively
// single-threaded, but the TUI issues commands from its message loop, and
// the rollover's archive-then-reset sequence must never interleave.
type TrackerService struct {
	mu        sync.Mutex
	state     domain.TrackingState
	clock     clock.Clock
	idGen     id.Generator
	store     trackerout.StateStore
	projector trackerout.HistoryProjector
	journal   trackerout.JournalStore
	txm       tx.Manager
}

// NewTrackerService loads the persisted state and immediately runs the
// rollover check, mirroring an app launch.
func NewTrackerService(
	ctx context.Context,
	clk clock.Clock,
	idGen id.Generator,
	store trackerout.StateStore,
	projector trackerout.HistoryProjector,
	journal trackerout.JournalStore,
	txm tx.Manager,
) (*TrackerService, error) {
	state, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	s := &TrackerService{
		state:     state,
		clock:     clk,
		idGen:     idGen,
		store:     store,
		projector: projector,
		journal:   journal,
		txm:       txm,
	}
	if _, err := s.CheckRollover(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// CheckRollover detects that the local calendar day has advanced and
// performs the rollover: archive the outgoing day (only when it saw any
// intake), reset today's counters, and adopt the new day key. Today's key
// is recomputed from the clock on every call because both the date and
// the device timezone can change between calls. Idempotent and cheap.
func (s *TrackerService) CheckRollover(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todayKey := domain.DayKeyOf(s.clock.Now())
	if s.state.CurrentDateKey == todayKey {
		return false, nil
	}
	if s.state.CurrentDateKey != "" && s.state.TodayIntake > 0 {
		if err := s.archiveDay(ctx, s.state.CurrentDateKey, s.state.TodayIntake, s.state.DailyGoal, s.state.Unit); err != nil {
			return false, err
		}
	}
	s.state.TodayIntake = 0
	s.state.Entries = nil
	s.state.CurrentDateKey = todayKey
	if err := s.txm.Within(ctx, func(ctx context.Context) error {
		return s.store.ResetDay(ctx, todayKey)
	}); err != nil {
		return false, err
	}
	return true, nil
}

// archiveDay replaces any record for dateKey, re-sorts history, persists
// it, and refreshes the projections. Caller holds the lock.
func (s *TrackerService) archiveDay(ctx context.Context, dateKey domain.DayKey, intake, goal float64, unit domain.Unit) error {
	record := domain.DailyRecord{DateKey: dateKey, TotalIntake: intake, Goal: goal, Unit: unit}
	s.state.History = domain.UpsertRecord(s.state.History, record)
	if err := s.store.SaveHistory(ctx, s.state.History); err != nil {
		return err
	}
	if s.projector != nil {
		if err := s.projector.Upsert(ctx, record); err != nil {
			return err
		}
	}
	if s.journal != nil {
		if _, err := s.journal.WriteDay(ctx, record); err != nil {
			return err
		}
	}
	return nil
}

// AddIntake records one act of drinking. Amount positivity is the
// caller's contract; the engine does not re-validate.
func (s *TrackerService) AddIntake(ctx context.Context, amount float64) (domain.IntakeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := domain.IntakeEntry{
		ID:        s.idGen.New(),
		Timestamp: s.clock.Now(),
		Amount:    amount,
	}
	s.state.Entries = append(s.state.Entries, entry)
	s.state.TodayIntake += amount
	if err := s.store.SaveToday(ctx, s.state.TodayIntake, s.state.Entries); err != nil {
		return domain.IntakeEntry{}, err
	}
	return entry, nil
}

// UndoLast removes the most recent entry. The subtraction floors at zero
// to guard against floating-point drift. No-op on an empty day.
func (s *TrackerService) UndoLast(ctx context.Context) (domain.IntakeEntry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.state.Entries) == 0 {
		return domain.IntakeEntry{}, false, nil
	}
	last := s.state.Entries[len(s.state.Entries)-1]
	s.state.Entries = s.state.Entries[:len(s.state.Entries)-1]
	s.state.TodayIntake -= last.Amount
	if s.state.TodayIntake < 0 {
		s.state.TodayIntake = 0
	}
	if err := s.store.SaveToday(ctx, s.state.TodayIntake, s.state.Entries); err != nil {
		return domain.IntakeEntry{}, false, err
	}
	return last, true, nil
}

// ResetToday is a destructive manual discard of today's intake. It never
// archives; that distinction from rollover is deliberate.
func (s *TrackerService) ResetToday(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	todayKey := domain.DayKeyOf(s.clock.Now())
	s.state.TodayIntake = 0
	s.state.Entries = nil
	s.state.CurrentDateKey = todayKey
	return s.txm.Within(ctx, func(ctx context.Context) error {
		return s.store.ResetDay(ctx, todayKey)
	})
}

// ArchiveToday snapshots the current day into history without resetting.
// A day with nothing recorded is not archived.
func (s *TrackerService) ArchiveToday(ctx context.Context) (domain.DailyRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.TodayIntake <= 0 {
		return domain.DailyRecord{}, false, nil
	}
	record := domain.DailyRecord{
		DateKey:     s.state.CurrentDateKey,
		TotalIntake: s.state.TodayIntake,
		Goal:        s.state.DailyGoal,
		Unit:        s.state.Unit,
	}
	if err := s.archiveDay(ctx, record.DateKey, record.TotalIntake, record.Goal, record.Unit); err != nil {
		return domain.DailyRecord{}, false, err
	}
	return record, true, nil
}

func (s *TrackerService) SetGoal(ctx context.Context, goal float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if goal < 0 {
		goal = 0
	}
	s.state.DailyGoal = goal
	return s.store.SaveGoal(ctx, goal)
}

// SetUnit switches the unit label only. Existing goal, bottle size, and
// archived totals keep their numeric values unscaled; that matches the
// historical behavior and is deliberately not "fixed" here.
func (s *TrackerService) SetUnit(ctx context.Context, unit domain.Unit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Unit = unit
	return s.store.SaveUnit(ctx, unit)
}

func (s *TrackerService) SetBottleSize(ctx context.Context, size float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if size < 0 {
		size = 0
	}
	s.state.BottleSize = size
	return s.store.SaveBottleSize(ctx, size)
}

// State returns a copy of the aggregate for presentation and queries.
func (s *TrackerService) State() domain.TrackingState {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state
	snapshot.Entries = append([]domain.IntakeEntry(nil), s.state.Entries...)
	snapshot.History = append([]domain.DailyRecord(nil), s.state.History...)
	return snapshot
}

func (s *TrackerService) Now() time.Time {
	return s.clock.Now()
}

func (s *TrackerService) CurrentStreak() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.CurrentStreak(domain.DayKeyOf(s.clock.Now()))
}

func (s *TrackerService) LongestStreak() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.LongestStreak(domain.DayKeyOf(s.clock.Now()))
}

func (s *TrackerService) ChartData(lastDays int) []domain.ChartPoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ChartData(s.clock.Now(), lastDays)
}

// Reindex rebuilds the history projection from the durable state.
func (s *TrackerService) Reindex(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.projector == nil {
		return nil
	}
	if err := s.projector.Reset(ctx); err != nil {
		return err
	}
	for _, record := range s.state.History {
		if err := s.projector.Upsert(ctx, record); err != nil {
			return err
		}
	}
	return nil
}

// HistoryRange reads archived days from the projection, newest first.
func (s *TrackerService) HistoryRange(ctx context.Context, from, to domain.DayKey) ([]domain.DailyRecord, error) {
	if s.projector == nil {
		return nil, nil
	}
	return s.projector.Range(ctx, from, to)
}
