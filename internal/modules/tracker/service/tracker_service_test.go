package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"aqualog/internal/modules/tracker/domain"
	"aqualog/internal/modules/tracker/service"
	"aqualog/internal/platform/tx"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

type seqID struct {
	n int
}

func (s *seqID) New() string {
	s.n++
	return fmt.Sprintf("entry-%d", s.n)
}

// memStateStore keeps the durable copy in memory and mirrors the keyed
// write-through contract of the file store.
type memStateStore struct {
	state      domain.TrackingState
	resetCalls int
}

func (m *memStateStore) Load(context.Context) (domain.TrackingState, error) {
	if m.state.Unit == "" {
		m.state.Unit = domain.UnitMilliliters
	}
	return m.state, nil
}

func (m *memStateStore) SaveGoal(_ context.Context, goal float64) error {
	m.state.DailyGoal = goal
	return nil
}

func (m *memStateStore) SaveUnit(_ context.Context, unit domain.Unit) error {
	m.state.Unit = unit
	return nil
}

func (m *memStateStore) SaveBottleSize(_ context.Context, size float64) error {
	m.state.BottleSize = size
	return nil
}

func (m *memStateStore) SaveToday(_ context.Context, intake float64, entries []domain.IntakeEntry) error {
	m.state.TodayIntake = intake
	m.state.Entries = append([]domain.IntakeEntry(nil), entries...)
	return nil
}

func (m *memStateStore) SaveHistory(_ context.Context, history []domain.DailyRecord) error {
	m.state.History = append([]domain.DailyRecord(nil), history...)
	return nil
}

func (m *memStateStore) ResetDay(_ context.Context, key domain.DayKey) error {
	m.resetCalls++
	m.state.TodayIntake = 0
	m.state.Entries = nil
	m.state.CurrentDateKey = key
	return nil
}

func newEngine(t *testing.T, clk *fakeClock, store *memStateStore) *service.TrackerService {
	t.Helper()
	svc, err := service.NewTrackerService(context.Background(), clk, &seqID{}, store, nil, nil, tx.NoopManager{})
	if err != nil {
		t.Fatalf("new tracker service: %v", err)
	}
	return svc
}

func at(day string, hour int) time.Time {
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	return t.Add(time.Duration(hour) * time.Hour)
}

func TestSumInvariantAcrossAddAndUndo(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: at("2024-01-01", 9)}
	svc := newEngine(t, clk, &memStateStore{})
	ctx := context.Background()

	check := func(step string) {
		state := svc.State()
		sum := 0.0
		for _, e := range state.Entries {
			sum += e.Amount
		}
		if state.TodayIntake != sum {
			t.Fatalf("%s: todayIntake %v drifted from entry sum %v", step, state.TodayIntake, sum)
		}
	}

	for _, amount := range []float64{100, 250, 0.5, 333} {
		if _, err := svc.AddIntake(ctx, amount); err != nil {
			t.Fatalf("add %v: %v", amount, err)
		}
		check("after add")
	}
	for i := 0; i < 6; i++ {
		if _, _, err := svc.UndoLast(ctx); err != nil {
			t.Fatalf("undo: %v", err)
		}
		check("after undo")
	}
}

func TestUndoFloorsAtZero(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: at("2024-01-01", 9)}
	svc := newEngine(t, clk, &memStateStore{})
	ctx := context.Background()

	// Adversarial float amounts whose partial sums can round below zero
	// after subtraction in a different order of operations.
	for _, amount := range []float64{0.1, 0.2, 0.3} {
		if _, err := svc.AddIntake(ctx, amount); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	for i := 0; i < 3; i++ {
		if _, undone, err := svc.UndoLast(ctx); err != nil || !undone {
			t.Fatalf("undo %d: undone=%t err=%v", i, undone, err)
		}
		if got := svc.State().TodayIntake; got < 0 {
			t.Fatalf("todayIntake went negative: %v", got)
		}
	}
	if _, undone, err := svc.UndoLast(ctx); err != nil || undone {
		t.Fatalf("undo on empty day must be a no-op, undone=%t err=%v", undone, err)
	}
	// 0.1+0.2+0.3 is not exact in binary; after undoing everything only a
	// sub-nanoliter residue may remain, and never a negative one.
	if got := svc.State().TodayIntake; got < 0 || got > 1e-9 {
		t.Fatalf("expected ~zero after undoing everything, got %v", got)
	}
}

func TestRolloverArchivesThenResets(t *testing.T) {
	t.Parallel()
	store := &memStateStore{state: domain.TrackingState{
		DailyGoal:      2000,
		Unit:           domain.UnitMilliliters,
		CurrentDateKey: "2024-01-01",
		TodayIntake:    1500,
		Entries:        []domain.IntakeEntry{{ID: "e1", Timestamp: at("2024-01-01", 10), Amount: 1500}},
	}}
	clk := &fakeClock{now: at("2024-01-02", 7)}
	svc := newEngine(t, clk, store)

	state := svc.State()
	if len(state.History) != 1 {
		t.Fatalf("expected exactly one archived record, got %d", len(state.History))
	}
	rec := state.History[0]
	if rec.DateKey != "2024-01-01" || rec.TotalIntake != 1500 || rec.Goal != 2000 || rec.Unit != domain.UnitMilliliters {
		t.Fatalf("archived record mismatch: %+v", rec)
	}
	if state.TodayIntake != 0 || len(state.Entries) != 0 || state.CurrentDateKey != "2024-01-02" {
		t.Fatalf("reset did not apply: %+v", state)
	}
}

func TestRolloverIdempotentSameDay(t *testing.T) {
	t.Parallel()
	store := &memStateStore{}
	clk := &fakeClock{now: at("2024-01-02", 7)}
	svc := newEngine(t, clk, store)
	ctx := context.Background()

	resetsAfterInit := store.resetCalls
	rolled, err := svc.CheckRollover(ctx)
	if err != nil {
		t.Fatalf("rollover: %v", err)
	}
	if rolled {
		t.Fatalf("second check on the same day must be a no-op")
	}
	if store.resetCalls != resetsAfterInit {
		t.Fatalf("no-op rollover must not write")
	}
	if got := len(svc.State().History); got != 0 {
		t.Fatalf("no duplicate archival expected, history=%d", got)
	}
}

func TestRolloverSkipsZeroIntakeDay(t *testing.T) {
	t.Parallel()
	store := &memStateStore{state: domain.TrackingState{
		DailyGoal:      2000,
		Unit:           domain.UnitMilliliters,
		CurrentDateKey: "2024-01-01",
	}}
	clk := &fakeClock{now: at("2024-01-02", 7)}
	svc := newEngine(t, clk, store)

	state := svc.State()
	if len(state.History) != 0 {
		t.Fatalf("a day with zero intake must not be archived: %+v", state.History)
	}
	if state.CurrentDateKey != "2024-01-02" {
		t.Fatalf("date key must still advance, got %s", state.CurrentDateKey)
	}
}

func TestFirstRunDoesNotArchive(t *testing.T) {
	t.Parallel()
	store := &memStateStore{}
	clk := &fakeClock{now: at("2024-01-01", 8)}
	svc := newEngine(t, clk, store)

	state := svc.State()
	if len(state.History) != 0 {
		t.Fatalf("first run must not pollute history: %+v", state.History)
	}
	if state.CurrentDateKey != "2024-01-01" || state.Unit != domain.UnitMilliliters || state.DailyGoal != 0 {
		t.Fatalf("first-run defaults wrong: %+v", state)
	}
}

func TestManualArchiveThenRolloverReplacesRecord(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: at("2024-01-01", 9)}
	store := &memStateStore{}
	svc := newEngine(t, clk, store)
	ctx := context.Background()

	if _, err := svc.AddIntake(ctx, 800); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, archived, err := svc.ArchiveToday(ctx); err != nil || !archived {
		t.Fatalf("manual archive: archived=%t err=%v", archived, err)
	}
	if _, err := svc.AddIntake(ctx, 700); err != nil {
		t.Fatalf("add: %v", err)
	}

	clk.now = at("2024-01-02", 6)
	if _, err := svc.CheckRollover(ctx); err != nil {
		t.Fatalf("rollover: %v", err)
	}

	state := svc.State()
	if len(state.History) != 1 {
		t.Fatalf("same-day records must replace, got %d", len(state.History))
	}
	if state.History[0].TotalIntake != 1500 {
		t.Fatalf("later archival wins, expected 1500, got %v", state.History[0].TotalIntake)
	}
}

func TestArchiveTodayNoopWhenEmpty(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: at("2024-01-01", 9)}
	svc := newEngine(t, clk, &memStateStore{})

	if _, archived, err := svc.ArchiveToday(context.Background()); err != nil || archived {
		t.Fatalf("empty day must not archive, archived=%t err=%v", archived, err)
	}
}

func TestResetTodayDiscardsWithoutArchiving(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: at("2024-01-01", 9)}
	svc := newEngine(t, clk, &memStateStore{})
	ctx := context.Background()

	if _, err := svc.AddIntake(ctx, 1200); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.ResetToday(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	state := svc.State()
	if state.TodayIntake != 0 || len(state.Entries) != 0 {
		t.Fatalf("reset must clear today: %+v", state)
	}
	if len(state.History) != 0 {
		t.Fatalf("reset is a discard, never an archive: %+v", state.History)
	}
	if state.CurrentDateKey != "2024-01-01" {
		t.Fatalf("reset re-stamps today's key, got %s", state.CurrentDateKey)
	}
}

func TestSettersClampNegatives(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: at("2024-01-01", 9)}
	svc := newEngine(t, clk, &memStateStore{})
	ctx := context.Background()

	if err := svc.SetGoal(ctx, -50); err != nil {
		t.Fatalf("set goal: %v", err)
	}
	if err := svc.SetBottleSize(ctx, -1); err != nil {
		t.Fatalf("set bottle size: %v", err)
	}
	state := svc.State()
	if state.DailyGoal != 0 || state.BottleSize != 0 {
		t.Fatalf("negative inputs must clamp to zero: %+v", state)
	}

	if err := svc.SetUnit(ctx, domain.UnitBottle); err != nil {
		t.Fatalf("set unit: %v", err)
	}
	if got := svc.State().Unit; got != domain.UnitBottle {
		t.Fatalf("unit not applied, got %s", got)
	}
}

func TestTimezoneChangeTriggersRollover(t *testing.T) {
	t.Parallel()
	// 23:30 on Jan 1 in UTC is already Jan 2 in UTC+1: moving the clock's
	// zone alone must roll the day, because the key is recomputed from
	// the clock on every check.
	clk := &fakeClock{now: time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC)}
	store := &memStateStore{}
	svc := newEngine(t, clk, store)
	ctx := context.Background()

	if _, err := svc.AddIntake(ctx, 400); err != nil {
		t.Fatalf("add: %v", err)
	}
	clk.now = clk.now.In(time.FixedZone("UTC+1", 3600))
	rolled, err := svc.CheckRollover(ctx)
	if err != nil {
		t.Fatalf("rollover: %v", err)
	}
	if !rolled {
		t.Fatalf("zone shift across midnight must roll the day")
	}
	state := svc.State()
	if state.CurrentDateKey != "2024-01-02" {
		t.Fatalf("expected new key 2024-01-02, got %s", state.CurrentDateKey)
	}
	if len(state.History) != 1 || state.History[0].TotalIntake != 400 {
		t.Fatalf("outgoing day must be archived: %+v", state.History)
	}
}
