package domain_test

import (
	"testing"
	"time"

	"aqualog/internal/modules/tracker/domain"
)

func TestParseUnit(t *testing.T) {
	t.Parallel()
	for _, raw := range []string{"ml", "oz", "bottle"} {
		if _, err := domain.ParseUnit(raw); err != nil {
			t.Fatalf("%s should parse: %v", raw, err)
		}
	}
	if _, err := domain.ParseUnit("liters"); err == nil {
		t.Fatalf("unknown unit should fail")
	}
	if got := domain.UnitBottle.Display(); got != "bottles" {
		t.Fatalf("bottle mode should display as bottles, got %q", got)
	}
	if got := domain.UnitOunces.Display(); got != "oz" {
		t.Fatalf("oz should display as oz, got %q", got)
	}
}

func TestDayKeyPrev(t *testing.T) {
	t.Parallel()
	if got := domain.DayKey("2024-03-01").Prev(); got != "2024-02-29" {
		t.Fatalf("expected leap-day predecessor, got %s", got)
	}
	if got := domain.DayKey("2024-01-01").Prev(); got != "2023-12-31" {
		t.Fatalf("expected year boundary predecessor, got %s", got)
	}
}

func TestProgressRemainingGoalReached(t *testing.T) {
	t.Parallel()
	state := domain.TrackingState{DailyGoal: 2000, TodayIntake: 500}
	if got := state.Progress(); got != 0.25 {
		t.Fatalf("expected progress 0.25, got %v", got)
	}
	if got := state.Remaining(); got != 1500 {
		t.Fatalf("expected remaining 1500, got %v", got)
	}
	if state.GoalReached() {
		t.Fatalf("goal should not be reached at 500/2000")
	}

	state.TodayIntake = 2500
	if got := state.Progress(); got != 1.0 {
		t.Fatalf("progress must cap at 1.0, got %v", got)
	}
	if got := state.Remaining(); got != 0 {
		t.Fatalf("remaining must floor at 0, got %v", got)
	}
	if !state.GoalReached() {
		t.Fatalf("goal should be reached at 2500/2000")
	}

	unset := domain.TrackingState{TodayIntake: 800}
	if got := unset.Progress(); got != 0 {
		t.Fatalf("unset goal means zero progress, got %v", got)
	}
	if unset.GoalReached() {
		t.Fatalf("unset goal can never be reached")
	}
}

func TestQuickAddAmounts(t *testing.T) {
	t.Parallel()
	ml := domain.TrackingState{Unit: domain.UnitMilliliters}
	if got := ml.QuickAddAmounts(); len(got) != 4 || got[0] != 100 || got[3] != 500 {
		t.Fatalf("unexpected ml quick adds: %v", got)
	}
	oz := domain.TrackingState{Unit: domain.UnitOunces}
	if got := oz.QuickAddAmounts(); got[0] != 4 || got[3] != 16 {
		t.Fatalf("unexpected oz quick adds: %v", got)
	}
	bottle := domain.TrackingState{Unit: domain.UnitBottle, BottleSize: 750}
	want := []float64{187.5, 375, 562.5, 750}
	got := bottle.QuickAddAmounts()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected bottle quick adds: %v", got)
		}
	}
	// Bottle mode without a size falls back to the oz presets.
	sizeless := domain.TrackingState{Unit: domain.UnitBottle}
	if got := sizeless.QuickAddAmounts(); got[0] != 4 {
		t.Fatalf("sizeless bottle mode should fall back, got %v", got)
	}
}

func TestUpsertRecordReplacesAndKeepsOrder(t *testing.T) {
	t.Parallel()
	var history []domain.DailyRecord
	for _, key := range []domain.DayKey{"2024-01-03", "2024-01-01", "2024-01-02"} {
		history = domain.UpsertRecord(history, domain.DailyRecord{DateKey: key, TotalIntake: 1000, Goal: 2000, Unit: domain.UnitMilliliters})
	}
	want := []domain.DayKey{"2024-01-03", "2024-01-02", "2024-01-01"}
	for i, key := range want {
		if history[i].DateKey != key {
			t.Fatalf("expected order %v, got %v", want, history)
		}
	}

	history = domain.UpsertRecord(history, domain.DailyRecord{DateKey: "2024-01-02", TotalIntake: 1800, Goal: 2000, Unit: domain.UnitMilliliters})
	if len(history) != 3 {
		t.Fatalf("re-archiving a day must replace, got %d records", len(history))
	}
	if history[1].DateKey != "2024-01-02" || history[1].TotalIntake != 1800 {
		t.Fatalf("later archival should win: %+v", history[1])
	}
}

func TestIntakeByPeriodWrapsPastMidnight(t *testing.T) {
	t.Parallel()
	at := func(hour int) time.Time {
		return time.Date(2024, 1, 15, hour, 30, 0, 0, time.Local)
	}
	state := domain.TrackingState{Entries: []domain.IntakeEntry{
		{ID: "a", Timestamp: at(23), Amount: 200},
		{ID: "b", Timestamp: at(3), Amount: 150},
		{ID: "c", Timestamp: at(10), Amount: 300},
		{ID: "d", Timestamp: at(13), Amount: 250},
	}}

	if got := state.EveningIntake(); got != 350 {
		t.Fatalf("23:30 and 03:30 both belong to evening, got %v", got)
	}
	if got := state.MorningIntake(); got != 300 {
		t.Fatalf("only 10:30 is morning, got %v", got)
	}
	if got := state.AfternoonIntake(); got != 250 {
		t.Fatalf("only 13:30 is afternoon, got %v", got)
	}
}

func TestDailyRecordDerived(t *testing.T) {
	t.Parallel()
	met := domain.DailyRecord{DateKey: "2024-01-01", TotalIntake: 2100, Goal: 2000}
	if !met.GoalMet() || met.Progress() != 1 {
		t.Fatalf("record over goal should be met and capped: met=%t progress=%v", met.GoalMet(), met.Progress())
	}
	missed := domain.DailyRecord{DateKey: "2024-01-01", TotalIntake: 500, Goal: 2000}
	if missed.GoalMet() || missed.Progress() != 0.25 {
		t.Fatalf("record under goal: met=%t progress=%v", missed.GoalMet(), missed.Progress())
	}
	unset := domain.DailyRecord{DateKey: "2024-01-01", TotalIntake: 500}
	if unset.GoalMet() || unset.Progress() != 0 {
		t.Fatalf("zero-goal record must derive zero progress, got %v", unset.Progress())
	}
}
