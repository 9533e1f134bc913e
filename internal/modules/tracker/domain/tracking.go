package domain

import (
	"fmt"
	"sort"
	"time"

	apperrors "aqualog/internal/platform/errors"
)

const SchemaVersion = 1

// Unit is the measurement mode intake amounts are recorded in.
type Unit string

const (
	UnitMilliliters Unit = "ml"
	UnitOunces      Unit = "oz"
	UnitBottle      Unit = "bottle"
)

func ParseUnit(raw string) (Unit, error) {
	switch Unit(raw) {
	case UnitMilliliters, UnitOunces, UnitBottle:
		return Unit(raw), nil
	default:
		return "", fmt.Errorf("unsupported unit %q: %w", raw, apperrors.ErrInvalidInput)
	}
}

// Display is the label shown next to amounts. Bottle mode counts
// fractions of a bottle, so it reads "bottles" rather than "bottle".
func (u Unit) Display() string {
	if u == UnitBottle {
		return "bottles"
	}
	return string(u)
}

const dayKeyLayout = "2006-01-02"

// DayKey identifies one calendar day in the device's local timezone.
// Its YYYY-MM-DD form sorts lexically in date order.
type DayKey string

func DayKeyOf(t time.Time) DayKey {
	return DayKey(t.Format(dayKeyLayout))
}

// Prev returns the key of the preceding calendar day. Keys are walked in
// UTC so the step is exactly one day regardless of DST transitions.
func (k DayKey) Prev() DayKey {
	t, err := time.ParseInLocation(dayKeyLayout, string(k), time.UTC)
	if err != nil {
		return ""
	}
	return DayKeyOf(t.AddDate(0, 0, -1))
}

// IntakeEntry is one recorded act of drinking. Immutable once created;
// removed only by undo or a day reset.
type IntakeEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Amount    float64   `json:"amount"`
}

// DailyRecord is the archived summary of one fully elapsed day.
type DailyRecord struct {
	DateKey     DayKey  `json:"dateKey"`
	TotalIntake float64 `json:"totalIntake"`
	Goal        float64 `json:"goal"`
	Unit        Unit    `json:"unit"`
}

func (r DailyRecord) Progress() float64 {
	if r.Goal <= 0 {
		return 0
	}
	p := r.TotalIntake / r.Goal
	if p > 1 {
		return 1
	}
	return p
}

func (r DailyRecord) GoalMet() bool {
	return r.Goal > 0 && r.TotalIntake >= r.Goal
}

// TrackingState is the engine's whole in-memory aggregate. Entries hold
// only today's intake; History holds archived past days, newest first.
type TrackingState struct {
	DailyGoal      float64
	Unit           Unit
	BottleSize     float64
	CurrentDateKey DayKey
	TodayIntake    float64
	Entries        []IntakeEntry
	History        []DailyRecord
}

func (s TrackingState) Progress() float64 {
	if s.DailyGoal <= 0 {
		return 0
	}
	p := s.TodayIntake / s.DailyGoal
	if p > 1 {
		return 1
	}
	return p
}

func (s TrackingState) Remaining() float64 {
	r := s.DailyGoal - s.TodayIntake
	if r < 0 {
		return 0
	}
	return r
}

func (s TrackingState) GoalReached() bool {
	return s.DailyGoal > 0 && s.TodayIntake >= s.DailyGoal
}

func (s TrackingState) IsBottleMode() bool {
	return s.Unit == UnitBottle
}

func (s TrackingState) DisplayUnit() string {
	return s.Unit.Display()
}

// QuickAddAmounts are the one-tap amounts offered for the active unit.
func (s TrackingState) QuickAddAmounts() []float64 {
	if s.IsBottleMode() && s.BottleSize > 0 {
		return []float64{0.25 * s.BottleSize, 0.5 * s.BottleSize, 0.75 * s.BottleSize, s.BottleSize}
	}
	if s.Unit == UnitMilliliters {
		return []float64{100, 200, 300, 500}
	}
	return []float64{4, 8, 12, 16}
}

// IntakeByPeriod sums today's entries whose local hour falls in
// [startHour, endHour). An endHour past 24 wraps through midnight:
// the window becomes hour >= startHour or hour < endHour-24.
func (s TrackingState) IntakeByPeriod(startHour, endHour int) float64 {
	total := 0.0
	for _, entry := range s.Entries {
		hour := entry.Timestamp.Hour()
		var in bool
		if endHour > 24 {
			in = hour >= startHour || hour < endHour-24
		} else {
			in = hour >= startHour && hour < endHour
		}
		if in {
			total += entry.Amount
		}
	}
	return total
}

// Day-period boundaries. Evening wraps past midnight to 05:00.
const (
	MorningStart   = 5
	MorningEnd     = 12
	AfternoonStart = 12
	AfternoonEnd   = 17
	EveningStart   = 17
	EveningEnd     = 29
)

func (s TrackingState) MorningIntake() float64 {
	return s.IntakeByPeriod(MorningStart, MorningEnd)
}

func (s TrackingState) AfternoonIntake() float64 {
	return s.IntakeByPeriod(AfternoonStart, AfternoonEnd)
}

func (s TrackingState) EveningIntake() float64 {
	return s.IntakeByPeriod(EveningStart, EveningEnd)
}

// UpsertRecord replaces any record sharing the new record's date key and
// keeps the collection sorted newest first. Last write for a day wins.
func UpsertRecord(history []DailyRecord, record DailyRecord) []DailyRecord {
	out := make([]DailyRecord, 0, len(history)+1)
	for _, r := range history {
		if r.DateKey != record.DateKey {
			out = append(out, r)
		}
	}
	out = append(out, record)
	sortHistory(out)
	return out
}

func sortHistory(history []DailyRecord) {
	sort.Slice(history, func(i, j int) bool {
		return history[i].DateKey > history[j].DateKey
	})
}
