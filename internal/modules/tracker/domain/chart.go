package domain

import "time"

// ChartPoint is one day in a chart series.
type ChartPoint struct {
	DateKey DayKey
	Intake  float64
	Goal    float64
}

// ChartData produces one point per day for the lastDays days ending at
// now, oldest first. Today uses the live totals; archived days use their
// record; past days with no record fill in as zero intake against the
// current goal (no historical goal exists for a day never archived).
func (s TrackingState) ChartData(now time.Time, lastDays int) []ChartPoint {
	if lastDays <= 0 {
		return nil
	}
	byKey := make(map[DayKey]DailyRecord, len(s.History))
	for _, record := range s.History {
		byKey[record.DateKey] = record
	}

	today := DayKeyOf(now)
	points := make([]ChartPoint, 0, lastDays)
	for offset := lastDays - 1; offset >= 0; offset-- {
		key := DayKeyOf(now.AddDate(0, 0, -offset))
		switch {
		case key == today:
			points = append(points, ChartPoint{DateKey: key, Intake: s.TodayIntake, Goal: s.DailyGoal})
		default:
			if record, ok := byKey[key]; ok {
				points = append(points, ChartPoint{DateKey: key, Intake: record.TotalIntake, Goal: record.Goal})
			} else {
				points = append(points, ChartPoint{DateKey: key, Intake: 0, Goal: s.DailyGoal})
			}
		}
	}
	return points
}
