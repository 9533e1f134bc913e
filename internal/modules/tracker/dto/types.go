package dto

type DrinkInput struct {
	Amount float64
}

type StatusOutput struct {
	DateKey     string
	TodayIntake float64
	Goal        float64
	Remaining   float64
	Progress    float64
	GoalReached bool
	Unit        string
	DisplayUnit string
	BottleMode  bool
	BottleSize  float64
	Streak      int
	Morning     float64
	Afternoon   float64
	Evening     float64
	QuickAdds   []float64
	EntryCount  int
}

type UndoOutput struct {
	Undone      bool
	Amount      float64
	TodayIntake float64
}

type ArchiveOutput struct {
	Archived    bool
	DateKey     string
	TotalIntake float64
	JournalPath string
}

type DayOutput struct {
	DateKey     string
	TotalIntake float64
	Goal        float64
	Unit        string
	GoalMet     bool
	Progress    float64
}

type ChartPointOutput struct {
	DateKey string
	Intake  float64
	Goal    float64
}

type StreakOutput struct {
	Current int
	Longest int
}
