package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"aqualog/internal/modules/tracker/domain"
	trackerout "aqualog/internal/modules/tracker/port/out"
)

// stateFile mirrors the keyed layout of the mobile clients' key-value
// store, one JSON document holding every tracking key. Entries and
// history stay raw until decode so that one corrupt collection cannot
// poison the rest of the state.
type stateFile struct {
	SchemaVersion int             `json:"schema_version"`
	DailyGoal     float64         `json:"dailyGoal"`
	Unit          string          `json:"unit"`
	DateKey       string          `json:"dateKey"`
	TodayIntake   float64         `json:"todayIntake"`
	BottleSize    float64         `json:"bottleSize"`
	Entries       json.RawMessage `json:"entries"`
	History       json.RawMessage `json:"history"`
}

// FileStateStore persists the tracking state as a single JSON file.
// Every save is a read-modify-write of the whole document, which makes
// the multi-field day reset atomic at the file level.
type FileStateStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStateStore(path string) *FileStateStore {
	return &FileStateStore{path: path}
}

var _ trackerout.StateStore = (*FileStateStore)(nil)

func (s *FileStateStore) Load(_ context.Context) (domain.TrackingState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return domain.TrackingState{}, err
	}
	return decodeState(doc), nil
}

func (s *FileStateStore) SaveGoal(_ context.Context, goal float64) error {
	return s.update(func(doc *stateFile) {
		doc.DailyGoal = goal
	})
}

func (s *FileStateStore) SaveUnit(_ context.Context, unit domain.Unit) error {
	return s.update(func(doc *stateFile) {
		doc.Unit = string(unit)
	})
}

func (s *FileStateStore) SaveBottleSize(_ context.Context, size float64) error {
	return s.update(func(doc *stateFile) {
		doc.BottleSize = size
	})
}

func (s *FileStateStore) SaveToday(_ context.Context, intake float64, entries []domain.IntakeEntry) error {
	payload, err := marshalList(entries)
	if err != nil {
		return fmt.Errorf("marshal entries: %w", err)
	}
	return s.update(func(doc *stateFile) {
		doc.TodayIntake = intake
		doc.Entries = payload
	})
}

func (s *FileStateStore) SaveHistory(_ context.Context, history []domain.DailyRecord) error {
	payload, err := marshalList(history)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	return s.update(func(doc *stateFile) {
		doc.History = payload
	})
}

func (s *FileStateStore) ResetDay(_ context.Context, key domain.DayKey) error {
	return s.update(func(doc *stateFile) {
		doc.TodayIntake = 0
		doc.Entries = json.RawMessage("[]")
		doc.DateKey = string(key)
	})
}

func (s *FileStateStore) update(apply func(*stateFile)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	apply(&doc)
	doc.SchemaVersion = domain.SchemaVersion
	return s.write(doc)
}

// read returns the on-disk document, or a zero document when the file
// does not exist yet or is unreadable as JSON. Missing state is a normal
// first run, never an error.
func (s *FileStateStore) read() (stateFile, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return stateFile{}, nil
		}
		return stateFile{}, fmt.Errorf("read state: %w", err)
	}
	doc := stateFile{}
	if err := json.Unmarshal(payload, &doc); err != nil {
		return stateFile{}, nil
	}
	return doc, nil
}

func (s *FileStateStore) write(doc stateFile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

func decodeState(doc stateFile) domain.TrackingState {
	state := domain.TrackingState{
		DailyGoal:      doc.DailyGoal,
		BottleSize:     doc.BottleSize,
		CurrentDateKey: domain.DayKey(doc.DateKey),
		TodayIntake:    doc.TodayIntake,
		Unit:           domain.UnitMilliliters,
	}
	if unit, err := domain.ParseUnit(doc.Unit); err == nil {
		state.Unit = unit
	}
	state.Entries = decodeList[domain.IntakeEntry](doc.Entries)
	state.History = decodeList[domain.DailyRecord](doc.History)
	return state
}

// decodeList fails soft: malformed or missing serialized collections
// come back empty rather than surfacing an error.
func decodeList[T any](raw json.RawMessage) []T {
	if len(raw) == 0 {
		return nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return items
}

func marshalList[T any](items []T) (json.RawMessage, error) {
	if items == nil {
		return json.RawMessage("[]"), nil
	}
	return json.Marshal(items)
}
