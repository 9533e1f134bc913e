package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"aqualog/internal/modules/prefs/domain"
	prefsout "aqualog/internal/modules/prefs/port/out"
)

// YAMLPrefsStore persists preferences as a small YAML file. A missing
// or unparseable file loads as zero preferences rather than failing.
type YAMLPrefsStore struct {
	mu   sync.Mutex
	path string
}

func NewYAMLPrefsStore(path string) prefsout.PrefsStore {
	return &YAMLPrefsStore{path: path}
}

func (s *YAMLPrefsStore) Load(context.Context) (domain.Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var prefs domain.Preferences
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return prefs, nil
	}
	if err := yaml.Unmarshal(raw, &prefs); err != nil {
		return domain.Preferences{}, nil
	}
	return prefs, nil
}

func (s *YAMLPrefsStore) Save(_ context.Context, prefs domain.Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := yaml.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	return nil
}
