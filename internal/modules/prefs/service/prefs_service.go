package service

import (
	"context"
	"sync"

	"aqualog/internal/modules/prefs/domain"
	prefsout "aqualog/internal/modules/prefs/port/out"
)

// PrefsService keeps preferences in memory and writes every change
// through to the store.
type PrefsService struct {
	mu    sync.Mutex
	prefs domain.Preferences
	store prefsout.PrefsStore
}

func NewPrefsService(ctx context.Context, store prefsout.PrefsStore) (*PrefsService, error) {
	prefs, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &PrefsService{prefs: prefs, store: store}, nil
}

func (s *PrefsService) Current() domain.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}

func (s *PrefsService) SetDarkMode(ctx context.Context, dark bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs.DarkMode = dark
	s.prefs.DarkModeSet = true
	return s.store.Save(ctx, s.prefs)
}

func (s *PrefsService) SetLanguage(ctx context.Context, lang string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs.Language = lang
	return s.store.Save(ctx, s.prefs)
}
