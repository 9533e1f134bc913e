package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	out "aqualog/internal/modules/prefs/adapter/out"
	prefsin "aqualog/internal/modules/prefs/port/in"
	"aqualog/internal/modules/prefs/service"
	"aqualog/internal/modules/prefs/usecase"
	apperrors "aqualog/internal/platform/errors"
)

func newPrefs(t *testing.T, path string) prefsin.Usecase {
	t.Helper()
	svc, err := service.NewPrefsService(context.Background(), out.NewYAMLPrefsStore(path))
	if err != nil {
		t.Fatalf("new prefs service: %v", err)
	}
	return usecase.NewInteractor(svc)
}

func TestDefaultsAreDarkAndEnglish(t *testing.T) {
	t.Parallel()
	uc := newPrefs(t, filepath.Join(t.TempDir(), "prefs.yaml"))

	got, err := uc.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.DarkMode || got.Language != "en" {
		t.Fatalf("unexpected defaults: %+v", got)
	}
}

func TestLightChoiceSurvivesReload(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	uc := newPrefs(t, path)
	ctx := context.Background()

	got, err := uc.SetDarkMode(ctx, false)
	if err != nil {
		t.Fatalf("set dark mode: %v", err)
	}
	if got.DarkMode {
		t.Fatalf("explicit light choice must stick: %+v", got)
	}

	// A fresh service reading the same file must not fall back to dark.
	reloaded, err := newPrefs(t, path).Get(ctx)
	if err != nil {
		t.Fatalf("get after reload: %v", err)
	}
	if reloaded.DarkMode {
		t.Fatalf("light choice lost across reload: %+v", reloaded)
	}
}

func TestSetLanguage(t *testing.T) {
	t.Parallel()
	uc := newPrefs(t, filepath.Join(t.TempDir(), "prefs.yaml"))
	ctx := context.Background()

	if _, err := uc.SetLanguage(ctx, ""); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("empty language should be rejected, got %v", err)
	}
	got, err := uc.SetLanguage(ctx, "de")
	if err != nil {
		t.Fatalf("set language: %v", err)
	}
	if got.Language != "de" {
		t.Fatalf("unexpected language: %+v", got)
	}
}
