package in

import (
	"context"

	"aqualog/internal/modules/prefs/dto"
)

type Usecase interface {
	Get(ctx context.Context) (dto.PreferencesOutput, error)
	SetDarkMode(ctx context.Context, dark bool) (dto.PreferencesOutput, error)
	SetLanguage(ctx context.Context, lang string) (dto.PreferencesOutput, error)
}
