package usecase

import (
	"context"
	"fmt"

	"aqualog/internal/modules/prefs/dto"
	prefsin "aqualog/internal/modules/prefs/port/in"
	"aqualog/internal/modules/prefs/service"
	apperrors "aqualog/internal/platform/errors"
)

type Interactor struct {
	svc *service.PrefsService
}

func NewInteractor(svc *service.PrefsService) prefsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Get(context.Context) (dto.PreferencesOutput, error) {
	return i.output(), nil
}

func (i *Interactor) SetDarkMode(ctx context.Context, dark bool) (dto.PreferencesOutput, error) {
	if err := i.svc.SetDarkMode(ctx, dark); err != nil {
		return dto.PreferencesOutput{}, err
	}
	return i.output(), nil
}

func (i *Interactor) SetLanguage(ctx context.Context, lang string) (dto.PreferencesOutput, error) {
	if lang == "" {
		return dto.PreferencesOutput{}, fmt.Errorf("language must not be empty: %w", apperrors.ErrInvalidInput)
	}
	if err := i.svc.SetLanguage(ctx, lang); err != nil {
		return dto.PreferencesOutput{}, err
	}
	return i.output(), nil
}

func (i *Interactor) output() dto.PreferencesOutput {
	prefs := i.svc.Current()
	return dto.PreferencesOutput{
		DarkMode: prefs.EffectiveDarkMode(),
		Language: prefs.EffectiveLanguage(),
	}
}
