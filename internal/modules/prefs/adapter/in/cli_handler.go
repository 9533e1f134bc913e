package in

import (
	"context"

	"aqualog/internal/modules/prefs/dto"
	prefsin "aqualog/internal/modules/prefs/port/in"
)

type CLIHandler struct {
	usecase prefsin.Usecase
}

func NewCLIHandler(usecase prefsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Get(ctx context.Context) (dto.PreferencesOutput, error) {
	return h.usecase.Get(ctx)
}

func (h CLIHandler) SetDarkMode(ctx context.Context, dark bool) (dto.PreferencesOutput, error) {
	return h.usecase.SetDarkMode(ctx, dark)
}

func (h CLIHandler) SetLanguage(ctx context.Context, lang string) (dto.PreferencesOutput, error) {
	return h.usecase.SetLanguage(ctx, lang)
}
