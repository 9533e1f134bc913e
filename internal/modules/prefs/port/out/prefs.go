package out

import (
	"context"

	"aqualog/internal/modules/prefs/domain"
)

type PrefsStore interface {
	Load(ctx context.Context) (domain.Preferences, error)
	Save(ctx context.Context, prefs domain.Preferences) error
}
