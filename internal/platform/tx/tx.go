package tx

import "context"

// Manager wraps transactional boundaries. The day-rollover bulk reset
// runs inside Within so it is never observable partially applied.
type Manager interface {
	Within(ctx context.Context, fn func(context.Context) error) error
}

type NoopManager struct{}

func (NoopManager) Within(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}
