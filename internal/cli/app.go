package cli

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"github.com/tjjh89017/codestore-go/internal/store"
)

var DefaultSet = wire.NewSet(
	NewApp,
)

// App is the root of a CLI session. It owns the one code store every
// command resolves from its context.
type App struct {
	store  *store.RemoteCodeStore
	logger zerolog.Logger
}

func NewApp(store *store.RemoteCodeStore, logger *zerolog.Logger) *App {
	return &App{
		store:  store,
		logger: logger.With().Str("component", "cli").Logger(),
	}
}

// Context provisions the logger and the code store on ctx.
func (a *App) Context(ctx context.Context) context.Context {
	a.logger.Debug().Str("base_url", a.store.BaseURL()).Msg("code store provided")

	ctx = a.logger.WithContext(ctx)
	return a.store.WithContext(ctx)
}
