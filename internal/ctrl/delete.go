package ctrl

import (
	"context"

	"github.com/rs/zerolog"
)

type DeleteController struct {
	remote CodeStore
	logger zerolog.Logger
}

func NewDeleteController(remote CodeStore, logger *zerolog.Logger) *DeleteController {
	return &DeleteController{
		remote: remote,
		logger: logger.With().Str("controller", "delete").Logger(),
	}
}

// Execute deletes keys in order and stops at the first failure.
func (c *DeleteController) Execute(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return ErrNoKeys
	}

	for _, key := range keys {
		if err := c.remote.DeleteContent(ctx, key); err != nil {
			c.logger.Error().Err(err).Str("key", key).Msg("failed to delete code")
			return err
		}

		c.logger.Info().Str("key", key).Msg("deleted code")
	}

	return nil
}
