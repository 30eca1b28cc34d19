package ctrl

import (
	"context"
	"io"

	"github.com/rs/zerolog"
)

type ListOptions struct {
	Format Format
	Sort   bool
}

type ListController struct {
	remote CodeStore
	logger zerolog.Logger
}

func NewListController(remote CodeStore, logger *zerolog.Logger) *ListController {
	return &ListController{
		remote: remote,
		logger: logger.With().Str("controller", "list").Logger(),
	}
}

func (c *ListController) Execute(ctx context.Context, w io.Writer, opts ListOptions) error {
	serializer, err := NewSerializer(opts.Format)
	if err != nil {
		return err
	}

	codes, err := c.remote.ListCodes(ctx)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to list codes")
		return err
	}

	c.logger.Debug().Int("count", len(codes)).Msg("listed codes")

	if opts.Sort {
		codes = codes.Sorted()
	}

	return serializer.Serialize(w, codes)
}
