package ctrl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/tjjh89017/codestore-go/internal/store"
)

type PutController struct {
	remote CodeStore
	logger zerolog.Logger
}

func NewPutController(remote CodeStore, logger *zerolog.Logger) *PutController {
	return &PutController{
		remote: remote,
		logger: logger.With().Str("controller", "put").Logger(),
	}
}

// Execute stores everything readable from r under key and echoes the
// server reply to w.
func (c *PutController) Execute(ctx context.Context, w io.Writer, key string, r io.Reader) error {
	content, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read content for %q: %w", key, err)
	}

	resp, err := c.remote.PutCode(ctx, key, string(content))
	if err != nil {
		c.logger.Error().Err(err).Str("key", key).Msg("failed to put code")
		return err
	}

	c.logger.Info().Str("key", key).Int("size", len(content)).Msg("stored code")

	switch resp.Kind {
	case store.BodyJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(resp.JSON)
	default:
		_, err := fmt.Fprintln(w, resp.Text())
		return err
	}
}
