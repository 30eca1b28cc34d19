package ctrl

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type ShowController struct {
	remote CodeStore
	logger zerolog.Logger
}

func NewShowController(remote CodeStore, logger *zerolog.Logger) *ShowController {
	return &ShowController{
		remote: remote,
		logger: logger.With().Str("controller", "show").Logger(),
	}
}

// Execute fetches every key concurrently and writes the contents in the
// order given. A single key is written verbatim; several keys get a
// "==> key <==" banner each.
func (c *ShowController) Execute(ctx context.Context, w io.Writer, keys ...string) error {
	if len(keys) == 0 {
		return ErrNoKeys
	}

	contents := make([]string, len(keys))

	g, gctx := errgroup.WithContext(ctx)
	for i, key := range keys {
		g.Go(func() error {
			content, err := c.remote.GetContent(gctx, key)
			if err != nil {
				c.logger.Error().Err(err).Str("key", key).Msg("failed to get code")
				return err
			}

			contents[i] = content
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if len(keys) == 1 {
		_, err := io.WriteString(w, contents[0])
		return err
	}

	for i, key := range keys {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		content := contents[i]
		if !strings.HasSuffix(content, "\n") {
			content += "\n"
		}

		if _, err := fmt.Fprintf(w, "==> %s <==\n%s", key, content); err != nil {
			return err
		}
	}

	return nil
}
