package cli_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tjjh89017/codestore-go/internal/cli"
	"github.com/tjjh89017/codestore-go/internal/store"
)

func TestApp_Context(t *testing.T) {
	remote, err := store.New("")
	require.NoError(t, err)

	logger := zerolog.Nop()
	app := cli.NewApp(remote, &logger)

	ctx := app.Context(context.Background())

	resolved, err := store.Resolve(ctx)
	require.NoError(t, err)
	assert.Same(t, remote, resolved)

	child, cancel := context.WithCancel(ctx)
	defer cancel()

	resolved, err = store.Resolve(child)
	require.NoError(t, err)
	assert.Same(t, remote, resolved)

	assert.NotNil(t, zerolog.Ctx(ctx))
}
