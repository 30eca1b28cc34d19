//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/tjjh89017/codestore-go/internal/cli"
	"github.com/tjjh89017/codestore-go/internal/config"
	"github.com/tjjh89017/codestore-go/internal/logger"
	"github.com/tjjh89017/codestore-go/internal/store"
)

func setup() (*cli.App, error) {
	wire.Build(
		config.Load,
		logger.DefaultSet,
		store.DefaultSet,
		cli.DefaultSet,
	)

	return nil, nil
}
