package store

import (
	"fmt"
	"net/http"

	"github.com/google/wire"
	"github.com/tjjh89017/codestore-go/internal/config"
)

var DefaultSet = wire.NewSet(
	NewFromConfig,
)

func NewFromConfig(cfg *config.Config) (*RemoteCodeStore, error) {
	var opts []Option

	if len(cfg.Headers) > 0 {
		header := make(http.Header, len(cfg.Headers))
		for k, v := range cfg.Headers {
			header.Set(k, v)
		}
		opts = append(opts, WithHeader(header))
	}

	if cfg.Cookie != "" {
		cookies, err := http.ParseCookie(cfg.Cookie)
		if err != nil {
			return nil, fmt.Errorf("failed to parse cookie: %w", err)
		}
		opts = append(opts, WithCookies(cookies...))
	}

	return New(cfg.BaseURL, opts...)
}
