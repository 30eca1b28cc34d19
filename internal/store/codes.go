package store

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/tjjh89017/codestore-go/internal/entity"
)

const (
	CodesPath   = "/codes"
	ContentPath = "/codes/content"
)

// KeyParam is the query parameter addressing a code. Its value is
// percent-encoded, so '&', '=' and '#' in keys survive.
const KeyParam = "key"

func (s *RemoteCodeStore) ListCodes(ctx context.Context) (entity.Codes, error) {
	resp, err := s.Request(ctx, http.MethodGet, CodesPath, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list codes: %w", err)
	}

	var codes entity.Codes
	if err := resp.Decode(&codes); err != nil {
		return nil, fmt.Errorf("failed to list codes: %w", err)
	}

	if codes == nil {
		codes = entity.Codes{}
	}

	return codes, nil
}

// GetContent returns the raw snippet body. A missing key yields an error
// matching ErrNotFound.
func (s *RemoteCodeStore) GetContent(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	zerolog.Ctx(ctx).Info().Str("key", key).Msg("get code from code store")
	resp, err := s.send(s.R(ctx).SetQueryParam(KeyParam, key), http.MethodGet, ContentPath)
	if err != nil {
		return "", fmt.Errorf("failed to get code %q: %w", key, err)
	}

	return resp.Text(), nil
}

func (s *RemoteCodeStore) DeleteContent(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	zerolog.Ctx(ctx).Info().Str("key", key).Msg("delete code from code store")
	if _, err := s.send(s.R(ctx).SetQueryParam(KeyParam, key), http.MethodDelete, ContentPath); err != nil {
		return fmt.Errorf("failed to delete code %q: %w", key, err)
	}

	return nil
}

// PutCode stores content under key as a text/plain body and returns the
// server reply as is.
func (s *RemoteCodeStore) PutCode(ctx context.Context, key string, content string) (*Response, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	zerolog.Ctx(ctx).Info().Str("key", key).Int("size", len(content)).Msg("store code to code store")
	req := s.R(ctx).SetQueryParam(KeyParam, key)
	if content != "" {
		req.SetBody(content)
	}
	resp, err := s.send(req, http.MethodPost, CodesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to put code %q: %w", key, err)
	}

	return resp, nil
}
