package store

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

const (
	DefaultContentType = "text/plain"
	jsonMediaType      = "application/json"
)

type BodyKind int

const (
	BodyText BodyKind = iota
	BodyJSON
)

func (k BodyKind) String() string {
	switch k {
	case BodyJSON:
		return "json"
	default:
		return "text"
	}
}

// Response is a successful (2xx) reply. Body always holds the raw bytes;
// JSON is set only when Kind is BodyJSON.
type Response struct {
	StatusCode  int
	ContentType string
	Kind        BodyKind
	Body        []byte
	JSON        any
}

func (r *Response) Text() string {
	return string(r.Body)
}

func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return errors.Join(ErrDecode, err)
	}

	return nil
}

// R starts a request bound to ctx. Store-wide headers, including the
// text/plain Content-Type default, are applied when it is sent.
func (s *RemoteCodeStore) R(ctx context.Context) *resty.Request {
	return s.client.R().SetContext(ctx)
}

// Request sends one request to path. Content-Type defaults to text/plain;
// store-wide headers and then header override it. Failures come back as
// errors wrapping ErrTransport, ErrStatus (as *StatusError) or ErrDecode.
func (s *RemoteCodeStore) Request(ctx context.Context, method, path string, payload io.Reader, header http.Header) (*Response, error) {
	req := s.R(ctx)
	if payload != nil {
		req.SetBody(payload)
	}
	mergeHeader(req.Header, header)

	return s.send(req, method, path)
}

func (s *RemoteCodeStore) send(req *resty.Request, method, path string) (*Response, error) {
	logger := zerolog.Ctx(req.Context())

	u, err := s.BuildURL(path)
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("method", method).Str("url", u.String()).Msg("send request to code store")
	resp, err := req.Execute(method, u.String())
	if err != nil {
		return nil, errors.Join(ErrTransport, err)
	}

	if !resp.IsSuccess() {
		logger.Debug().Str("method", method).Str("url", requestURL(resp, u)).Int("status", resp.StatusCode()).Msg("code store returned failure status")
		return nil, &StatusError{
			Method:     method,
			URL:        requestURL(resp, u),
			StatusCode: resp.StatusCode(),
			Status:     resp.Status(),
			Body:       resp.Body(),
		}
	}

	res := &Response{
		StatusCode:  resp.StatusCode(),
		ContentType: resp.Header().Get("Content-Type"),
		Kind:        BodyText,
		Body:        resp.Body(),
	}

	if isJSON(res.ContentType) {
		res.Kind = BodyJSON
		if len(res.Body) > 0 {
			if err := json.Unmarshal(res.Body, &res.JSON); err != nil {
				return nil, errors.Join(ErrDecode, err)
			}
		}
	}

	return res, nil
}

// requestURL is the URL actually sent, query parameters included.
func requestURL(resp *resty.Response, fallback *url.URL) string {
	if resp.RawResponse != nil && resp.RawResponse.Request != nil {
		return resp.RawResponse.Request.URL.String()
	}

	return fallback.String()
}

// mergeHeader replaces every key of src in dst.
func mergeHeader(dst, src http.Header) {
	for k, values := range src {
		dst.Del(k)
		for _, v := range values {
			dst.Add(k, v)
		}
	}
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mediaType == jsonMediaType
}
