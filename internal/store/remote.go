package store

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/publicsuffix"
)

const DefaultBaseURL = "http://localhost:8080"

type options struct {
	httpClient *http.Client
	header     http.Header
	cookies    []*http.Cookie
}

type Option func(*options)

// WithHTTPClient replaces the underlying http.Client. The client is copied,
// and a copy without a Jar gets its own so that seeded and server issued
// cookies are replayed.
func WithHTTPClient(h *http.Client) Option {
	return func(o *options) {
		if h != nil {
			o.httpClient = h
		}
	}
}

// WithHeader adds default headers sent with every request.
func WithHeader(h http.Header) Option {
	return func(o *options) {
		for k, values := range h {
			for _, v := range values {
				o.header.Add(k, v)
			}
		}
	}
}

// WithCookies seeds session credentials for the base URL.
func WithCookies(cookies ...*http.Cookie) Option {
	return func(o *options) {
		for _, cookie := range cookies {
			c := *cookie
			if c.Path == "" {
				c.Path = "/"
			}
			o.cookies = append(o.cookies, &c)
		}
	}
}

// RemoteCodeStore talks to the code snippet service at a fixed base URL.
// It is immutable after New and safe for concurrent use.
type RemoteCodeStore struct {
	baseURL *url.URL
	client  *resty.Client
}

// New builds a store for baseURL, or DefaultBaseURL when it is empty.
// No request is made.
func New(baseURL string, opts ...Option) (*RemoteCodeStore, error) {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Join(ErrInvalidBaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("%w: %q is not an absolute url", ErrInvalidBaseURL, baseURL)
	}

	o := &options{header: make(http.Header)}
	for _, opt := range opts {
		opt(o)
	}

	client, err := newRestClient(parsed, o)
	if err != nil {
		return nil, err
	}

	return &RemoteCodeStore{
		baseURL: parsed,
		client:  client,
	}, nil
}

func newRestClient(baseURL *url.URL, o *options) (*resty.Client, error) {
	var client *resty.Client
	if o.httpClient != nil {
		hc := *o.httpClient
		client = resty.NewWithClient(&hc)
	} else {
		client = resty.New()
	}

	if client.GetClient().Jar == nil {
		jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if err != nil {
			return nil, fmt.Errorf("failed to create cookie jar: %w", err)
		}
		client.SetCookieJar(jar)
	}

	client.SetBaseURL(baseURL.String())
	client.SetHeader("Content-Type", DefaultContentType)
	mergeHeader(client.Header, o.header)

	if len(o.cookies) > 0 {
		client.GetClient().Jar.SetCookies(baseURL, o.cookies)
	}

	return client, nil
}

func (s *RemoteCodeStore) BaseURL() string {
	return s.baseURL.String()
}

// Client exposes the underlying rest client, mainly so tests can swap its
// transport.
func (s *RemoteCodeStore) Client() *resty.Client {
	return s.client
}

// BuildURL resolves path against the base URL per RFC 3986. Absolute URLs
// replace the base authority, absolute paths replace the base path.
func (s *RemoteCodeStore) BuildURL(path string) (*url.URL, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse path %q: %w", path, err)
	}

	return s.baseURL.ResolveReference(ref), nil
}
