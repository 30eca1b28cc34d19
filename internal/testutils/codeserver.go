package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/tjjh89017/codestore-go/internal/entity"
)

const (
	TextContentType = "text/plain; charset=UTF-8"
	JSONContentType = "application/json; charset=UTF-8"
)

type RecordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Cookies  []*http.Cookie
	Body     string
}

// CodeServer is an in-memory stand-in for the code snippet service. Listing
// keeps insertion order.
type CodeServer struct {
	*httptest.Server

	mutex    sync.RWMutex
	keys     []string
	codes    map[string]string
	forced   map[string]int
	session  *http.Cookie
	requests []RecordedRequest
}

func NewCodeServer(t testing.TB) *CodeServer {
	t.Helper()

	s := &CodeServer{
		codes:  make(map[string]string),
		forced: make(map[string]int),
	}
	s.Server = httptest.NewServer(s.router())
	t.Cleanup(s.Close)

	return s
}

func (s *CodeServer) router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.record, s.injectFailure, s.setSession)

	r.Get("/", s.health)
	r.Get("/codes", s.list)
	r.Post("/codes", s.post)
	r.Get("/codes/content", s.get)
	r.Delete("/codes/content", s.delete)

	return r
}

func (s *CodeServer) Seed(codes ...entity.Code) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, code := range codes {
		s.putLocked(code.Key, code.Content)
	}
}

func (s *CodeServer) Content(key string) (string, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	content, ok := s.codes[key]
	return content, ok
}

// FailWith makes every method+path request answer with status.
func (s *CodeServer) FailWith(method, path string, status int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.forced[method+" "+path] = status
}

// IssueSession makes every response set cookie.
func (s *CodeServer) IssueSession(cookie *http.Cookie) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.session = cookie
}

func (s *CodeServer) Requests() []RecordedRequest {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	requests := make([]RecordedRequest, len(s.requests))
	copy(requests, s.requests)
	return requests
}

func (s *CodeServer) LastRequest() RecordedRequest {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.requests) == 0 {
		return RecordedRequest{}
	}
	return s.requests[len(s.requests)-1]
}

func (s *CodeServer) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))

		s.mutex.Lock()
		s.requests = append(s.requests, RecordedRequest{
			Method:   r.Method,
			Path:     r.URL.Path,
			RawQuery: r.URL.RawQuery,
			Header:   r.Header.Clone(),
			Cookies:  r.Cookies(),
			Body:     string(body),
		})
		s.mutex.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (s *CodeServer) injectFailure(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mutex.RLock()
		status, ok := s.forced[r.Method+" "+r.URL.Path]
		s.mutex.RUnlock()

		if ok {
			http.Error(w, http.StatusText(status), status)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *CodeServer) setSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mutex.RLock()
		session := s.session
		s.mutex.RUnlock()

		if session != nil {
			http.SetCookie(w, session)
		}

		next.ServeHTTP(w, r)
	})
}

func (s *CodeServer) health(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, "OK")
}

func (s *CodeServer) list(w http.ResponseWriter, r *http.Request) {
	s.mutex.RLock()
	codes := make(entity.Codes, 0, len(s.keys))
	for _, key := range s.keys {
		codes = append(codes, entity.NewCode(key, s.codes[key]))
	}
	s.mutex.RUnlock()

	w.Header().Set("Content-Type", JSONContentType)
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(codes)
}

func (s *CodeServer) post(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeText(w, http.StatusBadRequest, "no key")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeText(w, http.StatusInternalServerError, "internal server error")
		return
	}

	s.mutex.Lock()
	s.putLocked(key, string(body))
	s.mutex.Unlock()

	writeText(w, http.StatusOK, key)
}

func (s *CodeServer) get(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeText(w, http.StatusBadRequest, "no key")
		return
	}

	content, ok := s.Content(key)
	if !ok {
		writeText(w, http.StatusNotFound, "not found")
		return
	}

	writeText(w, http.StatusOK, content)
}

func (s *CodeServer) delete(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeText(w, http.StatusBadRequest, "no key")
		return
	}

	s.mutex.Lock()
	if _, ok := s.codes[key]; ok {
		delete(s.codes, key)
		for i, k := range s.keys {
			if k == key {
				s.keys = append(s.keys[:i], s.keys[i+1:]...)
				break
			}
		}
	}
	s.mutex.Unlock()

	writeText(w, http.StatusOK, key)
}

func (s *CodeServer) putLocked(key, content string) {
	if _, ok := s.codes[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.codes[key] = content
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", TextContentType)
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}
