package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/matzehuels/domsearch/pkg/cache"
	"github.com/matzehuels/domsearch/pkg/domset"
	"github.com/matzehuels/domsearch/pkg/errors"
	dsio "github.com/matzehuels/domsearch/pkg/io"
	"github.com/matzehuels/domsearch/pkg/observability"
	"github.com/matzehuels/domsearch/pkg/pipeline"
)

const fourCycle = "c four-cycle\np ds 4 4\n1 2\n2 3\n3 4\n4 1\n"

func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	return New(pipeline.NewRunner(cache.NewNullCache(), nil, logger), nil)
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var e errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&e))
	return e
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(t).Handler(), http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestVersion(t *testing.T) {
	rec := do(t, newTestServer(t).Handler(), http.MethodGet, "/version", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Contains(t, body, "version")
	assert.Contains(t, body, "commit")
	assert.Equal(t, runtime.Version(), body["go_version"])
}

func TestSolve(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s.Handler(), http.MethodPost, "/solve?max_rounds=5&seed=3", fourCycle)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp struct {
		dsio.Solution
		BestKnown int `json:"best_known"`
		Workers   int `json:"workers"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	_, err := uuid.Parse(resp.ID)
	assert.NoError(t, err, "id %q is not a uuid", resp.ID)
	assert.Equal(t, 2, resp.Size)
	assert.Len(t, resp.Vertices, 2)
	assert.Equal(t, 2, resp.BestKnown)
	assert.Equal(t, 1, resp.Workers)
	assert.Equal(t, uint64(3), resp.Seed)
	assert.NotEmpty(t, resp.GraphHash)
}

func TestSolveResultIsDominating(t *testing.T) {
	body := "p ds 7 6\n1 2\n2 3\n3 4\n4 5\n5 6\n6 7\n"
	rec := do(t, newTestServer(t).Handler(), http.MethodPost, "/solve?max_rounds=50&workers=2", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var sol dsio.Solution
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&sol))

	g, err := dsio.ReadGraph(strings.NewReader(body))
	require.NoError(t, err)
	assert.NoError(t, domset.Verify(g, sol.Vertices))
}

func TestSolveIDsAreUnique(t *testing.T) {
	h := newTestServer(t).Handler()
	ids := make(map[string]bool)
	for i := 0; i < 3; i++ {
		rec := do(t, h, http.MethodPost, "/solve?max_rounds=1", fourCycle)
		require.Equal(t, http.StatusOK, rec.Code)
		var sol dsio.Solution
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&sol))
		assert.False(t, ids[sol.ID], "duplicate id %s", sol.ID)
		ids[sol.ID] = true
	}
}

func TestSolveRejectsBadRequests(t *testing.T) {
	tests := []struct {
		name   string
		target string
		body   string
		status int
		code   errors.Code
	}{
		{"malformed graph", "/solve", "p ds 2\n", http.StatusBadRequest, errors.ErrCodeInvalidFormat},
		{"self-loop", "/solve", "p ds 2 1\n1 1\n", http.StatusBadRequest, errors.ErrCodeInvalidGraph},
		{"bad timeout", "/solve?timeout=soon", fourCycle, http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"negative timeout", "/solve?timeout=-1s", fourCycle, http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"timeout too long", "/solve?timeout=1h", fourCycle, http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"bad seed", "/solve?seed=-1", fourCycle, http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"zero workers", "/solve?workers=0", fourCycle, http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"bad max_rounds", "/solve?max_rounds=x", fourCycle, http.StatusBadRequest, errors.ErrCodeInvalidInput},
	}

	h := newTestServer(t).Handler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, tt.target, tt.body)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decodeError(t, rec).Code)
		})
	}
}

func TestSolveBodyTooLarge(t *testing.T) {
	s := newTestServer(t)
	s.MaxBodyBytes = 16

	rec := do(t, s.Handler(), http.MethodPost, "/solve", fourCycle)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "16 bytes")
}

func TestSolveTooManyVertices(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s.Handler(), http.MethodPost, "/solve", "p ds 2000000000 0\n")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	e := decodeError(t, rec)
	assert.Equal(t, errors.ErrCodeInvalidInput, e.Code)
	assert.Contains(t, e.Message, "2000000000")

	s.MaxVertices = 3
	rec = do(t, s.Handler(), http.MethodPost, "/solve", fourCycle)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSolveMethodNotAllowed(t *testing.T) {
	rec := do(t, newTestServer(t).Handler(), http.MethodGet, "/solve", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(errors.ErrCodeInvalidConfig))
	assert.Equal(t, http.StatusNotFound, statusFor(errors.ErrCodeNotFound))
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.ErrCodeInvariant))
	assert.Equal(t, http.StatusInternalServerError, statusFor(""))
}

func TestRecoverPanics(t *testing.T) {
	s := newTestServer(t)
	h := s.recoverPanics(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := do(t, h, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, errors.ErrCodeInternal, decodeError(t, rec).Code)
}

type recordingHTTPHooks struct {
	observability.NoopHTTPHooks
	mu        sync.Mutex
	requests  []string
	responses []int
}

func (h *recordingHTTPHooks) OnRequest(_ context.Context, method, path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.requests = append(h.requests, method+" "+path)
}

func (h *recordingHTTPHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.responses = append(h.responses, status)
}

func TestHTTPHooks(t *testing.T) {
	hooks := &recordingHTTPHooks{}
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	h := newTestServer(t).Handler()
	do(t, h, http.MethodGet, "/healthz", "")
	do(t, h, http.MethodPost, "/solve", "garbage")

	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	assert.Equal(t, []string{"GET /healthz", "POST /solve"}, hooks.requests)
	assert.Equal(t, []int{http.StatusOK, http.StatusBadRequest}, hooks.responses)
}

func TestServerEndToEnd(t *testing.T) {
	defer goleak.VerifyNone(t)

	ts := httptest.NewServer(newTestServer(t).Handler())
	defer ts.Close()

	client := ts.Client()
	resp, err := client.Post(ts.URL+"/solve?timeout=100ms", "text/plain", strings.NewReader(fourCycle))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var sol dsio.Solution
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sol))
	assert.Equal(t, 2, sol.Size)
}
