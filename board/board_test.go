package board

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.hackfix.me/dashfeed/web/server/handler"
)

var startedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestBoard(uptime time.Duration) *Board {
	return New(startedAt, func() time.Time {
		return startedAt.Add(uptime)
	})
}

func TestBoardRoutes(t *testing.T) {
	t.Parallel()

	exp := []Route{
		{Method: "GET", Path: "/goroutines", Variant: "number"},
		{Method: "GET", Path: "/heap", Variant: "meter"},
		{Method: "GET", Path: "/memory", Variant: "pie"},
		{Method: "GET", Path: "/uptime", Variant: "text"},
	}
	assert.Equal(t, exp, newTestBoard(0).Routes())
}

func TestBoardUptime(t *testing.T) {
	t.Parallel()

	h := newTestBoard(26*time.Hour + 3*time.Minute).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/uptime?format=2", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, `{"item":[{"text":"up 1d2h3m","type":0}]}`, rec.Body.String())
}

func TestBoardGoroutines(t *testing.T) {
	t.Parallel()

	h := newTestBoard(0).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/goroutines?format=2", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Item []struct {
			Value int `json:"value"`
		} `json:"item"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Len(t, payload.Item, 1)
	assert.Positive(t, payload.Item[0].Value)
}

func TestBoardHeap(t *testing.T) {
	t.Parallel()

	h := newTestBoard(0).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/heap?format=2", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Item uint64 `json:"item"`
		Max  struct {
			Value uint64 `json:"value"`
		} `json:"max"`
		Min struct {
			Value uint64 `json:"value"`
		} `json:"min"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Positive(t, payload.Item)
	assert.GreaterOrEqual(t, payload.Max.Value, payload.Item)
	assert.Zero(t, payload.Min.Value)
}

func TestBoardMemory(t *testing.T) {
	t.Parallel()

	h := newTestBoard(0).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/memory?format=2", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Item []struct {
			Value  uint64 `json:"value"`
			Label  string `json:"label"`
			Colour string `json:"colour"`
		} `json:"item"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Len(t, payload.Item, 3)

	labels := make([]string, 0, len(payload.Item))
	for _, seg := range payload.Item {
		labels = append(labels, seg.Label)
		assert.NotEmpty(t, seg.Colour)
	}
	assert.Equal(t, []string{"heap", "stack", "other"}, labels)
}

// All board widgets honor the handler options, e.g. the API key gate.
func TestBoardAuth(t *testing.T) {
	t.Parallel()

	h := newTestBoard(0).Handler(handler.WithAuth(handler.APIKeyAuth("abc")))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/uptime", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "API key incorrect\n", rec.Body.String())
}
