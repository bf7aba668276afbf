package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	insightsout "mdjournal/internal/modules/insights/adapter/out"
	"mdjournal/internal/modules/insights/domain"
	insightsservice "mdjournal/internal/modules/insights/service"
	insightsusecase "mdjournal/internal/modules/insights/usecase"
	journalout "mdjournal/internal/modules/journal/adapter/out"
	journalservice "mdjournal/internal/modules/journal/service"
	journalusecase "mdjournal/internal/modules/journal/usecase"
	"mdjournal/internal/platform/clock"
	"mdjournal/internal/platform/id"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Meta  struct {
		Count int `json:"count"`
	} `json:"meta"`
	Error string `json:"error"`
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	vault := t.TempDir()
	dbPath := filepath.Join(vault, ".mdjournal", "mdjournal.db")
	clk := clock.Fixed{At: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
	projector, err := journalout.NewSQLiteEntryProjector(dbPath)
	require.NoError(t, err)
	journal := journalusecase.NewInteractor(journalservice.NewEntryService(
		clk, id.UUID{},
		journalout.NewVaultEntryStore(vault, time.UTC),
		projector,
		journalout.NewFileDraftStore(filepath.Join(vault, ".mdjournal", "draft.json")),
		time.UTC, nil,
	))
	cache, err := insightsout.NewSQLiteCache(dbPath, clk)
	require.NoError(t, err)
	insights := insightsusecase.NewInteractor(insightsservice.NewInsightsService(
		domain.Default(), insightsout.NewJournalEntrySource(journal), cache, clk, time.UTC, 14, nil,
	))
	return NewServer(Config{Addr: "127.0.0.1:0"}, journal, insights, nil)
}

func do(t *testing.T, s *Server, method, path, body string) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env
}

func TestHealthz(t *testing.T) {
	t.Parallel()
	status, _ := do(t, newTestServer(t), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, status)
}

func TestEntryLifecycle(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	status, env := do(t, s, http.MethodPost, "/api/v1/entries", `{"content":"I feel calm and grateful today","mood":"good","tags":["Home"]}`)
	require.Equal(t, http.StatusCreated, status, env.Error)
	var created struct {
		ID        string   `json:"id"`
		Content   string   `json:"content"`
		Mood      string   `json:"mood"`
		MoodLabel string   `json:"mood_label"`
		Tags      []string `json:"tags"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "good", created.Mood)
	assert.Equal(t, "Good", created.MoodLabel)
	assert.Equal(t, []string{"home"}, created.Tags)

	status, env = do(t, s, http.MethodGet, "/api/v1/entries", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, env.Meta.Count)

	status, env = do(t, s, http.MethodPatch, "/api/v1/entries/"+created.ID, `{"mood":"great","tags":[]}`)
	require.Equal(t, http.StatusOK, status, env.Error)
	var patched struct {
		Content string   `json:"content"`
		Mood    string   `json:"mood"`
		Tags    []string `json:"tags"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &patched))
	assert.Equal(t, "great", patched.Mood)
	assert.Equal(t, created.Content, patched.Content)
	assert.Empty(t, patched.Tags)

	status, env = do(t, s, http.MethodGet, "/api/v1/insights/themes", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2, env.Meta.Count)

	status, env = do(t, s, http.MethodGet, "/api/v1/insights/clarity/"+created.ID, "")
	require.Equal(t, http.StatusOK, status, env.Error)

	status, _ = do(t, s, http.MethodDelete, "/api/v1/entries/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, status)

	status, env = do(t, s, http.MethodGet, "/api/v1/entries/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.NotEmpty(t, env.Error)
}

func TestCreateEntryValidation(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	status, env := do(t, s, http.MethodPost, "/api/v1/entries", `{"content":"   "}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, env.Error, "invalid input")

	status, _ = do(t, s, http.MethodPost, "/api/v1/entries", `{"content":"ok","mood":"ecstatic"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, s, http.MethodPost, "/api/v1/entries", `{not json`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestInsightsOnEmptyJournal(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	status, env := do(t, s, http.MethodGet, "/api/v1/insights/weekly", "")
	require.Equal(t, http.StatusOK, status)
	var weekly string
	require.NoError(t, json.Unmarshal(env.Data, &weekly))
	assert.Equal(t, domain.WeeklyNoEntries, weekly)

	status, env = do(t, s, http.MethodGet, "/api/v1/insights/prompts", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 3, env.Meta.Count)

	status, _ = do(t, s, http.MethodGet, "/api/v1/insights/clarity/missing", "")
	assert.Equal(t, http.StatusNotFound, status)

	status, env = do(t, s, http.MethodPost, "/api/v1/insights/sentiment", `{"text":"stressed and overwhelmed at work"}`)
	require.Equal(t, http.StatusOK, status)
	var sentiment struct {
		Score float64 `json:"score"`
		Label string  `json:"label"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &sentiment))
	assert.Equal(t, -1.0, sentiment.Score)
	assert.Equal(t, "negative", sentiment.Label)

	for _, path := range []string{"/api/v1/insights/series", "/api/v1/insights/anxiety", "/api/v1/insights/overview"} {
		status, _ = do(t, s, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, status, path)
	}
}

func TestUnknownRouteIsJSON404(t *testing.T) {
	t.Parallel()
	status, env := do(t, newTestServer(t), http.MethodGet, "/api/v1/nope", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.NotEmpty(t, env.Error)
}

func TestMoods(t *testing.T) {
	t.Parallel()
	status, env := do(t, newTestServer(t), http.MethodGet, "/api/v1/moods", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 7, env.Meta.Count)
	var moods []map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &moods))
	assert.Equal(t, "very-bad", moods[0]["value"])
	assert.Equal(t, "Peaceful", moods[6]["label"])
}
