package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/daniilsolovey/campus-companion/internal/campus"
	"github.com/daniilsolovey/campus-companion/internal/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmkteam/zenrpc/v2"
)

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *zenrpc.Error   `json:"error"`
}

func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T, store campus.Storage) http.Handler {
	t.Helper()
	return New(noOpLogger(), campus.NewManager(store, noOpLogger()))
}

func call(t *testing.T, h http.Handler, method string, params any) rpcResponse {
	t.Helper()

	body := map[string]any{"jsonrpc": "2.0", "id": 1, "method": method}
	if params != nil {
		body["params"] = params
	}
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/rpc/", strings.NewReader(string(raw)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp rpcResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp
}

func result[T any](t *testing.T, resp rpcResponse) T {
	t.Helper()
	require.Nil(t, resp.Error)
	var v T
	require.NoError(t, json.Unmarshal(resp.Result, &v))
	return v
}

func TestServer_News(t *testing.T) {
	store := memstore.New()
	_, err := campus.NewManager(store, noOpLogger()).Seed(context.Background())
	require.NoError(t, err)
	h := newTestServer(t, store)

	list := result[[]campus.NewsItem](t, call(t, h, "news.list", nil))
	require.Len(t, list, 3)

	created := result[campus.NewsItem](t, call(t, h, "news.create", map[string]any{
		"item": map[string]any{
			"title":       "Εξεταστική",
			"excerpt":     "Πρόγραμμα εξετάσεων",
			"content":     "Ανακοινώθηκε το πρόγραμμα.",
			"category":    "Εξετάσεις",
			"publishedAt": "2024-12-01T08:00:00Z",
			"isImportant": true,
		},
	}))
	assert.True(t, created.IsImportant)

	got := result[campus.NewsItem](t, call(t, h, "news.byid", map[string]any{"id": created.ID}))
	assert.Equal(t, created.Title, got.Title)

	got = result[campus.NewsItem](t, call(t, h, "news.byid", []any{created.ID}))
	assert.Equal(t, created.ID, got.ID)

	resp := call(t, h, "news.byid", map[string]any{"id": 100000})
	require.NotNil(t, resp.Error)
	assert.Equal(t, http.StatusNotFound, resp.Error.Code)

	resp = call(t, h, "news.create", map[string]any{"item": map[string]any{"excerpt": "no title"}})
	require.NotNil(t, resp.Error)
	assert.Equal(t, http.StatusBadRequest, resp.Error.Code)

	list = result[[]campus.NewsItem](t, call(t, h, "news.list", nil))
	assert.Len(t, list, 4)
}

func TestServer_Teachers(t *testing.T) {
	store := memstore.New()
	_, err := campus.NewManager(store, noOpLogger()).Seed(context.Background())
	require.NoError(t, err)
	h := newTestServer(t, store)

	all := result[[]campus.Teacher](t, call(t, h, "teachers.list", nil))
	assert.Len(t, all, 3)

	found := result[[]campus.Teacher](t, call(t, h, "teachers.list", map[string]any{
		"filter": map[string]any{"search": "ΠΑΠΑ"},
	}))
	require.Len(t, found, 1)
	assert.Equal(t, "Δρ. Μαρία Παπαδάκη", found[0].Name)

	byDepartment := result[[]campus.Teacher](t, call(t, h, "teachers.list", map[string]any{
		"filter": map[string]any{"department": "Μαθηματικά"},
	}))
	require.Len(t, byDepartment, 1)
	assert.Equal(t, "Δρ. Κατερίνα Σπανού", byDepartment[0].Name)

	resp := call(t, h, "teachers.create", map[string]any{"teacher": map[string]any{"name": "No Email", "department": "X"}})
	require.NotNil(t, resp.Error)
	assert.Equal(t, http.StatusBadRequest, resp.Error.Code)
}

func TestServer_LinksAndBuildings(t *testing.T) {
	h := newTestServer(t, memstore.New())

	link := result[campus.QuickLink](t, call(t, h, "links.create", map[string]any{
		"link": map[string]any{
			"title": "Webmail", "description": "Ηλεκτρονικό ταχυδρομείο", "url": "https://webmail.hmu.gr",
			"icon": "Mail", "color": "bg-blue-500",
		},
	}))
	assert.True(t, link.IsExternal)
	assert.Equal(t, link, result[campus.QuickLink](t, call(t, h, "links.byid", map[string]any{"id": link.ID})))
	assert.Len(t, result[[]campus.QuickLink](t, call(t, h, "links.list", nil)), 1)

	building := result[campus.CampusBuilding](t, call(t, h, "buildings.create", map[string]any{
		"building": map[string]any{
			"name": "Κτίριο Α", "description": "Διοίκηση", "latitude": "35.3193", "longitude": "25.1026",
			"buildingType": "admin",
		},
	}))
	assert.Nil(t, building.Facilities)
	assert.Equal(t, link.ID+1, building.ID)
	assert.Len(t, result[[]campus.CampusBuilding](t, call(t, h, "buildings.list", nil)), 1)

	resp := call(t, h, "buildings.byid", map[string]any{"id": 100000})
	require.NotNil(t, resp.Error)
	assert.Equal(t, http.StatusNotFound, resp.Error.Code)
}

func TestServer_Settings(t *testing.T) {
	h := newTestServer(t, memstore.New())

	assert.Equal(t, campus.DefaultSettings(), result[campus.Settings](t, call(t, h, "settings.get", nil)))

	updated := result[campus.Settings](t, call(t, h, "settings.update", map[string]any{
		"patch": map[string]any{"language": "en", "eventsNotifications": true},
	}))
	want := campus.DefaultSettings()
	want.Language = campus.LanguageEnglish
	want.EventsNotifications = true
	assert.Equal(t, want, updated)

	resp := call(t, h, "settings.update", map[string]any{"patch": map[string]any{"language": "de"}})
	require.NotNil(t, resp.Error)
	assert.Equal(t, http.StatusBadRequest, resp.Error.Code)

	assert.Equal(t, want, result[campus.Settings](t, call(t, h, "settings.get", nil)))
}

type failingStore struct {
	campus.Storage
}

func (failingStore) NewsItems(context.Context) ([]campus.NewsItem, error) {
	return nil, errors.New("connection reset")
}

func TestServer_Errors(t *testing.T) {
	h := newTestServer(t, failingStore{})

	resp := call(t, h, "news.list", nil)
	require.NotNil(t, resp.Error)
	assert.Equal(t, http.StatusInternalServerError, resp.Error.Code)
	assert.Equal(t, "internal error", resp.Error.Message)

	resp = call(t, h, "news.delete", nil)
	require.NotNil(t, resp.Error)
	assert.Equal(t, zenrpc.MethodNotFound, resp.Error.Code)
}
