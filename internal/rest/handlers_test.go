package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	_ "github.com/daniilsolovey/campus-companion/docs"
	"github.com/daniilsolovey/campus-companion/internal/campus"
	"github.com/daniilsolovey/campus-companion/internal/memstore"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRouter(t *testing.T, store campus.Storage, staticDir string) *echo.Echo {
	t.Helper()
	manager := campus.NewManager(store, noOpLogger())
	return NewHandler(manager, noOpLogger(), staticDir).RegisterRoutes()
}

func newSeededRouter(t *testing.T) *echo.Echo {
	t.Helper()
	store := memstore.New()
	_, err := campus.NewManager(store, noOpLogger()).Seed(context.Background())
	require.NoError(t, err)
	return newTestRouter(t, store, "")
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHandler_News(t *testing.T) {
	e := newSeededRouter(t)

	t.Run("ListSortedByPublishedAtDesc", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/news", "")
		require.Equal(t, http.StatusOK, rec.Code)

		list := decode[[]campus.NewsItem](t, rec)
		require.Len(t, list, 3)
		for i := 1; i < len(list); i++ {
			assert.False(t, list[i].PublishedAt.After(list[i-1].PublishedAt))
		}
	})

	t.Run("CreateAndGet", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/news", `{
			"id": 999,
			"title": "Νέο εξάμηνο",
			"excerpt": "Έναρξη μαθημάτων",
			"content": "Τα μαθήματα ξεκινούν στις 2 Οκτωβρίου.",
			"category": "Ακαδημαϊκά",
			"publishedAt": "2024-10-01T09:00:00Z"
		}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		created := decode[campus.NewsItem](t, rec)
		assert.NotEqual(t, 999, created.ID)
		assert.False(t, created.IsImportant)

		rec = doRequest(e, http.MethodGet, "/api/news/"+strconv.Itoa(created.ID), "")
		require.Equal(t, http.StatusOK, rec.Code)
		got := decode[campus.NewsItem](t, rec)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, created.Title, got.Title)
		assert.True(t, created.PublishedAt.Equal(got.PublishedAt))
	})

	t.Run("NotFound", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/news/100000", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "News item not found", decode[ErrorResponse](t, rec).Message)
	})

	t.Run("NonNumericID", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/news/abc", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("MissingTitleStoresNothing", func(t *testing.T) {
		before := decode[[]campus.NewsItem](t, doRequest(e, http.MethodGet, "/api/news", ""))

		rec := doRequest(e, http.MethodPost, "/api/news", `{
			"excerpt": "x", "content": "y", "category": "z", "publishedAt": "2024-10-01T09:00:00Z"
		}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid news item data", decode[ErrorResponse](t, rec).Message)

		after := decode[[]campus.NewsItem](t, doRequest(e, http.MethodGet, "/api/news", ""))
		assert.Len(t, after, len(before))
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/news", `{"title":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_Teachers(t *testing.T) {
	e := newSeededRouter(t)

	all := decode[[]campus.Teacher](t, doRequest(e, http.MethodGet, "/api/teachers", ""))
	require.Len(t, all, 3)
	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t, all[i-1].Name, all[i].Name)
	}

	tests := []struct {
		name  string
		query url.Values
		want  []string
	}{
		{
			name:  "Search",
			query: url.Values{"search": {"παπα"}},
			want:  []string{"Δρ. Μαρία Παπαδάκη"},
		},
		{
			name:  "Department",
			query: url.Values{"department": {"Πληροφορική"}},
			want:  []string{"Δρ. Μαρία Παπαδάκη", "Καθ. Νίκος Αντωνίου"},
		},
		{
			name:  "SearchWinsOverDepartment",
			query: url.Values{"search": {"σπανού"}, "department": {"Πληροφορική"}},
			want:  []string{"Δρ. Κατερίνα Σπανού"},
		},
		{
			name:  "EmptySearchFallsBackToDepartment",
			query: url.Values{"search": {""}, "department": {"Μαθηματικά"}},
			want:  []string{"Δρ. Κατερίνα Σπανού"},
		},
		{
			name:  "UnknownDepartment",
			query: url.Values{"department": {"Χημεία"}},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(e, http.MethodGet, "/api/teachers?"+tt.query.Encode(), "")
			require.Equal(t, http.StatusOK, rec.Code)

			names := []string{}
			for _, teacher := range decode[[]campus.Teacher](t, rec) {
				names = append(names, teacher.Name)
			}
			assert.ElementsMatch(t, tt.want, names)
		})
	}

	t.Run("CreateWithoutOptionalFields", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/teachers",
			`{"name":"Alice Brown","email":"abrown@hmu.gr","department":"Φυσική"}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		created := decode[map[string]any](t, rec)
		assert.Contains(t, created, "websiteUrl")
		assert.Nil(t, created["websiteUrl"])

		rec = doRequest(e, http.MethodGet, "/api/teachers/"+strconv.Itoa(int(created["id"].(float64))), "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("CreateWithoutEmail", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/teachers", `{"name":"X","department":"Y"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid teacher data", decode[ErrorResponse](t, rec).Message)
	})

	t.Run("NotFound", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/teachers/100000", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Teacher not found", decode[ErrorResponse](t, rec).Message)
	})
}

func TestHandler_QuickLinks(t *testing.T) {
	e := newSeededRouter(t)

	list := decode[[]campus.QuickLink](t, doRequest(e, http.MethodGet, "/api/links", ""))
	require.Len(t, list, 5)

	rec := doRequest(e, http.MethodPost, "/api/links", `{
		"title": "Βιβλιοθήκη", "description": "Κατάλογος", "url": "https://lib.hmu.gr",
		"icon": "Library", "color": "bg-green-500"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[campus.QuickLink](t, rec)
	assert.True(t, created.IsExternal)

	rec = doRequest(e, http.MethodGet, "/api/links/"+strconv.Itoa(created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decode[campus.QuickLink](t, rec))

	rec = doRequest(e, http.MethodPost, "/api/links", `{"title": "no url"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid quick link data", decode[ErrorResponse](t, rec).Message)
}

func TestHandler_CreateAcceptsEmptyText(t *testing.T) {
	e := newSeededRouter(t)

	tests := []struct {
		name     string
		path     string
		body     string
		wantCode int
	}{
		{
			name: "NewsWithEmptyTitle",
			path: "/api/news",
			body: `{"title": "", "excerpt": "e", "content": "c", "category": "k", "publishedAt": "2024-10-01T09:00:00Z"}`,
			wantCode: http.StatusCreated,
		},
		{
			name:     "LinkWithEmptyDescription",
			path:     "/api/links",
			body:     `{"title": "t", "description": "", "url": "https://hmu.gr", "icon": "Mail", "color": "c"}`,
			wantCode: http.StatusCreated,
		},
		{
			name:     "BuildingWithEmptyLatitude",
			path:     "/api/buildings",
			body:     `{"name": "n", "description": "d", "latitude": "", "longitude": "25.1", "buildingType": "lab"}`,
			wantCode: http.StatusCreated,
		},
		{
			name:     "TeacherWithEmptyName",
			path:     "/api/teachers",
			body:     `{"name": "", "email": "e@hmu.gr", "department": "Πληροφορική"}`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(e, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
		})
	}
}

func TestHandler_CampusBuildings(t *testing.T) {
	e := newSeededRouter(t)

	list := decode[[]campus.CampusBuilding](t, doRequest(e, http.MethodGet, "/api/buildings", ""))
	require.Len(t, list, 3)

	rec := doRequest(e, http.MethodPost, "/api/buildings", `{
		"name": "Κτίριο Δ", "description": "Εργαστήρια", "latitude": "35.3187",
		"longitude": "25.1027", "buildingType": "lab", "facilities": ["WiFi", "Εργαστήρια"]
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[campus.CampusBuilding](t, rec)
	assert.Equal(t, "35.3187", created.Latitude)
	assert.Equal(t, []string{"WiFi", "Εργαστήρια"}, created.Facilities)

	rec = doRequest(e, http.MethodGet, "/api/buildings/"+strconv.Itoa(created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decode[campus.CampusBuilding](t, rec))

	rec = doRequest(e, http.MethodPost, "/api/buildings", `{"name": "no coordinates"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid building data", decode[ErrorResponse](t, rec).Message)

	rec = doRequest(e, http.MethodGet, "/api/buildings/100000", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_Settings(t *testing.T) {
	e := newTestRouter(t, memstore.New(), "")

	rec := doRequest(e, http.MethodGet, "/api/settings", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, campus.DefaultSettings(), decode[campus.Settings](t, rec))

	rec = doRequest(e, http.MethodPatch, "/api/settings", `{"darkMode": true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	want := campus.DefaultSettings()
	want.DarkMode = true
	assert.Equal(t, want, decode[campus.Settings](t, rec))

	rec = doRequest(e, http.MethodGet, "/api/settings", "")
	assert.Equal(t, want, decode[campus.Settings](t, rec))

	rec = doRequest(e, http.MethodPatch, "/api/settings", `{"language": "fr"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid settings data", decode[ErrorResponse](t, rec).Message)

	rec = doRequest(e, http.MethodPatch, "/api/settings", `{"darkMode": "yes"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// brokenStore fails every call the tests below make.
type brokenStore struct {
	campus.Storage
}

var errDisk = errors.New("disk on fire")

func (brokenStore) Ping(context.Context) error { return errDisk }
func (brokenStore) NewsItems(context.Context) ([]campus.NewsItem, error) {
	return nil, errDisk
}
func (brokenStore) CreateNewsItem(context.Context, campus.NewNewsItem) (*campus.NewsItem, error) {
	return nil, errDisk
}
func (brokenStore) Settings(context.Context) (*campus.Settings, error) {
	return nil, errDisk
}

func TestHandler_StorageFailure(t *testing.T) {
	e := newTestRouter(t, brokenStore{}, "")

	rec := doRequest(e, http.MethodGet, "/api/news", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to fetch news items", decode[ErrorResponse](t, rec).Message)

	rec = doRequest(e, http.MethodPost, "/api/news", `{
		"title": "t", "excerpt": "e", "content": "c", "category": "k", "publishedAt": "2024-10-01T09:00:00Z"
	}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = doRequest(e, http.MethodGet, "/api/settings", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = doRequest(e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandler_System(t *testing.T) {
	e := newTestRouter(t, memstore.New(), "")

	rec := doRequest(e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode[HealthResponse](t, rec).Status)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	rec = doRequest(e, http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	doc := decode[map[string]any](t, rec)
	assert.Contains(t, doc["paths"], "/api/news")
}

func TestHandler_StaticClient(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>campus</html>"), 0o600))

	e := newTestRouter(t, memstore.New(), dir)

	rec := doRequest(e, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "campus")

	rec = doRequest(e, http.MethodGet, "/teachers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "campus")

	rec = doRequest(e, http.MethodGet, "/api/news/100000", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "News item not found", decode[ErrorResponse](t, rec).Message)
}
