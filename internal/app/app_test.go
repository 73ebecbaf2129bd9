package app

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/daniilsolovey/campus-companion/config"
	"github.com/daniilsolovey/campus-companion/internal/campus"
	"github.com/daniilsolovey/campus-companion/internal/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpenStorage(t *testing.T) {
	ctx := context.Background()

	cfg := config.Default()
	store, err := OpenStorage(ctx, cfg, noOpLogger())
	require.NoError(t, err)
	assert.IsType(t, &memstore.Store{}, store)

	cfg.App.Storage = "sqlite"
	_, err = OpenStorage(ctx, cfg, noOpLogger())
	assert.Error(t, err)
}

func TestNew_SeedsOnce(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	cfg := config.Default()
	cfg.App.Seed = true

	_, err := New(ctx, cfg, store, noOpLogger())
	require.NoError(t, err)
	a, err := New(ctx, cfg, store, noOpLogger())
	require.NoError(t, err)

	news, err := a.Manager.NewsItems(ctx)
	require.NoError(t, err)
	assert.Len(t, news, len(campus.SampleDataset().News))
}

func TestNew_WithoutSeed(t *testing.T) {
	ctx := context.Background()

	cfg := config.Default()
	cfg.App.Seed = false

	a, err := New(ctx, cfg, memstore.New(), noOpLogger())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/news", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestNew_ServesRESTAndRPC(t *testing.T) {
	ctx := context.Background()

	a, err := New(ctx, config.Default(), memstore.New(), noOpLogger())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/links", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var links []campus.QuickLink
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &links))
	assert.Len(t, links, len(campus.SampleDataset().Links))

	req := httptest.NewRequest(http.MethodPost, "/rpc/",
		strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"settings.get"}`))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Result campus.Settings `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, campus.DefaultSettings(), resp.Result)
}

func TestApp_GracefulShutdown(t *testing.T) {
	a, err := New(context.Background(), config.Default(), memstore.New(), noOpLogger())
	require.NoError(t, err)

	assert.NoError(t, a.GracefulShutdown(context.Background()))
}
