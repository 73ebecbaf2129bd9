package db

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/daniilsolovey/campus-companion/internal/campus"
	"github.com/daniilsolovey/campus-companion/internal/campus/storagetest"
	"github.com/go-pg/pg/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *pg.DB

func TestMain(m *testing.M) {
	dsn := TestDBURL()
	if dsn == "" {
		fmt.Fprintf(os.Stderr, "%s is not set, skipping postgres integration tests\n", TestDBURLEnv)
		os.Exit(m.Run())
	}

	database, err := SetupTestDB(context.Background(), dsn)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to set up test database. Make sure PostgreSQL is running:")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	testDB = database

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

func TestRepository_Conformance(t *testing.T) {
	requireDB(t)

	storagetest.Run(t, func(t *testing.T) campus.Storage {
		_, _, repo := withTx(t)
		return repo
	})
}

func TestRepository_SettingsRowIsSingleton(t *testing.T) {
	tx, ctx, repo := withTx(t)

	for range 3 {
		_, err := repo.Settings(ctx)
		require.NoError(t, err)
	}
	_, err := repo.UpdateSettings(ctx, campus.SettingsPatch{DarkMode: ptr(true)})
	require.NoError(t, err)

	count, err := tx.ModelContext(ctx, (*Setting)(nil)).Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRepository_PublishedAtKeepsInstant(t *testing.T) {
	_, ctx, repo := withTx(t)

	athens := time.FixedZone("EEST", 3*60*60)
	publishedAt := time.Date(2024, 10, 3, 15, 30, 0, 0, athens)

	created, err := repo.CreateNewsItem(ctx, campus.NewNewsItem{
		Title:       ptr("Εγγραφές"),
		Excerpt:     ptr("Ξεκινούν οι εγγραφές"),
		Content:     ptr("Οι εγγραφές ξεκινούν τη Δευτέρα."),
		Category:    ptr("Ακαδημαϊκά"),
		PublishedAt: publishedAt,
	})
	require.NoError(t, err)

	got, err := repo.NewsItem(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, publishedAt.Equal(got.PublishedAt))
	assert.Equal(t, time.UTC, got.PublishedAt.Location())
}

func TestRepository_QueryHook(t *testing.T) {
	requireDB(t)

	opt, err := pg.ParseURL(TestDBURL())
	require.NoError(t, err)

	database := pg.Connect(opt)
	t.Cleanup(func() { _ = database.Close() })
	database.AddQueryHook(NewQueryHook(slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))))

	repo := New(database)
	require.NoError(t, repo.Ping(context.Background()))

	_, err = repo.QuickLinks(context.Background())
	require.NoError(t, err)
}

func TestLikeEscaper(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"παπα", "παπα"},
		{"100%", `100\%`},
		{"a_b", `a\_b`},
		{`c:\dir`, `c:\\dir`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, likeEscaper.Replace(tt.in))
		})
	}
}

func ptr[T any](v T) *T { return &v }
