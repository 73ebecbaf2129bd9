package db

import (
	"context"
	"testing"

	"github.com/go-pg/pg/v10"
)

func requireDB(t *testing.T) {
	t.Helper()
	if testDB == nil {
		t.Skipf("%s is not set", TestDBURLEnv)
	}
}

// withTx returns a repository bound to a transaction that is rolled back when
// the test ends.
func withTx(t *testing.T) (*pg.Tx, context.Context, *Repository) {
	t.Helper()
	requireDB(t)
	ctx := context.Background()

	tx, err := testDB.Begin()
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Errorf("failed to rollback transaction: %v", err)
		}
	})

	repo := New(tx)
	return tx, ctx, repo
}
