//go:build integration

package db

import (
	"context"
	"testing"

	"github.com/go-pg/pg/v10"
)

func withTx(t *testing.T) (*pg.Tx, context.Context, *Repository) {
	t.Helper()
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

func intPtr(v int) *int {
	return &v
}

func assertSortedByPublishedAt(t *testing.T, news []News) {
	t.Helper()
	for i := 1; i < len(news); i++ {
		prev, cur := news[i-1].PublishedAt, news[i].PublishedAt
		if prev == nil || cur == nil {
			t.Fatalf("news %d or %d has no publishedAt", news[i-1].ID, news[i].ID)
		}
		if prev.Before(*cur) {
			t.Fatalf("news not sorted by publishedAt DESC at index %d: %v < %v", i, prev, cur)
		}
	}
}
