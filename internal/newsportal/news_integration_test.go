//go:build integration

package newsportal

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/news-cms/internal/db"
	"github.com/daniilsolovey/news-cms/internal/document"
	"github.com/daniilsolovey/news-cms/internal/embed"
)

var testDB *pg.DB

func TestMain(m *testing.M) {
	database, err := db.SetupTestDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to set up test database. Make sure PostgreSQL is running:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
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

func withTx(t *testing.T) (context.Context, *Manager) {
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

	manager := NewNewsManager(
		db.New(tx),
		document.NewRenderer(embed.Default()),
		NewMetrics(prometheus.NewRegistry()),
	)
	manager.now = func() time.Time { return db.BaseTime }

	return ctx, manager
}

func TestManager_PublishScheduled_Integration(t *testing.T) {
	ctx, manager := withTx(t)

	result, err := manager.PublishScheduled(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	assert.ElementsMatch(t, []string{"Scheduled: Derby Preview", "Scheduled: Rate Decision"}, result.Titles)

	count, err := manager.NewsCount(ctx, NewsFilter{})
	require.NoError(t, err)
	assert.Equal(t, 9, count)

	again, err := manager.PublishScheduled(ctx)
	require.NoError(t, err)
	assert.Zero(t, again.Count)
}

func TestManager_NewsByID_Integration(t *testing.T) {
	ctx, manager := withTx(t)

	news, err := manager.NewsByID(ctx, 1, false)
	require.NoError(t, err)
	require.NotNil(t, news)
	require.NotNil(t, news.Rendered)
	assert.Contains(t, news.Rendered.HTML, "AI Breakthrough in Machine Learning")
	require.NotNil(t, news.Category)
	assert.Equal(t, "Technology", news.Category.Title)
}

func TestManager_CreateAndSchedule_Integration(t *testing.T) {
	ctx, manager := withTx(t)

	created, err := manager.CreateNews(ctx, NewsInput{
		Title:   "Embedded match",
		Content: []byte(`{"type":"doc","content":[{"type":"youtube","attrs":{"videoId":"dQw4w9WgXcQ"}}]}`),
	})
	require.NoError(t, err)

	scheduled, err := manager.ScheduleNews(ctx, created.ID, &db.BaseTime)
	require.NoError(t, err)
	require.NotNil(t, scheduled.ScheduledAt)

	result, err := manager.PublishScheduled(ctx)
	require.NoError(t, err)
	assert.Contains(t, result.Titles, "Embedded match")

	_, err = manager.ScheduleNews(ctx, created.ID, nil)
	assert.ErrorIs(t, err, ErrAlreadyPublished)

	_, err = manager.UpdateNews(ctx, created.ID, NewsInput{Title: "Embedded match"})
	assert.ErrorIs(t, err, ErrAlreadyPublished)
}
