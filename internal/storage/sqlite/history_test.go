package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sandevgo/factbot/internal/core"
)

func newTestRepo(t *testing.T) *HistoryRepo {
	t.Helper()
	ctx := context.Background()

	db, err := NewDB(ctx, filepath.Join(t.TempDir(), "factbot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewHistoryRepo(db)
}

func TestHistoryRepo_RecordAndRecent(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	queries := []struct {
		query string
		res   core.Result
	}{
		{"when did abraham lincoln take office", core.Result{Kind: core.Answered, Answers: []string{"March 4, 1861"}}},
		{"what is the weather", core.Result{Kind: core.NotUnderstood}},
		{"what number president is grover cleveland", core.Result{Kind: core.Answered, Answers: []string{"22 & 24"}}},
	}
	for _, q := range queries {
		require.NoError(t, repo.Record(ctx, "cli", q.query, q.res))
	}

	entries, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Chronological order, oldest first
	require.Equal(t, "when did abraham lincoln take office", entries[0].Query)
	require.Equal(t, "answered", entries[0].Kind)
	require.Equal(t, "March 4, 1861", entries[0].Answers)
	require.Equal(t, "not_understood", entries[1].Kind)
	require.Empty(t, entries[1].Answers)
	require.Equal(t, "22 & 24", entries[2].Answers)
}

func TestHistoryRepo_RecentHonorsLimit(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	for _, q := range []string{"first", "second", "third", "fourth"} {
		require.NoError(t, repo.Record(ctx, "cli", q, core.Result{Kind: core.NoAnswers}))
	}

	entries, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// The last 'limit' entries, oldest of them first
	require.Equal(t, "third", entries[0].Query)
	require.Equal(t, "fourth", entries[1].Query)
}

func TestHistoryRepo_RecentEmpty(t *testing.T) {
	repo := newTestRepo(t)

	entries, err := repo.Recent(context.Background(), 5)
	require.NoError(t, err)
	require.Empty(t, entries)
}
