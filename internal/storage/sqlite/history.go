package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/sandevgo/factbot/internal/core"
)

// answerSeparator joins multi-line answers into one stored column.
const answerSeparator = "\n"

type HistoryRepo struct {
	db *sql.DB
}

func NewHistoryRepo(db *sql.DB) *HistoryRepo {
	return &HistoryRepo{db: db}
}

func (r *HistoryRepo) Record(ctx context.Context, sessionID, query string, res core.Result) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO history (session_id, query, kind, answers) VALUES (?, ?, ?, ?)`,
		sessionID, query, res.Kind.String(), strings.Join(res.Answers, answerSeparator),
	)
	if err != nil {
		return fmt.Errorf("failed to insert history entry: %w", err)
	}
	return nil
}

func (r *HistoryRepo) Recent(ctx context.Context, limit int) ([]core.HistoryEntry, error) {
	// Fetch the LAST 'limit' entries by ordering DESC
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, session_id, query, kind, answers, created_at FROM history ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []core.HistoryEntry
	for rows.Next() {
		var e core.HistoryEntry
		var answers sql.NullString
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Query, &e.Kind, &answers, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		e.Answers = answers.String
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Back to chronological order for display
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}
