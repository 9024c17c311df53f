package core

import "context"

// PageSource resolves a free-text subject to its page and returns the
// raw text of the page's first infobox block.
type PageSource interface {
	InfoboxText(ctx context.Context, subject string) (string, error)
}

// HistoryRepo records dispatched queries for the history command.
type HistoryRepo interface {
	Record(ctx context.Context, sessionID, query string, res Result) error
	Recent(ctx context.Context, limit int) ([]HistoryEntry, error)
}
