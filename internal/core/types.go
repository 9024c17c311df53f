package core

import "time"

const (
	BotName   = "factbot"
	UserAgent = "factbot/0.1 (+https://github.com/sandevgo/factbot)"
	Version   = "0.1.0"
)

// Canonical reply lines for the non-answer result kinds.
const (
	MsgNoAnswers     = "No answers"
	MsgNotUnderstood = "I don't understand"
	MsgGoodbye       = "So long!"
)

// ResultKind tags what a dispatch produced. Transports switch on it
// instead of catching control-flow signals.
type ResultKind int

const (
	Answered ResultKind = iota
	NoAnswers
	NotUnderstood
	Terminated
)

func (k ResultKind) String() string {
	switch k {
	case Answered:
		return "answered"
	case NoAnswers:
		return "no_answers"
	case NotUnderstood:
		return "not_understood"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Result is the uniform outcome of dispatching one query. Answers is
// non-empty exactly when Kind is Answered.
type Result struct {
	Kind    ResultKind
	Answers []string
}

// Lines returns what a console renders for the result, one entry per
// output line. Terminated renders nothing; the transport says goodbye.
func (r Result) Lines() []string {
	switch r.Kind {
	case Answered:
		return r.Answers
	case NoAnswers:
		return []string{MsgNoAnswers}
	case NotUnderstood:
		return []string{MsgNotUnderstood}
	default:
		return nil
	}
}

// HistoryEntry is one logged query with its outcome.
type HistoryEntry struct {
	ID        int64
	SessionID string
	Query     string
	Kind      string
	Answers   string
	CreatedAt time.Time
}
