package dispatch

import (
	"context"
	"strings"

	"github.com/sandevgo/factbot/internal/core"
	"github.com/sandevgo/factbot/pkg/log"
)

// Session carries the single remembered subject used to resolve "he"
// and "they" in follow-up queries. Each transport connection owns its
// own Session, so concurrent sessions never share context.
type Session struct {
	memory string
}

func NewSession() *Session {
	return &Session{}
}

// Remembered exposes the current subject, mainly for tests and logging.
func (s *Session) Remembered() string {
	return s.memory
}

type Dispatcher struct {
	table []Entry
}

func New(table []Entry) *Dispatcher {
	return &Dispatcher{table: table}
}

// Dispatch scans the table in order and runs the first matching entry.
//
// When the capture holds a pronoun and the session remembers a subject,
// the handler gets the remembered subject and memory stays untouched;
// otherwise the handler gets the literal capture and the full captured
// subject is remembered afterwards. A pronoun with nothing remembered
// falls through to the literal capture, whose lookup fails into
// NoAnswers rather than crashing.
//
// Handler errors are logged and reported as NoAnswers: a missing
// infobox or an unmatched field must never end an interactive session.
func (d *Dispatcher) Dispatch(ctx context.Context, s *Session, tokens []string) core.Result {
	logger := log.FromCtx(ctx)

	for _, entry := range d.table {
		captured, ok := Match(entry.Pattern, tokens)
		if !ok {
			continue
		}
		if entry.Terminal {
			return core.Result{Kind: core.Terminated}
		}

		args := captured
		remember := true
		if hasPronoun(captured) && s.memory != "" {
			args = []string{s.memory}
			remember = false
		}

		answers, err := entry.Handler(ctx, args)
		if err != nil {
			logger.Warn().Err(err).
				Str("query", strings.Join(tokens, " ")).
				Msg("handler failed")
			return core.Result{Kind: core.NoAnswers}
		}

		if remember && len(captured) > 0 {
			s.memory = strings.Join(captured, " ")
		}
		if len(answers) == 0 {
			return core.Result{Kind: core.NoAnswers}
		}
		return core.Result{Kind: core.Answered, Answers: answers}
	}

	return core.Result{Kind: core.NotUnderstood}
}

func hasPronoun(tokens []string) bool {
	for _, t := range tokens {
		if t == "he" || t == "they" {
			return true
		}
	}
	return false
}
