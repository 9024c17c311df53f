package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/sandevgo/factbot/internal/config"
	"github.com/sandevgo/factbot/internal/core"
	"github.com/sandevgo/factbot/internal/service/dispatch"
	"github.com/sandevgo/factbot/internal/service/ui"
	"github.com/sandevgo/factbot/pkg/log"
)

const sessionID = "cli-local"

// ReadLine is the interactive query loop: read a question, dispatch,
// print the answers one per line.
type ReadLine struct {
	cfg        *config.AppConfig
	dispatcher *dispatch.Dispatcher
	history    core.HistoryRepo
	session    *dispatch.Session
	rl         *readline.Instance
}

func NewReadLine(dispatcher *dispatch.Dispatcher, history core.HistoryRepo, cfg *config.AppConfig) (*ReadLine, error) {
	// Ensure runtime directory exists
	if err := os.MkdirAll(cfg.RuntimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "Your query? ",
		HistoryFile:     filepath.Join(cfg.RuntimePath, "input_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "bye",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		cfg:        cfg,
		dispatcher: dispatcher,
		history:    history,
		session:    dispatch.NewSession(),
		rl:         rl,
	}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	fmt.Fprintln(r.rl.Stdout(), ui.TitleStyle.Render("Presidential Information System"))
	logger.Info().Msg("query loop started, say 'bye' to quit")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if len(line) == 0 {
					r.goodbye()
					return nil
				}
				continue
			} else if err == io.EOF {
				r.goodbye()
				return nil
			}
			return err
		}

		tokens := core.Tokenize(line)
		if len(tokens) == 0 {
			continue
		}

		res := r.dispatcher.Dispatch(ctx, r.session, tokens)
		r.record(ctx, line, res)

		if res.Kind == core.Terminated {
			r.goodbye()
			return nil
		}
		for _, answer := range res.Lines() {
			if res.Kind == core.Answered {
				fmt.Fprintln(r.rl.Stdout(), ui.AnswerStyle.Render(answer))
			} else {
				fmt.Fprintln(r.rl.Stdout(), ui.NoticeStyle.Render(answer))
			}
		}
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}

func (r *ReadLine) goodbye() {
	fmt.Fprintf(r.rl.Stdout(), "\n%s\n", core.MsgGoodbye)
}

func (r *ReadLine) record(ctx context.Context, query string, res core.Result) {
	if r.history == nil {
		return
	}
	if err := r.history.Record(ctx, sessionID, query, res); err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("failed to record history")
	}
}
