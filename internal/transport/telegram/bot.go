package telegram

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sandevgo/factbot/internal/config"
	"github.com/sandevgo/factbot/internal/core"
	"github.com/sandevgo/factbot/internal/service/dispatch"
	"github.com/sandevgo/factbot/pkg/conv"
	"github.com/sandevgo/factbot/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

// Bot answers queries over Telegram. Each chat gets its own dispatch
// session, so pronoun follow-ups stay per conversation.
type Bot struct {
	bot        *tele.Bot
	cfg        *config.TelegramConfig
	dispatcher *dispatch.Dispatcher
	history    core.HistoryRepo
	ownerID    int64

	mu       sync.Mutex
	sessions map[int64]*dispatch.Session
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	dispatcher *dispatch.Dispatcher,
	history core.HistoryRepo,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:        b,
		cfg:        cfg,
		dispatcher: dispatcher,
		history:    history,
		ownerID:    cfg.OwnerID,
		sessions:   make(map[int64]*dispatch.Session),
	}

	// Carry the signal-aware context with logger into handlers
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	// Middleware: Only allow the owner
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender().ID != bot.ownerID {
				return nil // Ignore unauthorized users
			}
			return next(c)
		}
	})

	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx)
	chatID := c.Chat().ID

	tokens := core.Tokenize(c.Text())
	if len(tokens) == 0 {
		return nil
	}

	_ = c.Notify(tele.Typing)

	session := b.sessionFor(chatID)
	res := b.dispatcher.Dispatch(ctx, session, tokens)
	b.record(ctx, chatID, c.Text(), res)

	if res.Kind == core.Terminated {
		// A poller cannot hang up; say goodbye and forget the context
		b.resetSession(chatID)
		return c.Send(core.MsgGoodbye)
	}

	reply := conv.TelegramHTML(strings.Join(res.Lines(), "\n"))
	if reply == "" {
		return nil
	}
	if err := c.Send(reply, tele.ModeHTML); err != nil {
		logger.Error().Err(err).Msg("failed to send telegram message")
		return err
	}
	return nil
}

func (b *Bot) sessionFor(chatID int64) *dispatch.Session {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.sessions[chatID]
	if !ok {
		s = dispatch.NewSession()
		b.sessions[chatID] = s
	}
	return s
}

func (b *Bot) resetSession(chatID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.sessions, chatID)
}

func (b *Bot) record(ctx context.Context, chatID int64, query string, res core.Result) {
	if b.history == nil {
		return
	}
	sessionID := fmt.Sprintf("telegram-%d", chatID)
	if err := b.history.Record(ctx, sessionID, query, res); err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("failed to record history")
	}
}
