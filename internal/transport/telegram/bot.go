// Package telegram dispatches Telegram updates to the bot's use cases and
// renders their results as messages, keyboards and photos.
package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/hetmobile/hetbot/internal/domain"
	logpkg "github.com/hetmobile/hetbot/internal/logger"
	"github.com/hetmobile/hetbot/internal/texts"
)

// API is the consumer interface over the Bot API client (ISP); tests plug
// in a recorder instead of a live connection.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Accounts is the registry surface the dispatcher needs.
type Accounts interface {
	List(ctx context.Context, userID int64) []string
	Add(ctx context.Context, userID int64, number string) error
	Remove(ctx context.Context, userID int64, number string) error
}

// Consumption is the lookup surface the dispatcher needs.
type Consumption interface {
	Today(ctx context.Context, userID int64, account string) (domain.Reading, error)
	Graph(ctx context.Context, userID int64, period domain.GraphPeriod) (domain.Graph, error)
}

// SessionStore tracks the per-user pending-input state.
type SessionStore interface {
	Get(userID int64) domain.SessionState
	Set(userID int64, st domain.SessionState)
	Clear(userID int64)
}

// CredentialStore records per-user provider API keys.
type CredentialStore interface {
	Set(userID int64, key string)
}

// Bot routes updates to handlers.
type Bot struct {
	api         API
	accounts    Accounts
	consumption Consumption
	sessions    SessionStore
	creds       CredentialStore
	texts       *texts.Table
	apiKeyFlow  bool
	logger      *zap.Logger
}

// Config wires the bot's collaborators.
type Config struct {
	API         API
	Accounts    Accounts
	Consumption Consumption
	Sessions    SessionStore
	Credentials CredentialStore
	Texts       *texts.Table
	// APIKeyFlow enables the per-user API key button and capture flow.
	APIKeyFlow bool
	Logger     *zap.Logger
}

// New creates a Bot.
func New(cfg Config) *Bot {
	return &Bot{
		api:         cfg.API,
		accounts:    cfg.Accounts,
		consumption: cfg.Consumption,
		sessions:    cfg.Sessions,
		creds:       cfg.Credentials,
		texts:       cfg.Texts,
		apiKeyFlow:  cfg.APIKeyFlow,
		logger:      cfg.Logger,
	}
}

// Run consumes the update channel until it closes or ctx is cancelled.
// Updates are handled one at a time, so a single user's messages are
// naturally serialized.
func (b *Bot) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.HandleUpdate(ctx, update)
		}
	}
}

// HandleUpdate dispatches a single update.
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		cb := update.CallbackQuery
		ctx = logpkg.ContextWithUser(ctx, b.logger, cb.From.ID)
		b.handleCallback(ctx, cb)
	case update.Message != nil && update.Message.Text != "":
		msg := update.Message
		ctx = logpkg.ContextWithUser(ctx, b.logger, msg.From.ID)
		b.handleMessage(ctx, msg)
	}
}

// SendText implements usecase/notify.Sender.
func (b *Bot) SendText(_ context.Context, chatID int64, text string) error {
	_, err := b.api.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

// reply sends text to the chat, logging delivery failures.
func (b *Bot) reply(ctx context.Context, chatID int64, text string) {
	if err := b.SendText(ctx, chatID, text); err != nil {
		logpkg.FromContext(ctx).Warn("sending reply failed", zap.Error(err))
	}
}

func (b *Bot) send(ctx context.Context, c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		logpkg.FromContext(ctx).Warn("sending message failed", zap.Error(err))
	}
}
