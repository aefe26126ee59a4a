package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/hetmobile/hetbot/internal/domain"
	logpkg "github.com/hetmobile/hetbot/internal/logger"
	"github.com/hetmobile/hetbot/internal/metrics"
)

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	chatID := msg.Chat.ID

	switch msg.Text {
	case "/start":
		metrics.UpdatesTotal.WithLabelValues("command").Inc()
		b.sessions.Clear(userID)
		greeting := tgbotapi.NewMessage(chatID, b.texts.Get("start"))
		greeting.ReplyMarkup = mainKeyboard(b.apiKeyFlow)
		b.send(ctx, greeting)

	case "/accounts":
		metrics.UpdatesTotal.WithLabelValues("command").Inc()
		numbers := b.accounts.List(ctx, userID)
		if len(numbers) == 0 {
			b.reply(ctx, chatID, b.texts.Get("no_accounts"))
			return
		}
		b.reply(ctx, chatID, b.texts.Get("accounts_header")+"\n"+strings.Join(numbers, "\n"))

	case btnAddAccount:
		metrics.UpdatesTotal.WithLabelValues("button").Inc()
		b.sessions.Set(userID, domain.SessionAwaitingAccount)
		b.reply(ctx, chatID, b.texts.Get("add_prompt"))

	case btnDeleteAccount:
		metrics.UpdatesTotal.WithLabelValues("button").Inc()
		b.promptAccountChoice(ctx, chatID, userID, "delete_prompt", callbackDelete)

	case btnConsumption:
		metrics.UpdatesTotal.WithLabelValues("button").Inc()
		b.promptAccountChoice(ctx, chatID, userID, "choose_account", callbackConsumption)

	case btnDailyGraph:
		metrics.UpdatesTotal.WithLabelValues("button").Inc()
		b.sendGraph(ctx, chatID, userID, domain.GraphDaily)

	case btnMonthlyGraph:
		metrics.UpdatesTotal.WithLabelValues("button").Inc()
		b.sendGraph(ctx, chatID, userID, domain.GraphMonthly)

	case btnEnterAPIKey:
		if !b.apiKeyFlow {
			b.handleFreeText(ctx, msg)
			return
		}
		metrics.UpdatesTotal.WithLabelValues("button").Inc()
		b.sessions.Set(userID, domain.SessionAwaitingAPIKey)
		b.reply(ctx, chatID, b.texts.Get("api_key_prompt"))

	default:
		b.handleFreeText(ctx, msg)
	}
}

// handleFreeText interprets non-command text through the user's session
// state. Text arriving with no pending prompt is silently ignored.
func (b *Bot) handleFreeText(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	chatID := msg.Chat.ID

	switch b.sessions.Get(userID) {
	case domain.SessionAwaitingAccount:
		metrics.UpdatesTotal.WithLabelValues("text").Inc()
		number := strings.TrimSpace(msg.Text)
		// The prompt is consumed either way: success and duplicate both
		// return the user to the neutral state.
		b.sessions.Clear(userID)

		err := b.accounts.Add(ctx, userID, number)
		switch {
		case err == nil:
			b.reply(ctx, chatID, b.texts.Render("account_added", map[string]string{"account": number}))
		case errors.Is(err, domain.ErrAccountExists):
			b.reply(ctx, chatID, b.texts.Render("account_exists", map[string]string{"account": number}))
		case errors.Is(err, domain.ErrInvalidAccountNumber):
			b.sessions.Set(userID, domain.SessionAwaitingAccount)
			b.reply(ctx, chatID, b.texts.Get("add_prompt"))
		default:
			logpkg.FromContext(ctx).Error("adding account failed", zap.Error(err))
			b.reply(ctx, chatID, b.texts.Get("fetch_failed"))
		}

	case domain.SessionAwaitingAPIKey:
		metrics.UpdatesTotal.WithLabelValues("text").Inc()
		b.creds.Set(userID, strings.TrimSpace(msg.Text))
		b.sessions.Clear(userID)
		b.reply(ctx, chatID, b.texts.Get("api_key_saved"))

	default:
		metrics.UpdatesTotal.WithLabelValues("ignored").Inc()
	}
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	metrics.UpdatesTotal.WithLabelValues("callback").Inc()

	// Acknowledge first so the client stops its spinner.
	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		logpkg.FromContext(ctx).Warn("answering callback failed", zap.Error(err))
	}

	userID := cb.From.ID
	chatID := cb.Message.Chat.ID
	messageID := cb.Message.MessageID

	switch {
	case strings.HasPrefix(cb.Data, callbackDelete):
		number := strings.TrimPrefix(cb.Data, callbackDelete)
		err := b.accounts.Remove(ctx, userID, number)
		switch {
		case err == nil:
			b.edit(ctx, chatID, messageID, b.texts.Render("account_deleted", map[string]string{"account": number}))
		case errors.Is(err, domain.ErrAccountNotFound):
			b.edit(ctx, chatID, messageID, b.texts.Render("account_not_found", map[string]string{"account": number}))
		default:
			logpkg.FromContext(ctx).Error("removing account failed", zap.Error(err))
			b.edit(ctx, chatID, messageID, b.texts.Get("fetch_failed"))
		}

	case strings.HasPrefix(cb.Data, callbackConsumption):
		number := strings.TrimPrefix(cb.Data, callbackConsumption)
		reading, err := b.consumption.Today(ctx, userID, number)
		switch {
		case err == nil:
			b.edit(ctx, chatID, messageID, b.renderReading(reading))
		case errors.Is(err, domain.ErrMissingCredential):
			b.edit(ctx, chatID, messageID, b.texts.Get("api_key_missing"))
		default:
			logpkg.FromContext(ctx).Warn("consumption lookup failed", zap.Error(err))
			b.edit(ctx, chatID, messageID, b.texts.Get("fetch_failed"))
		}
	}
}

// promptAccountChoice shows an inline keyboard over the user's accounts, or
// the no-accounts message when there is nothing to choose from.
func (b *Bot) promptAccountChoice(ctx context.Context, chatID, userID int64, promptKey, prefix string) {
	numbers := b.accounts.List(ctx, userID)
	if len(numbers) == 0 {
		b.reply(ctx, chatID, b.texts.Get("no_accounts"))
		return
	}

	prompt := tgbotapi.NewMessage(chatID, b.texts.Get(promptKey))
	prompt.ReplyMarkup = accountKeyboard(prefix, numbers)
	b.send(ctx, prompt)
}

func (b *Bot) sendGraph(ctx context.Context, chatID, userID int64, period domain.GraphPeriod) {
	graph, err := b.consumption.Graph(ctx, userID, period)
	switch {
	case errors.Is(err, domain.ErrMissingCredential):
		b.reply(ctx, chatID, b.texts.Get("api_key_missing"))
		return
	case errors.Is(err, domain.ErrGraphUnavailable):
		b.reply(ctx, chatID, b.texts.Get("graph_missing"))
		return
	case err != nil:
		logpkg.FromContext(ctx).Warn("graph lookup failed", zap.Error(err))
		b.reply(ctx, chatID, b.texts.Get("graph_missing"))
		return
	}

	var photo tgbotapi.PhotoConfig
	if graph.URL != "" {
		photo = tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(graph.URL))
	} else {
		photo = tgbotapi.NewPhoto(chatID, tgbotapi.FilePath(graph.LocalPath))
	}
	photo.Caption = b.texts.Get("graph_" + string(period) + "_caption")
	b.send(ctx, photo)
}

func (b *Bot) renderReading(r domain.Reading) string {
	warning := ""
	if r.LowBalance {
		warning = b.texts.Get("low_balance")
	}
	return b.texts.Render("consumption", map[string]string{
		"account":     r.AccountNumber,
		"consumption": fmt.Sprintf("%g", r.ConsumptionKWh),
		"balance":     r.BalanceString(),
		"warning":     warning,
	})
}

func (b *Bot) edit(ctx context.Context, chatID int64, messageID int, text string) {
	b.send(ctx, tgbotapi.NewEditMessageText(chatID, messageID, text))
}
