package telegram

import (
	"context"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/hetmobile/hetbot/internal/domain"
	"github.com/hetmobile/hetbot/internal/repository/credential"
	"github.com/hetmobile/hetbot/internal/repository/session"
	"github.com/hetmobile/hetbot/internal/texts"
)

// mockAPI records outbound chattables instead of talking to Telegram.
type mockAPI struct {
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
	sendErr  error
}

func (m *mockAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if m.sendErr != nil {
		return tgbotapi.Message{}, m.sendErr
	}
	m.sent = append(m.sent, c)
	return tgbotapi.Message{}, nil
}

func (m *mockAPI) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	m.requests = append(m.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (m *mockAPI) lastMessage(t *testing.T) tgbotapi.MessageConfig {
	t.Helper()
	if len(m.sent) == 0 {
		t.Fatal("no messages were sent")
	}
	msg, ok := m.sent[len(m.sent)-1].(tgbotapi.MessageConfig)
	if !ok {
		t.Fatalf("last chattable is %T, not MessageConfig", m.sent[len(m.sent)-1])
	}
	return msg
}

func (m *mockAPI) lastEdit(t *testing.T) tgbotapi.EditMessageTextConfig {
	t.Helper()
	if len(m.sent) == 0 {
		t.Fatal("no messages were sent")
	}
	edit, ok := m.sent[len(m.sent)-1].(tgbotapi.EditMessageTextConfig)
	if !ok {
		t.Fatalf("last chattable is %T, not EditMessageTextConfig", m.sent[len(m.sent)-1])
	}
	return edit
}

// mockAccounts implements Accounts for tests.
type mockAccounts struct {
	listFn   func(ctx context.Context, userID int64) []string
	addFn    func(ctx context.Context, userID int64, number string) error
	removeFn func(ctx context.Context, userID int64, number string) error
	added    []string
}

func (m *mockAccounts) List(ctx context.Context, userID int64) []string {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil
}

func (m *mockAccounts) Add(ctx context.Context, userID int64, number string) error {
	if m.addFn != nil {
		if err := m.addFn(ctx, userID, number); err != nil {
			return err
		}
	}
	m.added = append(m.added, number)
	return nil
}

func (m *mockAccounts) Remove(ctx context.Context, userID int64, number string) error {
	if m.removeFn != nil {
		return m.removeFn(ctx, userID, number)
	}
	return nil
}

// mockConsumption implements Consumption for tests.
type mockConsumption struct {
	todayFn func(ctx context.Context, userID int64, account string) (domain.Reading, error)
	graphFn func(ctx context.Context, userID int64, period domain.GraphPeriod) (domain.Graph, error)
}

func (m *mockConsumption) Today(ctx context.Context, userID int64, account string) (domain.Reading, error) {
	if m.todayFn != nil {
		return m.todayFn(ctx, userID, account)
	}
	return domain.Reading{AccountNumber: account}, nil
}

func (m *mockConsumption) Graph(ctx context.Context, userID int64, period domain.GraphPeriod) (domain.Graph, error) {
	if m.graphFn != nil {
		return m.graphFn(ctx, userID, period)
	}
	return domain.Graph{}, domain.ErrGraphUnavailable
}

// fixture bundles a bot with its fakes and real in-memory stores.
type fixture struct {
	bot         *Bot
	api         *mockAPI
	accounts    *mockAccounts
	consumption *mockConsumption
	sessions    *session.Store
	creds       *credential.Store
}

func newFixture(apiKeyFlow bool) *fixture {
	f := &fixture{
		api:         &mockAPI{},
		accounts:    &mockAccounts{},
		consumption: &mockConsumption{},
		sessions:    session.New(),
		creds:       credential.New(),
	}
	f.bot = New(Config{
		API:         f.api,
		Accounts:    f.accounts,
		Consumption: f.consumption,
		Sessions:    f.sessions,
		Credentials: f.creds,
		Texts:       texts.Default(),
		APIKeyFlow:  apiKeyFlow,
		Logger:      zap.NewNop(),
	})
	return f
}

func textUpdate(userID int64, text string) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		Text: text,
		From: &tgbotapi.User{ID: userID},
		Chat: &tgbotapi.Chat{ID: userID},
	}}
}

func callbackUpdate(userID int64, data string) tgbotapi.Update {
	return tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:   "cb-1",
		Data: data,
		From: &tgbotapi.User{ID: userID},
		Message: &tgbotapi.Message{
			MessageID: 10,
			Chat:      &tgbotapi.Chat{ID: userID},
		},
	}}
}
