package notify

import "context"

// UserSource enumerates the reminder audience.
type UserSource interface {
	Users(ctx context.Context) []int64
}

// Sender delivers a text message to a chat.
type Sender interface {
	SendText(ctx context.Context, chatID int64, text string) error
}
