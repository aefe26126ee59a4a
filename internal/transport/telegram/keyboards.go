package telegram

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// Reply-keyboard button labels. The labels double as commands: a message
// whose text equals a label triggers the matching handler.
const (
	btnAddAccount    = "Add account"
	btnDeleteAccount = "Delete account"
	btnConsumption   = "Today's consumption"
	btnDailyGraph    = "Daily graph"
	btnMonthlyGraph  = "Monthly graph"
	btnEnterAPIKey   = "Enter API key"
)

// Inline callback data prefixes.
const (
	callbackDelete      = "delete:"
	callbackConsumption = "consumption:"
)

// mainKeyboard builds the persistent reply keyboard. The API-key button
// only appears when the remote provider needs per-user keys.
func mainKeyboard(withAPIKey bool) tgbotapi.ReplyKeyboardMarkup {
	rows := [][]tgbotapi.KeyboardButton{
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnAddAccount),
			tgbotapi.NewKeyboardButton(btnDeleteAccount),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnConsumption),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnDailyGraph),
			tgbotapi.NewKeyboardButton(btnMonthlyGraph),
		),
	}
	if withAPIKey {
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnEnterAPIKey),
		))
	}

	kb := tgbotapi.NewReplyKeyboard(rows...)
	kb.ResizeKeyboard = true
	return kb
}

// accountKeyboard builds an inline keyboard with one button per account,
// callback data "<prefix><account_number>".
func accountKeyboard(prefix string, numbers []string) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(numbers))
	for _, n := range numbers {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(n, prefix+n),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
