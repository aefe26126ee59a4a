package domain

// Account binds a utility account number to the Telegram user tracking it.
// Records are immutable: created on request, deleted on request, never
// otherwise mutated. No two records share the same (UserID, AccountNumber).
type Account struct {
	UserID        int64  `json:"user_id"`
	AccountNumber string `json:"account_number"`
}
