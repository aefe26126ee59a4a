package domain

// SessionState is the per-user pending-input marker consulted by the
// dispatcher to interpret free-text messages. It lives only in process
// memory and resets to SessionNone on restart.
type SessionState string

const (
	// SessionNone — no input pending; unknown free text is ignored.
	SessionNone SessionState = "none"
	// SessionAwaitingAccount — the next free-text message is an account
	// number to register.
	SessionAwaitingAccount SessionState = "awaiting_account_number"
	// SessionAwaitingAPIKey — the next free-text message is the user's
	// provider API key.
	SessionAwaitingAPIKey SessionState = "awaiting_api_key"
)

// Valid reports whether the state belongs to the closed set.
func (s SessionState) Valid() bool {
	switch s {
	case SessionNone, SessionAwaitingAccount, SessionAwaitingAPIKey:
		return true
	}
	return false
}
