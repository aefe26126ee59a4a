package domain

import "errors"

// Sentinel errors of the bot core. Transport maps them to user-facing texts,
// everything unwrapped falls through to a generic failure message.
var (
	// ErrAccountExists — attempt to register a (user, account) pair twice.
	ErrAccountExists = errors.New("account already exists")

	// ErrAccountNotFound — the account is not registered for the user.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidAccountNumber — the supplied account number is empty after trimming.
	ErrInvalidAccountNumber = errors.New("invalid account number")

	// ErrProviderUnavailable — non-200 response, transport failure or a
	// malformed body from the consumption provider.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrMissingCredential — a remote lookup was attempted before the user
	// stored an API key.
	ErrMissingCredential = errors.New("missing api key")

	// ErrNoAccounts — the operation needs at least one registered account.
	ErrNoAccounts = errors.New("no accounts registered")

	// ErrGraphUnavailable — neither a remote graph URL nor a local image exists.
	ErrGraphUnavailable = errors.New("graph unavailable")
)
