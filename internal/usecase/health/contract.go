package health

import "context"

// StorageChecker checks the account/usage file storage.
type StorageChecker interface {
	Check() error
}

// ProviderChecker checks consumption provider availability.
type ProviderChecker interface {
	HealthCheck(ctx context.Context) error
}
