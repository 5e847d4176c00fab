package contracts

import (
	"context"
	"wellness-wizard/internal/app/models"
)

// CredentialReader is a read-only view over the credentials persisted by the login flow.
type CredentialReader interface {
	Credentials(ctx context.Context) (*models.Credentials, error)
}
