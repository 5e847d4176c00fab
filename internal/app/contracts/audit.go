package contracts

import (
	"context"
	"wellness-wizard/internal/app/models"
)

type AuditTrail interface {
	RecordTransition(ctx context.Context, transition *models.WizardTransition) error
}
