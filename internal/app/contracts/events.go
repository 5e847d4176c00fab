package contracts

import (
	"context"
	"wellness-wizard/internal/app/models"
)

type EventPublisher interface {
	PublishAssessmentCompleted(ctx context.Context, event *models.AssessmentCompletedEvent) error
	PublishIridologyAnalyzed(ctx context.Context, event *models.IridologyAnalyzedEvent) error
}
