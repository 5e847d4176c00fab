package audit

import (
	"context"
	"wellness-wizard/internal/app/contracts"
	"wellness-wizard/internal/app/models"
	"wellness-wizard/internal/pkg/constvars"
	"wellness-wizard/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type documentInserter interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

type mongoAuditTrail struct {
	Log        *zap.Logger
	Collection documentInserter
}

func NewMongoAuditTrail(logger *zap.Logger, client *mongo.Client, dbName string) contracts.AuditTrail {
	collection := client.Database(dbName).Collection(constvars.AuditCollectionWizardTransitions)
	return &mongoAuditTrail{
		Log:        logger,
		Collection: collection,
	}
}

func (a *mongoAuditTrail) RecordTransition(ctx context.Context, transition *models.WizardTransition) error {
	transition.SetCreatedAtUpdatedAt()

	_, err := a.Collection.InsertOne(ctx, transition)
	if err != nil {
		a.Log.Error("mongoAuditTrail.RecordTransition error",
			zap.String(constvars.LoggingCollectionNameKey, constvars.AuditCollectionWizardTransitions),
			zap.String(constvars.LoggingWizardIDKey, transition.WizardID),
			zap.Error(err),
		)
		return exceptions.ErrMongoDBInsertDocument(err, constvars.AuditCollectionWizardTransitions)
	}

	a.Log.Debug("mongoAuditTrail.RecordTransition succeeded",
		zap.String(constvars.LoggingWizardIDKey, transition.WizardID),
		zap.String(constvars.LoggingPreviousPhaseKey, transition.FromPhase),
		zap.String(constvars.LoggingPhaseKey, transition.ToPhase),
	)
	return nil
}
