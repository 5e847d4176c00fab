package audit

import (
	"context"
	"errors"
	"testing"
	"wellness-wizard/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type fakeInserter struct {
	documents []interface{}
	err       error
}

func (f *fakeInserter) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.documents = append(f.documents, document)
	return &mongo.InsertOneResult{InsertedID: len(f.documents)}, nil
}

func TestMongoAuditTrail(t *testing.T) {
	t.Run("Transition is stamped and inserted", func(t *testing.T) {
		inserter := &fakeInserter{}
		trail := &mongoAuditTrail{Log: zap.NewNop(), Collection: inserter}

		transition := &models.WizardTransition{WizardID: "w1", FromPhase: "selecting_patient", ToPhase: "in_progress"}
		require.NoError(t, trail.RecordTransition(context.Background(), transition))
		require.Len(t, inserter.documents, 1)
		assert.False(t, transition.CreatedAt.IsZero(), "CreatedAt should be set")
	})

	t.Run("Insert failure is returned", func(t *testing.T) {
		trail := &mongoAuditTrail{Log: zap.NewNop(), Collection: &fakeInserter{err: errors.New("no primary")}}
		err := trail.RecordTransition(context.Background(), &models.WizardTransition{WizardID: "w1"})
		assert.Error(t, err)
	})
}
