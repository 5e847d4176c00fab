package portal

import (
	"context"
	"wellness-wizard/internal/app/models"
	"wellness-wizard/internal/pkg/constvars"
	"wellness-wizard/internal/pkg/utils"

	"go.uber.org/zap"
)

func (c *portalClient) ListQuestions(ctx context.Context) ([]models.Question, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("portalClient.ListQuestions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, err := c.do(ctx, "portalClient.ListQuestions", constvars.MethodGet, constvars.PortalPathQuestions, "", nil)
	if err != nil {
		return nil, err
	}

	questions, err := normalizeQuestions(constvars.PortalPathQuestions, body)
	if err != nil {
		c.Log.Error("portalClient.ListQuestions error normalizing response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("portalClient.ListQuestions succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingQuestionCountKey, len(questions)),
	)
	return questions, nil
}
