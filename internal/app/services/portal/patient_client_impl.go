package portal

import (
	"context"
	"wellness-wizard/internal/app/models"
	"wellness-wizard/internal/pkg/constvars"
	"wellness-wizard/internal/pkg/utils"

	"go.uber.org/zap"
)

func (c *portalClient) ListPatients(ctx context.Context, token string) ([]models.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("portalClient.ListPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, err := c.do(ctx, "portalClient.ListPatients", constvars.MethodGet, constvars.PortalPathPatients, token, nil)
	if err != nil {
		return nil, err
	}

	patients, err := normalizePatients(constvars.PortalPathPatients, body)
	if err != nil {
		c.Log.Error("portalClient.ListPatients error normalizing response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("portalClient.ListPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, len(patients)),
	)
	return patients, nil
}
