package portal

import (
	"context"
	"fmt"
	"net/url"
	"wellness-wizard/internal/app/models"
	"wellness-wizard/internal/pkg/constvars"
	"wellness-wizard/internal/pkg/exceptions"
	"wellness-wizard/internal/pkg/utils"

	"go.uber.org/zap"
)

type generateReportResponse struct {
	envelope
	DownloadURL string `json:"download_url"`
}

func (c *portalClient) GenerateReport(ctx context.Context, assessmentID string) (*models.ReportLink, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("portalClient.GenerateReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
	)

	path := fmt.Sprintf(constvars.PortalPathGenerateReport, url.PathEscape(assessmentID))
	body, err := c.do(ctx, "portalClient.GenerateReport", constvars.MethodPost, path, "", nil)
	if err != nil {
		return nil, err
	}

	var response generateReportResponse
	if err := c.decode("portalClient.GenerateReport", path, body, &response); err != nil {
		return nil, err
	}
	if response.failed() || response.DownloadURL == "" {
		return nil, exceptions.ErrReportGenerationFailed(response.reason())
	}

	link := &models.ReportLink{DownloadURL: c.resolve(response.DownloadURL)}
	c.Log.Info("portalClient.GenerateReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingURLKey, link.DownloadURL),
	)
	return link, nil
}
