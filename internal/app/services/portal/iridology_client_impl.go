package portal

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"wellness-wizard/internal/app/models"
	"wellness-wizard/internal/pkg/constvars"
	"wellness-wizard/internal/pkg/exceptions"
	"wellness-wizard/internal/pkg/utils"

	"go.uber.org/zap"
)

type analyzeIrisRequest struct {
	AssessmentID  string `json:"assessment_id"`
	LeftEyeImage  string `json:"left_eye_image"`
	RightEyeImage string `json:"right_eye_image"`
}

type analyzeIrisResponse struct {
	envelope
	AssessmentID           utils.FlexibleString   `json:"assessment_id"`
	ConstitutionalType     string                 `json:"constitutional_type"`
	ConstitutionalStrength string                 `json:"constitutional_strength"`
	Findings               map[string]interface{} `json:"findings"`
	Recommendations        []string               `json:"recommendations"`
}

type iridologyReportResponse struct {
	envelope
	models.IridologyReport
}

// encodeImage sends bare base64, without a data URL prefix.
func encodeImage(image []byte) string {
	return base64.StdEncoding.EncodeToString(image)
}

func (c *portalClient) AnalyzeIris(ctx context.Context, assessmentID string, leftImage, rightImage []byte) (*models.IridologyResult, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("portalClient.AnalyzeIris called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
		zap.Int(constvars.LoggingPayloadSizeKey, len(leftImage)+len(rightImage)),
	)

	body, err := c.do(ctx, "portalClient.AnalyzeIris", constvars.MethodPost, constvars.PortalPathIridologyAnalyze, "", &analyzeIrisRequest{
		AssessmentID:  assessmentID,
		LeftEyeImage:  encodeImage(leftImage),
		RightEyeImage: encodeImage(rightImage),
	})
	if err != nil {
		return nil, err
	}

	var response analyzeIrisResponse
	if err := c.decode("portalClient.AnalyzeIris", constvars.PortalPathIridologyAnalyze, body, &response); err != nil {
		return nil, err
	}
	if response.failed() {
		c.Log.Warn("portalClient.AnalyzeIris analysis failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
		)
		return nil, exceptions.ErrIridologyAnalysisFailed(response.reason())
	}

	result := &models.IridologyResult{
		AssessmentID:           assessmentID,
		ConstitutionalType:     response.ConstitutionalType,
		ConstitutionalStrength: response.ConstitutionalStrength,
		Findings:               response.Findings,
		Recommendations:        response.Recommendations,
	}
	if id := response.AssessmentID.String(); id != "" {
		result.AssessmentID = id
	}

	c.Log.Info("portalClient.AnalyzeIris succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, result.AssessmentID),
	)
	return result, nil
}

func (c *portalClient) FindReport(ctx context.Context, assessmentID string) (*models.IridologyReport, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("portalClient.FindReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
	)

	path := fmt.Sprintf(constvars.PortalPathIridologyReport, url.PathEscape(assessmentID))
	body, err := c.do(ctx, "portalClient.FindReport", constvars.MethodGet, path, "", nil)
	if err != nil {
		return nil, err
	}

	var response iridologyReportResponse
	if err := c.decode("portalClient.FindReport", path, body, &response); err != nil {
		return nil, err
	}
	if response.failed() {
		return nil, exceptions.ErrIridologyReportUnavailable(response.reason())
	}

	c.Log.Info("portalClient.FindReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
	)
	report := response.IridologyReport
	return &report, nil
}
