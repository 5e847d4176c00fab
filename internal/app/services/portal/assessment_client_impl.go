package portal

import (
	"context"
	"net/url"
	"wellness-wizard/internal/app/models"
	"wellness-wizard/internal/pkg/constvars"
	"wellness-wizard/internal/pkg/exceptions"
	"wellness-wizard/internal/pkg/utils"

	"go.uber.org/zap"
)

type startAssessmentRequest struct {
	PatientID      string `json:"patient_id"`
	PractitionerID string `json:"practitioner_id,omitempty"`
	ClinicID       string `json:"clinic_id,omitempty"`
}

type startAssessmentResponse struct {
	envelope
	AssessmentID   utils.FlexibleString `json:"assessment_id"`
	TotalQuestions int                  `json:"total_questions"`
}

type submitAnswerRequest struct {
	AssessmentID string `json:"assessment_id"`
	QuestionID   int    `json:"question_id"`
	AnswerText   string `json:"answer_text"`
	AnswerScore  int    `json:"answer_score"`
}

type submitAnswerResponse struct {
	envelope
	QuestionsAnswered int `json:"questions_answered"`
	TotalQuestions    int `json:"total_questions"`
}

type completeAssessmentRequest struct {
	AssessmentID string `json:"assessment_id"`
}

func (c *portalClient) StartAssessment(ctx context.Context, token string, request *models.Assessment) (*models.Assessment, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("portalClient.StartAssessment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	body, err := c.do(ctx, "portalClient.StartAssessment", constvars.MethodPost, constvars.PortalPathStartAssessment, token, &startAssessmentRequest{
		PatientID:      request.PatientID,
		PractitionerID: request.PractitionerID,
		ClinicID:       request.ClinicID,
	})
	if err != nil {
		return nil, err
	}

	var response startAssessmentResponse
	if err := c.decode("portalClient.StartAssessment", constvars.PortalPathStartAssessment, body, &response); err != nil {
		return nil, err
	}
	if response.failed() {
		return nil, exceptions.ErrPortalRejected(response.reason(), constvars.StatusOK, constvars.PortalPathStartAssessment)
	}
	if response.AssessmentID.String() == "" {
		return nil, exceptions.ErrPortalUnknownSchema(constvars.PortalPathStartAssessment)
	}

	assessment := *request
	assessment.ID = response.AssessmentID.String()
	assessment.TotalQuestions = response.TotalQuestions

	c.Log.Info("portalClient.StartAssessment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessment.ID),
	)
	return &assessment, nil
}

func (c *portalClient) SubmitAnswer(ctx context.Context, token, assessmentID string, answer models.Answer) (*models.AnswerReceipt, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Debug("portalClient.SubmitAnswer called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
		zap.Int(constvars.LoggingQuestionIDKey, answer.QuestionID),
	)

	body, err := c.do(ctx, "portalClient.SubmitAnswer", constvars.MethodPost, constvars.PortalPathSubmitAnswer, token, &submitAnswerRequest{
		AssessmentID: assessmentID,
		QuestionID:   answer.QuestionID,
		AnswerText:   answer.OptionText,
		AnswerScore:  answer.Score,
	})
	if err != nil {
		return nil, err
	}

	var response submitAnswerResponse
	if len(body) > 0 {
		if err := c.decode("portalClient.SubmitAnswer", constvars.PortalPathSubmitAnswer, body, &response); err != nil {
			return nil, err
		}
	}
	if response.failed() {
		return nil, exceptions.ErrPortalRejected(response.reason(), constvars.StatusOK, constvars.PortalPathSubmitAnswer)
	}

	c.Log.Debug("portalClient.SubmitAnswer succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingQuestionIDKey, answer.QuestionID),
		zap.Int("questions_answered", response.QuestionsAnswered),
	)
	return &models.AnswerReceipt{
		QuestionsAnswered: response.QuestionsAnswered,
		TotalQuestions:    response.TotalQuestions,
	}, nil
}

// CompleteAssessment sends the id both as JSON body and as query parameter;
// portal deployments differ in which one they read.
func (c *portalClient) CompleteAssessment(ctx context.Context, token, assessmentID string) (*models.ResultSet, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("portalClient.CompleteAssessment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
	)

	path := constvars.PortalPathCompleteAssessment + "?assessment_id=" + url.QueryEscape(assessmentID)
	body, err := c.do(ctx, "portalClient.CompleteAssessment", constvars.MethodPost, path, token, &completeAssessmentRequest{
		AssessmentID: assessmentID,
	})
	if err != nil {
		return nil, err
	}

	var response completeResponse
	if err := c.decode("portalClient.CompleteAssessment", constvars.PortalPathCompleteAssessment, body, &response); err != nil {
		return nil, err
	}
	if response.failed() {
		return nil, exceptions.ErrPortalRejected(response.reason(), constvars.StatusOK, constvars.PortalPathCompleteAssessment)
	}

	resultSet, err := normalizeResultSet(constvars.PortalPathCompleteAssessment, assessmentID, response)
	if err != nil {
		c.Log.Error("portalClient.CompleteAssessment error normalizing response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("portalClient.CompleteAssessment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
		zap.Float64(constvars.LoggingOverallScoreKey, resultSet.OverallScore),
	)
	return resultSet, nil
}
