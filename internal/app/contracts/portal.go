package contracts

import (
	"context"
	"wellness-wizard/internal/app/models"
)

type PatientPortalClient interface {
	ListPatients(ctx context.Context, token string) ([]models.Patient, error)
}

type QuestionPortalClient interface {
	ListQuestions(ctx context.Context) ([]models.Question, error)
}

type AssessmentPortalClient interface {
	StartAssessment(ctx context.Context, token string, request *models.Assessment) (*models.Assessment, error)
	SubmitAnswer(ctx context.Context, token, assessmentID string, answer models.Answer) (*models.AnswerReceipt, error)
	CompleteAssessment(ctx context.Context, token, assessmentID string) (*models.ResultSet, error)
}

type IridologyPortalClient interface {
	AnalyzeIris(ctx context.Context, assessmentID string, leftImage, rightImage []byte) (*models.IridologyResult, error)
	FindReport(ctx context.Context, assessmentID string) (*models.IridologyReport, error)
}

type ReportPortalClient interface {
	GenerateReport(ctx context.Context, assessmentID string) (*models.ReportLink, error)
}

// PortalClient is the full backend surface used by the wizard.
type PortalClient interface {
	PatientPortalClient
	QuestionPortalClient
	AssessmentPortalClient
	IridologyPortalClient
	ReportPortalClient
}
