package models

import "time"

type AssessmentCompletedEvent struct {
	AssessmentID   string                 `json:"assessment_id"`
	PatientID      string                 `json:"patient_id"`
	PractitionerID string                 `json:"practitioner_id"`
	ClinicID       string                 `json:"clinic_id"`
	OverallScore   float64                `json:"overall_score"`
	DomainScores   map[string]DomainScore `json:"domain_scores"`
	IridologyDone  bool                   `json:"iridology_done"`
	CompletedAt    time.Time              `json:"completed_at"`
}

type IridologyAnalyzedEvent struct {
	AssessmentID       string    `json:"assessment_id"`
	PatientID          string    `json:"patient_id"`
	ConstitutionalType string    `json:"constitutional_type"`
	LeftObjectName     string    `json:"left_object_name,omitempty"`
	RightObjectName    string    `json:"right_object_name,omitempty"`
	AnalyzedAt         time.Time `json:"analyzed_at"`
}
