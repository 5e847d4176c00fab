package models

type WizardTransition struct {
	ID            string `bson:"_id,omitempty"`
	WizardID      string `bson:"wizardId"`
	AssessmentID  string `bson:"assessmentId,omitempty"`
	PatientID     string `bson:"patientId,omitempty"`
	FromPhase     string `bson:"fromPhase"`
	ToPhase       string `bson:"toPhase"`
	QuestionIndex int    `bson:"questionIndex"`
	Reason        string `bson:"reason,omitempty"`
	TimeModel     `bson:",inline"`
}
