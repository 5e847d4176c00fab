package models

type Assessment struct {
	ID             string `json:"assessment_id"`
	PatientID      string `json:"patient_id"`
	PractitionerID string `json:"practitioner_id"`
	ClinicID       string `json:"clinic_id"`
	TotalQuestions int    `json:"total_questions"`
}

type Answer struct {
	QuestionID  int    `json:"question_id"`
	OptionIndex int    `json:"option_index"`
	OptionText  string `json:"answer_text"`
	Score       int    `json:"score"`
}

type AnswerReceipt struct {
	QuestionsAnswered int `json:"questions_answered"`
	TotalQuestions    int `json:"total_questions"`
}
