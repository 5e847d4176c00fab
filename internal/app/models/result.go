package models

type DomainScore struct {
	Domain            string  `json:"domain"`
	DomainName        string  `json:"domain_name,omitempty"`
	TherapyCode       string  `json:"therapy_code,omitempty"`
	Score             float64 `json:"score"`
	QuestionsAnswered int     `json:"questions_answered"`
	TotalQuestions    int     `json:"total_questions"`
}

type ResultSet struct {
	AssessmentID string                 `json:"assessment_id"`
	OverallScore float64                `json:"overall_score"`
	DomainScores map[string]DomainScore `json:"domain_scores"`
}
