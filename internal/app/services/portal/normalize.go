package portal

import (
	"sort"
	"wellness-wizard/internal/app/models"
	"wellness-wizard/internal/pkg/constvars"
	"wellness-wizard/internal/pkg/exceptions"
	"wellness-wizard/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

type questionRecord struct {
	ID       int      `json:"id"`
	Domain   string   `json:"domain"`
	Text     string   `json:"text"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Scores   []int    `json:"scores"`
}

type domainRecord struct {
	DomainName  string           `json:"domain_name"`
	TherapyCode string           `json:"therapy_code"`
	Questions   []questionRecord `json:"questions"`
}

type questionsResponse struct {
	Success   *bool                   `json:"success"`
	Questions *[]questionRecord       `json:"questions"`
	Domains   map[string]domainRecord `json:"domains"`
}

func (r questionRecord) toModel() models.Question {
	text := r.Text
	if text == "" {
		text = r.Question
	}
	return models.Question{
		ID:      r.ID,
		Domain:  r.Domain,
		Text:    text,
		Options: r.Options,
		Scores:  r.Scores,
	}
}

// orderedDomainKeys lists known domains first in presentation order, then
// any other keys alphabetically.
func orderedDomainKeys(domains map[string]domainRecord) []string {
	keys := make([]string, 0, len(domains))
	known := make(map[string]bool, len(constvars.Domains))
	for _, domain := range constvars.Domains {
		known[domain] = true
		if _, ok := domains[domain]; ok {
			keys = append(keys, domain)
		}
	}

	var extra []string
	for key := range domains {
		if !known[key] {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	return append(keys, extra...)
}

// normalizeQuestions accepts either {questions: [...]} or
// {domains: {key: {domain_name, therapy_code, questions: [...]}}} and returns
// one flat list in load order. Every question is validated.
func normalizeQuestions(path string, body []byte) ([]models.Question, error) {
	var response questionsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, exceptions.ErrPortalDecodeResponse(err, path)
	}

	var questions []models.Question
	switch {
	case response.Questions != nil:
		for _, record := range *response.Questions {
			questions = append(questions, record.toModel())
		}
	case response.Domains != nil:
		for _, key := range orderedDomainKeys(response.Domains) {
			domain := response.Domains[key]
			for _, record := range domain.Questions {
				question := record.toModel()
				question.Domain = key
				question.DomainName = domain.DomainName
				question.TherapyCode = domain.TherapyCode
				questions = append(questions, question)
			}
		}
	default:
		return nil, exceptions.ErrPortalUnknownSchema(path)
	}

	if len(questions) == 0 {
		return nil, exceptions.ErrQuestionsEmpty()
	}
	for _, question := range questions {
		if err := utils.ValidateStruct(question); err != nil {
			return nil, exceptions.ErrQuestionInvalid(err, question.ID)
		}
		if err := question.CheckOptions(); err != nil {
			return nil, exceptions.ErrQuestionInvalid(err, question.ID)
		}
	}
	return questions, nil
}

type patientRecord struct {
	ID            utils.FlexibleString `json:"id"`
	FirstName     string               `json:"first_name"`
	LastName      string               `json:"last_name"`
	PatientNumber utils.FlexibleString `json:"patient_number"`
	Email         string               `json:"email"`
}

// normalizePatients accepts either {patients: [...]} or a bare array.
func normalizePatients(path string, body []byte) ([]models.Patient, error) {
	document := gjson.ParseBytes(body)

	var list gjson.Result
	switch {
	case document.IsArray():
		list = document
	case document.IsObject() && document.Get("patients").IsArray():
		list = document.Get("patients")
	default:
		return nil, exceptions.ErrPortalUnknownSchema(path)
	}

	var records []patientRecord
	if err := json.Unmarshal([]byte(list.Raw), &records); err != nil {
		return nil, exceptions.ErrPortalDecodeResponse(err, path)
	}

	patients := make([]models.Patient, 0, len(records))
	for _, record := range records {
		patients = append(patients, models.Patient{
			ID:            record.ID.String(),
			FirstName:     record.FirstName,
			LastName:      record.LastName,
			PatientNumber: record.PatientNumber.String(),
			Email:         record.Email,
		})
	}
	return patients, nil
}

type domainScoreRecord struct {
	DomainName        string              `json:"domain_name"`
	TherapyCode       string              `json:"therapy_code"`
	Score             utils.FlexibleFloat `json:"score"`
	QuestionsAnswered int                 `json:"questions_answered"`
	TotalQuestions    int                 `json:"total_questions"`
}

type completeResponse struct {
	envelope
	AssessmentID         utils.FlexibleString         `json:"assessment_id"`
	OverallScore         *utils.FlexibleFloat         `json:"overall_score"`
	OverallWellnessScore *utils.FlexibleFloat         `json:"overall_wellness_score"`
	DomainScores         map[string]domainScoreRecord `json:"domain_scores"`
}

// normalizeResultSet accepts overall_score or overall_wellness_score.
func normalizeResultSet(path, assessmentID string, response completeResponse) (*models.ResultSet, error) {
	overall := response.OverallScore
	if overall == nil {
		overall = response.OverallWellnessScore
	}
	if overall == nil {
		return nil, exceptions.ErrPortalUnknownSchema(path)
	}

	resultSet := &models.ResultSet{
		AssessmentID: assessmentID,
		OverallScore: float64(*overall),
		DomainScores: make(map[string]models.DomainScore, len(response.DomainScores)),
	}
	if id := response.AssessmentID.String(); id != "" {
		resultSet.AssessmentID = id
	}
	for domain, record := range response.DomainScores {
		resultSet.DomainScores[domain] = models.DomainScore{
			Domain:            domain,
			DomainName:        record.DomainName,
			TherapyCode:       record.TherapyCode,
			Score:             float64(record.Score),
			QuestionsAnswered: record.QuestionsAnswered,
			TotalQuestions:    record.TotalQuestions,
		}
	}
	return resultSet, nil
}
