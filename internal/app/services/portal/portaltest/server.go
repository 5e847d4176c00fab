// Package portaltest runs an in-memory clinic portal backend for tests.
package portaltest

import (
	"encoding/base64"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

const DefaultToken = "portal-test-token"

type Question struct {
	ID      int      `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
	Scores  []int    `json:"scores"`
}

type Domain struct {
	Key         string
	Name        string
	TherapyCode string
	Questions   []Question
}

type Patient struct {
	ID            int    `json:"id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	PatientNumber string `json:"patient_number"`
	Email         string `json:"email,omitempty"`
}

type StartRequest struct {
	PatientID      string `json:"patient_id"`
	PractitionerID string `json:"practitioner_id"`
	ClinicID       string `json:"clinic_id"`
}

type AnswerRequest struct {
	AssessmentID string `json:"assessment_id"`
	QuestionID   int    `json:"question_id"`
	AnswerText   string `json:"answer_text"`
	AnswerScore  int    `json:"answer_score"`
}

type AnalyzeRequest struct {
	AssessmentID  string `json:"assessment_id"`
	LeftEyeImage  string `json:"left_eye_image"`
	RightEyeImage string `json:"right_eye_image"`
}

func fivePoint(id int, text string, options ...string) Question {
	return Question{ID: id, Text: text, Options: options, Scores: []int{0, 25, 50, 75, 100}}
}

// DefaultDomains returns two questions for each of the five wellness domains.
func DefaultDomains() []Domain {
	return []Domain{
		{Key: "vitality_energy", Name: "Vitality & Energy Support", TherapyCode: "C-102", Questions: []Question{
			fivePoint(1, "How would you rate your overall energy levels throughout the day?", "Very Low", "Low", "Moderate", "Good", "Excellent"),
			fivePoint(2, "How often do you experience fatigue or tiredness?", "Constantly", "Daily", "Few times a week", "Rarely", "Never"),
		}},
		{Key: "comfort_mobility", Name: "Comfort & Mobility Support", TherapyCode: "C-104", Questions: []Question{
			fivePoint(8, "How would you rate your current pain levels?", "Severe", "Moderate-Severe", "Moderate", "Mild", "None"),
			fivePoint(9, "How does pain affect your daily activities?", "Severely limits", "Significantly limits", "Moderately limits", "Slightly limits", "No limitation"),
		}},
		{Key: "circulation_heart", Name: "Circulation & Heart Wellness", TherapyCode: "C-105", Questions: []Question{
			fivePoint(15, "How often do you experience cold hands or feet?", "Always", "Often", "Sometimes", "Rarely", "Never"),
			fivePoint(16, "How would you rate your stamina when climbing stairs?", "Very Poor", "Poor", "Fair", "Good", "Excellent"),
		}},
		{Key: "stress_relaxation", Name: "Stress & Relaxation Support", TherapyCode: "C-107", Questions: []Question{
			fivePoint(22, "How would you rate your current stress levels?", "Extreme", "High", "Moderate", "Low", "Minimal"),
			fivePoint(23, "How easily can you relax at the end of the day?", "Never", "Rarely", "Sometimes", "Usually", "Always"),
		}},
		{Key: "immune_digestive", Name: "Immune & Digestive Wellness", TherapyCode: "C-108", Questions: []Question{
			fivePoint(29, "How often do you catch colds or infections?", "Constantly", "Often", "Sometimes", "Rarely", "Never"),
			fivePoint(30, "How would you rate your digestion?", "Very Poor", "Poor", "Fair", "Good", "Excellent"),
		}},
	}
}

func DefaultPatients() []Patient {
	return []Patient{
		{ID: 101, FirstName: "Ada", LastName: "Lovelace", PatientNumber: "CEL-0101", Email: "ada@example.com"},
		{ID: 102, FirstName: "Alan", LastName: "Turing", PatientNumber: "CEL-0102"},
	}
}

// Server is a fake portal. Failure switches may be flipped between calls.
type Server struct {
	*httptest.Server

	mu sync.Mutex

	Token    string
	Patients []Patient
	Domains  []Domain

	// FlatQuestions serves {questions: [...]} instead of {domains: {...}}.
	FlatQuestions bool
	// BarePatients serves a bare array instead of {patients: [...]}.
	BarePatients bool
	// AnswerStatus, CompleteStatus and StartStatus override the status code when non-zero.
	AnswerStatus   int
	CompleteStatus int
	StartStatus    int
	// OverallScoreKey names the overall score field in the completion response.
	OverallScoreKey string
	AnalyzeFails    bool

	nextAssessmentID int
	answers          map[string]map[int]int
	completed        map[string]bool

	StartRequests   []StartRequest
	AnswerRequests  []AnswerRequest
	CompleteCalls   int
	AnalyzeRequests []AnalyzeRequest
	ReportRequests  int
}

func NewServer() *Server {
	s := &Server{
		Token:            DefaultToken,
		Patients:         DefaultPatients(),
		Domains:          DefaultDomains(),
		OverallScoreKey:  "overall_wellness_score",
		nextAssessmentID: 500,
		answers:          make(map[string]map[int]int),
		completed:        make(map[string]bool),
	}

	router := chi.NewRouter()
	router.Get("/api/v1/clinic/patients", s.authorized(s.listPatients))
	router.Get("/api/v1/new-assessment/questions", s.listQuestions)
	router.Post("/api/v1/new-assessment/start", s.authorized(s.start))
	router.Post("/api/v1/new-assessment/answer", s.authorized(s.answer))
	router.Post("/api/v1/new-assessment/complete", s.authorized(s.complete))
	router.Post("/api/v1/iridology/analyze", s.analyze)
	router.Get("/api/v1/iridology/{assessmentID}/report", s.report)
	router.Post("/api/v1/reports/generate/{assessmentID}", s.generate)

	s.Server = httptest.NewServer(router)
	return s
}

// Set runs fn while holding the server lock, for flipping switches mid-test.
func (s *Server) Set(fn func(s *Server)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s)
}

func (s *Server) QuestionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, domain := range s.Domains {
		count += len(domain.Questions)
	}
	return count
}

func (s *Server) AnswerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.AnswerRequests)
}

func (s *Server) Completions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.CompleteCalls
}

// StoredAnswers returns the answers the backend holds for an assessment.
func (s *Server) StoredAnswers(assessmentID string) map[int]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make(map[int]int, len(s.answers[assessmentID]))
	for id, score := range s.answers[assessmentID] {
		stored[id] = score
	}
	return stored
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func (s *Server) authorized(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		expected := "Bearer " + s.Token
		s.mu.Unlock()
		if r.Header.Get("Authorization") != expected {
			writeJSON(w, http.StatusUnauthorized, map[string]interface{}{"detail": "Not authenticated"})
			return
		}
		next(w, r)
	}
}

func (s *Server) listPatients(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.BarePatients {
		writeJSON(w, http.StatusOK, s.Patients)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"patients": s.Patients})
}

func (s *Server) listQuestions(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	if s.FlatQuestions {
		var flat []map[string]interface{}
		for _, domain := range s.Domains {
			for _, q := range domain.Questions {
				flat = append(flat, map[string]interface{}{
					"id": q.ID, "domain": domain.Key, "text": q.Text, "options": q.Options, "scores": q.Scores,
				})
				total++
			}
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"questions": flat})
		return
	}

	domains := make(map[string]interface{}, len(s.Domains))
	for _, domain := range s.Domains {
		domains[domain.Key] = map[string]interface{}{
			"domain_name":  domain.Name,
			"therapy_code": domain.TherapyCode,
			"questions":    domain.Questions,
		}
		total += len(domain.Questions)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "total_questions": total, "domains": domains})
}

func (s *Server) start(w http.ResponseWriter, r *http.Request) {
	var request StartRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.PatientID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"detail": "patient_id required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.StartRequests = append(s.StartRequests, request)
	if s.StartStatus != 0 {
		writeJSON(w, s.StartStatus, map[string]interface{}{"detail": "start failed"})
		return
	}

	s.nextAssessmentID++
	id := s.nextAssessmentID
	s.answers[strconv.Itoa(id)] = make(map[int]int)

	total := 0
	for _, domain := range s.Domains {
		total += len(domain.Questions)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true, "assessment_id": id, "total_questions": total, "message": "Assessment started",
	})
}

func (s *Server) answer(w http.ResponseWriter, r *http.Request) {
	var request AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"detail": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.AnswerRequests = append(s.AnswerRequests, request)
	if s.AnswerStatus != 0 {
		writeJSON(w, s.AnswerStatus, map[string]interface{}{"detail": "answer failed"})
		return
	}

	stored, ok := s.answers[request.AssessmentID]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{"detail": "Assessment not found"})
		return
	}
	stored[request.QuestionID] = request.AnswerScore

	total := 0
	for _, domain := range s.Domains {
		total += len(domain.Questions)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true, "questions_answered": len(stored), "total_questions": total,
	})
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}

func (s *Server) complete(w http.ResponseWriter, r *http.Request) {
	var request struct {
		AssessmentID string `json:"assessment_id"`
	}
	json.NewDecoder(r.Body).Decode(&request)
	if request.AssessmentID == "" {
		request.AssessmentID = r.URL.Query().Get("assessment_id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.CompleteCalls++
	if s.CompleteStatus != 0 {
		writeJSON(w, s.CompleteStatus, map[string]interface{}{"detail": "completion failed"})
		return
	}

	stored, ok := s.answers[request.AssessmentID]
	if !ok || len(stored) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"detail": "No responses found"})
		return
	}

	domainScores := make(map[string]interface{})
	var sum float64
	for _, domain := range s.Domains {
		total, answered := 0, 0
		for _, q := range domain.Questions {
			if score, ok := stored[q.ID]; ok {
				total += score
				answered++
			}
		}
		if answered == 0 {
			continue
		}
		score := round1(float64(total) / float64(answered*100) * 100)
		sum += score
		domainScores[domain.Key] = map[string]interface{}{
			"domain_name":        domain.Name,
			"therapy_code":       domain.TherapyCode,
			"score":              score,
			"questions_answered": answered,
			"total_questions":    len(domain.Questions),
		}
	}
	s.completed[request.AssessmentID] = true

	overall := round1(sum / float64(len(domainScores)))
	id, _ := strconv.Atoi(request.AssessmentID)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"assessment_id":   id,
		s.OverallScoreKey: overall,
		"domain_scores":   domainScores,
	})
}

func (s *Server) analyze(w http.ResponseWriter, r *http.Request) {
	var request AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"detail": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.AnalyzeRequests = append(s.AnalyzeRequests, request)

	_, leftErr := base64.StdEncoding.DecodeString(request.LeftEyeImage)
	_, rightErr := base64.StdEncoding.DecodeString(request.RightEyeImage)
	if s.AnalyzeFails || leftErr != nil || rightErr != nil || request.LeftEyeImage == "" || request.RightEyeImage == "" {
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": false, "error": "analysis failed"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":                 true,
		"assessment_id":           request.AssessmentID,
		"constitutional_type":     "Lymphatic",
		"constitutional_strength": "Moderate",
		"findings":                map[string]interface{}{"digestive": map[string]interface{}{"rating": "Good"}},
		"recommendations":         []string{"Hydration", "Gentle movement"},
	})
}

func (s *Server) report(w http.ResponseWriter, r *http.Request) {
	assessmentID := chi.URLParam(r, "assessmentID")

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ReportRequests++
	if strings.TrimSpace(assessmentID) == "" {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{"success": false})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"patient":      map[string]interface{}{"first_name": "Ada", "last_name": "Lovelace", "patient_number": "CEL-0101"},
		"practitioner": "Dr. Smith",
		"analysis": map[string]interface{}{
			"constitutional_type":     "Lymphatic",
			"constitutional_strength": "Moderate",
			"systems":                 map[string]string{"digestive": "Good"},
			"primary_concerns":        []string{"Stress rings"},
			"wellness_priorities":     []string{"Sleep hygiene"},
		},
	})
}

func (s *Server) generate(w http.ResponseWriter, r *http.Request) {
	assessmentID := chi.URLParam(r, "assessmentID")
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"download_url": fmt.Sprintf("/reports/assessment_%s.pdf", assessmentID),
	})
}
