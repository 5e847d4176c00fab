package wizard

import (
	"sort"
	"wellness-wizard/internal/app/models"
)

// Snapshot is a read-only view of a session, safe to hand to renderers.
type Snapshot struct {
	WizardID        string                  `json:"wizard_id"`
	Phase           Phase                   `json:"phase"`
	Patient         *models.Patient         `json:"patient,omitempty"`
	AssessmentID    string                  `json:"assessment_id,omitempty"`
	QuestionIndex   int                     `json:"question_index"`
	QuestionCount   int                     `json:"question_count"`
	CurrentQuestion *models.Question        `json:"current_question,omitempty"`
	SelectedOption  *int                    `json:"selected_option,omitempty"`
	AnsweredCount   int                     `json:"answered_count"`
	PendingCount    int                     `json:"pending_count"`
	ProgressPercent int                     `json:"progress_percent"`
	CameraOpen      bool                    `json:"camera_open"`
	CapturedEyes    []string                `json:"captured_eyes,omitempty"`
	Iridology       *models.IridologyResult `json:"iridology,omitempty"`
	Results         *models.ResultSet       `json:"results,omitempty"`
	Failure         *FailureView            `json:"failure,omitempty"`
	InFlight        string                  `json:"in_flight,omitempty"`
	Abandoned       bool                    `json:"abandoned"`
}

type FailureView struct {
	During Phase  `json:"during"`
	Kind   string `json:"kind"`
	Reason string `json:"reason"`
}

// ProgressPercent is the share of questions already behind the user,
// rounded down. Progress only reaches 100 after the last answer.
func ProgressPercent(questionIndex, questionCount int, phase Phase) int {
	if questionCount == 0 {
		return 0
	}
	if phase != PhaseSelectingPatient && phase != PhaseInProgress {
		return 100
	}
	return questionIndex * 100 / questionCount
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := Snapshot{
		WizardID:        c.id,
		Phase:           c.phase,
		QuestionIndex:   c.questionIndex,
		QuestionCount:   len(c.questions),
		AnsweredCount:   c.ledger.Len(),
		PendingCount:    c.ledger.PendingCount(),
		ProgressPercent: ProgressPercent(c.questionIndex, len(c.questions), c.phase),
		Iridology:       c.iridology,
		Results:         c.results,
		InFlight:        c.inFlight,
		Abandoned:       c.abandoned,
	}
	if c.patient != nil {
		patient := *c.patient
		snapshot.Patient = &patient
	}
	if c.assessment != nil {
		snapshot.AssessmentID = c.assessment.ID
	}
	if c.phase == PhaseInProgress && c.questionIndex < len(c.questions) {
		question := c.questions[c.questionIndex]
		snapshot.CurrentQuestion = &question
		snapshot.SelectedOption = c.selectedOptionLocked()
	}
	if c.deps.Capture != nil {
		snapshot.CameraOpen = c.deps.Capture.IsOpen()
	}
	for eye := range c.captured {
		snapshot.CapturedEyes = append(snapshot.CapturedEyes, eye)
	}
	sort.Strings(snapshot.CapturedEyes)
	if c.failure != nil {
		snapshot.Failure = &FailureView{
			During: c.failure.During,
			Kind:   kindName(c.failure.Err),
			Reason: c.failure.Reason,
		}
	}
	return snapshot
}
