package wizard

import (
	"context"
	"errors"
	"sync"
	"time"
	"wellness-wizard/internal/app/contracts"
	"wellness-wizard/internal/app/models"
	"wellness-wizard/internal/pkg/constvars"
	"wellness-wizard/internal/pkg/exceptions"
	"wellness-wizard/internal/pkg/utils"

	"go.uber.org/zap"
)

// Dependencies are the collaborators of a Controller. Portal and Credentials
// are required; the rest are optional and disable their feature when nil.
type Dependencies struct {
	Log         *zap.Logger
	Portal      contracts.PortalClient
	Credentials contracts.CredentialReader
	Capture     contracts.CaptureSession
	Archive     contracts.IrisArchive
	Events      contracts.EventPublisher
	Audit       contracts.AuditTrail
}

// Controller drives one assessment through
// SelectingPatient -> InProgress(i) -> CapturingIridology -> Completing -> ShowingResults.
//
// State is guarded by mu. Backend calls run without the lock; an in-flight
// flag rejects overlapping mutating operations and the epoch, bumped by
// Abandon, discards responses that arrive for a session nobody is looking at.
type Controller struct {
	id   string
	deps Dependencies
	log  *zap.Logger
	now  func() time.Time

	mu            sync.Mutex
	phase         Phase
	patients      []models.Patient
	questions     []models.Question
	patient       *models.Patient
	assessment    *models.Assessment
	questionIndex int
	ledger        *AnswerLedger
	captured      map[string][]byte
	iridology     *models.IridologyResult
	results       *models.ResultSet
	failure       *Failure
	inFlight      string
	epoch         uint64
	abandoned     bool
	lastActivity  time.Time
}

func NewController(id string, deps Dependencies) *Controller {
	logger := deps.Log
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Controller{
		id:       id,
		deps:     deps,
		log:      logger.With(zap.String(constvars.LoggingWizardIDKey, id)),
		now:      time.Now,
		phase:    PhaseSelectingPatient,
		ledger:   NewAnswerLedger(),
		captured: make(map[string][]byte),
	}
	c.lastActivity = c.now()
	return c
}

func (c *Controller) ID() string {
	return c.id
}

// LastActivity is the time of the most recent operation on the session.
func (c *Controller) LastActivity() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastActivity
}

// guardLocked rejects operations on abandoned sessions, operations outside
// their phases and, when mutating, overlap with another in-flight operation.
func (c *Controller) guardLocked(operation string, mutating bool, phases ...Phase) error {
	if c.abandoned {
		return exceptions.ErrSessionAbandoned(operation)
	}
	if mutating && c.inFlight != "" {
		return exceptions.ErrOperationInFlight(operation, c.inFlight)
	}
	for _, phase := range phases {
		if c.phase == phase {
			c.lastActivity = c.now()
			return nil
		}
	}
	return exceptions.ErrInvalidPhase(operation, c.phase.String())
}

// beginLocked marks operation as in flight and returns the current epoch.
func (c *Controller) beginLocked(operation string) uint64 {
	c.inFlight = operation
	return c.epoch
}

// finishLocked clears the in-flight flag and reports whether the session was
// abandoned while the operation was outstanding.
func (c *Controller) finishLocked(operation string, epoch uint64) error {
	if c.inFlight == operation {
		c.inFlight = ""
	}
	if c.epoch != epoch || c.abandoned {
		c.log.Info("Controller response discarded",
			zap.String(constvars.LoggingOperationKey, operation),
		)
		return exceptions.ErrSessionAbandoned(operation)
	}
	c.lastActivity = c.now()
	return nil
}

// setPhaseLocked moves to phase and returns the audit record to write once
// the lock is released.
func (c *Controller) setPhaseLocked(phase Phase, reason string) *models.WizardTransition {
	previous := c.phase
	c.phase = phase

	transition := &models.WizardTransition{
		WizardID:      c.id,
		FromPhase:     previous.String(),
		ToPhase:       phase.String(),
		QuestionIndex: c.questionIndex,
		Reason:        reason,
	}
	if c.assessment != nil {
		transition.AssessmentID = c.assessment.ID
	}
	if c.patient != nil {
		transition.PatientID = c.patient.ID
	}

	c.log.Info("Controller phase changed",
		zap.String(constvars.LoggingPreviousPhaseKey, previous.String()),
		zap.String(constvars.LoggingPhaseKey, phase.String()),
		zap.Int(constvars.LoggingQuestionIndexKey, c.questionIndex),
	)
	return transition
}

func (c *Controller) recordTransition(ctx context.Context, transition *models.WizardTransition) {
	if transition == nil || c.deps.Audit == nil {
		return
	}
	if err := c.deps.Audit.RecordTransition(ctx, transition); err != nil {
		c.log.Warn("Controller.recordTransition error", zap.Error(err))
	}
}

func (c *Controller) credentials(ctx context.Context) (*models.Credentials, error) {
	if c.deps.Credentials == nil {
		return nil, exceptions.ErrTokenMissing()
	}
	return c.deps.Credentials.Credentials(ctx)
}

// closeCameraLocked releases the capture device if one is open.
func (c *Controller) closeCameraLocked() {
	if c.deps.Capture == nil {
		return
	}
	if err := c.deps.Capture.Close(); err != nil {
		c.log.Warn("Controller.closeCamera error", zap.Error(err))
	}
}

// Load fetches the clinic's patients and the question list.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	if err := c.guardLocked(operationLoad, true, PhaseSelectingPatient); err != nil {
		c.mu.Unlock()
		return err
	}
	epoch := c.beginLocked(operationLoad)
	c.mu.Unlock()

	patients, questions, err := c.fetchCatalog(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if abandonedErr := c.finishLocked(operationLoad, epoch); abandonedErr != nil {
		return abandonedErr
	}
	if err != nil {
		c.log.Error("Controller.Load error", zap.Error(err))
		return err
	}

	c.patients = patients
	c.questions = questions
	c.log.Info("Controller.Load succeeded",
		zap.Int(constvars.LoggingPatientCountKey, len(patients)),
		zap.Int(constvars.LoggingQuestionCountKey, len(questions)),
	)
	return nil
}

func (c *Controller) fetchCatalog(ctx context.Context) ([]models.Patient, []models.Question, error) {
	creds, err := c.credentials(ctx)
	if err != nil {
		return nil, nil, err
	}
	patients, err := c.deps.Portal.ListPatients(ctx, creds.Token)
	if err != nil {
		return nil, nil, err
	}
	questions, err := c.deps.Portal.ListQuestions(ctx)
	if err != nil {
		return nil, nil, err
	}
	return patients, questions, nil
}

func (c *Controller) Patients() []models.Patient {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Patient(nil), c.patients...)
}

func (c *Controller) Questions() []models.Question {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Question(nil), c.questions...)
}

// SelectPatient chooses the patient the assessment will be bound to.
func (c *Controller) SelectPatient(patient *models.Patient) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.guardLocked(operationSelectPatient, true, PhaseSelectingPatient); err != nil {
		return err
	}
	if patient == nil || patient.ID == "" {
		return exceptions.ErrPatientRequired()
	}

	selected := *patient
	c.patient = &selected
	c.log.Info("Controller.SelectPatient succeeded",
		zap.String(constvars.LoggingPatientIDKey, selected.ID),
	)
	return nil
}

// SelectPatientByID selects one of the patients returned by Load.
func (c *Controller) SelectPatientByID(patientID string) error {
	c.mu.Lock()
	var found *models.Patient
	for i := range c.patients {
		if c.patients[i].ID == patientID {
			patient := c.patients[i]
			found = &patient
			break
		}
	}
	c.mu.Unlock()

	return c.SelectPatient(found)
}

// Start creates the assessment on the backend. Without a selected patient it
// fails with StartRejected before anything is sent.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	if err := c.guardLocked(operationStart, true, PhaseSelectingPatient); err != nil {
		c.mu.Unlock()
		return err
	}
	if c.patient == nil {
		c.mu.Unlock()
		return exceptions.ErrNoPatientSelected()
	}
	if len(c.questions) == 0 {
		c.mu.Unlock()
		return exceptions.ErrQuestionsEmpty()
	}
	patientID := c.patient.ID
	epoch := c.beginLocked(operationStart)
	c.mu.Unlock()

	assessment, err := c.createAssessment(ctx, patientID)

	c.mu.Lock()
	if abandonedErr := c.finishLocked(operationStart, epoch); abandonedErr != nil {
		c.mu.Unlock()
		return abandonedErr
	}
	if err != nil {
		c.mu.Unlock()
		c.log.Error("Controller.Start error", zap.Error(err))
		if exceptions.KindOf(err) == exceptions.KindValidationFailed {
			return exceptions.ErrStartRejected(err)
		}
		return err
	}

	c.assessment = assessment
	c.questionIndex = 0
	c.ledger = NewAnswerLedger()
	transition := c.setPhaseLocked(PhaseInProgress, "")
	c.mu.Unlock()

	c.recordTransition(ctx, transition)
	c.log.Info("Controller.Start succeeded",
		zap.String(constvars.LoggingAssessmentIDKey, assessment.ID),
	)
	return nil
}

func (c *Controller) createAssessment(ctx context.Context, patientID string) (*models.Assessment, error) {
	creds, err := c.credentials(ctx)
	if err != nil {
		return nil, err
	}
	return c.deps.Portal.StartAssessment(ctx, creds.Token, &models.Assessment{
		PatientID:      patientID,
		PractitionerID: creds.User.ID,
		ClinicID:       creds.User.ClinicID,
	})
}

// AnswerOutcome reports what happened to a submitted answer.
type AnswerOutcome struct {
	QuestionID int
	// Synced is false when the backend push failed; the answer is resent at completion.
	Synced bool
	Phase  Phase
}

// SubmitAnswer records option optionIndex for the current question, pushes it
// to the backend and advances. A failed push does not stop progression,
// except AuthExpired, which is returned without advancing.
func (c *Controller) SubmitAnswer(ctx context.Context, optionIndex int) (*AnswerOutcome, error) {
	c.mu.Lock()
	if err := c.guardLocked(operationSubmitAnswer, true, PhaseInProgress); err != nil {
		c.mu.Unlock()
		return nil, err
	}
	question := c.questions[c.questionIndex]
	if optionIndex < 0 || optionIndex >= question.OptionCount() {
		c.mu.Unlock()
		return nil, exceptions.ErrOptionOutOfRange(optionIndex, question.OptionCount())
	}

	entry := LedgerEntry{
		OptionIndex: optionIndex,
		OptionText:  question.Options[optionIndex],
		Score:       question.Scores[optionIndex],
		Pending:     true,
	}
	c.ledger.Upsert(question.ID, entry)
	assessmentID := c.assessment.ID
	questionIndex := c.questionIndex
	epoch := c.beginLocked(operationSubmitAnswer)
	c.mu.Unlock()

	pushErr := c.pushAnswer(ctx, assessmentID, entry.answer(question.ID))

	c.mu.Lock()
	if abandonedErr := c.finishLocked(operationSubmitAnswer, epoch); abandonedErr != nil {
		c.mu.Unlock()
		return nil, abandonedErr
	}

	if errors.Is(pushErr, exceptions.KindAuthExpired) {
		c.mu.Unlock()
		c.log.Warn("Controller.SubmitAnswer auth expired",
			zap.Int(constvars.LoggingQuestionIDKey, question.ID),
		)
		return nil, pushErr
	}

	outcome := &AnswerOutcome{QuestionID: question.ID, Synced: pushErr == nil}
	if pushErr == nil {
		c.ledger.MarkSynced(question.ID, entry)
	} else {
		c.log.Warn("Controller.SubmitAnswer push failed, answer kept locally",
			zap.Int(constvars.LoggingQuestionIDKey, question.ID),
			zap.Int(constvars.LoggingPendingAnswersKey, c.ledger.PendingCount()),
			zap.Error(pushErr),
		)
	}

	var transition *models.WizardTransition
	if questionIndex+1 < len(c.questions) {
		c.questionIndex = questionIndex + 1
	} else {
		transition = c.setPhaseLocked(PhaseCapturingIridology, "")
	}
	outcome.Phase = c.phase
	c.mu.Unlock()

	c.recordTransition(ctx, transition)
	return outcome, nil
}

func (c *Controller) pushAnswer(ctx context.Context, assessmentID string, answer models.Answer) error {
	creds, err := c.credentials(ctx)
	if err != nil {
		return err
	}
	_, err = c.deps.Portal.SubmitAnswer(ctx, creds.Token, assessmentID, answer)
	return err
}

// GoBack returns to the previous question and reports the option chosen for
// it earlier, or nil when it was never answered.
func (c *Controller) GoBack() (*int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.guardLocked(operationGoBack, true, PhaseInProgress); err != nil {
		return nil, err
	}
	if c.questionIndex == 0 {
		return nil, exceptions.ErrNoPreviousQuestion()
	}

	c.questionIndex--
	return c.selectedOptionLocked(), nil
}

func (c *Controller) selectedOptionLocked() *int {
	if c.questionIndex >= len(c.questions) {
		return nil
	}
	entry, ok := c.ledger.Get(c.questions[c.questionIndex].ID)
	if !ok {
		return nil
	}
	option := entry.OptionIndex
	return &option
}

// OpenCamera opens the capture device for the iridology step.
func (c *Controller) OpenCamera(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.guardLocked(operationOpenCamera, true, PhaseCapturingIridology); err != nil {
		return err
	}
	if c.deps.Capture == nil {
		return exceptions.ErrDeviceUnavailable(nil)
	}
	return c.deps.Capture.Open(ctx)
}

// CaptureEye takes one frame from the open camera and keeps it for eye. The
// frame is taken outside the session lock; the in-flight flag keeps other
// mutations out meanwhile.
func (c *Controller) CaptureEye(ctx context.Context, eye string) ([]byte, error) {
	c.mu.Lock()
	if err := c.guardLocked(operationCaptureEye, true, PhaseCapturingIridology); err != nil {
		c.mu.Unlock()
		return nil, err
	}
	if eye != constvars.EyeLeft && eye != constvars.EyeRight {
		c.mu.Unlock()
		return nil, exceptions.ErrBothEyeImagesRequired()
	}
	if c.deps.Capture == nil {
		c.mu.Unlock()
		return nil, exceptions.ErrDeviceNotOpen()
	}
	epoch := c.beginLocked(operationCaptureEye)
	c.mu.Unlock()

	payload, err := c.deps.Capture.Capture(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if abandonedErr := c.finishLocked(operationCaptureEye, epoch); abandonedErr != nil {
		return nil, abandonedErr
	}
	if err != nil {
		return nil, err
	}
	c.captured[eye] = payload

	c.log.Info("Controller.CaptureEye succeeded",
		zap.String(constvars.LoggingEyeKey, eye),
		zap.Int(constvars.LoggingPayloadSizeKey, len(payload)),
	)
	return payload, nil
}

// SubmitIridology sends both eye images for analysis. Nil payloads fall back
// to frames taken with CaptureEye. On failure the session stays in
// CapturingIridology so the user can retry or skip.
func (c *Controller) SubmitIridology(ctx context.Context, left, right []byte) (*models.IridologyResult, error) {
	c.mu.Lock()
	if err := c.guardLocked(operationSubmitIridology, true, PhaseCapturingIridology); err != nil {
		c.mu.Unlock()
		return nil, err
	}
	if len(left) == 0 {
		left = c.captured[constvars.EyeLeft]
	}
	if len(right) == 0 {
		right = c.captured[constvars.EyeRight]
	}
	if len(left) == 0 || len(right) == 0 {
		c.mu.Unlock()
		return nil, exceptions.ErrBothEyeImagesRequired()
	}
	assessmentID := c.assessment.ID
	patientID := c.patient.ID
	epoch := c.beginLocked(operationSubmitIridology)
	c.mu.Unlock()

	leftObject, rightObject := c.archiveImages(ctx, assessmentID, left, right)
	result, err := c.deps.Portal.AnalyzeIris(ctx, assessmentID, left, right)

	c.mu.Lock()
	if abandonedErr := c.finishLocked(operationSubmitIridology, epoch); abandonedErr != nil {
		c.mu.Unlock()
		return nil, abandonedErr
	}
	if err != nil {
		c.mu.Unlock()
		c.log.Error("Controller.SubmitIridology error", zap.Error(err))
		return nil, err
	}

	c.iridology = result
	c.captured = make(map[string][]byte)
	c.closeCameraLocked()
	transition := c.setPhaseLocked(PhaseCompleting, "iridology submitted")
	c.mu.Unlock()

	c.recordTransition(ctx, transition)
	if c.deps.Events != nil {
		event := &models.IridologyAnalyzedEvent{
			AssessmentID:       assessmentID,
			PatientID:          patientID,
			ConstitutionalType: result.ConstitutionalType,
			LeftObjectName:     leftObject,
			RightObjectName:    rightObject,
			AnalyzedAt:         c.now(),
		}
		if err := c.deps.Events.PublishIridologyAnalyzed(ctx, event); err != nil {
			c.log.Warn("Controller.SubmitIridology event not published", zap.Error(err))
		}
	}
	return result, nil
}

// archiveImages stores both images when an archive is configured. Archive
// failures are logged and do not block the analysis.
func (c *Controller) archiveImages(ctx context.Context, assessmentID string, left, right []byte) (string, string) {
	if c.deps.Archive == nil {
		return "", ""
	}
	leftObject, err := c.deps.Archive.ArchiveIrisImage(ctx, assessmentID, constvars.EyeLeft, left)
	if err != nil {
		c.log.Warn("Controller.archiveImages left eye not archived", zap.Error(err))
	}
	rightObject, err := c.deps.Archive.ArchiveIrisImage(ctx, assessmentID, constvars.EyeRight, right)
	if err != nil {
		c.log.Warn("Controller.archiveImages right eye not archived", zap.Error(err))
	}
	return leftObject, rightObject
}

// SkipIridology leaves the capture step without images.
func (c *Controller) SkipIridology(ctx context.Context) error {
	c.mu.Lock()
	if err := c.guardLocked(operationSkipIridology, true, PhaseCapturingIridology); err != nil {
		c.mu.Unlock()
		return err
	}
	c.captured = make(map[string][]byte)
	c.closeCameraLocked()
	transition := c.setPhaseLocked(PhaseCompleting, "iridology skipped")
	c.mu.Unlock()

	c.recordTransition(ctx, transition)
	return nil
}

// Complete resends answers the backend never acknowledged, once, and then
// asks the backend to score the assessment. Any failure moves the session to
// PhaseFailed; nothing is retried automatically.
func (c *Controller) Complete(ctx context.Context) (*models.ResultSet, error) {
	c.mu.Lock()
	if err := c.guardLocked(operationComplete, true, PhaseCompleting); err != nil {
		c.mu.Unlock()
		return nil, err
	}
	pending := c.ledger.Pending()
	assessmentID := c.assessment.ID
	epoch := c.beginLocked(operationComplete)
	c.mu.Unlock()

	synced, creds, resultSet, err := c.finalize(ctx, assessmentID, pending)

	c.mu.Lock()
	if abandonedErr := c.finishLocked(operationComplete, epoch); abandonedErr != nil {
		c.mu.Unlock()
		return nil, abandonedErr
	}
	for _, answer := range synced {
		c.ledger.MarkSynced(answer.QuestionID, LedgerEntry{OptionIndex: answer.OptionIndex})
	}

	if err != nil {
		if exceptions.KindOf(err) == exceptions.KindValidationFailed {
			err = exceptions.ErrCompletionRejected(err)
		}
		c.failure = &Failure{During: PhaseCompleting, Reason: err.Error(), Err: err}
		transition := c.setPhaseLocked(PhaseFailed, string(exceptions.KindOf(err)))
		c.mu.Unlock()

		c.recordTransition(ctx, transition)
		c.log.Error("Controller.Complete error", zap.Error(err))
		return nil, err
	}

	c.results = resultSet
	transition := c.setPhaseLocked(PhaseShowingResults, "")
	event := &models.AssessmentCompletedEvent{
		AssessmentID:   assessmentID,
		PatientID:      c.patient.ID,
		PractitionerID: creds.User.ID,
		ClinicID:       creds.User.ClinicID,
		OverallScore:   resultSet.OverallScore,
		DomainScores:   resultSet.DomainScores,
		IridologyDone:  c.iridology != nil,
		CompletedAt:    c.now(),
	}
	c.mu.Unlock()

	c.recordTransition(ctx, transition)
	if c.deps.Events != nil {
		if err := c.deps.Events.PublishAssessmentCompleted(ctx, event); err != nil {
			c.log.Warn("Controller.Complete event not published", zap.Error(err))
		}
	}
	c.log.Info("Controller.Complete succeeded",
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
		zap.Float64(constvars.LoggingOverallScoreKey, resultSet.OverallScore),
	)
	return resultSet, nil
}

func (c *Controller) finalize(ctx context.Context, assessmentID string, pending []models.Answer) ([]models.Answer, *models.Credentials, *models.ResultSet, error) {
	creds, err := c.credentials(ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	var synced []models.Answer
	for _, answer := range pending {
		_, err := c.deps.Portal.SubmitAnswer(ctx, creds.Token, assessmentID, answer)
		if errors.Is(err, exceptions.KindAuthExpired) {
			return synced, nil, nil, err
		}
		if err != nil {
			c.log.Warn("Controller.Complete resubmission failed",
				zap.Int(constvars.LoggingQuestionIDKey, answer.QuestionID),
				zap.Error(err),
			)
			continue
		}
		synced = append(synced, answer)
	}

	resultSet, err := c.deps.Portal.CompleteAssessment(ctx, creds.Token, assessmentID)
	if err != nil {
		return synced, nil, nil, err
	}
	return synced, creds, resultSet, nil
}

// Retry returns a session whose completion failed to PhaseCompleting so the
// user can explicitly try again.
func (c *Controller) Retry(ctx context.Context) error {
	c.mu.Lock()
	if err := c.guardLocked(operationRetry, true, PhaseFailed); err != nil {
		c.mu.Unlock()
		return err
	}
	if c.failure == nil || c.failure.During != PhaseCompleting {
		c.mu.Unlock()
		return exceptions.ErrInvalidPhase(operationRetry, c.phase.String())
	}
	c.failure = nil
	transition := c.setPhaseLocked(PhaseCompleting, "retry")
	c.mu.Unlock()

	c.recordTransition(ctx, transition)
	return nil
}

// Abandon ends the session: the camera is released and responses still in
// flight are discarded. Abandon is idempotent.
func (c *Controller) Abandon() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.abandoned {
		return
	}
	c.abandoned = true
	c.epoch++
	c.closeCameraLocked()
	c.log.Info("Controller.Abandon succeeded",
		zap.String(constvars.LoggingPhaseKey, c.phase.String()),
	)
}

// Results returns the scored assessment once the session shows results.
func (c *Controller) Results() (*models.ResultSet, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.guardLocked("Results", false, PhaseShowingResults); err != nil {
		return nil, err
	}
	return c.results, nil
}

func (c *Controller) resultsAssessmentID(operation string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.guardLocked(operation, false, PhaseShowingResults); err != nil {
		return "", err
	}
	return c.assessment.ID, nil
}

// IridologyReport fetches the backend's iridology report for the assessment.
func (c *Controller) IridologyReport(ctx context.Context) (*models.IridologyReport, error) {
	assessmentID, err := c.resultsAssessmentID(operationIridologyReport)
	if err != nil {
		return nil, err
	}
	return c.deps.Portal.FindReport(ctx, assessmentID)
}

// GenerateReport asks the backend to render the PDF report and returns its link.
func (c *Controller) GenerateReport(ctx context.Context) (*models.ReportLink, error) {
	assessmentID, err := c.resultsAssessmentID(operationGenerateReport)
	if err != nil {
		return nil, err
	}
	requestID := utils.GetRequestID(ctx)
	link, err := c.deps.Portal.GenerateReport(ctx, assessmentID)
	if err != nil {
		c.log.Error("Controller.GenerateReport error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return link, nil
}
