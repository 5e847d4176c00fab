package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"
	"wellness-wizard/internal/app/services/core/capture"
	"wellness-wizard/internal/app/services/core/results"
	"wellness-wizard/internal/app/services/core/wizard"
	"wellness-wizard/internal/pkg/constvars"
	"wellness-wizard/internal/pkg/dto/requests"
	"wellness-wizard/internal/pkg/dto/responses"
	"wellness-wizard/internal/pkg/exceptions"
	"wellness-wizard/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type WizardController struct {
	Log         *zap.Logger
	Registry    *wizard.Registry
	Constraints capture.Constraints
	Timeout     time.Duration
}

func NewWizardController(logger *zap.Logger, registry *wizard.Registry, constraints capture.Constraints, timeout time.Duration) *WizardController {
	return &WizardController{
		Log:         logger,
		Registry:    registry,
		Constraints: constraints,
		Timeout:     timeout,
	}
}

func (ctrl *WizardController) withTimeout(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), ctrl.Timeout)
}

func (ctrl *WizardController) fail(w http.ResponseWriter, r *http.Request, operation string, err error) {
	ctrl.Log.Error("WizardController."+operation+" error",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.String(constvars.LoggingWizardIDKey, chi.URLParam(r, constvars.URLParamWizardID)),
		zap.Error(err),
	)
	// Classified errors keep their kind even when they wrap a deadline.
	if exceptions.KindOf(err) == exceptions.KindInternal && errors.Is(err, context.DeadlineExceeded) {
		err = exceptions.ErrServerDeadlineExceeded(err)
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}

// session resolves the wizard named in the URL and writes a NotFound response
// when there is none.
func (ctrl *WizardController) session(w http.ResponseWriter, r *http.Request, operation string) *wizard.Controller {
	session, err := ctrl.Registry.Get(chi.URLParam(r, constvars.URLParamWizardID))
	if err != nil {
		ctrl.fail(w, r, operation, err)
		return nil
	}
	return session
}

func (ctrl *WizardController) Create(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("WizardController.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := ctrl.Registry.Create()
	if err != nil {
		ctrl.fail(w, r, "Create", err)
		return
	}

	ctx, cancel := ctrl.withTimeout(r)
	defer cancel()

	if err := session.Load(ctx); err != nil {
		ctrl.Registry.Remove(session.ID())
		ctrl.fail(w, r, "Create", err)
		return
	}

	ctrl.Log.Info("WizardController.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWizardIDKey, session.ID()),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.WizardCreatedSuccessMessage, session.Snapshot())
}

func (ctrl *WizardController) Find(w http.ResponseWriter, r *http.Request) {
	session := ctrl.session(w, r, "Find")
	if session == nil {
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WizardFoundSuccessMessage, session.Snapshot())
}

func (ctrl *WizardController) FindPatients(w http.ResponseWriter, r *http.Request) {
	session := ctrl.session(w, r, "FindPatients")
	if session == nil {
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WizardPatientsFoundSuccessMessage, session.Patients())
}

func (ctrl *WizardController) SelectPatient(w http.ResponseWriter, r *http.Request) {
	session := ctrl.session(w, r, "SelectPatient")
	if session == nil {
		return
	}

	request := new(requests.SelectPatient)
	if err := utils.ParseJSONBody(r, request); err != nil {
		ctrl.fail(w, r, "SelectPatient", err)
		return
	}

	if err := session.SelectPatientByID(request.PatientID.String()); err != nil {
		ctrl.fail(w, r, "SelectPatient", err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WizardPatientSelectedSuccessMessage, session.Snapshot())
}

func (ctrl *WizardController) Start(w http.ResponseWriter, r *http.Request) {
	session := ctrl.session(w, r, "Start")
	if session == nil {
		return
	}

	ctx, cancel := ctrl.withTimeout(r)
	defer cancel()

	if err := session.Start(ctx); err != nil {
		ctrl.fail(w, r, "Start", err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WizardStartedSuccessMessage, session.Snapshot())
}

func (ctrl *WizardController) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	session := ctrl.session(w, r, "SubmitAnswer")
	if session == nil {
		return
	}

	request := new(requests.SubmitAnswer)
	if err := utils.ParseJSONBody(r, request); err != nil {
		ctrl.fail(w, r, "SubmitAnswer", err)
		return
	}

	ctx, cancel := ctrl.withTimeout(r)
	defer cancel()

	outcome, err := session.SubmitAnswer(ctx, *request.OptionIndex)
	if err != nil {
		ctrl.fail(w, r, "SubmitAnswer", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WizardAnswerSubmittedSuccessMessage, &responses.AnswerSubmitted{
		QuestionID: outcome.QuestionID,
		Synced:     outcome.Synced,
		Wizard:     session.Snapshot(),
	})
}

func (ctrl *WizardController) GoBack(w http.ResponseWriter, r *http.Request) {
	session := ctrl.session(w, r, "GoBack")
	if session == nil {
		return
	}

	selected, err := session.GoBack()
	if err != nil {
		ctrl.fail(w, r, "GoBack", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WizardWentBackSuccessMessage, &responses.WentBack{
		SelectedOption: selected,
		Wizard:         session.Snapshot(),
	})
}

func (ctrl *WizardController) OpenCamera(w http.ResponseWriter, r *http.Request) {
	session := ctrl.session(w, r, "OpenCamera")
	if session == nil {
		return
	}

	ctx, cancel := ctrl.withTimeout(r)
	defer cancel()

	if err := session.OpenCamera(ctx); err != nil {
		ctrl.fail(w, r, "OpenCamera", err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WizardCameraOpenedSuccessMessage, session.Snapshot())
}

func (ctrl *WizardController) CaptureEye(w http.ResponseWriter, r *http.Request) {
	session := ctrl.session(w, r, "CaptureEye")
	if session == nil {
		return
	}

	request := new(requests.CaptureEye)
	if err := utils.ParseJSONBody(r, request); err != nil {
		ctrl.fail(w, r, "CaptureEye", err)
		return
	}

	ctx, cancel := ctrl.withTimeout(r)
	defer cancel()

	payload, err := session.CaptureEye(ctx, request.Eye)
	if err != nil {
		ctrl.fail(w, r, "CaptureEye", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WizardEyeCapturedSuccessMessage, &responses.EyeCaptured{
		Eye:         request.Eye,
		PayloadSize: len(payload),
	})
}

func (ctrl *WizardController) SubmitIridology(w http.ResponseWriter, r *http.Request) {
	session := ctrl.session(w, r, "SubmitIridology")
	if session == nil {
		return
	}

	request := new(requests.SubmitIridology)
	if err := utils.ParseJSONBody(r, request); err != nil {
		ctrl.fail(w, r, "SubmitIridology", err)
		return
	}

	left, err := ctrl.decodeImage(request.LeftEyeImage)
	if err != nil {
		ctrl.fail(w, r, "SubmitIridology", err)
		return
	}
	right, err := ctrl.decodeImage(request.RightEyeImage)
	if err != nil {
		ctrl.fail(w, r, "SubmitIridology", err)
		return
	}

	ctx, cancel := ctrl.withTimeout(r)
	defer cancel()

	result, err := session.SubmitIridology(ctx, left, right)
	if err != nil {
		ctrl.fail(w, r, "SubmitIridology", err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WizardIridologySubmittedMessage, result)
}

// decodeImage re-encodes an uploaded image; an empty upload stays empty so
// the session falls back to frames it captured itself.
func (ctrl *WizardController) decodeImage(encoded string) ([]byte, error) {
	if encoded == "" {
		return nil, nil
	}
	return capture.DecodeBase64Upload(encoded, ctrl.Constraints)
}

func (ctrl *WizardController) SkipIridology(w http.ResponseWriter, r *http.Request) {
	session := ctrl.session(w, r, "SkipIridology")
	if session == nil {
		return
	}

	if err := session.SkipIridology(r.Context()); err != nil {
		ctrl.fail(w, r, "SkipIridology", err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WizardIridologySkippedMessage, session.Snapshot())
}

func (ctrl *WizardController) Complete(w http.ResponseWriter, r *http.Request) {
	session := ctrl.session(w, r, "Complete")
	if session == nil {
		return
	}

	ctx, cancel := ctrl.withTimeout(r)
	defer cancel()

	resultSet, err := session.Complete(ctx)
	if err != nil {
		ctrl.fail(w, r, "Complete", err)
		return
	}

	ctrl.Log.Info("WizardController.Complete succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.String(constvars.LoggingAssessmentIDKey, resultSet.AssessmentID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WizardCompletedSuccessMessage, results.Present(resultSet))
}

func (ctrl *WizardController) Retry(w http.ResponseWriter, r *http.Request) {
	session := ctrl.session(w, r, "Retry")
	if session == nil {
		return
	}

	if err := session.Retry(r.Context()); err != nil {
		ctrl.fail(w, r, "Retry", err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WizardRetryReadySuccessMessage, session.Snapshot())
}

func (ctrl *WizardController) FindResults(w http.ResponseWriter, r *http.Request) {
	session := ctrl.session(w, r, "FindResults")
	if session == nil {
		return
	}

	resultSet, err := session.Results()
	if err != nil {
		ctrl.fail(w, r, "FindResults", err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WizardResultsFoundSuccessMessage, results.Present(resultSet))
}

func (ctrl *WizardController) FindReport(w http.ResponseWriter, r *http.Request) {
	session := ctrl.session(w, r, "FindReport")
	if session == nil {
		return
	}

	ctx, cancel := ctrl.withTimeout(r)
	defer cancel()

	report, err := session.IridologyReport(ctx)
	if err != nil {
		ctrl.fail(w, r, "FindReport", err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WizardReportFoundSuccessMessage, report)
}

func (ctrl *WizardController) GenerateReport(w http.ResponseWriter, r *http.Request) {
	session := ctrl.session(w, r, "GenerateReport")
	if session == nil {
		return
	}

	ctx, cancel := ctrl.withTimeout(r)
	defer cancel()

	link, err := session.GenerateReport(ctx)
	if err != nil {
		ctrl.fail(w, r, "GenerateReport", err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WizardReportGeneratedSuccessMessage, &responses.ReportGenerated{
		DownloadURL: link.DownloadURL,
	})
}

func (ctrl *WizardController) Abandon(w http.ResponseWriter, r *http.Request) {
	wizardID := chi.URLParam(r, constvars.URLParamWizardID)
	if err := ctrl.Registry.Remove(wizardID); err != nil {
		ctrl.fail(w, r, "Abandon", err)
		return
	}

	ctrl.Log.Info("WizardController.Abandon succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.String(constvars.LoggingWizardIDKey, wizardID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WizardAbandonedSuccessMessage, nil)
}
