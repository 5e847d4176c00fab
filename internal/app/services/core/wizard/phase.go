package wizard

import "wellness-wizard/internal/pkg/exceptions"

type Phase string

const (
	PhaseSelectingPatient   Phase = "selecting_patient"
	PhaseInProgress         Phase = "in_progress"
	PhaseCapturingIridology Phase = "capturing_iridology"
	PhaseCompleting         Phase = "completing"
	PhaseShowingResults     Phase = "showing_results"
	PhaseFailed             Phase = "failed"
)

func (p Phase) String() string {
	return string(p)
}

// Failure describes why a session reached PhaseFailed and in which phase.
type Failure struct {
	During Phase
	Reason string
	Err    error
}

func kindName(err error) string {
	return string(exceptions.KindOf(err))
}

const (
	operationLoad            = "Load"
	operationSelectPatient   = "SelectPatient"
	operationStart           = "Start"
	operationSubmitAnswer    = "SubmitAnswer"
	operationGoBack          = "GoBack"
	operationOpenCamera      = "OpenCamera"
	operationCaptureEye      = "CaptureEye"
	operationSubmitIridology = "SubmitIridology"
	operationSkipIridology   = "SkipIridology"
	operationComplete        = "Complete"
	operationRetry           = "Retry"
	operationIridologyReport = "IridologyReport"
	operationGenerateReport  = "GenerateReport"
)
