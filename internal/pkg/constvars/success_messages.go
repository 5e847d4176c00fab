package constvars

const (
	WizardCreatedSuccessMessage         = "assessment session created"
	WizardFoundSuccessMessage           = "assessment session found"
	WizardPatientsFoundSuccessMessage   = "patients found"
	WizardPatientSelectedSuccessMessage = "patient selected"
	WizardStartedSuccessMessage         = "assessment started"
	WizardAnswerSubmittedSuccessMessage = "answer saved"
	WizardWentBackSuccessMessage        = "moved to previous question"
	WizardCameraOpenedSuccessMessage    = "camera opened"
	WizardEyeCapturedSuccessMessage     = "eye image captured"
	WizardIridologySubmittedMessage     = "iridology analysis complete"
	WizardIridologySkippedMessage       = "iridology skipped"
	WizardCompletedSuccessMessage       = "assessment complete"
	WizardRetryReadySuccessMessage      = "assessment ready to complete again"
	WizardResultsFoundSuccessMessage    = "results found"
	WizardReportFoundSuccessMessage     = "iridology report found"
	WizardReportGeneratedSuccessMessage = "report generated"
	WizardAbandonedSuccessMessage       = "assessment session closed"
)
