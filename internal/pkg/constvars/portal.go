package constvars

const (
	PortalPathPatients           = "/api/v1/clinic/patients"
	PortalPathQuestions          = "/api/v1/new-assessment/questions"
	PortalPathStartAssessment    = "/api/v1/new-assessment/start"
	PortalPathSubmitAnswer       = "/api/v1/new-assessment/answer"
	PortalPathCompleteAssessment = "/api/v1/new-assessment/complete"
	PortalPathIridologyAnalyze   = "/api/v1/iridology/analyze"
	PortalPathIridologyReport    = "/api/v1/iridology/%s/report"
	PortalPathGenerateReport     = "/api/v1/reports/generate/%s"
)

const (
	DomainVitalityEnergy   = "vitality_energy"
	DomainComfortMobility  = "comfort_mobility"
	DomainCirculationHeart = "circulation_heart"
	DomainStressRelaxation = "stress_relaxation"
	DomainImmuneDigestive  = "immune_digestive"
)

// Domains lists the wellness domains in presentation order.
var Domains = []string{
	DomainVitalityEnergy,
	DomainComfortMobility,
	DomainCirculationHeart,
	DomainStressRelaxation,
	DomainImmuneDigestive,
}

const (
	CredentialTokenKey = "token"
	CredentialUserKey  = "user"
)

const (
	EyeLeft  = "left"
	EyeRight = "right"
)

const (
	EventAssessmentCompleted = "assessment.completed"
	EventIridologyAnalyzed   = "iridology.analyzed"
)

const AuditCollectionWizardTransitions = "wizard_transitions"
