package models

type IridologyResult struct {
	AssessmentID           string                 `json:"assessment_id"`
	ConstitutionalType     string                 `json:"constitutional_type"`
	ConstitutionalStrength string                 `json:"constitutional_strength"`
	Findings               map[string]interface{} `json:"findings,omitempty"`
	Recommendations        []string               `json:"recommendations,omitempty"`
}

type IridologyReport struct {
	Patient      ReportPatient  `json:"patient"`
	Practitioner string         `json:"practitioner,omitempty"`
	Analysis     ReportAnalysis `json:"analysis"`
}

type ReportPatient struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	PatientNumber string `json:"patient_number"`
	DateOfBirth   string `json:"date_of_birth,omitempty"`
}

type ReportAnalysis struct {
	ConstitutionalType     string            `json:"constitutional_type"`
	ConstitutionalStrength string            `json:"constitutional_strength"`
	Systems                map[string]string `json:"systems,omitempty"`
	PrimaryConcerns        []string          `json:"primary_concerns,omitempty"`
	WellnessPriorities     []string          `json:"wellness_priorities,omitempty"`
}

type ReportLink struct {
	DownloadURL string `json:"download_url"`
}
