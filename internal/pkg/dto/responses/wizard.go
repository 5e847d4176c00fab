package responses

type WizardCreated struct {
	WizardID string `json:"wizard_id"`
}

type AnswerSubmitted struct {
	QuestionID int         `json:"question_id"`
	Synced     bool        `json:"synced"`
	Wizard     interface{} `json:"wizard"`
}

type WentBack struct {
	SelectedOption *int        `json:"selected_option"`
	Wizard         interface{} `json:"wizard"`
}

type ReportGenerated struct {
	DownloadURL string `json:"download_url"`
}

type EyeCaptured struct {
	Eye         string `json:"eye"`
	PayloadSize int    `json:"payload_size"`
}
