package requests

import "wellness-wizard/internal/pkg/utils"

type SelectPatient struct {
	PatientID utils.FlexibleString `json:"patient_id" validate:"required"`
}

type SubmitAnswer struct {
	OptionIndex *int `json:"option_index" validate:"required,min=0"`
}

// SubmitIridology carries base64 images, optionally as data URLs. Empty
// fields fall back to frames captured with the session camera.
type SubmitIridology struct {
	LeftEyeImage  string `json:"left_eye_image"`
	RightEyeImage string `json:"right_eye_image"`
}

type CaptureEye struct {
	Eye string `json:"eye" validate:"required,eye"`
}
