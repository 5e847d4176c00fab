package models

import "strings"

type Patient struct {
	ID            string `json:"id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	PatientNumber string `json:"patient_number"`
	Email         string `json:"email,omitempty"`
}

func (p Patient) DisplayName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}
