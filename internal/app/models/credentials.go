package models

import "time"

type PortalUser struct {
	ID       string `json:"id"`
	ClinicID string `json:"clinic_id"`
}

// Credentials are written by the portal login flow and only read here.
type Credentials struct {
	Token     string
	User      PortalUser
	ExpiresAt time.Time
}

func (c Credentials) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}
