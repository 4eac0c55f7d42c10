package entity

import "time"

// RegistrationDraft is the unconfirmed identity captured by send-otp.
// The password is kept as submitted until the identity is materialized.
type RegistrationDraft struct {
	FullName string   `json:"fullName"`
	College  string   `json:"college"`
	Email    string   `json:"email"`
	Roll     string   `json:"roll"`
	Skills   []string `json:"skills"`
	Domains  []string `json:"domains"`
	Password string   `json:"password"`
}

type PendingVerification struct {
	Email     string            `json:"email"`
	Code      string            `json:"code"`
	Draft     RegistrationDraft `json:"draft"`
	CreatedAt time.Time         `json:"createdAt"`
}
