package dto

// OTPMailMessage is the payload published on the in-process mail topic.
type OTPMailMessage struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}
