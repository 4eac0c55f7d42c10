package dto

type SendOTPRequest struct {
	FullName        string   `json:"fullName" validate:"required"`
	College         string   `json:"college" validate:"required"`
	Email           string   `json:"email" validate:"required,email"`
	Roll            string   `json:"roll" validate:"required"`
	Skills          []string `json:"skills"`
	Domains         []string `json:"domains"`
	Password        string   `json:"password" validate:"required"`
	ConfirmPassword string   `json:"confirmPassword" validate:"required"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	Otp   string `json:"otp" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  *UserResponse `json:"user"`
	Token string        `json:"token"`
}
