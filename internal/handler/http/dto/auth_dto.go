package dto

// RegisterRequest defines the structure of the registration payload.
// Name is the legacy single full-name field used when firstName and
// lastName are absent.
type RegisterRequest struct {
	Username            string `json:"username" binding:"required"`
	Email               string `json:"email" binding:"required,email"`
	Password            string `json:"password" binding:"required,min=8"`
	Name                string `json:"name"`
	FirstName           string `json:"firstName"`
	LastName            string `json:"lastName"`
	State               string `json:"state"`
	City                string `json:"city"`
	Age                 int    `json:"age"`
	Designation         string `json:"designation"`
	SustainabilityFocus string `json:"sustainabilityFocus"`
}

// LoginRequest carries the login form. Login matches against username
// or email.
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SendOTPRequest is accepted by the send-otp stub.
type SendOTPRequest struct {
	Email string `json:"email"`
}

// VerifyOTPRequest is accepted by the verify-otp stub.
type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}
