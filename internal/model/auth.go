package model

// SignUpRequest is the registration payload
type SignUpRequest struct {
	FirstName       string  `json:"firstName" binding:"required"`
	MiddleName      *string `json:"middleName"`
	LastName        string  `json:"lastName" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	Phone           string  `json:"phoneNumber" binding:"required"`
	Sex             string  `json:"sex" binding:"required"`
	Password        string  `json:"password" binding:"required,min=6"`
	ConfirmPassword string  `json:"confirmPassword" binding:"required"`
}

// SignInRequest carries either an email or a phone number plus the password
type SignInRequest struct {
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phoneNumber"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is returned on successful authentication
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ForgetPasswordRequest starts the password reset flow
type ForgetPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest consumes a previously issued reset token
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// PaymentRequest initializes a payment with the provider. Amount is in major
// currency units; the provider is sent the minor-unit value.
type PaymentRequest struct {
	Email  string `json:"email" binding:"required,email"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}
