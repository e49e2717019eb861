package model

import "time"

// User represents a registered account. At least one of Email/Phone is
// always present and serves as the authentication key.
type User struct {
	ID           int       `json:"id"`
	Email        *string   `json:"email,omitempty"`
	Phone        *string   `json:"phoneNumber,omitempty"`
	FirstName    string    `json:"firstName"`
	MiddleName   *string   `json:"middleName,omitempty"`
	LastName     string    `json:"lastName"`
	Sex          string    `json:"sex"`
	PasswordHash string    `json:"-"` // Do not expose password hash in JSON responses
	Disabled     bool      `json:"disabled,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identifier returns the string used as a token subject: the email when
// present, the phone number otherwise.
func (u *User) Identifier() string {
	if u.Email != nil && *u.Email != "" {
		return *u.Email
	}
	if u.Phone != nil {
		return *u.Phone
	}
	return ""
}
