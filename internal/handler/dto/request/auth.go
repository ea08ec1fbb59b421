package request

import (
	"room-booking-api/internal/domain/user"
)

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
}

func (r SignupRequest) Credentials() (user.Credentials, error) {
	return buildCredentials(r.Email, r.Password)
}

// Role defaults to the regular user role when omitted.
func (r SignupRequest) UserRole() (user.Role, error) {
	if r.Role == "" {
		return user.RoleUser, nil
	}
	return user.NewRole(r.Role)
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) Credentials() (user.Credentials, error) {
	return buildCredentials(r.Email, r.Password)
}

func buildCredentials(email, password string) (user.Credentials, error) {
	e, err := user.NewEmail(email)
	if err != nil {
		return user.Credentials{}, err
	}
	p, err := user.NewPassword(password)
	if err != nil {
		return user.Credentials{}, err
	}
	return user.NewCredentials(e, p), nil
}
