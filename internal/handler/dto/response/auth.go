package response

import (
	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"room-booking-api/internal/usecase/readmodel"
)

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func ToUserResponse(rm *readmodel.AuthorizedUserRM) (UserResponse, error) {
	var resp UserResponse
	if err := copier.Copy(&resp, rm); err != nil {
		return UserResponse{}, err
	}
	return resp, nil
}

func ToAuthResponse(token string, rm *readmodel.AuthorizedUserRM) (AuthResponse, error) {
	userResp, err := ToUserResponse(rm)
	if err != nil {
		return AuthResponse{}, err
	}
	return AuthResponse{Token: token, User: userResp}, nil
}
