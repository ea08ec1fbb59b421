package readmodel

import (
	"github.com/google/uuid"
)

type AuthorizedUserRM struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}
