package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type RoomRM struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Rent       int64     `json:"rent"`
	Facilities []string  `json:"facilities"`
	Pictures   []string  `json:"pictures"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
