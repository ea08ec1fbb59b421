package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// BookingRM is the read model returned by write operations.
type BookingRM struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	RoomID    uuid.UUID `json:"room_id"`
	Dates     []string  `json:"dates"`
	Status    string    `json:"booking_status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingListRM joins the room and user summaries the admin listing shows.
type BookingListRM struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
	RoomID    uuid.UUID `json:"room_id"`
	RoomTitle string    `json:"room_title"`
	RoomRent  int64     `json:"room_rent"`
	Dates     []string  `json:"dates"`
	Status    string    `json:"booking_status"`
	CreatedAt time.Time `json:"created_at"`
}

// UserBookingRM is the user-scoped listing with the richer room summary.
type UserBookingRM struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	UserName       string    `json:"user_name"`
	UserEmail      string    `json:"user_email"`
	RoomID         uuid.UUID `json:"room_id"`
	RoomTitle      string    `json:"room_title"`
	RoomRent       int64     `json:"room_rent"`
	RoomFacilities []string  `json:"room_facilities"`
	RoomPictures   []string  `json:"room_pictures"`
	Dates          []string  `json:"dates"`
	Status         string    `json:"booking_status"`
	CreatedAt      time.Time `json:"created_at"`
}
