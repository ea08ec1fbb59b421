package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"room-booking-api/internal/usecase/readmodel"
)

type BookingResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	RoomID    uuid.UUID `json:"room_id"`
	Dates     []string  `json:"dates"`
	Status    string    `json:"booking_status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BookingListItemResponse struct {
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

type UserBookingResponse struct {
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

func ToBookingResponse(rm *readmodel.BookingRM) (BookingResponse, error) {
	var resp BookingResponse
	if err := copier.Copy(&resp, rm); err != nil {
		return BookingResponse{}, err
	}
	return resp, nil
}

func ToBookingListResponse(rms []*readmodel.BookingListRM) ([]BookingListItemResponse, error) {
	resps := make([]BookingListItemResponse, 0, len(rms))
	for _, rm := range rms {
		var resp BookingListItemResponse
		if err := copier.Copy(&resp, rm); err != nil {
			return nil, err
		}
		resps = append(resps, resp)
	}
	return resps, nil
}

func ToUserBookingListResponse(rms []*readmodel.UserBookingRM) ([]UserBookingResponse, error) {
	resps := make([]UserBookingResponse, 0, len(rms))
	for _, rm := range rms {
		var resp UserBookingResponse
		if err := copier.Copy(&resp, rm); err != nil {
			return nil, err
		}
		resps = append(resps, resp)
	}
	return resps, nil
}
