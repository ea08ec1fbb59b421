package request

import (
	"room-booking-api/internal/domain/booking"
	"room-booking-api/internal/usecase"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID    uuid.UUID  `json:"room_id" binding:"required"`
	UserID    *uuid.UUID `json:"user_id"`
	StartDate string     `json:"start_date" binding:"required"`
	EndDate   string     `json:"end_date" binding:"required"`
}

// ToParams resolves the booking owner: an explicit user_id wins, otherwise
// the booking is created for the authenticated caller.
func (r CreateBookingRequest) ToParams(callerID uuid.UUID) (usecase.CreateBookingParams, error) {
	start, err := booking.ParseDay(r.StartDate)
	if err != nil {
		return usecase.CreateBookingParams{}, err
	}
	end, err := booking.ParseDay(r.EndDate)
	if err != nil {
		return usecase.CreateBookingParams{}, err
	}

	userID := callerID
	if r.UserID != nil {
		userID = *r.UserID
	}

	return usecase.CreateBookingParams{
		RoomID:    r.RoomID,
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
	}, nil
}

type UpdateBookingRequest struct {
	RoomID        *uuid.UUID `json:"room_id"`
	StartDate     string     `json:"start_date" binding:"required"`
	EndDate       string     `json:"end_date" binding:"required"`
	BookingStatus *string    `json:"booking_status"`
}

func (r UpdateBookingRequest) ToParams(bookingID uuid.UUID) (usecase.UpdateBookingParams, error) {
	start, err := booking.ParseDay(r.StartDate)
	if err != nil {
		return usecase.UpdateBookingParams{}, err
	}
	end, err := booking.ParseDay(r.EndDate)
	if err != nil {
		return usecase.UpdateBookingParams{}, err
	}

	return usecase.UpdateBookingParams{
		BookingID: bookingID,
		RoomID:    r.RoomID,
		StartDate: start,
		EndDate:   end,
		Status:    r.BookingStatus,
	}, nil
}
