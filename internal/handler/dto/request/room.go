package request

import (
	"room-booking-api/internal/usecase"
)

type CreateRoomRequest struct {
	Title      string   `json:"title" binding:"required"`
	Rent       int64    `json:"rent" binding:"required,gt=0"`
	Facilities []string `json:"facilities" binding:"required,min=1"`
	Pictures   []string `json:"pictures"`
}

func (r CreateRoomRequest) ToParams() usecase.CreateRoomParams {
	return usecase.CreateRoomParams{
		Title:      r.Title,
		Rent:       r.Rent,
		Facilities: r.Facilities,
		Pictures:   r.Pictures,
	}
}

// UpdateRoomRequest fields are optional; zero values leave the stored
// field unchanged.
type UpdateRoomRequest struct {
	Title      string   `json:"title"`
	Rent       int64    `json:"rent" binding:"omitempty,gt=0"`
	Facilities []string `json:"facilities"`
	Pictures   []string `json:"pictures"`
}

func (r UpdateRoomRequest) ToParams() usecase.UpdateRoomParams {
	return usecase.UpdateRoomParams{
		Title:      r.Title,
		Rent:       r.Rent,
		Facilities: r.Facilities,
		Pictures:   r.Pictures,
	}
}
