package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"room-booking-api/internal/usecase/readmodel"
)

type RoomResponse struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Rent       int64     `json:"rent"`
	Facilities []string  `json:"facilities"`
	Pictures   []string  `json:"pictures"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ToRoomResponse(rm *readmodel.RoomRM) (RoomResponse, error) {
	var resp RoomResponse
	if err := copier.Copy(&resp, rm); err != nil {
		return RoomResponse{}, err
	}
	return resp, nil
}

// ToRoomListResponse always returns a non-nil slice so an empty listing
// serializes as [] rather than null.
func ToRoomListResponse(rms []*readmodel.RoomRM) ([]RoomResponse, error) {
	resps := make([]RoomResponse, 0, len(rms))
	for _, rm := range rms {
		resp, err := ToRoomResponse(rm)
		if err != nil {
			return nil, err
		}
		resps = append(resps, resp)
	}
	return resps, nil
}
