package booking

import (
	"time"

	"github.com/google/uuid"
)

// Booking reserves a room for every day in the expanded range. Dates are the
// materialized day set; the (start, end) pair is not stored separately.
type Booking struct {
	id        uuid.UUID
	userID    uuid.UUID
	roomID    uuid.UUID
	dates     []Day
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewBooking(userID, roomID uuid.UUID, rng DateRange) *Booking {
	return &Booking{
		id:     uuid.New(),
		userID: userID,
		roomID: roomID,
		dates:  rng.Expand(),
		status: StatusPending,
	}
}

func ReconstructBooking(id, userID, roomID uuid.UUID, dates []Day, status Status, createdAt, updatedAt time.Time) *Booking {
	return &Booking{
		id:        id,
		userID:    userID,
		roomID:    roomID,
		dates:     dates,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Reschedule moves the booking to a (possibly different) room and replaces
// its occupied days with the expansion of the new range.
func (b *Booking) Reschedule(roomID uuid.UUID, rng DateRange) {
	b.roomID = roomID
	b.dates = rng.Expand()
}

func (b *Booking) ChangeStatus(status Status) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	b.status = status
	return nil
}

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) RoomID() uuid.UUID    { return b.roomID }
func (b *Booking) Dates() []Day         { return b.dates }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
