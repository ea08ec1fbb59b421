package usecase

import (
	"context"
	"errors"

	"room-booking-api/internal/domain/booking"
	"room-booking-api/internal/domain/room"
	"room-booking-api/internal/infra"
	"room-booking-api/internal/infra/db"
	"room-booking-api/internal/pkg/errs"
	"room-booking-api/internal/pkg/patch"
	"room-booking-api/internal/usecase/readmodel"
	"room-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrInvalidRange    = errors.New("end date must be after start date")
	ErrBookingConflict = errors.New("room already booked for the selected dates")
	ErrInvalidStatus   = errors.New("invalid booking status")

	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (*readmodel.BookingRM, error)
	Update(ctx context.Context, tx db.DBTX, b *booking.Booking) (*readmodel.BookingRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	FindConflictingDays(ctx context.Context, roomID uuid.UUID, days []booking.Day, excludeID *uuid.UUID) ([]booking.Day, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context) ([]*readmodel.BookingListRM, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*readmodel.UserBookingRM, error)
}

type RoomReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
}

type CreateBookingParams struct {
	RoomID    uuid.UUID
	UserID    uuid.UUID
	StartDate booking.Day
	EndDate   booking.Day
}

type UpdateBookingParams struct {
	BookingID uuid.UUID
	RoomID    *uuid.UUID
	StartDate booking.Day
	EndDate   booking.Day
	Status    *string
}

type BookingUseCase interface {
	CreateBooking(ctx context.Context, params CreateBookingParams) (*readmodel.BookingRM, error)
	UpdateBooking(ctx context.Context, params UpdateBookingParams) (*readmodel.BookingRM, error)
	CancelBooking(ctx context.Context, id uuid.UUID) error
	ListAllBookings(ctx context.Context) ([]*readmodel.BookingListRM, error)
	ListUserBookings(ctx context.Context, userID uuid.UUID) ([]*readmodel.UserBookingRM, error)
}

type bookingUseCaseImpl struct {
	bookingRepo BookingRepository
	roomRepo    RoomReader
	txm         shared.TxManager
}

func NewBookingUseCase(bookingRepo BookingRepository, roomRepo RoomReader, txm shared.TxManager) BookingUseCase {
	return &bookingUseCaseImpl{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		txm:         txm,
	}
}

// CreateBooking expands the requested range into calendar days, rejects the
// whole request on any overlap with an existing booking for the room, and
// persists the booking as pending. The overlap pre-check produces the
// descriptive error; the UNIQUE (room_id, day) constraint inside the
// transaction closes the check-then-write race between concurrent callers.
func (u *bookingUseCaseImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (*readmodel.BookingRM, error) {
	if _, err := u.roomRepo.FindByID(ctx, params.RoomID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Wrap(err, "failed to find room")
	}

	rng, err := booking.NewDateRange(params.StartDate, params.EndDate)
	if err != nil {
		return nil, ErrInvalidRange
	}

	b := booking.NewBooking(params.UserID, params.RoomID, rng)

	conflicts, err := u.bookingRepo.FindConflictingDays(ctx, params.RoomID, b.Dates(), nil)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if len(conflicts) > 0 {
		return nil, ErrBookingConflict
	}

	return u.persist(ctx, func(tx db.DBTX) (*readmodel.BookingRM, error) {
		return u.bookingRepo.Create(ctx, tx, b)
	})
}

// UpdateBooking re-expands the new range and re-checks conflicts, excluding
// the booking being updated so moving to its own dates never self-conflicts.
// A supplied-but-invalid status is rejected; an omitted one is left unchanged.
func (u *bookingUseCaseImpl) UpdateBooking(ctx context.Context, params UpdateBookingParams) (*readmodel.BookingRM, error) {
	b, err := u.bookingRepo.FindByID(ctx, params.BookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}

	roomID := patch.Coalesce(params.RoomID, b.RoomID())
	if _, err := u.roomRepo.FindByID(ctx, roomID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Wrap(err, "failed to find room")
	}

	rng, err := booking.NewDateRange(params.StartDate, params.EndDate)
	if err != nil {
		return nil, ErrInvalidRange
	}

	excludeID := b.ID()
	conflicts, err := u.bookingRepo.FindConflictingDays(ctx, roomID, rng.Expand(), &excludeID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if len(conflicts) > 0 {
		return nil, ErrBookingConflict
	}

	b.Reschedule(roomID, rng)

	if params.Status != nil {
		status, err := booking.NewStatus(*params.Status)
		if err != nil {
			return nil, ErrInvalidStatus
		}
		if err := b.ChangeStatus(status); err != nil {
			return nil, ErrInvalidStatus
		}
	}

	return u.persist(ctx, func(tx db.DBTX) (*readmodel.BookingRM, error) {
		return u.bookingRepo.Update(ctx, tx, b)
	})
}

func (u *bookingUseCaseImpl) persist(ctx context.Context, write func(tx db.DBTX) (*readmodel.BookingRM, error)) (*readmodel.BookingRM, error) {
	var rm *readmodel.BookingRM
	err := u.txm.RunInTx(ctx, func(tx db.DBTX) error {
		var writeErr error
		rm, writeErr = write(tx)
		return writeErr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrBookingConflict
		}
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return rm, nil
}

func (u *bookingUseCaseImpl) CancelBooking(ctx context.Context, id uuid.UUID) error {
	if _, err := u.bookingRepo.FindByID(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Wrap(err, "failed to find booking")
	}

	if err := u.bookingRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return nil
}

func (u *bookingUseCaseImpl) ListAllBookings(ctx context.Context) ([]*readmodel.BookingListRM, error) {
	bookings, err := u.bookingRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings")
	}
	return bookings, nil
}

func (u *bookingUseCaseImpl) ListUserBookings(ctx context.Context, userID uuid.UUID) ([]*readmodel.UserBookingRM, error) {
	bookings, err := u.bookingRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list user bookings")
	}
	return bookings, nil
}
