package repository

import (
	"context"
	"errors"
	"time"

	"room-booking-api/internal/domain/booking"
	"room-booking-api/internal/infra"
	"room-booking-api/internal/infra/db"
	"room-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgErrCodeUniqueViolation = "23505"

// booking_days carries one row per occupied (room, day) pair with a unique
// constraint on it. Inserting day rows in the same transaction as the booking
// is what makes two concurrent overlapping requests unable to both commit.
const bookingDaysRoomDayConstraint = "booking_days_room_day_key"

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: pool}
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (*readmodel.BookingRM, error) {
	var createdAt, updatedAt time.Time
	err := tx.QueryRow(ctx,
		`INSERT INTO bookings (id, user_id, room_id, dates, status)
		 VALUES ($1, $2, $3, $4::date[], $5)
		 RETURNING created_at, updated_at`,
		b.ID(), b.UserID(), b.RoomID(), daysToStrings(b.Dates()), b.Status().String(),
	).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, classifyWriteErr("failed to create booking", err)
	}

	if err := r.insertDayRows(ctx, tx, b); err != nil {
		return nil, err
	}

	return bookingToRM(b, createdAt, updatedAt), nil
}

func (r *BookingRepository) Update(ctx context.Context, tx db.DBTX, b *booking.Booking) (*readmodel.BookingRM, error) {
	var createdAt, updatedAt time.Time
	err := tx.QueryRow(ctx,
		`UPDATE bookings
		 SET room_id = $2, dates = $3::date[], status = $4, updated_at = now()
		 WHERE id = $1
		 RETURNING created_at, updated_at`,
		b.ID(), b.RoomID(), daysToStrings(b.Dates()), b.Status().String(),
	).Scan(&createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, classifyWriteErr("failed to update booking", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM booking_days WHERE booking_id = $1`, b.ID()); err != nil {
		return nil, infra.WrapRepoErr("failed to clear booking days", err)
	}

	// Cancelled bookings keep their record but release every occupied day.
	if !b.IsCancelled() {
		if err := r.insertDayRows(ctx, tx, b); err != nil {
			return nil, err
		}
	}

	return bookingToRM(b, createdAt, updatedAt), nil
}

func (r *BookingRepository) insertDayRows(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO booking_days (booking_id, room_id, day)
		 SELECT $1, $2, unnest($3::date[])`,
		b.ID(), b.RoomID(), daysToStrings(b.Dates()),
	)
	if err != nil {
		return classifyWriteErr("failed to occupy booking days", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var (
		userID, roomID       uuid.UUID
		dates                []time.Time
		status               string
		createdAt, updatedAt time.Time
	)
	err := r.db.QueryRow(ctx,
		`SELECT user_id, room_id, dates, status, created_at, updated_at
		 FROM bookings WHERE id = $1`,
		id,
	).Scan(&userID, &roomID, &dates, &status, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	days := make([]booking.Day, len(dates))
	for i, d := range dates {
		days[i] = booking.NewDay(d)
	}

	return booking.ReconstructBooking(id, userID, roomID, days, booking.Status(status), createdAt, updatedAt), nil
}

// FindConflictingDays returns the subset of candidate days already occupied
// for the room, optionally ignoring one booking (self-exclusion on update).
func (r *BookingRepository) FindConflictingDays(ctx context.Context, roomID uuid.UUID, days []booking.Day, excludeID *uuid.UUID) ([]booking.Day, error) {
	rows, err := r.db.Query(ctx,
		`SELECT day FROM booking_days
		 WHERE room_id = $1
		   AND day = ANY($2::date[])
		   AND booking_id IS DISTINCT FROM $3
		 ORDER BY day`,
		roomID, daysToStrings(days), excludeID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query conflicting days", err)
	}
	defer rows.Close()

	var conflicts []booking.Day
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, infra.WrapRepoErr("failed to scan conflicting day", err)
		}
		conflicts = append(conflicts, booking.NewDay(d))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read conflicting days", err)
	}

	return conflicts, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// booking_days rows go with it via ON DELETE CASCADE
	tag, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) FindAll(ctx context.Context) ([]*readmodel.BookingListRM, error) {
	rows, err := r.db.Query(ctx,
		`SELECT b.id, b.user_id, u.name, u.email, b.room_id, r.title, r.rent,
		        b.dates, b.status, b.created_at
		 FROM bookings b
		 JOIN users u ON u.id = b.user_id
		 JOIN rooms r ON r.id = b.room_id
		 ORDER BY b.created_at DESC`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*readmodel.BookingListRM
	for rows.Next() {
		var (
			rm    readmodel.BookingListRM
			dates []time.Time
		)
		err := rows.Scan(&rm.ID, &rm.UserID, &rm.UserName, &rm.UserEmail,
			&rm.RoomID, &rm.RoomTitle, &rm.RoomRent, &dates, &rm.Status, &rm.CreatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		rm.Dates = formatDates(dates)
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}

	return result, nil
}

func (r *BookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*readmodel.UserBookingRM, error) {
	rows, err := r.db.Query(ctx,
		`SELECT b.id, b.user_id, u.name, u.email, b.room_id, r.title, r.rent,
		        r.facilities, r.pictures, b.dates, b.status, b.created_at
		 FROM bookings b
		 JOIN users u ON u.id = b.user_id
		 JOIN rooms r ON r.id = b.room_id
		 WHERE b.user_id = $1
		 ORDER BY b.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user bookings", err)
	}
	defer rows.Close()

	var result []*readmodel.UserBookingRM
	for rows.Next() {
		var (
			rm    readmodel.UserBookingRM
			dates []time.Time
		)
		err := rows.Scan(&rm.ID, &rm.UserID, &rm.UserName, &rm.UserEmail,
			&rm.RoomID, &rm.RoomTitle, &rm.RoomRent, &rm.RoomFacilities,
			&rm.RoomPictures, &dates, &rm.Status, &rm.CreatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan user booking row", err)
		}
		rm.Dates = formatDates(dates)
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read user booking rows", err)
	}

	return result, nil
}

func classifyWriteErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
		if pgErr.ConstraintName == bookingDaysRoomDayConstraint {
			return infra.WrapRepoErr(msg, err, infra.KindConflict)
		}
		return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
	}
	return infra.WrapRepoErr(msg, err)
}

func daysToStrings(days []booking.Day) []string {
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = d.String()
	}
	return out
}

func formatDates(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = booking.NewDay(d).String()
	}
	return out
}

func bookingToRM(b *booking.Booking, createdAt, updatedAt time.Time) *readmodel.BookingRM {
	return &readmodel.BookingRM{
		ID:        b.ID(),
		UserID:    b.UserID(),
		RoomID:    b.RoomID(),
		Dates:     daysToStrings(b.Dates()),
		Status:    b.Status().String(),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
