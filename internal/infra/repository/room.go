package repository

import (
	"context"
	"errors"
	"time"

	"room-booking-api/internal/domain/room"
	"room-booking-api/internal/infra"
	"room-booking-api/internal/infra/db"
	"room-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(pool *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{db: pool}
}

func (r *RoomRepository) Create(ctx context.Context, rm *room.Room) (*readmodel.RoomRM, error) {
	var createdAt, updatedAt time.Time
	err := r.db.QueryRow(ctx,
		`INSERT INTO rooms (id, title, rent, facilities, pictures)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at`,
		rm.ID(), rm.Title(), rm.Rent(), rm.Facilities(), rm.Pictures(),
	).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create room", err)
	}

	return roomToRM(rm, createdAt, updatedAt), nil
}

func (r *RoomRepository) Update(ctx context.Context, rm *room.Room) (*readmodel.RoomRM, error) {
	var createdAt, updatedAt time.Time
	err := r.db.QueryRow(ctx,
		`UPDATE rooms
		 SET title = $2, rent = $3, facilities = $4, pictures = $5, updated_at = now()
		 WHERE id = $1
		 RETURNING created_at, updated_at`,
		rm.ID(), rm.Title(), rm.Rent(), rm.Facilities(), rm.Pictures(),
	).Scan(&createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update room", err)
	}

	return roomToRM(rm, createdAt, updatedAt), nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	var (
		title                string
		rent                 int64
		facilities, pictures []string
		createdAt, updatedAt time.Time
	)
	err := r.db.QueryRow(ctx,
		`SELECT title, rent, facilities, pictures, created_at, updated_at
		 FROM rooms WHERE id = $1`,
		id,
	).Scan(&title, &rent, &facilities, &pictures, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}

	return room.ReconstructRoom(id, title, rent, facilities, pictures, createdAt, updatedAt), nil
}

func (r *RoomRepository) FindAll(ctx context.Context) ([]*readmodel.RoomRM, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, rent, facilities, pictures, created_at, updated_at
		 FROM rooms ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var result []*readmodel.RoomRM
	for rows.Next() {
		var rm readmodel.RoomRM
		err := rows.Scan(&rm.ID, &rm.Title, &rm.Rent, &rm.Facilities, &rm.Pictures, &rm.CreatedAt, &rm.UpdatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read room rows", err)
	}

	return result, nil
}

func (r *RoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func roomToRM(rm *room.Room, createdAt, updatedAt time.Time) *readmodel.RoomRM {
	return &readmodel.RoomRM{
		ID:         rm.ID(),
		Title:      rm.Title(),
		Rent:       rm.Rent(),
		Facilities: rm.Facilities(),
		Pictures:   rm.Pictures(),
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}
