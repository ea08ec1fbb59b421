package usecase

import (
	"context"
	"errors"

	"room-booking-api/internal/domain/room"
	"room-booking-api/internal/infra"
	"room-booking-api/internal/pkg/errs"
	"room-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var ErrRoomValidation = errors.New("invalid room data")

type RoomRepository interface {
	RoomReader
	Create(ctx context.Context, rm *room.Room) (*readmodel.RoomRM, error)
	Update(ctx context.Context, rm *room.Room) (*readmodel.RoomRM, error)
	FindAll(ctx context.Context) ([]*readmodel.RoomRM, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateRoomParams struct {
	Title      string
	Rent       int64
	Facilities []string
	Pictures   []string
}

type UpdateRoomParams struct {
	Title      string
	Rent       int64
	Facilities []string
	Pictures   []string
}

type RoomUseCase interface {
	CreateRoom(ctx context.Context, params CreateRoomParams) (*readmodel.RoomRM, error)
	UpdateRoom(ctx context.Context, id uuid.UUID, params UpdateRoomParams) (*readmodel.RoomRM, error)
	GetRoom(ctx context.Context, id uuid.UUID) (*readmodel.RoomRM, error)
	ListRooms(ctx context.Context) ([]*readmodel.RoomRM, error)
	DeleteRoom(ctx context.Context, id uuid.UUID) error
}

type roomUseCaseImpl struct {
	roomRepo RoomRepository
}

func NewRoomUseCase(roomRepo RoomRepository) RoomUseCase {
	return &roomUseCaseImpl{roomRepo: roomRepo}
}

func (u *roomUseCaseImpl) CreateRoom(ctx context.Context, params CreateRoomParams) (*readmodel.RoomRM, error) {
	entity, err := room.NewRoom(params.Title, params.Rent, params.Facilities, params.Pictures)
	if err != nil {
		return nil, errs.Mark(err, ErrRoomValidation)
	}

	rm, err := u.roomRepo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return rm, nil
}

func (u *roomUseCaseImpl) UpdateRoom(ctx context.Context, id uuid.UUID, params UpdateRoomParams) (*readmodel.RoomRM, error) {
	entity, err := u.roomRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Wrap(err, "failed to find room")
	}

	if err := entity.Update(params.Title, params.Rent, params.Facilities, params.Pictures); err != nil {
		return nil, errs.Mark(err, ErrRoomValidation)
	}

	rm, err := u.roomRepo.Update(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return rm, nil
}

func (u *roomUseCaseImpl) GetRoom(ctx context.Context, id uuid.UUID) (*readmodel.RoomRM, error) {
	entity, err := u.roomRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Wrap(err, "failed to find room")
	}

	return &readmodel.RoomRM{
		ID:         entity.ID(),
		Title:      entity.Title(),
		Rent:       entity.Rent(),
		Facilities: entity.Facilities(),
		Pictures:   entity.Pictures(),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}, nil
}

func (u *roomUseCaseImpl) ListRooms(ctx context.Context) ([]*readmodel.RoomRM, error) {
	rooms, err := u.roomRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list rooms")
	}
	return rooms, nil
}

func (u *roomUseCaseImpl) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	if err := u.roomRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRoomNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
