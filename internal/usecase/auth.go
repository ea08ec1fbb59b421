package usecase

import (
	"context"
	"errors"

	"room-booking-api/internal/domain/user"
	"room-booking-api/internal/infra"
	"room-booking-api/internal/pkg/jwt"
	"room-booking-api/internal/pkg/password"
	"room-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrTokenValidation    = errors.New("token validation failed")
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (*readmodel.AuthorizedUserRM, error)
	FindByEmail(ctx context.Context, email user.Email) (*readmodel.AuthorizedUserRM, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error)
}

type AuthUseCase interface {
	Signup(ctx context.Context, name string, credentials user.Credentials, role user.Role) (string, *readmodel.AuthorizedUserRM, error)
	Login(ctx context.Context, credentials user.Credentials) (string, *readmodel.AuthorizedUserRM, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserRM, error)
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(userRepo UserRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Signup(ctx context.Context, name string, credentials user.Credentials, role user.Role) (string, *readmodel.AuthorizedUserRM, error) {
	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return "", nil, err
	}

	entity := user.NewUser(name, credentials.Email(), hash, role)

	// Email uniqueness is enforced by the users.email unique constraint, not
	// by a racy find-then-insert.
	userRM, err := a.userRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return "", nil, ErrEmailTaken
		}
		return "", nil, err
	}

	token, err := a.jwtService.GenerateToken(entity.ID(), role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	return token, userRM, nil
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (string, *readmodel.AuthorizedUserRM, error) {
	userRM, hashedPassword, err := a.userRepo.FindByEmail(ctx, credentials.Email())
	if err != nil {
		// Same response whether the account exists or the password is wrong
		return "", nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(userRM.Role)
	if err != nil {
		return "", nil, ErrTokenValidation
	}

	token, err := a.jwtService.GenerateToken(userRM.ID, role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	return token, userRM, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	userRM, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return userRM, nil
}
