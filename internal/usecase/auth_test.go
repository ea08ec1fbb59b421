//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"room-booking-api/internal/domain/user"
	"room-booking-api/internal/infra"
	"room-booking-api/internal/pkg/clock"
	"room-booking-api/internal/pkg/jwt"
	"room-booking-api/internal/pkg/password"
	"room-booking-api/internal/usecase"
	"room-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byEmail map[string]*user.User // canonical email -> entity
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*user.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) (*readmodel.AuthorizedUserRM, error) {
	if _, exists := r.byEmail[u.Email().Value()]; exists {
		return nil, infra.WrapRepoErr("duplicate email", nil, infra.KindDuplicateKey)
	}
	r.byEmail[u.Email().Value()] = u
	return userToRM(u), nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email user.Email) (*readmodel.AuthorizedUserRM, string, error) {
	u, ok := r.byEmail[email.Value()]
	if !ok {
		return nil, "", infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return userToRM(u), u.PasswordHash(), nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	for _, u := range r.byEmail {
		if u.ID() == id {
			return userToRM(u), nil
		}
	}
	return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
}

func userToRM(u *user.User) *readmodel.AuthorizedUserRM {
	return &readmodel.AuthorizedUserRM{
		ID:    u.ID(),
		Name:  u.Name(),
		Email: u.Email().Value(),
		Role:  u.Role().String(),
	}
}

func mustCredentials(t *testing.T, email, pw string) user.Credentials {
	t.Helper()
	e, err := user.NewEmail(email)
	require.NoError(t, err)
	p, err := user.NewPassword(pw)
	require.NoError(t, err)
	return user.NewCredentials(e, p)
}

func newAuthFixture(t *testing.T) (usecase.AuthUseCase, *fakeUserRepo, *jwt.Service) {
	t.Helper()
	repo := newFakeUserRepo()
	svc := jwt.NewService("test-secret", time.Hour, clock.NewRealClock())
	return usecase.NewAuthUseCase(repo, svc), repo, svc
}

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the user and issues a token", func(t *testing.T) {
		uc, _, svc := newAuthFixture(t)

		token, rm, err := uc.Signup(ctx, "Alice", mustCredentials(t, "alice@example.com", "password123"), user.RoleUser)
		require.NoError(t, err)
		require.NotNil(t, rm)
		assert.Equal(t, "alice@example.com", rm.Email)
		assert.Equal(t, "user", rm.Role)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, rm.ID, claims.UserID)
		assert.Equal(t, "user", claims.Role)
	})

	t.Run("stores a hash, never the raw password", func(t *testing.T) {
		uc, repo, _ := newAuthFixture(t)

		_, _, err := uc.Signup(ctx, "Alice", mustCredentials(t, "alice@example.com", "password123"), user.RoleUser)
		require.NoError(t, err)

		stored := repo.byEmail["alice@example.com"]
		require.NotNil(t, stored)
		assert.NotEqual(t, "password123", stored.PasswordHash())
		assert.NoError(t, password.ComparePassword(stored.PasswordHash(), "password123"))
	})

	t.Run("duplicate email", func(t *testing.T) {
		uc, _, _ := newAuthFixture(t)

		_, _, err := uc.Signup(ctx, "Alice", mustCredentials(t, "alice@example.com", "password123"), user.RoleUser)
		require.NoError(t, err)

		_, _, err = uc.Signup(ctx, "Impostor", mustCredentials(t, "alice@example.com", "different123"), user.RoleUser)
		assert.ErrorIs(t, err, usecase.ErrEmailTaken)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		uc, _, _ := newAuthFixture(t)

		_, _, err := uc.Signup(ctx, "Alice", mustCredentials(t, "alice@example.com", "password123"), user.RoleAdmin)
		require.NoError(t, err)

		token, rm, err := uc.Login(ctx, mustCredentials(t, "alice@example.com", "password123"))
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "admin", rm.Role)
	})

	t.Run("wrong password and unknown account read the same", func(t *testing.T) {
		uc, _, _ := newAuthFixture(t)

		_, _, err := uc.Signup(ctx, "Alice", mustCredentials(t, "alice@example.com", "password123"), user.RoleUser)
		require.NoError(t, err)

		_, _, wrongPw := uc.Login(ctx, mustCredentials(t, "alice@example.com", "wrongpass1"))
		_, _, noAccount := uc.Login(ctx, mustCredentials(t, "nobody@example.com", "password123"))

		assert.ErrorIs(t, wrongPw, usecase.ErrInvalidCredentials)
		assert.ErrorIs(t, noAccount, usecase.ErrInvalidCredentials)
	})
}

func TestGetCurrentUser(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the profile", func(t *testing.T) {
		uc, _, _ := newAuthFixture(t)

		_, rm, err := uc.Signup(ctx, "Alice", mustCredentials(t, "alice@example.com", "password123"), user.RoleUser)
		require.NoError(t, err)

		got, err := uc.GetCurrentUser(ctx, rm.ID)
		require.NoError(t, err)
		assert.Equal(t, rm.Email, got.Email)
	})

	t.Run("unknown id", func(t *testing.T) {
		uc, _, _ := newAuthFixture(t)

		_, err := uc.GetCurrentUser(ctx, uuid.New())
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}
