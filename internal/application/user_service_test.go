package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-management/internal/domain/entity"
	"inventory-management/internal/domain/repository"
	"inventory-management/internal/infrastructure/memory"
	"inventory-management/pkg/helpers"
)

func newTestService() *Service {
	jwt := helpers.NewJWTManager("test-access-secret", "test-refresh-secret", "inventory-management", time.Hour, 168*time.Hour)
	return NewService(memory.NewUserRepository(), jwt, nil, nil, nil, "")
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success stores a hash, not the plaintext", func(t *testing.T) {
		svc := newTestService()
		u, err := svc.Register(ctx, "A", "a@x.com", "p1")
		require.NoError(t, err)
		assert.NotEmpty(t, u.ID)
		assert.NotEqual(t, "p1", u.Password)
		assert.True(t, helpers.CompareHashAndPassword(u.Password, "p1"))
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := newTestService()
		first, err := svc.Register(ctx, "A", "a@x.com", "p1")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "B", "a@x.com", "p2")
		assert.ErrorIs(t, err, ErrEmailTaken)

		// first user is unaffected
		got, err := svc.Get(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "A", got.Name)
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success issues a token pair", func(t *testing.T) {
		svc := newTestService()
		u, err := svc.Register(ctx, "A", "a@x.com", "p1")
		require.NoError(t, err)

		got, pair, err := svc.Login(ctx, "a@x.com", "p1")
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
		assert.True(t, pair.RefreshTokenExpiry.After(pair.AccessTokenExpiry))

		claims, err := svc.JWT.ParseAccessToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, u.ID, claims.UserID())
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		svc := newTestService()
		_, err := svc.Register(ctx, "A", "a@x.com", "p1")
		require.NoError(t, err)

		_, _, errMissing := svc.Login(ctx, "nobody@x.com", "p1")
		_, _, errWrong := svc.Login(ctx, "a@x.com", "wrong")
		assert.ErrorIs(t, errMissing, ErrInvalidCredentials)
		assert.ErrorIs(t, errWrong, ErrInvalidCredentials)
		assert.Equal(t, errMissing, errWrong)
	})

	t.Run("store failure propagates unchanged", func(t *testing.T) {
		storeErr := errors.New("connection refused")
		svc := newTestService()
		svc.Repo = &failingAuthRepo{svc.Repo, storeErr}

		_, err := svc.Authenticate(ctx, "a@x.com", "p1")
		assert.ErrorIs(t, err, storeErr)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}

type failingAuthRepo struct {
	repository.UserRepository
	err error
}

func (r *failingAuthRepo) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	return nil, r.err
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("password change rotates credentials", func(t *testing.T) {
		svc := newTestService()
		u, err := svc.Register(ctx, "A", "a@x.com", "old-pass")
		require.NoError(t, err)

		newPass := "new-pass"
		_, err = svc.Update(ctx, u.ID, UpdateInput{Password: &newPass})
		require.NoError(t, err)

		_, _, err = svc.Login(ctx, "a@x.com", "new-pass")
		assert.NoError(t, err)
		_, _, err = svc.Login(ctx, "a@x.com", "old-pass")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("empty patch leaves the record untouched", func(t *testing.T) {
		svc := newTestService()
		u, err := svc.Register(ctx, "A", "a@x.com", "p1")
		require.NoError(t, err)

		got, err := svc.Update(ctx, u.ID, UpdateInput{})
		require.NoError(t, err)
		assert.Equal(t, u.Name, got.Name)
		assert.Equal(t, u.Email, got.Email)
		assert.True(t, got.UpdatedAt.Equal(u.UpdatedAt))
	})

	t.Run("missing user", func(t *testing.T) {
		svc := newTestService()
		name := "B"
		_, err := svc.Update(ctx, "no-such-id", UpdateInput{Name: &name})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("email change onto an existing email", func(t *testing.T) {
		svc := newTestService()
		_, err := svc.Register(ctx, "A", "a@x.com", "p1")
		require.NoError(t, err)
		b, err := svc.Register(ctx, "B", "b@x.com", "p2")
		require.NoError(t, err)

		taken := "a@x.com"
		_, err = svc.Update(ctx, b.ID, UpdateInput{Email: &taken})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	u, err := svc.Register(ctx, "A", "a@x.com", "p1")
	require.NoError(t, err)

	removed, err := svc.Delete(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = svc.Get(ctx, u.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	removed, err = svc.Delete(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	emails := []string{"a@x.com", "b@x.com", "c@x.com"}
	for _, e := range emails {
		_, err := svc.Register(ctx, "U", e, "p1")
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, 1, 2)
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.EqualValues(t, 3, page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 2, page.Size)

	page, err = svc.List(ctx, 2, 2)
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.EqualValues(t, 3, page.Total)
}
