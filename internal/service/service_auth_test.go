package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/mock"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(repo store.UserRepository) *authService {
	svc := NewAuthService(repo, config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "note-sync-test",
		TokenDuration: time.Hour,
	}, logger.Nop()).(*authService)
	svc.bcryptCost = bcrypt.MinCost
	return svc
}

func TestAuthService_RegisterUser(t *testing.T) {
	t.Run("stores a bcrypt hash under a fresh id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockUserRepository(ctrl)

		var stored models.User
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				stored = u
				return u, nil
			})

		got, err := newTestAuthService(repo).RegisterUser(context.Background(), models.User{Login: "alice", Password: "secret"})
		require.NoError(t, err)

		assert.NotEmpty(t, got.UserID)
		assert.Equal(t, "alice", got.Login)
		assert.Empty(t, got.Password)

		assert.Equal(t, got.UserID, stored.UserID)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret")))
	})

	t.Run("invalid input never reaches the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := newTestAuthService(mock.NewMockUserRepository(ctrl))

		for _, u := range []models.User{
			{Login: "", Password: "secret"},
			{Login: "   ", Password: "secret"},
			{Login: "alice", Password: ""},
			{Login: "alice", Password: strings.Repeat("x", 80)},
		} {
			_, err := svc.RegisterUser(context.Background(), u)
			assert.ErrorIs(t, err, ErrInvalidDataProvided, u.Login)
		}
	})

	t.Run("login taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockUserRepository(ctrl)
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrLoginAlreadyExists)

		_, err := newTestAuthService(repo).RegisterUser(context.Background(), models.User{Login: "alice", Password: "secret"})
		assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	storedUser := models.User{UserID: "u-1", Login: "alice", Password: string(hash)}
	errDB := errors.New("connection reset")

	tests := []struct {
		name     string
		password string
		found    models.User
		findErr  error
		wantErr  error
	}{
		{name: "valid credentials", password: "secret", found: storedUser},
		{name: "wrong password", password: "guess", found: storedUser, wantErr: ErrWrongPassword},
		{name: "unknown login", password: "secret", findErr: store.ErrNoUserWasFound, wantErr: ErrWrongPassword},
		{name: "store failure", password: "secret", findErr: errDB, wantErr: errDB},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockUserRepository(ctrl)
			repo.EXPECT().FindUserByLogin(gomock.Any(), "alice").Return(tt.found, tt.findErr)

			got, err := newTestAuthService(repo).Login(context.Background(), models.User{Login: "alice", Password: tt.password})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "u-1", got.UserID)
			assert.Empty(t, got.Password)
		})
	}

	t.Run("empty password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		_, err := newTestAuthService(mock.NewMockUserRepository(ctrl)).Login(context.Background(), models.User{Login: "alice"})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := newTestAuthService(mock.NewMockUserRepository(ctrl))
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: "u-1"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)

	ownerID, err := parsed.GetOwnerID()
	require.NoError(t, err)
	assert.Equal(t, "u-1", ownerID)
}

func TestAuthService_ParseTokenRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := newTestAuthService(mock.NewMockUserRepository(ctrl))
	ctx := context.Background()

	otherKey, err := utils.GenerateJWTToken("note-sync-test", "u-1", time.Hour, "another-key")
	require.NoError(t, err)
	otherIssuer, err := utils.GenerateJWTToken("someone-else", "u-1", time.Hour, "test-sign-key")
	require.NoError(t, err)
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "note-sync-test",
		Subject:   "u-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}).SignedString([]byte("test-sign-key"))
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"garbage":      "not-a-jwt",
		"wrong key":    otherKey.SignedString,
		"wrong issuer": otherIssuer.SignedString,
		"expired":      expired,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(ctx, raw)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}
