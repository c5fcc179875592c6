package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

// maxPasswordLen is the longest input bcrypt hashes without truncation.
const maxPasswordLen = 72

// authService owns the user accounts of the note server. Passwords are
// stored as bcrypt hashes and sessions are stateless HS256 tokens whose
// subject is the owner id of every note the bearer may touch.
type authService struct {
	users store.UserRepository
	ids   *utils.UUIDGenerator

	bcryptCost int

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	logger *logger.Logger
}

func NewAuthService(users store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		users:         users,
		ids:           utils.NewUUIDGenerator(),
		bcryptCost:    bcrypt.DefaultCost,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

func validCredentials(user models.User) bool {
	return strings.TrimSpace(user.Login) != "" &&
		user.Password != "" &&
		len(user.Password) <= maxPasswordLen
}

// RegisterUser stores a new account under a fresh UUIDv7 owner id. The
// returned user never carries the password hash.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("login", user.Login).Logger()

	if !validCredentials(user) {
		log.Warn().Msg("register: invalid credentials")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), a.bcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := a.users.CreateUser(ctx, models.User{
		UserID:   a.ids.Generate(),
		Login:    user.Login,
		Password: string(hash),
	})
	if err != nil {
		log.Err(err).Msg("register: storing user failed")
		return models.User{}, fmt.Errorf("register %q: %w", user.Login, err)
	}

	log.Info().Str("user_id", created.UserID).Msg("user registered")
	created.Password = ""
	return created, nil
}

// Login checks user's password against the stored hash. An unknown login and
// a wrong password both end in ErrWrongPassword.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("login", user.Login).Logger()

	if !validCredentials(user) {
		log.Warn().Msg("login: invalid credentials")
		return models.User{}, ErrInvalidDataProvided
	}

	found, err := a.users.FindUserByLogin(ctx, user.Login)
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		log.Warn().Msg("login: unknown login")
		return models.User{}, ErrWrongPassword
	case err != nil:
		log.Err(err).Msg("login: user lookup failed")
		return models.User{}, fmt.Errorf("find user %q: %w", user.Login, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(found.Password), []byte(user.Password)) != nil {
		log.Warn().Str("user_id", found.UserID).Msg("login: wrong password")
		return models.User{}, ErrWrongPassword
	}

	found.Password = ""
	return found, nil
}

func (a *authService) CreateToken(_ context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}

// ParseToken collapses every validation failure into
// ErrTokenIsExpiredOrInvalid. The cause is only logged.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("rejected bearer token")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}
	return token, nil
}
