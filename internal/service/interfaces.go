package service

import (
	"context"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers and authenticates users of the note server.
type AuthService interface {
	// RegisterUser stores a new user with a bcrypt hash of its password and
	// returns it with the generated UserID.
	RegisterUser(ctx context.Context, user models.User) (models.User, error)

	// Login checks the credentials and returns the stored user.
	Login(ctx context.Context, user models.User) (models.User, error)

	// CreateToken issues a signed JWT whose subject is user.UserID.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates tokenString and returns its claims.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// NoteService serves the remote replica. The owner id is taken from the
// authenticated request context and must match every note addressed.
type NoteService interface {
	FetchAll(ctx context.Context, ownerID string) ([]models.Note, error)
	Create(ctx context.Context, note models.Note) error
	Update(ctx context.Context, note models.Note) error
}

// AppInfoService reports build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
