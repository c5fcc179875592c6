package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

// userRepository keeps the accounts of the note server in the users table.
type userRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	return &userRepository{db: db, logger: logger}
}

// CreateUser inserts user, whose Password already holds the bcrypt hash,
// and returns it with CreatedAt set by the database. A taken login is
// ErrLoginAlreadyExists.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		return models.User{}, err
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.CreatedAt); err != nil {
		err = r.db.classifyAs(err, ErrLoginAlreadyExists)
		logger.FromContext(ctx).Err(err).Str("login", user.Login).Msg("insert user")
		if errors.Is(err, ErrLoginAlreadyExists) {
			return models.User{}, err
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	user.CreatedAt = models.NormalizeTime(user.CreatedAt)
	return user, nil
}

// FindUserByLogin returns the account with its password hash, or
// ErrNoUserWasFound.
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	query, args, err := buildSelectUserByLoginQuery(r.db.builder, login)
	if err != nil {
		return models.User{}, err
	}

	var u models.User
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&u.UserID, &u.Login, &u.Password, &u.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("login", login).Msg("select user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}
	return u, nil
}
