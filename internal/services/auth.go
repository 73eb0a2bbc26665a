package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/developerom1/Red-Global-Assignment/internal/logger"
	"github.com/developerom1/Red-Global-Assignment/internal/models"
	"github.com/developerom1/Red-Global-Assignment/internal/repositories"
)

// Error variables
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string) (uuid.UUID, error)
}

// UserCache caches redacted user summaries.
type UserCache interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.User, error)
	Set(ctx context.Context, user models.User) error
}

// PasswordHasher is the pluggable slow-hash capability.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}

// TokenGenerator mints session tokens bound to a user id.
type TokenGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// AuthService handles registration, login and identity lookup.
type AuthService struct {
	reader UserReader
	writer UserWriter
	cache  UserCache
	hasher PasswordHasher
	tokens TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, cache UserCache, hasher PasswordHasher, tokens TokenGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		cache:  cache,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register creates a new user and returns its id. Uniqueness of username and
// email is enforced by the store; violations surface as ErrDuplicateUsername
// or ErrDuplicateEmail.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) (uuid.UUID, error) {
	if username == "" || email == "" || password == "" {
		return uuid.Nil, ErrInvalidInput
	}

	passwordHash, err := svc.hasher.Hash(password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return uuid.Nil, err
	}

	userID, err := svc.writer.Save(ctx, username, email, passwordHash)
	switch {
	case errors.Is(err, repositories.ErrDuplicateEmail):
		return uuid.Nil, ErrDuplicateEmail
	case errors.Is(err, repositories.ErrDuplicateUsername):
		return uuid.Nil, ErrDuplicateUsername
	case err != nil:
		logger.Log.Errorw("failed to save user", "err", err)
		return uuid.Nil, err
	}

	return userID, nil
}

// Login verifies credentials and returns a session token plus the redacted
// user summary. Unknown email and wrong password are indistinguishable.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	if email == "" || password == "" {
		return "", nil, ErrInvalidInput
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil || !svc.hasher.Verify(password, user.PasswordHash) {
		logger.Log.Infow("invalid credentials", "email", email)
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.tokens.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", nil, err
	}

	summary := &models.User{
		ID:       user.UserID,
		Username: user.Username,
		Email:    user.Email,
	}
	return token, summary, nil
}

// GetByID returns the redacted summary for a user id, consulting the cache
// first and back-filling it on a miss. Returns ErrNotFound for unknown ids.
func (svc *AuthService) GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	cached, err := svc.cache.Get(ctx, userID)
	if err != nil {
		logger.Log.Warnw("failed to read cached user summary", "userID", userID, "err", err)
	}
	if cached != nil {
		return cached, nil
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	summary := models.User{
		ID:       user.UserID,
		Username: user.Username,
		Email:    user.Email,
	}
	if err := svc.cache.Set(ctx, summary); err != nil {
		logger.Log.Warnw("failed to cache user summary", "userID", userID, "err", err)
	}
	return &summary, nil
}
