package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/avilkov/travel-manager/internal/logger"
	"github.com/avilkov/travel-manager/internal/models"
)

// Error variables
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// dummyHash is compared against on the unknown-email path so that a failed
// login costs the same whether or not the email exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email, name, passwordHash string) (int64, error)
	Rename(ctx context.Context, id int64, name string) error
	Delete(ctx context.Context, id int64) error
}

// SessionWriter defines write operations for sessions.
type SessionWriter interface {
	Save(ctx context.Context, userID int64, token string) error
	DeleteByToken(ctx context.Context, token string) error
}

// SessionCache caches token resolutions.
type SessionCache interface {
	GetUserID(ctx context.Context, token string) (int64, error)
	SetUserID(ctx context.Context, token string, userID int64) error
	Delete(ctx context.Context, token string) error
}

// AuthService handles registration, login and account lifecycle.
type AuthService struct {
	users    UserReader
	writer   UserWriter
	sessions SessionWriter
	cache    SessionCache
}

// NewAuthService creates a new AuthService instance. cache may be nil when
// no Redis is configured.
func NewAuthService(users UserReader, writer UserWriter, sessions SessionWriter, cache SessionCache) *AuthService {
	return &AuthService{
		users:    users,
		writer:   writer,
		sessions: sessions,
		cache:    cache,
	}
}

// Register creates a new user and returns the token of its first session.
func (svc *AuthService) Register(ctx context.Context, email, name, password string) (string, error) {
	existing, err := svc.users.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check email", "err", err)
		return "", err
	}
	if existing != nil {
		return "", ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", err
	}

	userID, err := svc.writer.Save(ctx, email, name, string(hashed))
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return "", err
	}

	return svc.issueSession(ctx, userID)
}

// Login authenticates a user and returns a fresh session token. Unknown
// email and wrong password are deliberately indistinguishable.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := svc.users.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return svc.issueSession(ctx, user.ID)
}

// issueSession persists a new opaque token for the user.
func (svc *AuthService) issueSession(ctx context.Context, userID int64) (string, error) {
	token := uuid.NewString()
	if err := svc.sessions.Save(ctx, userID, token); err != nil {
		logger.Log.Errorw("failed to save session", "err", err)
		return "", err
	}
	return token, nil
}

// Logout invalidates the session carrying the token. Idempotent.
func (svc *AuthService) Logout(ctx context.Context, token string) error {
	if err := svc.sessions.DeleteByToken(ctx, token); err != nil {
		logger.Log.Errorw("failed to delete session", "err", err)
		return err
	}
	svc.dropCached(ctx, token)
	return nil
}

// Rename updates the display name of a user.
func (svc *AuthService) Rename(ctx context.Context, userID int64, name string) error {
	return svc.writer.Rename(ctx, userID, name)
}

// DeleteAccount removes the user. Sessions go with it via the schema
// cascade; the caller's own token is dropped from the cache here.
func (svc *AuthService) DeleteAccount(ctx context.Context, userID int64, token string) error {
	if err := svc.writer.Delete(ctx, userID); err != nil {
		logger.Log.Errorw("failed to delete user", "user_id", userID, "err", err)
		return err
	}
	svc.dropCached(ctx, token)
	return nil
}

func (svc *AuthService) dropCached(ctx context.Context, token string) {
	if svc.cache == nil || token == "" {
		return
	}
	if err := svc.cache.Delete(ctx, token); err != nil {
		logger.Log.Warnw("failed to drop cached session", "err", err)
	}
}
