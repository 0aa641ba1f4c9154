package services

import (
	"context"

	"github.com/avilkov/travel-manager/internal/logger"
	"github.com/avilkov/travel-manager/internal/models"
)

// SessionReader defines read-only operations for sessions.
type SessionReader interface {
	GetByToken(ctx context.Context, token string) (*models.SessionDB, error)
}

// SessionService resolves opaque tokens to users for the request middleware.
type SessionService struct {
	sessions SessionReader
	users    UserReader
	cache    SessionCache
}

// NewSessionService creates a new SessionService instance. cache may be nil
// when no Redis is configured.
func NewSessionService(sessions SessionReader, users UserReader, cache SessionCache) *SessionService {
	return &SessionService{
		sessions: sessions,
		users:    users,
		cache:    cache,
	}
}

// Resolve returns the user the token authenticates, with the password hash
// stripped, or nil when the token is empty, unknown or orphaned. An unknown
// token is not an error: anonymous browsing is valid.
func (svc *SessionService) Resolve(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, nil
	}

	if svc.cache != nil {
		if userID, err := svc.cache.GetUserID(ctx, token); err == nil {
			user, err := svc.users.GetByID(ctx, userID)
			if err != nil {
				return nil, err
			}
			if user != nil {
				return user.Public(), nil
			}
			// user deleted since the entry was cached
			svc.cache.Delete(ctx, token)
			return nil, nil
		}
	}

	session, err := svc.sessions.GetByToken(ctx, token)
	if err != nil {
		logger.Log.Errorw("failed to look up session", "err", err)
		return nil, err
	}
	if session == nil {
		return nil, nil
	}

	user, err := svc.users.GetByID(ctx, session.UserID)
	if err != nil {
		logger.Log.Errorw("failed to load session user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	if svc.cache != nil {
		if err := svc.cache.SetUserID(ctx, token, user.ID); err != nil {
			logger.Log.Warnw("failed to cache session", "err", err)
		}
	}

	return user.Public(), nil
}
