package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/avilkov/travel-manager/internal/logger"
	"github.com/avilkov/travel-manager/internal/services"
	"github.com/avilkov/travel-manager/internal/storage"
	"github.com/avilkov/travel-manager/internal/web"
)

// Localized form error messages, as shown on the rendered page variants.
const (
	msgBadCredentials = "Неверный логин или пароль"
	msgEmailTaken     = "Пользователь с такой почтой уже существует"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate by email and password, set the session cookie
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce html
// @Success 302 "Redirect to / with session cookie set"
// @Failure 401 "Login page re-rendered with an error message"
// @Router /api/auth/login [post]
func NewLoginHandler(rnd *web.Renderer, svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		token, err := svc.Login(r.Context(), r.PostFormValue("email"), r.PostFormValue("password"))
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				rnd.Render(w, http.StatusUnauthorized, "login.html", web.Page{Error: msgBadCredentials})
				return
			}
			logger.Log.Errorw("login failed", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		setSessionCookie(w, token)
		http.Redirect(w, r, "/", http.StatusFound)
	}
}

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, email, name, password string) (string, error)
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary User registration
// @Description Create an account and sign it in
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce html
// @Success 302 "Redirect to / with session cookie set"
// @Failure 401 "Registration page re-rendered with an error message"
// @Router /api/auth/register [post]
func NewRegisterHandler(rnd *web.Renderer, svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		token, err := svc.Register(r.Context(),
			r.PostFormValue("email"), r.PostFormValue("name"), r.PostFormValue("password"))
		if err != nil {
			if errors.Is(err, services.ErrEmailTaken) {
				rnd.Render(w, http.StatusUnauthorized, "register.html", web.Page{Error: msgEmailTaken})
				return
			}
			logger.Log.Errorw("registration failed", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		setSessionCookie(w, token)
		http.Redirect(w, r, "/", http.StatusFound)
	}
}

// Logouter defines the interface for session invalidation.
type Logouter interface {
	Logout(ctx context.Context, token string) error
}

// NewLogoutHandler returns an HTTP handler that invalidates the current
// session and clears the cookie.
// @Summary Logout
// @Tags auth
// @Success 302 "Redirect to the login page"
// @Router /api/auth/logout [post]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := RequireUser(w, r); !ok {
			return
		}

		if err := svc.Logout(r.Context(), sessionToken(r)); err != nil {
			logger.Log.Errorw("logout failed", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		clearSessionCookie(w)
		http.Redirect(w, r, loginPath, http.StatusFound)
	}
}

// Renamer defines the interface for display-name changes.
type Renamer interface {
	Rename(ctx context.Context, userID int64, name string) error
}

// NewRenameHandler returns an HTTP handler that renames the current account.
// @Summary Rename account
// @Tags auth
// @Accept x-www-form-urlencoded
// @Success 302 "Redirect to the profile page"
// @Router /api/auth/rename [post]
func NewRenameHandler(svc Renamer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := RequireUser(w, r)
		if !ok {
			return
		}

		if err := svc.Rename(r.Context(), user.ID, r.PostFormValue("name")); err != nil {
			logger.Log.Errorw("rename failed", "user_id", user.ID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/profile", http.StatusFound)
	}
}

// AccountDeleter defines the interface for account removal.
type AccountDeleter interface {
	DeleteAccount(ctx context.Context, userID int64, token string) error
}

// NewDeleteAccountHandler returns an HTTP handler that removes the current
// account, its sessions with it.
// @Summary Delete account
// @Tags auth
// @Success 302 "Redirect to the login page"
// @Router /api/auth/delete [post]
func NewDeleteAccountHandler(svc AccountDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := RequireUser(w, r)
		if !ok {
			return
		}

		if err := svc.DeleteAccount(r.Context(), user.ID, sessionToken(r)); err != nil {
			logger.Log.Errorw("account deletion failed", "user_id", user.ID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		clearSessionCookie(w)
		http.Redirect(w, r, loginPath, http.StatusFound)
	}
}

// NewAvatarHandler returns an HTTP handler that stores the uploaded profile
// image under the current user's id.
// @Summary Upload avatar
// @Tags auth
// @Accept mpfd
// @Success 302 "Redirect to the profile page"
// @Router /api/auth/avatar [post]
func NewAvatarHandler(store *storage.ImageStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := RequireUser(w, r)
		if !ok {
			return
		}

		if err := r.ParseMultipartForm(8 << 20); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		file, _, err := r.FormFile("avatar")
		if err == nil {
			defer file.Close()
			if err := store.Save(storage.ProfileImage(user.ID), file); err != nil {
				logger.Log.Errorw("avatar upload failed", "user_id", user.ID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
		}

		http.Redirect(w, r, "/profile", http.StatusFound)
	}
}
