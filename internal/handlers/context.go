package handlers

import (
	"net/http"
	"time"

	"github.com/avilkov/travel-manager/internal/middlewares"
	"github.com/avilkov/travel-manager/internal/models"
)

// loginPath is where unauthenticated requests to protected routes are sent.
const loginPath = "/auth/login"

// RequireUser returns the resolved user, or redirects to the login page and
// reports false. Handlers must return immediately on false.
func RequireUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user := middlewares.GetUserFromContext(r.Context())
	if user == nil {
		http.Redirect(w, r, loginPath, http.StatusFound)
		return nil, false
	}
	return user, true
}

// setSessionCookie issues the session cookie. HttpOnly and Secure are set
// on every issuance.
func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     models.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
	})
}

// clearSessionCookie expires the session cookie immediately.
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     models.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
}

// sessionToken returns the raw token carried by the request cookie, or "".
func sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(models.SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// statusResponse is the structured body for API-style miss/denial responses.
type statusResponse struct {
	Status string `json:"status"`
}
