package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avilkov/travel-manager/internal/middlewares"
	"github.com/avilkov/travel-manager/internal/models"
	"github.com/avilkov/travel-manager/internal/services"
	"github.com/avilkov/travel-manager/internal/web"
)

func postForm(t *testing.T, target string, form url.Values) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func sessionCookieFrom(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rr.Result().Cookies() {
		if c.Name == models.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rnd, err := web.NewRenderer()
	require.NoError(t, err)

	svc := NewMockLoginer(ctrl)
	handler := NewLoginHandler(rnd, svc)

	t.Run("success sets session cookie and redirects home", func(t *testing.T) {
		svc.EXPECT().
			Login(gomock.Any(), "user@example.com", "secret").
			Return("tok-123", nil)

		rr := httptest.NewRecorder()
		handler(rr, postForm(t, "/api/auth/login", url.Values{
			"email":    {"user@example.com"},
			"password": {"secret"},
		}))

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/", rr.Header().Get("Location"))

		cookie := sessionCookieFrom(t, rr)
		require.NotNil(t, cookie)
		assert.Equal(t, "tok-123", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.True(t, cookie.Secure)
	})

	t.Run("bad credentials re-render the login page", func(t *testing.T) {
		svc.EXPECT().
			Login(gomock.Any(), "user@example.com", "wrong").
			Return("", services.ErrInvalidCredentials)

		rr := httptest.NewRecorder()
		handler(rr, postForm(t, "/api/auth/login", url.Values{
			"email":    {"user@example.com"},
			"password": {"wrong"},
		}))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), msgBadCredentials)
		assert.Nil(t, sessionCookieFrom(t, rr))
	})

	t.Run("service failure returns 500", func(t *testing.T) {
		svc.EXPECT().
			Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("db down"))

		rr := httptest.NewRecorder()
		handler(rr, postForm(t, "/api/auth/login", url.Values{
			"email":    {"user@example.com"},
			"password": {"secret"},
		}))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rnd, err := web.NewRenderer()
	require.NoError(t, err)

	svc := NewMockRegisterer(ctrl)
	handler := NewRegisterHandler(rnd, svc)

	t.Run("success signs the new account in", func(t *testing.T) {
		svc.EXPECT().
			Register(gomock.Any(), "new@example.com", "Ivan", "secret").
			Return("tok-456", nil)

		rr := httptest.NewRecorder()
		handler(rr, postForm(t, "/api/auth/register", url.Values{
			"email":    {"new@example.com"},
			"name":     {"Ivan"},
			"password": {"secret"},
		}))

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/", rr.Header().Get("Location"))

		cookie := sessionCookieFrom(t, rr)
		require.NotNil(t, cookie)
		assert.Equal(t, "tok-456", cookie.Value)
	})

	t.Run("taken email re-renders the registration page", func(t *testing.T) {
		svc.EXPECT().
			Register(gomock.Any(), "dup@example.com", "Ivan", "secret").
			Return("", services.ErrEmailTaken)

		rr := httptest.NewRecorder()
		handler(rr, postForm(t, "/api/auth/register", url.Values{
			"email":    {"dup@example.com"},
			"name":     {"Ivan"},
			"password": {"secret"},
		}))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), msgEmailTaken)
	})
}

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockLogouter(ctrl)
	handler := NewLogoutHandler(svc)

	t.Run("anonymous is redirected to login", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, loginPath, rr.Header().Get("Location"))
	})

	t.Run("signed-in user gets the session invalidated", func(t *testing.T) {
		svc.EXPECT().Logout(gomock.Any(), "tok-123").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
		req.AddCookie(&http.Cookie{Name: models.SessionCookieName, Value: "tok-123"})
		req = req.WithContext(middlewares.SetUserToContext(req.Context(), &models.User{ID: 7}))

		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, loginPath, rr.Header().Get("Location"))

		cookie := sessionCookieFrom(t, rr)
		require.NotNil(t, cookie)
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge)
	})
}

func TestRenameHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockRenamer(ctrl)
	handler := NewRenameHandler(svc)

	svc.EXPECT().Rename(gomock.Any(), int64(7), "New Name").Return(nil)

	req := postForm(t, "/api/auth/rename", url.Values{"name": {"New Name"}})
	req = req.WithContext(middlewares.SetUserToContext(req.Context(), &models.User{ID: 7}))

	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/profile", rr.Header().Get("Location"))
}

func TestDeleteAccountHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockAccountDeleter(ctrl)
	handler := NewDeleteAccountHandler(svc)

	t.Run("removes the account and clears the cookie", func(t *testing.T) {
		svc.EXPECT().DeleteAccount(gomock.Any(), int64(7), "tok-123").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/delete", nil)
		req.AddCookie(&http.Cookie{Name: models.SessionCookieName, Value: "tok-123"})
		req = req.WithContext(middlewares.SetUserToContext(req.Context(), &models.User{ID: 7}))

		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, loginPath, rr.Header().Get("Location"))

		cookie := sessionCookieFrom(t, rr)
		require.NotNil(t, cookie)
		assert.Negative(t, cookie.MaxAge)
	})

	t.Run("failure surfaces as 500", func(t *testing.T) {
		svc.EXPECT().DeleteAccount(gomock.Any(), int64(7), "").Return(errors.New("db down"))

		req := httptest.NewRequest(http.MethodPost, "/api/auth/delete", nil)
		req = req.WithContext(middlewares.SetUserToContext(req.Context(), &models.User{ID: 7}))

		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
