package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestApproveHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockApprover(ctrl)
	handler := NewApproveHandler(svc)

	t.Run("anonymous is redirected to login", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodGet, "/api/admins/approve?id=3", nil))

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, loginPath, rr.Header().Get("Location"))
	})

	t.Run("approves and returns to the moderation page", func(t *testing.T) {
		svc.EXPECT().Approve(gomock.Any(), int64(3)).Return(nil)

		req := httptest.NewRequest(http.MethodGet, "/api/admins/approve?id=3", nil)

		rr := httptest.NewRecorder()
		handler(rr, asUser(req, 7))

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/admins", rr.Header().Get("Location"))
	})

	t.Run("missing id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admins/approve", nil)

		rr := httptest.NewRecorder()
		handler(rr, asUser(req, 7))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("service failure", func(t *testing.T) {
		svc.EXPECT().Approve(gomock.Any(), int64(3)).Return(errors.New("db down"))

		req := httptest.NewRequest(http.MethodGet, "/api/admins/approve?id=3", nil)

		rr := httptest.NewRecorder()
		handler(rr, asUser(req, 7))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestRejectHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockRejecter(ctrl)
	handler := NewRejectHandler(svc)

	t.Run("rejects and returns to the moderation page", func(t *testing.T) {
		svc.EXPECT().Reject(gomock.Any(), int64(9)).Return(nil)

		req := httptest.NewRequest(http.MethodGet, "/api/admins/delete?id=9", nil)

		rr := httptest.NewRecorder()
		handler(rr, asUser(req, 7))

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/admins", rr.Header().Get("Location"))
	})

	t.Run("bad id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admins/delete?id=abc", nil)

		rr := httptest.NewRecorder()
		handler(rr, asUser(req, 7))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
