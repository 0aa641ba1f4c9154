package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/avilkov/travel-manager/internal/logger"
)

// Approver moves a queued submission into the live table.
type Approver interface {
	Approve(ctx context.Context, id int64) error
}

// NewApproveHandler returns an HTTP handler for approving a queued
// submission. The route must run under the transaction middleware so the
// queue-to-live move commits atomically. Approving an already-decided id is
// a no-op, so a repeated click is safe.
// @Summary Approve a queued travel
// @Tags moderation
// @Param id query int true "Queue id"
// @Success 302 "Redirect to the moderation page"
// @Router /api/admins/approve [get]
func NewApproveHandler(svc Approver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := RequireUser(w, r); !ok {
			return
		}

		id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if err := svc.Approve(r.Context(), id); err != nil {
			logger.Log.Errorw("approve failed", "id", id, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/admins", http.StatusFound)
	}
}

// Rejecter drops a queued submission.
type Rejecter interface {
	Reject(ctx context.Context, id int64) error
}

// NewRejectHandler returns an HTTP handler for rejecting a queued
// submission. Idempotent.
// @Summary Reject a queued travel
// @Tags moderation
// @Param id query int true "Queue id"
// @Success 302 "Redirect to the moderation page"
// @Router /api/admins/delete [get]
func NewRejectHandler(svc Rejecter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := RequireUser(w, r); !ok {
			return
		}

		id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if err := svc.Reject(r.Context(), id); err != nil {
			logger.Log.Errorw("reject failed", "id", id, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/admins", http.StatusFound)
	}
}
