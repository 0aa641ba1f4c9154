package handlers

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/avilkov/travel-manager/internal/logger"
)

// CommentAdder attaches comments to travels or activities.
type CommentAdder interface {
	AddTravelComment(ctx context.Context, travelID, ownerID int64, title, pros, cons, text string, stars *int64) error
	AddActivityComment(ctx context.Context, activityID, ownerID int64, title, pros, cons, text string, stars *int64) error
}

// NewAddCommentHandler returns an HTTP handler that attaches a comment to
// the travel or activity named by the type and id query parameters.
// @Summary Add a comment
// @Tags comments
// @Accept x-www-form-urlencoded
// @Param id query int true "Travel or activity id"
// @Param type query string true "travel or activity"
// @Success 302 "Redirect back to the comments page"
// @Router /api/travels/add_comment [post]
func NewAddCommentHandler(svc CommentAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := RequireUser(w, r)
		if !ok {
			return
		}

		id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		commentType := r.URL.Query().Get("type")

		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var stars *int64
		if v := r.PostFormValue("stars"); v != "" {
			if n, err := strconv.ParseInt(v, 10, 64); err == nil {
				stars = &n
			}
		}

		title := r.PostFormValue("title")
		pros := r.PostFormValue("pros")
		cons := r.PostFormValue("cons")
		text := r.PostFormValue("text")

		if commentType == "travel" {
			err = svc.AddTravelComment(r.Context(), id, user.ID, title, pros, cons, text, stars)
		} else {
			err = svc.AddActivityComment(r.Context(), id, user.ID, title, pros, cons, text, stars)
		}
		if err != nil {
			logger.Log.Errorw("failed to add comment", "type", commentType, "id", id, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		back := "/travels/comments?id=" + strconv.FormatInt(id, 10) + "&type=" + url.QueryEscape(commentType)
		http.Redirect(w, r, back, http.StatusFound)
	}
}
