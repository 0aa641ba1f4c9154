package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/avilkov/travel-manager/internal/logger"
	"github.com/avilkov/travel-manager/internal/models"
	"github.com/avilkov/travel-manager/internal/services"
	"github.com/avilkov/travel-manager/internal/storage"
)

// normalizeActivityIDs turns submitted activity form values into an id
// sequence. The form may carry one value or many; either way the result is
// a slice, applied at this boundary for every submission.
func normalizeActivityIDs(values []string) ([]int64, error) {
	ids := make([]int64, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// TravelSubmitter routes a validated draft to the queue or the live table.
type TravelSubmitter interface {
	Submit(ctx context.Context, draft models.TravelDraft, isPublic bool) error
}

// NewTravelCreateHandler returns an HTTP handler for travel submission.
// @Summary Submit a travel
// @Description Private travels go live immediately; public ones enter the moderation queue
// @Tags travels
// @Accept x-www-form-urlencoded
// @Success 302 "Redirect to the profile page"
// @Failure 400 {object} handlers.statusResponse "Unknown activity or malformed input"
// @Router /api/travels/create [post]
func NewTravelCreateHandler(svc TravelSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := RequireUser(w, r)
		if !ok {
			return
		}

		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		town, err := strconv.ParseInt(r.PostFormValue("town"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(statusResponse{Status: "bad_town"})
			return
		}

		activities, err := normalizeActivityIDs(r.PostForm["activity"])
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(statusResponse{Status: "bad_activities"})
			return
		}

		draft := models.TravelDraft{
			Name:        r.PostFormValue("name"),
			Description: r.PostFormValue("description"),
			Town:        town,
			OwnerID:     user.ID,
			Activities:  activities,
		}
		isPublic := r.PostFormValue("is_public") == "on"

		if err := svc.Submit(r.Context(), draft, isPublic); err != nil {
			switch {
			case errors.Is(err, services.ErrUnknownActivity),
				errors.Is(err, services.ErrEmptyItinerary):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(statusResponse{Status: "bad_activities"})
			default:
				logger.Log.Errorw("travel submission failed", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
			}
			return
		}

		http.Redirect(w, r, "/profile", http.StatusFound)
	}
}

// ActivityLister lists a town's activities.
type ActivityLister interface {
	ActivitiesByTown(ctx context.Context, town int64) ([]models.ActivityDB, error)
}

// NewActivitiesByTownHandler returns an HTTP handler that lists a town's
// activities as JSON, for the submission form.
// @Summary List activities of a town
// @Tags travels
// @Produce json
// @Param town query int true "Town id"
// @Success 200 {array} models.ActivityDB
// @Router /api/travels/get_activities [get]
func NewActivitiesByTownHandler(svc ActivityLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := RequireUser(w, r); !ok {
			return
		}

		town, err := strconv.ParseInt(r.URL.Query().Get("town"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		activities, err := svc.ActivitiesByTown(r.Context(), town)
		if err != nil {
			logger.Log.Errorw("failed to list activities", "town", town, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		json.NewEncoder(w).Encode(activities)
	}
}

// TownAdder inserts towns into the catalog.
type TownAdder interface {
	AddTown(ctx context.Context, name, coordinates string) error
}

// NewAddTownHandler returns an HTTP handler that adds a town.
// @Summary Add a town
// @Tags catalog
// @Accept x-www-form-urlencoded
// @Success 302 "Redirect to the moderation page"
// @Failure 400 {object} handlers.statusResponse "Malformed coordinates"
// @Router /api/travels/add_town [post]
func NewAddTownHandler(svc TownAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := RequireUser(w, r); !ok {
			return
		}

		err := svc.AddTown(r.Context(), r.PostFormValue("name"), r.PostFormValue("coordinates"))
		if err != nil {
			if errors.Is(err, services.ErrBadCoordinates) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(statusResponse{Status: "bad_coordinates"})
				return
			}
			logger.Log.Errorw("failed to add town", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/admins", http.StatusFound)
	}
}

// ActivityAdder inserts activities and records their image references.
type ActivityAdder interface {
	AddActivity(ctx context.Context, town int64, name, description, coordinates string) (int64, error)
	SetActivityImage(ctx context.Context, id int64, image string) error
}

// NewAddActivityHandler returns an HTTP handler that adds an activity with
// an optional PNG image.
// @Summary Add an activity
// @Tags catalog
// @Accept mpfd
// @Success 302 "Redirect to the moderation page"
// @Failure 400 {object} handlers.statusResponse "Unknown town or malformed coordinates"
// @Router /api/travels/add_activity [post]
func NewAddActivityHandler(svc ActivityAdder, store *storage.ImageStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := RequireUser(w, r); !ok {
			return
		}

		if err := r.ParseMultipartForm(8 << 20); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		town, err := strconv.ParseInt(r.PostFormValue("town"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(statusResponse{Status: "bad_town"})
			return
		}

		id, err := svc.AddActivity(r.Context(), town,
			r.PostFormValue("name"), r.PostFormValue("description"), r.PostFormValue("coordinates"))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUnknownTown), errors.Is(err, services.ErrBadCoordinates):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(statusResponse{Status: "bad_activity"})
			default:
				logger.Log.Errorw("failed to add activity", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
			}
			return
		}

		if file, _, ferr := r.FormFile("image"); ferr == nil {
			defer file.Close()
			name := storage.ActivityImage(id)
			if err := store.Save(name, file); err != nil {
				logger.Log.Errorw("failed to store activity image", "id", id, "err", err)
			} else if err := svc.SetActivityImage(r.Context(), id, name); err != nil {
				logger.Log.Errorw("failed to record activity image", "id", id, "err", err)
			}
		}

		http.Redirect(w, r, "/admins", http.StatusFound)
	}
}
