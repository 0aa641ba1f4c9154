package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/avilkov/travel-manager/internal/logger"
	"github.com/avilkov/travel-manager/internal/middlewares"
	"github.com/avilkov/travel-manager/internal/models"
	"github.com/avilkov/travel-manager/internal/services"
)

// Export content types, per the formats' registered media types.
const (
	contentTypeKML = "application/vnd.google-earth.kml+xml"
	contentTypeKMZ = "application/vnd.google-earth.kmz"
	contentTypeGPX = "application/gpx"
)

// TravelLookuper applies the travel visibility rule.
type TravelLookuper interface {
	Lookup(ctx context.Context, id int64, viewer *models.User) (*models.TravelDB, error)
}

// ItineraryExporter serializes itineraries.
type ItineraryExporter interface {
	WriteKML(ctx context.Context, w io.Writer, travel *models.TravelDB) error
	WriteKMZ(ctx context.Context, w io.Writer, travel *models.TravelDB) error
	WriteGPX(ctx context.Context, w io.Writer, activityID int64) error
}

// lookupForExport resolves the travel under the visibility rule. A miss for
// an anonymous viewer redirects to login, like any other protected access;
// a miss for an authenticated viewer is a structured not-found.
func lookupForExport(w http.ResponseWriter, r *http.Request, travels TravelLookuper) *models.TravelDB {
	user := middlewares.GetUserFromContext(r.Context())

	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(statusResponse{Status: "not_found"})
		return nil
	}

	travel, err := travels.Lookup(r.Context(), id, user)
	if err != nil {
		logger.Log.Errorw("export lookup failed", "id", id, "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		return nil
	}
	if travel == nil {
		if user == nil {
			http.Redirect(w, r, loginPath, http.StatusFound)
			return nil
		}
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(statusResponse{Status: "not_found"})
		return nil
	}
	return travel
}

// NewKMLDownloadHandler returns an HTTP handler that streams a travel's
// itinerary as a KML attachment.
// @Summary Download itinerary as KML
// @Tags export
// @Param id query int true "Travel id"
// @Produce application/vnd.google-earth.kml+xml
// @Success 200 "KML document"
// @Failure 404 {object} handlers.statusResponse
// @Router /api/download/kml [get]
func NewKMLDownloadHandler(travels TravelLookuper, exporter ItineraryExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		travel := lookupForExport(w, r, travels)
		if travel == nil {
			return
		}

		w.Header().Set("Content-Type", contentTypeKML)
		w.Header().Set("Content-Disposition", services.AttachmentDisposition(travel.Name, "kml"))

		if err := exporter.WriteKML(r.Context(), w, travel); err != nil {
			logger.Log.Errorw("KML export failed", "id", travel.ID, "err", err)
		}
	}
}

// NewKMZDownloadHandler returns an HTTP handler that streams a travel's
// itinerary as a KMZ attachment with embedded activity images.
// @Summary Download itinerary as KMZ
// @Tags export
// @Param id query int true "Travel id"
// @Produce application/vnd.google-earth.kmz
// @Success 200 "KMZ archive"
// @Failure 404 {object} handlers.statusResponse
// @Router /api/download/kmz [get]
func NewKMZDownloadHandler(travels TravelLookuper, exporter ItineraryExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		travel := lookupForExport(w, r, travels)
		if travel == nil {
			return
		}

		w.Header().Set("Content-Type", contentTypeKMZ)
		w.Header().Set("Content-Disposition", services.AttachmentDisposition(travel.Name, "kmz"))

		if err := exporter.WriteKMZ(r.Context(), w, travel); err != nil {
			logger.Log.Errorw("KMZ export failed", "id", travel.ID, "err", err)
		}
	}
}

// ActivityGetter resolves one activity.
type ActivityGetter interface {
	Activity(ctx context.Context, id int64) (*models.ActivityDB, error)
}

// NewGPXDownloadHandler returns an HTTP handler that streams one activity
// as a GPX waypoint attachment.
// @Summary Download an activity as GPX
// @Tags export
// @Param id query int true "Activity id"
// @Produce application/gpx
// @Success 200 "GPX document"
// @Failure 404 {object} handlers.statusResponse
// @Router /api/download/gpx [get]
func NewGPXDownloadHandler(activities ActivityGetter, exporter ItineraryExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(statusResponse{Status: "not_found"})
			return
		}

		activity, err := activities.Activity(r.Context(), id)
		if err != nil {
			logger.Log.Errorw("GPX lookup failed", "id", id, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if activity == nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(statusResponse{Status: "not_found"})
			return
		}

		w.Header().Set("Content-Type", contentTypeGPX)
		w.Header().Set("Content-Disposition", services.AttachmentDisposition(activity.Name, "gpx"))

		if err := exporter.WriteGPX(r.Context(), w, id); err != nil && !errors.Is(err, services.ErrNotFound) {
			logger.Log.Errorw("GPX export failed", "id", id, "err", err)
		}
	}
}
