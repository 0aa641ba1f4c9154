package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/avilkov/travel-manager/internal/models"
)

func TestKMLDownloadHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	travels := NewMockTravelLookuper(ctrl)
	exporter := NewMockItineraryExporter(ctrl)
	handler := NewKMLDownloadHandler(travels, exporter)

	t.Run("streams the document as an attachment", func(t *testing.T) {
		travel := &models.TravelDB{ID: 3, Name: "trip", Public: true}
		travels.EXPECT().Lookup(gomock.Any(), int64(3), (*models.User)(nil)).Return(travel, nil)
		exporter.EXPECT().
			WriteKML(gomock.Any(), gomock.Any(), travel).
			DoAndReturn(func(_ context.Context, w io.Writer, _ *models.TravelDB) error {
				_, err := w.Write([]byte("<kml/>"))
				return err
			})

		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodGet, "/api/download/kml?id=3", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/vnd.google-earth.kml+xml", rr.Header().Get("Content-Type"))
		assert.Equal(t, "attachment; filename=trip.kml", rr.Header().Get("Content-Disposition"))
		assert.Equal(t, "<kml/>", rr.Body.String())
	})

	t.Run("anonymous miss is redirected to login", func(t *testing.T) {
		travels.EXPECT().Lookup(gomock.Any(), int64(4), (*models.User)(nil)).Return(nil, nil)

		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodGet, "/api/download/kml?id=4", nil))

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, loginPath, rr.Header().Get("Location"))
	})

	t.Run("authenticated miss is a structured not-found", func(t *testing.T) {
		travels.EXPECT().Lookup(gomock.Any(), int64(4), &models.User{ID: 7}).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/download/kml?id=4", nil)

		rr := httptest.NewRecorder()
		handler(rr, asUser(req, 7))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"status":"not_found"}`, rr.Body.String())
	})

	t.Run("unparseable id is a not-found", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodGet, "/api/download/kml?id=abc", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"status":"not_found"}`, rr.Body.String())
	})
}

func TestKMZDownloadHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	travels := NewMockTravelLookuper(ctrl)
	exporter := NewMockItineraryExporter(ctrl)
	handler := NewKMZDownloadHandler(travels, exporter)

	travel := &models.TravelDB{ID: 3, Name: "trip", OwnerID: 7}
	travels.EXPECT().Lookup(gomock.Any(), int64(3), &models.User{ID: 7}).Return(travel, nil)
	exporter.EXPECT().WriteKMZ(gomock.Any(), gomock.Any(), travel).Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/download/kmz?id=3", nil)

	rr := httptest.NewRecorder()
	handler(rr, asUser(req, 7))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/vnd.google-earth.kmz", rr.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=trip.kmz", rr.Header().Get("Content-Disposition"))
}

func TestGPXDownloadHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	activities := NewMockActivityGetter(ctrl)
	exporter := NewMockItineraryExporter(ctrl)
	handler := NewGPXDownloadHandler(activities, exporter)

	t.Run("streams the waypoint", func(t *testing.T) {
		activities.EXPECT().
			Activity(gomock.Any(), int64(5)).
			Return(&models.ActivityDB{ID: 5, Name: "Louvre", Coordinates: "48.86, 2.34"}, nil)
		exporter.EXPECT().WriteGPX(gomock.Any(), gomock.Any(), int64(5)).Return(nil)

		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodGet, "/api/download/gpx?id=5", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/gpx", rr.Header().Get("Content-Type"))
		assert.Equal(t, "attachment; filename=Louvre.gpx", rr.Header().Get("Content-Disposition"))
	})

	t.Run("unknown activity", func(t *testing.T) {
		activities.EXPECT().Activity(gomock.Any(), int64(99)).Return(nil, nil)

		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodGet, "/api/download/gpx?id=99", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"status":"not_found"}`, rr.Body.String())
	})
}
