package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/avilkov/travel-manager/internal/middlewares"
	"github.com/avilkov/travel-manager/internal/models"
	"github.com/avilkov/travel-manager/internal/services"
)

func asUser(req *http.Request, id int64) *http.Request {
	return req.WithContext(middlewares.SetUserToContext(req.Context(), &models.User{ID: id}))
}

func TestNormalizeActivityIDs(t *testing.T) {
	tests := []struct {
		name    string
		values  []string
		want    []int64
		wantErr bool
	}{
		{name: "single value", values: []string{"3"}, want: []int64{3}},
		{name: "many values keep order", values: []string{"3", "1", "2"}, want: []int64{3, 1, 2}},
		{name: "empty entries are skipped", values: []string{"", "5", ""}, want: []int64{5}},
		{name: "no values", values: nil, want: []int64{}},
		{name: "garbage", values: []string{"abc"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeActivityIDs(tt.values)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTravelCreateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockTravelSubmitter(ctrl)
	handler := NewTravelCreateHandler(svc)

	t.Run("anonymous is redirected to login", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler(rr, postForm(t, "/api/travels/create", url.Values{"town": {"1"}}))

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, loginPath, rr.Header().Get("Location"))
	})

	t.Run("valid submission builds the draft", func(t *testing.T) {
		svc.EXPECT().
			Submit(gomock.Any(), models.TravelDraft{
				Name:        "Weekend",
				Description: "two days",
				Town:        1,
				OwnerID:     7,
				Activities:  []int64{3, 5},
			}, true).
			Return(nil)

		req := postForm(t, "/api/travels/create", url.Values{
			"name":        {"Weekend"},
			"description": {"two days"},
			"town":        {"1"},
			"activity":    {"3", "", "5"},
			"is_public":   {"on"},
		})

		rr := httptest.NewRecorder()
		handler(rr, asUser(req, 7))

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/profile", rr.Header().Get("Location"))
	})

	t.Run("missing is_public means private", func(t *testing.T) {
		svc.EXPECT().
			Submit(gomock.Any(), gomock.Any(), false).
			Return(nil)

		req := postForm(t, "/api/travels/create", url.Values{
			"town":     {"1"},
			"activity": {"3"},
		})

		rr := httptest.NewRecorder()
		handler(rr, asUser(req, 7))

		assert.Equal(t, http.StatusFound, rr.Code)
	})

	t.Run("unparseable town", func(t *testing.T) {
		req := postForm(t, "/api/travels/create", url.Values{
			"town":     {"x"},
			"activity": {"3"},
		})

		rr := httptest.NewRecorder()
		handler(rr, asUser(req, 7))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"status":"bad_town"}`, rr.Body.String())
	})

	t.Run("unknown activity from the service", func(t *testing.T) {
		svc.EXPECT().
			Submit(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(services.ErrUnknownActivity)

		req := postForm(t, "/api/travels/create", url.Values{
			"town":     {"1"},
			"activity": {"999"},
		})

		rr := httptest.NewRecorder()
		handler(rr, asUser(req, 7))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"status":"bad_activities"}`, rr.Body.String())
	})

	t.Run("empty itinerary from the service", func(t *testing.T) {
		svc.EXPECT().
			Submit(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(services.ErrEmptyItinerary)

		req := postForm(t, "/api/travels/create", url.Values{"town": {"1"}})

		rr := httptest.NewRecorder()
		handler(rr, asUser(req, 7))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"status":"bad_activities"}`, rr.Body.String())
	})

	t.Run("storage failure", func(t *testing.T) {
		svc.EXPECT().
			Submit(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("db down"))

		req := postForm(t, "/api/travels/create", url.Values{
			"town":     {"1"},
			"activity": {"3"},
		})

		rr := httptest.NewRecorder()
		handler(rr, asUser(req, 7))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestActivitiesByTownHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockActivityLister(ctrl)
	handler := NewActivitiesByTownHandler(svc)

	t.Run("lists a town's activities as JSON", func(t *testing.T) {
		svc.EXPECT().
			ActivitiesByTown(gomock.Any(), int64(1)).
			Return([]models.ActivityDB{
				{ID: 3, Town: 1, Name: "Louvre", Coordinates: "48.86, 2.34"},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/travels/get_activities?town=1", nil)

		rr := httptest.NewRecorder()
		handler(rr, asUser(req, 7))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")
		assert.Contains(t, rr.Body.String(), "Louvre")
	})

	t.Run("missing town parameter", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/travels/get_activities", nil)

		rr := httptest.NewRecorder()
		handler(rr, asUser(req, 7))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAddTownHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockTownAdder(ctrl)
	handler := NewAddTownHandler(svc)

	t.Run("adds the town", func(t *testing.T) {
		svc.EXPECT().AddTown(gomock.Any(), "Paris", "48.85, 2.35").Return(nil)

		req := postForm(t, "/api/travels/add_town", url.Values{
			"name":        {"Paris"},
			"coordinates": {"48.85, 2.35"},
		})

		rr := httptest.NewRecorder()
		handler(rr, asUser(req, 7))

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/admins", rr.Header().Get("Location"))
	})

	t.Run("malformed coordinates", func(t *testing.T) {
		svc.EXPECT().
			AddTown(gomock.Any(), "Paris", "somewhere").
			Return(services.ErrBadCoordinates)

		req := postForm(t, "/api/travels/add_town", url.Values{
			"name":        {"Paris"},
			"coordinates": {"somewhere"},
		})

		rr := httptest.NewRecorder()
		handler(rr, asUser(req, 7))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"status":"bad_coordinates"}`, rr.Body.String())
	})
}
