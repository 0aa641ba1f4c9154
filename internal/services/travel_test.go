package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/avilkov/travel-manager/internal/models"
	"github.com/avilkov/travel-manager/internal/services"
)

func newTravelService(ctrl *gomock.Controller) (*services.TravelService, *services.MockTravelReader, *services.MockTownReader, *services.MockTownWriter, *services.MockActivityReader, *services.MockActivityWriter) {
	travels := services.NewMockTravelReader(ctrl)
	towns := services.NewMockTownReader(ctrl)
	townWriter := services.NewMockTownWriter(ctrl)
	activities := services.NewMockActivityReader(ctrl)
	activityWriter := services.NewMockActivityWriter(ctrl)

	svc := services.NewTravelService(travels, towns, townWriter, activities, activityWriter)
	return svc, travels, towns, townWriter, activities, activityWriter
}

func TestTravelService_Lookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, travels, _, _, _, _ := newTravelService(ctrl)

	publicTravel := &models.TravelDB{ID: 1, Name: "Public trip", Public: true}
	privateTravel := &models.TravelDB{ID: 2, Name: "Private trip", OwnerID: 7}
	viewer := &models.User{ID: 7}

	t.Run("public row wins", func(t *testing.T) {
		travels.EXPECT().GetPublicByID(gomock.Any(), int64(1)).Return(publicTravel, nil)

		got, err := svc.Lookup(context.Background(), 1, viewer)
		assert.NoError(t, err)
		assert.Equal(t, publicTravel, got)
	})

	t.Run("anonymous viewer gets no owner fallback", func(t *testing.T) {
		travels.EXPECT().GetPublicByID(gomock.Any(), int64(2)).Return(nil, nil)

		got, err := svc.Lookup(context.Background(), 2, nil)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("owner sees their private travel", func(t *testing.T) {
		travels.EXPECT().GetPublicByID(gomock.Any(), int64(2)).Return(nil, nil)
		travels.EXPECT().GetByIDForOwner(gomock.Any(), int64(2), int64(7)).Return(privateTravel, nil)

		got, err := svc.Lookup(context.Background(), 2, viewer)
		assert.NoError(t, err)
		assert.Equal(t, privateTravel, got)
	})

	t.Run("somebody else's private travel stays hidden", func(t *testing.T) {
		travels.EXPECT().GetPublicByID(gomock.Any(), int64(2)).Return(nil, nil)
		travels.EXPECT().GetByIDForOwner(gomock.Any(), int64(2), int64(8)).Return(nil, nil)

		got, err := svc.Lookup(context.Background(), 2, &models.User{ID: 8})
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestTravelService_AddTown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, townWriter, _, _ := newTravelService(ctrl)

	t.Run("valid coordinates", func(t *testing.T) {
		townWriter.EXPECT().Save(gomock.Any(), "Paris", "48.8566, 2.3522").Return(nil)

		assert.NoError(t, svc.AddTown(context.Background(), "Paris", "48.8566, 2.3522"))
	})

	t.Run("malformed coordinates", func(t *testing.T) {
		err := svc.AddTown(context.Background(), "Nowhere", "not a pair")
		assert.ErrorIs(t, err, services.ErrBadCoordinates)
	})
}

func TestTravelService_AddActivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, towns, _, _, activityWriter := newTravelService(ctrl)

	t.Run("valid activity", func(t *testing.T) {
		towns.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.TownDB{ID: 1, Name: "Paris"}, nil)
		activityWriter.EXPECT().
			Save(gomock.Any(), int64(1), "Louvre", "Museum", "48.86, 2.33").
			Return(int64(5), nil)

		id, err := svc.AddActivity(context.Background(), 1, "Louvre", "Museum", "48.86, 2.33")
		assert.NoError(t, err)
		assert.Equal(t, int64(5), id)
	})

	t.Run("unknown town", func(t *testing.T) {
		towns.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)

		_, err := svc.AddActivity(context.Background(), 99, "Louvre", "Museum", "48.86, 2.33")
		assert.ErrorIs(t, err, services.ErrUnknownTown)
	})

	t.Run("malformed coordinates", func(t *testing.T) {
		_, err := svc.AddActivity(context.Background(), 1, "Louvre", "Museum", "zzz")
		assert.ErrorIs(t, err, services.ErrBadCoordinates)
	})

	t.Run("town lookup error", func(t *testing.T) {
		towns.EXPECT().GetByID(gomock.Any(), int64(1)).Return(nil, errors.New("db error"))

		_, err := svc.AddActivity(context.Background(), 1, "Louvre", "Museum", "48.86, 2.33")
		assert.EqualError(t, err, "db error")
	})
}

func TestTravelService_ResolveActivities(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, activities, _ := newTravelService(ctrl)

	want := []models.ActivityDB{{ID: 5, Name: "Louvre"}, {ID: 3, Name: "Eiffel Tower"}}
	activities.EXPECT().ListByIDs(gomock.Any(), []int64{5, 3}).Return(want, nil)

	got, err := svc.ResolveActivities(context.Background(), []int64{5, 3})
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}
