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

func TestCommentService_TravelComments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	comments := services.NewMockCommentReader(ctrl)
	writer := services.NewMockCommentWriter(ctrl)
	users := services.NewMockUserReader(ctrl)

	svc := services.NewCommentService(comments, writer, users)

	comments.EXPECT().
		ListByTravel(gomock.Any(), int64(1)).
		Return([]models.TravelCommentDB{
			{ID: 1, OwnerID: 7, TravelID: 1, Title: "Great"},
			{ID: 2, OwnerID: 8, TravelID: 1, Title: "Meh"},
		}, nil)
	users.EXPECT().GetByID(gomock.Any(), int64(7)).Return(&models.UserDB{ID: 7, Name: "Alice"}, nil)
	// Deleted commenter resolves to an empty author, not an error.
	users.EXPECT().GetByID(gomock.Any(), int64(8)).Return(nil, nil)

	views, err := svc.TravelComments(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, views, 2)
	assert.Equal(t, "Alice", views[0].Author)
	assert.Empty(t, views[1].Author)
}

func TestCommentService_ActivityComments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	comments := services.NewMockCommentReader(ctrl)
	writer := services.NewMockCommentWriter(ctrl)
	users := services.NewMockUserReader(ctrl)

	svc := services.NewCommentService(comments, writer, users)

	t.Run("success", func(t *testing.T) {
		comments.EXPECT().
			ListByActivity(gomock.Any(), int64(3)).
			Return([]models.ActivityCommentDB{{ID: 1, OwnerID: 7, ActivityID: 3}}, nil)
		users.EXPECT().GetByID(gomock.Any(), int64(7)).Return(&models.UserDB{ID: 7, Name: "Alice"}, nil)

		views, err := svc.ActivityComments(context.Background(), 3)
		assert.NoError(t, err)
		assert.Len(t, views, 1)
		assert.Equal(t, "Alice", views[0].Author)
	})

	t.Run("reader error", func(t *testing.T) {
		comments.EXPECT().ListByActivity(gomock.Any(), int64(3)).Return(nil, errors.New("db error"))

		_, err := svc.ActivityComments(context.Background(), 3)
		assert.EqualError(t, err, "db error")
	})
}

func TestCommentService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	comments := services.NewMockCommentReader(ctrl)
	writer := services.NewMockCommentWriter(ctrl)
	users := services.NewMockUserReader(ctrl)

	svc := services.NewCommentService(comments, writer, users)

	stars := int64(4)

	writer.EXPECT().
		SaveTravelComment(gomock.Any(), int64(1), int64(7), "Great", "views", "crowds", "worth it", &stars).
		Return(nil)
	assert.NoError(t, svc.AddTravelComment(context.Background(), 1, 7, "Great", "views", "crowds", "worth it", &stars))

	writer.EXPECT().
		SaveActivityComment(gomock.Any(), int64(3), int64(7), "Nice", "", "", "", (*int64)(nil)).
		Return(nil)
	assert.NoError(t, svc.AddActivityComment(context.Background(), 3, 7, "Nice", "", "", "", nil))
}
