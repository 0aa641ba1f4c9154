package services

import (
	"context"

	"github.com/avilkov/travel-manager/internal/logger"
	"github.com/avilkov/travel-manager/internal/models"
)

// CommentReader defines comment read operations.
type CommentReader interface {
	ListByTravel(ctx context.Context, travelID int64) ([]models.TravelCommentDB, error)
	ListByActivity(ctx context.Context, activityID int64) ([]models.ActivityCommentDB, error)
}

// CommentWriter defines comment write operations.
type CommentWriter interface {
	SaveTravelComment(ctx context.Context, travelID, ownerID int64, title, pros, cons, text string, stars *int64) error
	SaveActivityComment(ctx context.Context, activityID, ownerID int64, title, pros, cons, text string, stars *int64) error
}

// TravelCommentView is a travel comment with its author's display name.
type TravelCommentView struct {
	models.TravelCommentDB
	Author string `json:"author"`
}

// ActivityCommentView is an activity comment with its author's display name.
type ActivityCommentView struct {
	models.ActivityCommentDB
	Author string `json:"author"`
}

// CommentService serves travel and activity comments.
type CommentService struct {
	comments CommentReader
	writer   CommentWriter
	users    UserReader
}

// NewCommentService creates a new CommentService instance.
func NewCommentService(comments CommentReader, writer CommentWriter, users UserReader) *CommentService {
	return &CommentService{
		comments: comments,
		writer:   writer,
		users:    users,
	}
}

// TravelComments lists a travel's comments with author names resolved.
func (svc *CommentService) TravelComments(ctx context.Context, travelID int64) ([]TravelCommentView, error) {
	comments, err := svc.comments.ListByTravel(ctx, travelID)
	if err != nil {
		return nil, err
	}

	views := make([]TravelCommentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, TravelCommentView{
			TravelCommentDB: c,
			Author:          svc.authorName(ctx, c.OwnerID),
		})
	}
	return views, nil
}

// ActivityComments lists an activity's comments with author names resolved.
func (svc *CommentService) ActivityComments(ctx context.Context, activityID int64) ([]ActivityCommentView, error) {
	comments, err := svc.comments.ListByActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}

	views := make([]ActivityCommentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, ActivityCommentView{
			ActivityCommentDB: c,
			Author:            svc.authorName(ctx, c.OwnerID),
		})
	}
	return views, nil
}

// AddTravelComment attaches a comment to a travel.
func (svc *CommentService) AddTravelComment(ctx context.Context, travelID, ownerID int64, title, pros, cons, text string, stars *int64) error {
	return svc.writer.SaveTravelComment(ctx, travelID, ownerID, title, pros, cons, text, stars)
}

// AddActivityComment attaches a comment to an activity.
func (svc *CommentService) AddActivityComment(ctx context.Context, activityID, ownerID int64, title, pros, cons, text string, stars *int64) error {
	return svc.writer.SaveActivityComment(ctx, activityID, ownerID, title, pros, cons, text, stars)
}

func (svc *CommentService) authorName(ctx context.Context, ownerID int64) string {
	user, err := svc.users.GetByID(ctx, ownerID)
	if err != nil {
		logger.Log.Warnw("failed to resolve comment author", "owner_id", ownerID, "err", err)
		return ""
	}
	if user == nil {
		return ""
	}
	return user.Name
}
