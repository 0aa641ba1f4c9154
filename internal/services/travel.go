package services

import (
	"context"
	"errors"

	"github.com/avilkov/travel-manager/internal/logger"
	"github.com/avilkov/travel-manager/internal/models"
)

// Error variables
var (
	ErrNotFound       = errors.New("not found")
	ErrUnknownTown    = errors.New("unknown town")
	ErrBadCoordinates = errors.New("malformed coordinates")
)

// TravelReader defines read operations over live travels.
type TravelReader interface {
	GetPublicByID(ctx context.Context, id int64) (*models.TravelDB, error)
	GetByIDForOwner(ctx context.Context, id, ownerID int64) (*models.TravelDB, error)
	ListPublicByOwner(ctx context.Context, ownerID int64) ([]models.TravelDB, error)
	ListPrivateByOwner(ctx context.Context, ownerID int64) ([]models.TravelDB, error)
	Recommendations(ctx context.Context, town *int64) ([]models.TravelDB, error)
}

// TownReader defines read operations over towns.
type TownReader interface {
	List(ctx context.Context) ([]models.TownDB, error)
	GetByID(ctx context.Context, id int64) (*models.TownDB, error)
}

// TownWriter defines write operations over towns.
type TownWriter interface {
	Save(ctx context.Context, name, coordinates string) error
}

// ActivityReader defines read operations over activities.
type ActivityReader interface {
	GetByID(ctx context.Context, id int64) (*models.ActivityDB, error)
	ListByIDs(ctx context.Context, ids []int64) ([]models.ActivityDB, error)
	ListByTown(ctx context.Context, town int64) ([]models.ActivityDB, error)
	MissingIDs(ctx context.Context, ids []int64) ([]int64, error)
}

// ActivityWriter defines write operations over activities.
type ActivityWriter interface {
	Save(ctx context.Context, town int64, name, description, coordinates string) (int64, error)
	SetImage(ctx context.Context, id int64, image string) error
}

// TravelService serves travel browsing and the town/activity catalog.
type TravelService struct {
	travels        TravelReader
	towns          TownReader
	townWriter     TownWriter
	activities     ActivityReader
	activityWriter ActivityWriter
}

// NewTravelService creates a new TravelService instance.
func NewTravelService(
	travels TravelReader,
	towns TownReader,
	townWriter TownWriter,
	activities ActivityReader,
	activityWriter ActivityWriter,
) *TravelService {
	return &TravelService{
		travels:        travels,
		towns:          towns,
		townWriter:     townWriter,
		activities:     activities,
		activityWriter: activityWriter,
	}
}

// Lookup applies the visibility rule for a travel id: the public row wins;
// the owner-scoped fallback runs only when a viewer identity is available.
// Returns nil when the travel does not exist or is not visible to the viewer.
func (svc *TravelService) Lookup(ctx context.Context, id int64, viewer *models.User) (*models.TravelDB, error) {
	travel, err := svc.travels.GetPublicByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if travel != nil {
		return travel, nil
	}
	if viewer == nil {
		return nil, nil
	}
	return svc.travels.GetByIDForOwner(ctx, id, viewer.ID)
}

// Recommendations returns up to ten public travels, optionally for one town.
func (svc *TravelService) Recommendations(ctx context.Context, town *int64) ([]models.TravelDB, error) {
	return svc.travels.Recommendations(ctx, town)
}

// PublicByOwner returns the owner's approved public travels.
func (svc *TravelService) PublicByOwner(ctx context.Context, ownerID int64) ([]models.TravelDB, error) {
	return svc.travels.ListPublicByOwner(ctx, ownerID)
}

// PrivateByOwner returns the owner's private travels.
func (svc *TravelService) PrivateByOwner(ctx context.Context, ownerID int64) ([]models.TravelDB, error) {
	return svc.travels.ListPrivateByOwner(ctx, ownerID)
}

// Towns returns the town catalog.
func (svc *TravelService) Towns(ctx context.Context) ([]models.TownDB, error) {
	return svc.towns.List(ctx)
}

// Town returns a single town, nil when absent.
func (svc *TravelService) Town(ctx context.Context, id int64) (*models.TownDB, error) {
	return svc.towns.GetByID(ctx, id)
}

// Activity returns a single activity, nil when absent.
func (svc *TravelService) Activity(ctx context.Context, id int64) (*models.ActivityDB, error) {
	return svc.activities.GetByID(ctx, id)
}

// ActivitiesByTown lists a town's activities.
func (svc *TravelService) ActivitiesByTown(ctx context.Context, town int64) ([]models.ActivityDB, error) {
	return svc.activities.ListByTown(ctx, town)
}

// ResolveActivities resolves a travel's activity id sequence in stored order.
func (svc *TravelService) ResolveActivities(ctx context.Context, ids []int64) ([]models.ActivityDB, error) {
	return svc.activities.ListByIDs(ctx, ids)
}

// AddTown validates the coordinate pair and inserts a town.
func (svc *TravelService) AddTown(ctx context.Context, name, coordinates string) error {
	if _, _, err := models.ParseCoordinates(coordinates); err != nil {
		return ErrBadCoordinates
	}
	return svc.townWriter.Save(ctx, name, coordinates)
}

// AddActivity validates the town and coordinates, inserts the activity and
// returns its id.
func (svc *TravelService) AddActivity(ctx context.Context, town int64, name, description, coordinates string) (int64, error) {
	if _, _, err := models.ParseCoordinates(coordinates); err != nil {
		return 0, ErrBadCoordinates
	}

	t, err := svc.towns.GetByID(ctx, town)
	if err != nil {
		return 0, err
	}
	if t == nil {
		return 0, ErrUnknownTown
	}

	id, err := svc.activityWriter.Save(ctx, town, name, description, coordinates)
	if err != nil {
		logger.Log.Errorw("failed to save activity", "town", town, "err", err)
		return 0, err
	}
	return id, nil
}

// SetActivityImage records the stored image reference for an activity.
func (svc *TravelService) SetActivityImage(ctx context.Context, id int64, image string) error {
	return svc.activityWriter.SetImage(ctx, id, image)
}
