package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActivityRepositories(t *testing.T) {
	db, teardown := setupTravelPostgresContainer(t)
	defer teardown()

	_, townID, seeded := seedTravelFixtures(t, db)

	writeRepo := NewActivityWriteRepository(db)
	readRepo := NewActivityReadRepository(db)
	ctx := context.Background()

	t.Run("SaveAndGetByID", func(t *testing.T) {
		id, err := writeRepo.Save(ctx, townID, "Catacombs", "underground", "48.83, 2.33")
		assert.NoError(t, err)
		assert.Positive(t, id)

		activity, err := readRepo.GetByID(ctx, id)
		assert.NoError(t, err)
		assert.NotNil(t, activity)
		assert.Equal(t, "Catacombs", activity.Name)
		assert.Equal(t, "48.83, 2.33", activity.Coordinates)
		assert.Nil(t, activity.Image)
	})

	t.Run("SaveWithUnknownTown", func(t *testing.T) {
		_, err := writeRepo.Save(ctx, 999999, "Nowhere", "", "")
		assert.Error(t, err)
	})

	t.Run("UnknownIDIsNotAnError", func(t *testing.T) {
		activity, err := readRepo.GetByID(ctx, 999999)
		assert.NoError(t, err)
		assert.Nil(t, activity)
	})

	t.Run("SetImage", func(t *testing.T) {
		id, err := writeRepo.Save(ctx, townID, "Museum", "", "48.86, 2.34")
		assert.NoError(t, err)

		assert.NoError(t, writeRepo.SetImage(ctx, id, "activities/7.png"))

		activity, err := readRepo.GetByID(ctx, id)
		assert.NoError(t, err)
		assert.NotNil(t, activity.Image)
		assert.Equal(t, "activities/7.png", *activity.Image)
	})

	t.Run("ListByTown", func(t *testing.T) {
		activities, err := readRepo.ListByTown(ctx, townID)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, len(activities), len(seeded))
		for _, a := range activities {
			assert.Equal(t, townID, a.Town)
		}
	})

	t.Run("ListByIDsPreservesOrder", func(t *testing.T) {
		// Reversed input must come back reversed.
		ids := []int64{seeded[1], seeded[0]}
		activities, err := readRepo.ListByIDs(ctx, ids)
		assert.NoError(t, err)
		assert.Len(t, activities, 2)
		assert.Equal(t, seeded[1], activities[0].ID)
		assert.Equal(t, seeded[0], activities[1].ID)
	})

	t.Run("MissingIDs", func(t *testing.T) {
		missing, err := readRepo.MissingIDs(ctx, []int64{seeded[0], 999998, 999999})
		assert.NoError(t, err)
		assert.Equal(t, []int64{999998, 999999}, missing)

		missing, err = readRepo.MissingIDs(ctx, seeded)
		assert.NoError(t, err)
		assert.Empty(t, missing)
	})
}
