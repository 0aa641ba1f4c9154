package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionRepositories(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	userWrite := NewUserWriteRepository(db)
	writeRepo := NewSessionWriteRepository(db)
	readRepo := NewSessionReadRepository(db)
	ctx := context.Background()

	userID, err := userWrite.Save(ctx, "session@example.com", "Sess", "h")
	assert.NoError(t, err)

	t.Run("SaveAndGetByToken", func(t *testing.T) {
		assert.NoError(t, writeRepo.Save(ctx, userID, "tok-1"))

		session, err := readRepo.GetByToken(ctx, "tok-1")
		assert.NoError(t, err)
		assert.NotNil(t, session)
		assert.Equal(t, userID, session.UserID)
		assert.Equal(t, "tok-1", session.Token)
	})

	t.Run("UnknownTokenIsNotAnError", func(t *testing.T) {
		session, err := readRepo.GetByToken(ctx, "tok-unknown")
		assert.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("DeleteByToken", func(t *testing.T) {
		assert.NoError(t, writeRepo.Save(ctx, userID, "tok-2"))
		assert.NoError(t, writeRepo.DeleteByToken(ctx, "tok-2"))

		session, err := readRepo.GetByToken(ctx, "tok-2")
		assert.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("DeleteUnknownTokenIsANoOp", func(t *testing.T) {
		assert.NoError(t, writeRepo.DeleteByToken(ctx, "tok-never-existed"))
	})

	t.Run("DuplicateTokenIsRejected", func(t *testing.T) {
		assert.NoError(t, writeRepo.Save(ctx, userID, "tok-3"))
		assert.Error(t, writeRepo.Save(ctx, userID, "tok-3"))
	})
}
