package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupUserPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		password TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS sessions (
		id SERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		token TEXT NOT NULL UNIQUE
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	id, err := repo.Save(ctx, "alice@example.com", "Alice", "hash123")
	assert.NoError(t, err)
	assert.Positive(t, id)

	var user struct {
		Email    string `db:"email"`
		Name     string `db:"name"`
		Password string `db:"password"`
	}
	err = db.Get(&user, "SELECT email, name, password FROM users WHERE id=$1", id)
	assert.NoError(t, err)

	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "hash123", user.Password)
}

func TestUserWriteRepository_Save_DuplicateEmail(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	_, err := repo.Save(ctx, "dup@example.com", "First", "h1")
	assert.NoError(t, err)

	_, err = repo.Save(ctx, "dup@example.com", "Second", "h2")
	assert.Error(t, err)
}

func TestUserReadRepository(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	id, err := writeRepo.Save(ctx, "charlie@example.com", "Charlie", "secret")
	assert.NoError(t, err)

	t.Run("ByEmail", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "charlie@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "Charlie", user.Name)
		assert.Equal(t, "secret", user.PasswordHash)
	})

	t.Run("ByID", func(t *testing.T) {
		user, err := readRepo.GetByID(ctx, id)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "charlie@example.com", user.Email)
	})

	t.Run("UnknownEmailIsNotAnError", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("UnknownIDIsNotAnError", func(t *testing.T) {
		user, err := readRepo.GetByID(ctx, 999999)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserWriteRepository_Rename(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	id, err := writeRepo.Save(ctx, "rename@example.com", "Before", "h")
	assert.NoError(t, err)

	assert.NoError(t, writeRepo.Rename(ctx, id, "After"))

	user, err := readRepo.GetByID(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, "After", user.Name)
}

func TestUserWriteRepository_Delete_CascadesSessions(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	userWrite := NewUserWriteRepository(db)
	sessionWrite := NewSessionWriteRepository(db)
	sessionRead := NewSessionReadRepository(db)
	ctx := context.Background()

	id, err := userWrite.Save(ctx, "gone@example.com", "Gone", "h")
	assert.NoError(t, err)
	assert.NoError(t, sessionWrite.Save(ctx, id, "tok-cascade"))

	assert.NoError(t, userWrite.Delete(ctx, id))

	session, err := sessionRead.GetByToken(ctx, "tok-cascade")
	assert.NoError(t, err)
	assert.Nil(t, session)
}
