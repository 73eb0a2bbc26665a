package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/developerom1/Red-Global-Assignment/internal/models"
)

func setupItemPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
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
		user_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		username VARCHAR(50) NOT NULL,
		email VARCHAR(100) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
		CONSTRAINT users_username_key UNIQUE (username),
		CONSTRAINT users_email_key UNIQUE (email)
	);

	CREATE TABLE IF NOT EXISTS items (
		item_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL REFERENCES users (user_id) ON DELETE CASCADE,
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		category VARCHAR(100) NOT NULL DEFAULT 'general',
		status VARCHAR(50) NOT NULL DEFAULT 'active',
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
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

func TestItemRepositories_OwnershipIsolation(t *testing.T) {
	db, teardown := setupItemPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	userRepo := NewUserWriteRepository(db)
	readRepo := NewItemReadRepository(db)
	writeRepo := NewItemWriteRepository(db)

	alice, err := userRepo.Save(ctx, "alice", "alice@example.com", "hash")
	require.NoError(t, err)
	bob, err := userRepo.Save(ctx, "bob", "bob@example.com", "hash")
	require.NoError(t, err)

	aliceItem, err := writeRepo.Save(ctx, alice, "groceries", "weekly run", "errands", "active")
	require.NoError(t, err)
	bobItem, err := writeRepo.Save(ctx, bob, "taxes", "", "general", "active")
	require.NoError(t, err)

	t.Run("owner can read own item", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, alice, aliceItem.ItemID)
		assert.NoError(t, err)
		assert.Equal(t, "groceries", got.Title)
	})

	t.Run("foreign get is indistinguishable from missing", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, bob, aliceItem.ItemID)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, got)
	})

	t.Run("foreign update does not touch the row", func(t *testing.T) {
		done := "done"
		got, err := writeRepo.Update(ctx, bob, aliceItem.ItemID, models.ItemUpdate{Status: &done})
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, got)

		unchanged, err := readRepo.GetByID(ctx, alice, aliceItem.ItemID)
		assert.NoError(t, err)
		assert.Equal(t, "active", unchanged.Status)
	})

	t.Run("foreign delete does not remove the row", func(t *testing.T) {
		err := writeRepo.Delete(ctx, bob, aliceItem.ItemID)
		assert.ErrorIs(t, err, ErrNotFound)

		still, err := readRepo.GetByID(ctx, alice, aliceItem.ItemID)
		assert.NoError(t, err)
		assert.NotNil(t, still)
	})

	t.Run("list excludes foreign rows", func(t *testing.T) {
		aliceItems, err := readRepo.ListByOwner(ctx, alice)
		assert.NoError(t, err)
		assert.Len(t, aliceItems, 1)
		assert.Equal(t, aliceItem.ItemID, aliceItems[0].ItemID)

		bobItems, err := readRepo.ListByOwner(ctx, bob)
		assert.NoError(t, err)
		assert.Len(t, bobItems, 1)
		assert.Equal(t, bobItem.ItemID, bobItems[0].ItemID)
	})

	t.Run("owner delete removes only the targeted row", func(t *testing.T) {
		err := writeRepo.Delete(ctx, alice, aliceItem.ItemID)
		assert.NoError(t, err)

		_, err = readRepo.GetByID(ctx, alice, aliceItem.ItemID)
		assert.ErrorIs(t, err, ErrNotFound)

		bobItems, err := readRepo.ListByOwner(ctx, bob)
		assert.NoError(t, err)
		assert.Len(t, bobItems, 1)
	})

	t.Run("unknown user id maps to empty list and not found", func(t *testing.T) {
		stranger := uuid.New()

		items, err := readRepo.ListByOwner(ctx, stranger)
		assert.NoError(t, err)
		assert.Empty(t, items)

		_, err = readRepo.GetByID(ctx, stranger, bobItem.ItemID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
