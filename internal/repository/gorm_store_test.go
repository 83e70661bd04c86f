package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"portfolio/internal/model"
)

// newTestStore opens a private in-memory sqlite database with the same error
// translation the server enables for mysql and postgres.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, AutoMigrate(db))
	return NewGormStore(db)
}

func TestAdminRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	admin := &model.Admin{Email: "a@x.com", PasswordHash: "hash"}
	require.NoError(t, store.Admins.Create(ctx, admin))
	assert.Len(t, admin.ID, 36)

	found, err := store.Admins.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, found.ID)
	assert.Equal(t, "hash", found.PasswordHash)

	_, err = store.Admins.FindByEmail(ctx, "A@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdminRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Admins.Create(ctx, &model.Admin{Email: "a@x.com", PasswordHash: "first"}))

	err := store.Admins.Create(ctx, &model.Admin{Email: "a@x.com", PasswordHash: "second"})
	assert.ErrorIs(t, err, ErrDuplicate)

	found, err := store.Admins.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "first", found.PasswordHash)
}

func TestMessageRepository_ListRecentNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		require.NoError(t, store.Messages.Create(ctx, &model.Message{
			Name:      name,
			Email:     "b@y.com",
			Body:      "hi",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	messages, err := store.Messages.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "third", messages[0].Name)
	assert.Equal(t, "second", messages[1].Name)
	assert.NotEmpty(t, messages[0].ID)
}

func TestMessageRepository_ListRecentEmpty(t *testing.T) {
	messages, err := newTestStore(t).Messages.ListRecent(context.Background(), 50)
	require.NoError(t, err)
	assert.NotNil(t, messages)
	assert.Empty(t, messages)
}

func TestProjectRepository_CreateListDelete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	older := &model.Project{Title: "Site", Description: "d", Tags: []string{"go", "echo"}, CreatedAt: base}
	newer := &model.Project{Title: "CLI", Description: "d", CreatedAt: base.Add(time.Hour)}
	require.NoError(t, store.Projects.Create(ctx, older))
	require.NoError(t, store.Projects.Create(ctx, newer))

	projects, err := store.Projects.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, newer.ID, projects[0].ID)
	assert.Equal(t, []string{}, projects[0].Tags)
	assert.Equal(t, []string{"go", "echo"}, projects[1].Tags)

	require.NoError(t, store.Projects.Delete(ctx, older.ID))
	assert.ErrorIs(t, store.Projects.Delete(ctx, older.ID), ErrNotFound)
	assert.ErrorIs(t, store.Projects.Delete(ctx, "missing"), ErrNotFound)

	projects, err = store.Projects.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, newer.ID, projects[0].ID)
}
