package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/model"
	"portfolio/internal/repository"
)

func TestAdminRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	st := NewStore()

	admin := &model.Admin{Email: "a@x.com", PasswordHash: "hash"}
	require.NoError(t, st.Admins.Create(ctx, admin))
	assert.NotEmpty(t, admin.ID)
	assert.False(t, admin.CreatedAt.IsZero())

	found, err := st.Admins.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, found.ID)
	assert.Equal(t, "hash", found.PasswordHash)

	_, err = st.Admins.FindByEmail(ctx, "A@x.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAdminRepository_UniqueEmail(t *testing.T) {
	ctx := context.Background()
	st := NewStore()

	var wg sync.WaitGroup
	results := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- st.Admins.Create(ctx, &model.Admin{Email: "a@x.com", PasswordHash: "hash"})
		}()
	}
	wg.Wait()
	close(results)

	created := 0
	for err := range results {
		if err == nil {
			created++
			continue
		}
		assert.ErrorIs(t, err, repository.ErrDuplicate)
	}
	assert.Equal(t, 1, created)
}

func TestMessageRepository_ListRecent(t *testing.T) {
	ctx := context.Background()
	st := NewStore()

	messages, err := st.Messages.ListRecent(ctx, 50)
	require.NoError(t, err)
	assert.NotNil(t, messages)
	assert.Empty(t, messages)

	for _, name := range []string{"first", "second", "third"} {
		require.NoError(t, st.Messages.Create(ctx, &model.Message{Name: name, Email: "b@x.com", Body: "hi"}))
	}

	messages, err = st.Messages.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "third", messages[0].Name)
	assert.Equal(t, "second", messages[1].Name)
}

func TestProjectRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	st := NewStore()

	older := &model.Project{Title: "old", Description: "d", CreatedAt: time.Now().Add(-time.Hour)}
	newer := &model.Project{Title: "new", Description: "d"}
	require.NoError(t, st.Projects.Create(ctx, older))
	require.NoError(t, st.Projects.Create(ctx, newer))
	assert.Equal(t, []string{}, newer.Tags)

	projects, err := st.Projects.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "new", projects[0].Title)

	require.NoError(t, st.Projects.Delete(ctx, older.ID))
	assert.ErrorIs(t, st.Projects.Delete(ctx, older.ID), repository.ErrNotFound)

	projects, err = st.Projects.List(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 1)
}
