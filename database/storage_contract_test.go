package database

import (
	"context"
	"folio/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testStorageContract runs the gateway behaviour every driver must share.
// newStore must return an empty, migrated store.
func testStorageContract(t *testing.T, newStore func(t *testing.T) Storage) {
	t.Run("CreateMessage", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()
		before := time.Now().Truncate(time.Millisecond)

		req := models.CreateMessageRequest{Name: "Jane", Email: "jane@x.com", Message: "hello there friend"}
		message, err := store.CreateMessage(ctx, req)

		require.NoError(t, err)
		assert.Positive(t, message.ID)
		assert.Equal(t, "Jane", message.Name)
		assert.Equal(t, "jane@x.com", message.Email)
		assert.Equal(t, "hello there friend", message.Message)
		assert.False(t, message.CreatedAt.Before(before), "createdAt %v before request time %v", message.CreatedAt, before)
	})

	t.Run("CreateMessage_IncreasingIDs", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		var lastID int64
		for i := 0; i < 3; i++ {
			message, err := store.CreateMessage(ctx, models.CreateMessageRequest{
				Name: "Jane", Email: "jane@x.com", Message: "hello",
			})
			require.NoError(t, err)
			assert.Greater(t, message.ID, lastID)
			lastID = message.ID
		}
	})

	t.Run("ListProjects_Empty", func(t *testing.T) {
		store := newStore(t)

		projects, err := store.ListProjects(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, projects)
		assert.Empty(t, projects)
	})

	t.Run("CreateProject_OptionalFieldsOmitted", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		created, err := store.CreateProject(ctx, models.CreateProjectRequest{
			Title:       "Test Project",
			Description: "A project",
			ImageURL:    "https://images.example.com/1.png",
		})
		require.NoError(t, err)
		assert.Positive(t, created.ID)
		assert.False(t, created.Featured)
		assert.Nil(t, created.ProjectURL)
		assert.Nil(t, created.RepoURL)
		assert.False(t, created.CreatedAt.IsZero())

		retrieved, found, err := store.GetProject(ctx, created.ID)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, created.ID, retrieved.ID)
		assert.Equal(t, "Test Project", retrieved.Title)
		assert.Nil(t, retrieved.ProjectURL)
		assert.Nil(t, retrieved.RepoURL)
		assert.False(t, retrieved.Featured)
	})

	t.Run("CreateProject_AllFields", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()
		projectURL, repoURL, featured := "https://example.com/p", "https://github.com/example/p", true

		created, err := store.CreateProject(ctx, models.CreateProjectRequest{
			Title:       "Full",
			Description: "All fields",
			ImageURL:    "https://images.example.com/2.png",
			ProjectURL:  &projectURL,
			RepoURL:     &repoURL,
			Featured:    &featured,
		})
		require.NoError(t, err)

		retrieved, found, err := store.GetProject(ctx, created.ID)
		require.NoError(t, err)
		require.True(t, found)
		require.NotNil(t, retrieved.ProjectURL)
		require.NotNil(t, retrieved.RepoURL)
		assert.Equal(t, projectURL, *retrieved.ProjectURL)
		assert.Equal(t, repoURL, *retrieved.RepoURL)
		assert.True(t, retrieved.Featured)
	})

	t.Run("ListProjects_OrderedAndRepeatable", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		for _, title := range []string{"Project 1", "Project 2", "Project 3"} {
			_, err := store.CreateProject(ctx, models.CreateProjectRequest{
				Title: title, Description: "d", ImageURL: "https://img",
			})
			require.NoError(t, err)
		}

		first, err := store.ListProjects(ctx)
		require.NoError(t, err)
		require.Len(t, first, 3)
		for i := 1; i < len(first); i++ {
			assert.Less(t, first[i-1].ID, first[i].ID)
		}
		assert.Equal(t, "Project 1", first[0].Title)
		assert.Equal(t, "Project 3", first[2].Title)

		second, err := store.ListProjects(ctx)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("GetProject_NotFound", func(t *testing.T) {
		store := newStore(t)

		project, found, err := store.GetProject(context.Background(), 99999)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, project)
	})
}

func TestSQLiteStore_Contract(t *testing.T) {
	testStorageContract(t, func(t *testing.T) Storage {
		return NewTestSQLiteStore(t)
	})
}

func TestPostgres_Contract(t *testing.T) {
	testStorageContract(t, func(t *testing.T) Storage {
		return RequireTestDB(t)
	})
}
