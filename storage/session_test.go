package storage_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/masaoka108/ai-youtube-summary-api/model"
	"github.com/masaoka108/ai-youtube-summary-api/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionRepository(t *testing.T) {
	repo := storage.NewMemorySessionRepository()

	session := &model.Session{
		ID:     uuid.New(),
		Status: model.StatusIdle,
	}
	require.NoError(t, repo.Save(session))

	found, err := repo.Find(session.ID)
	require.NoError(t, err)
	// The repository hands back the live record; cloning for outside
	// readers happens at the pipeline boundary.
	assert.Same(t, session, found)

	require.NoError(t, repo.Delete(session.ID))
	_, err = repo.Find(session.ID)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestMemorySessionRepositoryFindUnknown(t *testing.T) {
	repo := storage.NewMemorySessionRepository()

	_, err := repo.Find(uuid.New())
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}
