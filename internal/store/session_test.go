package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSession_CreatesSingleton(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	first, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.OnboardingComplete)
	assert.Zero(t, first.ReviewsThisHour)

	// Second access returns the same session.
	second, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestUpdateSession(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	session, err := store.GetSession(ctx)
	require.NoError(t, err)

	session.OnboardingComplete = true
	session.HighContrastMode = true
	require.NoError(t, store.UpdateSession(ctx, session))

	reloaded, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.True(t, reloaded.OnboardingComplete)
	assert.True(t, reloaded.HighContrastMode)
}
