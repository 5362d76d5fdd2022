//go:build integration

package actoreffects

import (
	"context"
	"testing"

	"github.com/KirkDiggler/pf-bonus-bot/internal/effects"
	bonuserr "github.com/KirkDiggler/pf-bonus-bot/internal/errors"
	"github.com/KirkDiggler/pf-bonus-bot/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRepository_Integration(t *testing.T) {
	ctx := context.Background()
	repo := NewRedis(testutils.StartRedisContainer(t))

	bless := effects.BuildBless()
	require.NoError(t, repo.Save(ctx, "actor-1", bless))
	require.NoError(t, repo.Save(ctx, "actor-1", effects.BuildShieldOfFaith(6)))

	got, err := repo.Get(ctx, "actor-1", bless.ID)
	require.NoError(t, err)
	assert.Equal(t, bless.Name, got.Name)
	assert.Equal(t, bless.Changes, got.Changes)

	list, err := repo.ListByActor(ctx, "actor-1")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, repo.Delete(ctx, "actor-1", bless.ID))
	assert.True(t, bonuserr.IsNotFound(repo.Delete(ctx, "actor-1", bless.ID)))

	list, err = repo.ListByActor(ctx, "actor-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
