package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estudaia/internal/domain"
	"estudaia/internal/repository/memory"
)

func TestQuizSessionRepo_NewestFirstAndPrune(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewQuizSessionRepo()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	for i, id := range []string{"s1", "s2", "s3"} {
		require.NoError(t, repo.Create(ctx, &domain.QuizSession{ID: id, Date: base.Add(time.Duration(i) * time.Hour), Mode: domain.QuizModePractice}))
	}

	list, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "s3", list[0].ID)
	assert.Equal(t, "s1", list[2].ID)

	require.NoError(t, repo.Prune(ctx, 2))
	list, err = repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "s2", list[1].ID)

	list, err = repo.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.Clear(ctx))
	list, err = repo.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}
