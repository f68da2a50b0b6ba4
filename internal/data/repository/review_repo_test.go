package repository_test

import (
	"context"
	"testing"

	"github.com/Thanchanok1900/FinalWorkshopAjRoyle/internal/data/entity"
	"github.com/Thanchanok1900/FinalWorkshopAjRoyle/internal/data/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newReviewRepo() repository.ReviewRepository {
	return repository.NewReviewRepository(zap.NewNop())
}

func TestReviewRepositorySequenceIsIndependentOfMovies(t *testing.T) {
	// Arrange: a movie store that has already handed out a few ids.
	movies := newMovieRepo()
	reviews := newReviewRepo()
	ctx := context.Background()

	for _, title := range []string{"A", "B", "C"} {
		require.NoError(t, movies.Create(ctx, &entity.Movie{Title: title}))
	}

	// Act
	first := &entity.Review{MovieID: 3, ReviewerName: "dana", Rating: 5}
	second := &entity.Review{MovieID: 3, ReviewerName: "lee", Rating: 4}
	require.NoError(t, reviews.Create(ctx, first))
	require.NoError(t, reviews.Create(ctx, second))

	// Assert: review ids start at 1 on their own counter.
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
}

func TestReviewRepositoryFindByMovieID(t *testing.T) {
	repo := newReviewRepo()
	ctx := context.Background()

	seed := []entity.Review{
		{MovieID: 1, ReviewerName: "dana", Rating: 5, Comment: "great"},
		{MovieID: 2, ReviewerName: "lee", Rating: 2, Comment: "meh"},
		{MovieID: 1, ReviewerName: "sam", Rating: 3, Comment: "fine"},
	}
	for i := range seed {
		require.NoError(t, repo.Create(ctx, &seed[i]))
	}

	t.Run("filters by movie in insertion order", func(t *testing.T) {
		got, err := repo.FindByMovieID(ctx, 1)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "dana", got[0].ReviewerName)
		assert.Equal(t, "sam", got[1].ReviewerName)
	})

	t.Run("unknown movie yields an empty slice", func(t *testing.T) {
		got, err := repo.FindByMovieID(ctx, 99)

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestReviewRepositoryDelete(t *testing.T) {
	repo := newReviewRepo()
	ctx := context.Background()

	rev := &entity.Review{MovieID: 1, ReviewerName: "dana", Rating: 4}
	require.NoError(t, repo.Create(ctx, rev))

	require.NoError(t, repo.Delete(ctx, rev.ID))
	assert.ErrorIs(t, repo.Delete(ctx, rev.ID), repository.ErrRecordNotFound)

	remaining, err := repo.FindByMovieID(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestReviewRepositoryGetMovieReviewStats(t *testing.T) {
	repo := newReviewRepo()
	ctx := context.Background()

	for _, rating := range []int{5, 4} {
		require.NoError(t, repo.Create(ctx, &entity.Review{MovieID: 1, ReviewerName: "dana", Rating: rating}))
	}
	require.NoError(t, repo.Create(ctx, &entity.Review{MovieID: 2, ReviewerName: "lee", Rating: 1}))

	tests := []struct {
		name      string
		movieID   int
		wantAvg   float64
		wantCount int64
	}{
		{name: "mean of two ratings", movieID: 1, wantAvg: 4.5, wantCount: 2},
		{name: "single rating", movieID: 2, wantAvg: 1.0, wantCount: 1},
		{name: "no reviews means zero average", movieID: 3, wantAvg: 0.0, wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			avg, count, err := repo.GetMovieReviewStats(ctx, tt.movieID)

			require.NoError(t, err)
			assert.InDelta(t, tt.wantAvg, avg, 1e-9)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}
