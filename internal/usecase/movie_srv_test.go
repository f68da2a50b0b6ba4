package usecase_test

import (
	"context"
	"testing"

	"github.com/Thanchanok1900/FinalWorkshopAjRoyle/internal/data/repository"
	"github.com/Thanchanok1900/FinalWorkshopAjRoyle/internal/dto/request"
	"github.com/Thanchanok1900/FinalWorkshopAjRoyle/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServices(t *testing.T) *usecase.Service {
	t.Helper()
	repo := repository.NewRepository(zap.NewNop())
	return usecase.NewService(repo, zap.NewNop())
}

func TestMovieService_CreateMovie(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	t.Run("should return the created record with its assigned id", func(t *testing.T) {
		created, err := svc.Movie.CreateMovie(ctx, &request.MovieRequest{
			Title:       "Inception",
			Director:    "Christopher Nolan",
			ReleaseYear: 2010,
		})

		require.NoError(t, err)
		assert.Equal(t, 1, created.ID)
		assert.Equal(t, "Inception", created.Title)
		assert.Equal(t, "Christopher Nolan", created.Director)
		assert.Equal(t, 2010, created.ReleaseYear)
	})

	t.Run("should assign strictly increasing ids", func(t *testing.T) {
		second, err := svc.Movie.CreateMovie(ctx, &request.MovieRequest{
			Title:       "Heat",
			Director:    "Michael Mann",
			ReleaseYear: 1995,
		})

		require.NoError(t, err)
		assert.Equal(t, 2, second.ID)
	})
}

func TestMovieService_GetMovieByID(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	created, err := svc.Movie.CreateMovie(ctx, &request.MovieRequest{
		Title:       "Inception",
		Director:    "Christopher Nolan",
		ReleaseYear: 2010,
	})
	require.NoError(t, err)

	t.Run("should return an identical record after create", func(t *testing.T) {
		got, err := svc.Movie.GetMovieByID(ctx, "1")

		require.NoError(t, err)
		assert.Equal(t, created, got)
	})

	t.Run("should reject a non-integer id", func(t *testing.T) {
		_, err := svc.Movie.GetMovieByID(ctx, "abc")

		assert.ErrorIs(t, err, usecase.ErrInvalidMovieID)
	})

	t.Run("should report an unknown id as not found", func(t *testing.T) {
		_, err := svc.Movie.GetMovieByID(ctx, "99")

		assert.ErrorIs(t, err, usecase.ErrMovieNotFound)
	})
}

func TestMovieService_GetMovies(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	t.Run("should return an empty list when no movies exist", func(t *testing.T) {
		movies, err := svc.Movie.GetMovies(ctx)

		require.NoError(t, err)
		require.NotNil(t, movies)
		assert.Len(t, movies, 0)
	})

	t.Run("should augment each movie with its average rating", func(t *testing.T) {
		_, err := svc.Movie.CreateMovie(ctx, &request.MovieRequest{
			Title: "Inception", Director: "Christopher Nolan", ReleaseYear: 2010,
		})
		require.NoError(t, err)
		_, err = svc.Movie.CreateMovie(ctx, &request.MovieRequest{
			Title: "Heat", Director: "Michael Mann", ReleaseYear: 1995,
		})
		require.NoError(t, err)

		for _, rating := range []int{5, 4} {
			_, err := svc.Review.CreateReview(ctx, "1", &request.ReviewRequest{
				ReviewerName: "alice",
				Rating:       rating,
				Comment:      "watched twice",
			})
			require.NoError(t, err)
		}

		movies, err := svc.Movie.GetMovies(ctx)

		require.NoError(t, err)
		require.Len(t, movies, 2)
		assert.Equal(t, "Inception", movies[0].Title)
		assert.InDelta(t, 4.5, movies[0].AverageRating, 0.0001)
		assert.Equal(t, "Heat", movies[1].Title)
		assert.InDelta(t, 0.0, movies[1].AverageRating, 0.0001)
	})
}

func TestMovieService_SearchMovies(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	seed := []request.MovieRequest{
		{Title: "Inception", Director: "Christopher Nolan", ReleaseYear: 2010},
		{Title: "Interstellar", Director: "Christopher Nolan", ReleaseYear: 2014},
		{Title: "Heat", Director: "Michael Mann", ReleaseYear: 1995},
	}
	for i := range seed {
		_, err := svc.Movie.CreateMovie(ctx, &seed[i])
		require.NoError(t, err)
	}

	t.Run("should match the director case-insensitively", func(t *testing.T) {
		movies, err := svc.Movie.SearchMovies(ctx, "nolan")

		require.NoError(t, err)
		require.Len(t, movies, 2)
		assert.Equal(t, "Inception", movies[0].Title)
		assert.Equal(t, "Interstellar", movies[1].Title)
	})

	t.Run("should match the title", func(t *testing.T) {
		movies, err := svc.Movie.SearchMovies(ctx, "heat")

		require.NoError(t, err)
		require.Len(t, movies, 1)
		assert.Equal(t, "Michael Mann", movies[0].Director)
	})

	t.Run("should return an empty list when nothing matches", func(t *testing.T) {
		movies, err := svc.Movie.SearchMovies(ctx, "tarkovsky")

		require.NoError(t, err)
		require.NotNil(t, movies)
		assert.Len(t, movies, 0)
	})
}

func TestMovieService_UpdateMovie(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	_, err := svc.Movie.CreateMovie(ctx, &request.MovieRequest{
		Title:       "Inception",
		Director:    "Christopher Nolan",
		ReleaseYear: 2010,
	})
	require.NoError(t, err)

	t.Run("should replace every field and keep the id", func(t *testing.T) {
		updated, err := svc.Movie.UpdateMovie(ctx, "1", &request.MovieRequest{
			Title:       "Tenet",
			Director:    "Christopher Nolan",
			ReleaseYear: 2020,
		})

		require.NoError(t, err)
		assert.Equal(t, 1, updated.ID)
		assert.Equal(t, "Tenet", updated.Title)
		assert.Equal(t, 2020, updated.ReleaseYear)

		got, err := svc.Movie.GetMovieByID(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, updated, got)
	})

	t.Run("should reject a non-integer id", func(t *testing.T) {
		_, err := svc.Movie.UpdateMovie(ctx, "one", &request.MovieRequest{Title: "x"})

		assert.ErrorIs(t, err, usecase.ErrInvalidMovieID)
	})

	t.Run("should report an unknown id as not found", func(t *testing.T) {
		_, err := svc.Movie.UpdateMovie(ctx, "99", &request.MovieRequest{Title: "x"})

		assert.ErrorIs(t, err, usecase.ErrMovieNotFound)
	})
}

func TestMovieService_DeleteMovie(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	_, err := svc.Movie.CreateMovie(ctx, &request.MovieRequest{
		Title:       "Inception",
		Director:    "Christopher Nolan",
		ReleaseYear: 2010,
	})
	require.NoError(t, err)

	t.Run("should delete a movie exactly once", func(t *testing.T) {
		require.NoError(t, svc.Movie.DeleteMovie(ctx, "1"))

		_, err := svc.Movie.GetMovieByID(ctx, "1")
		assert.ErrorIs(t, err, usecase.ErrMovieNotFound)

		err = svc.Movie.DeleteMovie(ctx, "1")
		assert.ErrorIs(t, err, usecase.ErrMovieNotFound)
	})

	t.Run("should reject a non-integer id", func(t *testing.T) {
		err := svc.Movie.DeleteMovie(ctx, "abc")

		assert.ErrorIs(t, err, usecase.ErrInvalidMovieID)
	})

	t.Run("should leave reviews of the deleted movie in place", func(t *testing.T) {
		created, err := svc.Movie.CreateMovie(ctx, &request.MovieRequest{
			Title: "Heat", Director: "Michael Mann", ReleaseYear: 1995,
		})
		require.NoError(t, err)

		_, err = svc.Review.CreateReview(ctx, "2", &request.ReviewRequest{
			ReviewerName: "bob", Rating: 5, Comment: "the diner scene",
		})
		require.NoError(t, err)

		require.NoError(t, svc.Movie.DeleteMovie(ctx, "2"))

		reviews, err := svc.Review.GetMovieReviews(ctx, "2")
		require.NoError(t, err)
		require.Len(t, reviews, 1)
		assert.Equal(t, created.ID, reviews[0].MovieID)
	})
}
