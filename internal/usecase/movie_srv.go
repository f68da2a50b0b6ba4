package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Thanchanok1900/FinalWorkshopAjRoyle/internal/data/entity"
	"github.com/Thanchanok1900/FinalWorkshopAjRoyle/internal/data/repository"
	"github.com/Thanchanok1900/FinalWorkshopAjRoyle/internal/dto/request"
	"github.com/Thanchanok1900/FinalWorkshopAjRoyle/internal/dto/response"

	"go.uber.org/zap"
)

var (
	ErrInvalidMovieID = errors.New("invalid movie id")
	ErrMovieNotFound  = errors.New("movie not found")
)

type MovieService interface {
	GetMovies(ctx context.Context) ([]response.MovieWithRatingResponse, error)
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error)
	SearchMovies(ctx context.Context, query string) ([]response.MovieResponse, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID string, req *request.MovieRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID string) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(
	repo *repository.Repository,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context) ([]response.MovieWithRatingResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get movies", zap.Error(err))
		return nil, fmt.Errorf("get movies: %w", err)
	}

	// Augment each movie with its computed average rating. The stored
	// records themselves are never mutated.
	movieResponses := make([]response.MovieWithRatingResponse, len(movies))
	for i, movie := range movies {
		avgRating, _, err := s.repo.Review.GetMovieReviewStats(ctx, movie.ID)
		if err != nil {
			s.log.Warn("Failed to get review stats for movie",
				zap.Error(err),
				zap.Int("movie_id", movie.ID),
			)
			avgRating = 0.0
		}

		movieResponses[i] = response.MovieToResponseWithRating(movie, avgRating)
	}

	s.log.Info("Movies retrieved", zap.Int("count", len(movieResponses)))

	return movieResponses, nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	id, err := strconv.Atoi(movieID)
	if err != nil {
		s.log.Warn("Invalid movie ID format",
			zap.String("movie_id", movieID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %s", ErrInvalidMovieID, movieID)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get movie by ID",
			zap.Error(err),
			zap.Int("movie_id", id),
		)
		return nil, fmt.Errorf("get movie by id: %w", err)
	}

	if movie == nil {
		return nil, ErrMovieNotFound
	}

	s.log.Info("Movie retrieved",
		zap.Int("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

func (s *movieService) SearchMovies(ctx context.Context, query string) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.Search(ctx, query)
	if err != nil {
		s.log.Error("Failed to search movies",
			zap.Error(err),
			zap.String("query", query),
		)
		return nil, fmt.Errorf("search movies: %w", err)
	}

	movieResponses := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		movieResponses[i] = response.MovieToResponse(movie)
	}

	s.log.Info("Movies searched",
		zap.String("query", query),
		zap.Int("count", len(movieResponses)),
	)

	return movieResponses, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	movie := &entity.Movie{
		Title:       req.Title,
		Director:    req.Director,
		ReleaseYear: req.ReleaseYear,
	}

	// Save movie; the repository assigns the id
	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", req.Title),
		)
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.Int("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID string, req *request.MovieRequest) (*response.MovieResponse, error) {
	id, err := strconv.Atoi(movieID)
	if err != nil {
		s.log.Warn("Invalid movie ID format",
			zap.String("movie_id", movieID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %s", ErrInvalidMovieID, movieID)
	}

	// Wholesale replacement: every field comes from the request, only the
	// id survives.
	movie := &entity.Movie{
		ID:          id,
		Title:       req.Title,
		Director:    req.Director,
		ReleaseYear: req.ReleaseYear,
	}

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		s.log.Error("Failed to update movie",
			zap.Error(err),
			zap.Int("movie_id", id),
		)
		return nil, fmt.Errorf("update movie: %w", err)
	}

	s.log.Info("Movie updated",
		zap.Int("movie_id", id),
		zap.String("title", movie.Title),
	)

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID string) error {
	id, err := strconv.Atoi(movieID)
	if err != nil {
		s.log.Warn("Invalid movie ID format",
			zap.String("movie_id", movieID),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %s", ErrInvalidMovieID, movieID)
	}

	// Reviews referencing the deleted movie are left in place.
	if err := s.repo.Movie.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return ErrMovieNotFound
		}
		s.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.Int("movie_id", id),
		)
		return fmt.Errorf("delete movie: %w", err)
	}

	s.log.Info("Movie deleted", zap.Int("movie_id", id))

	return nil
}
