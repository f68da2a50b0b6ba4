package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/Thanchanok1900/FinalWorkshopAjRoyle/internal/data/entity"

	"go.uber.org/zap"
)

type MovieRepository interface {
	// Create assigns the next sequential id to the movie and stores it.
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id int) (*entity.Movie, error)
	FindAll(ctx context.Context) ([]*entity.Movie, error)
	Search(ctx context.Context, query string) ([]*entity.Movie, error)
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id int) error
}

// movieRepository keeps its records in process memory. A single RWMutex
// serializes writers, so id assignment and append form one critical
// section and ids stay unique under concurrent requests. The counter is
// monotonic: deleting a movie never frees its id.
type movieRepository struct {
	mu     sync.RWMutex
	movies []*entity.Movie
	nextID int
	log    *zap.Logger
}

func NewMovieRepository(log *zap.Logger) MovieRepository {
	return &movieRepository{
		nextID: 1,
		log:    log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Create(_ context.Context, movie *entity.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	movie.ID = r.nextID
	r.nextID++

	// Store an own copy so later caller-side mutation cannot reach in.
	stored := *movie
	r.movies = append(r.movies, &stored)

	r.log.Debug("Movie stored",
		zap.Int("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	return nil
}

func (r *movieRepository) FindByID(_ context.Context, id int) (*entity.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.movies {
		if m.ID == id {
			found := *m
			return &found, nil
		}
	}

	return nil, nil
}

func (r *movieRepository) FindAll(_ context.Context) ([]*entity.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movies := make([]*entity.Movie, len(r.movies))
	for i, m := range r.movies {
		found := *m
		movies[i] = &found
	}

	return movies, nil
}

// Search matches the query case-insensitively as a substring of the
// title or the director, in insertion order.
func (r *movieRepository) Search(_ context.Context, query string) ([]*entity.Movie, error) {
	q := strings.ToLower(query)

	r.mu.RLock()
	defer r.mu.RUnlock()

	movies := make([]*entity.Movie, 0)
	for _, m := range r.movies {
		if strings.Contains(strings.ToLower(m.Title), q) ||
			strings.Contains(strings.ToLower(m.Director), q) {
			found := *m
			movies = append(movies, &found)
		}
	}

	return movies, nil
}

// Update replaces every field of the stored record except the id.
func (r *movieRepository) Update(_ context.Context, movie *entity.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.movies {
		if m.ID == movie.ID {
			m.Title = movie.Title
			m.Director = movie.Director
			m.ReleaseYear = movie.ReleaseYear
			return nil
		}
	}

	return ErrRecordNotFound
}

func (r *movieRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, m := range r.movies {
		if m.ID == id {
			r.movies = append(r.movies[:i], r.movies[i+1:]...)
			r.log.Debug("Movie removed", zap.Int("movie_id", id))
			return nil
		}
	}

	return ErrRecordNotFound
}
