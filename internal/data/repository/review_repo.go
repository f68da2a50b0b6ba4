package repository

import (
	"context"
	"sync"

	"github.com/Thanchanok1900/FinalWorkshopAjRoyle/internal/data/entity"

	"go.uber.org/zap"
)

type ReviewRepository interface {
	// Create assigns the next sequential review id and stores the review.
	// The review id sequence is independent of the movie id sequence.
	Create(ctx context.Context, review *entity.Review) error
	FindByMovieID(ctx context.Context, movieID int) ([]*entity.Review, error)
	Delete(ctx context.Context, id int) error

	// GetMovieReviewStats returns the arithmetic-mean rating and the
	// review count for a movie; the average is 0.0 when no reviews exist.
	GetMovieReviewStats(ctx context.Context, movieID int) (float64, int64, error)
}

// reviewRepository stores reviews in process memory under one RWMutex,
// mirroring the movie store's write-serialization policy. It performs
// no validation: rating range and parent-movie existence are checked by
// the callers before a review reaches the store.
type reviewRepository struct {
	mu      sync.RWMutex
	reviews []*entity.Review
	nextID  int
	log     *zap.Logger
}

func NewReviewRepository(log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		nextID: 1,
		log:    log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(_ context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	review.ID = r.nextID
	r.nextID++

	stored := *review
	r.reviews = append(r.reviews, &stored)

	r.log.Debug("Review stored",
		zap.Int("review_id", review.ID),
		zap.Int("movie_id", review.MovieID),
		zap.Int("rating", review.Rating),
	)

	return nil
}

// FindByMovieID returns the movie's reviews in insertion order. It does
// not check that the movie exists: an unknown id simply has no reviews.
func (r *reviewRepository) FindByMovieID(_ context.Context, movieID int) ([]*entity.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reviews := make([]*entity.Review, 0)
	for _, rev := range r.reviews {
		if rev.MovieID == movieID {
			found := *rev
			reviews = append(reviews, &found)
		}
	}

	return reviews, nil
}

func (r *reviewRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, rev := range r.reviews {
		if rev.ID == id {
			r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
			r.log.Debug("Review removed", zap.Int("review_id", id))
			return nil
		}
	}

	return ErrRecordNotFound
}

func (r *reviewRepository) GetMovieReviewStats(_ context.Context, movieID int) (float64, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		sum   int
		count int64
	)
	for _, rev := range r.reviews {
		if rev.MovieID == movieID {
			sum += rev.Rating
			count++
		}
	}

	if count == 0 {
		return 0.0, 0, nil
	}

	return float64(sum) / float64(count), count, nil
}
