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
	"github.com/Thanchanok1900/FinalWorkshopAjRoyle/pkg/utils"

	"go.uber.org/zap"
)

var (
	ErrInvalidReviewID = errors.New("invalid review id")
	ErrReviewNotFound  = errors.New("review not found")
	ErrValidation      = errors.New("validation failed")
)

type ReviewService interface {
	GetMovieReviews(ctx context.Context, movieID string) ([]response.ReviewResponse, error)
	CreateReview(ctx context.Context, movieID string, req *request.ReviewRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, reviewID string) error
	GetMovieReviewStats(ctx context.Context, movieID string) (*response.AverageRatingResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) GetMovieReviews(ctx context.Context, movieID string) ([]response.ReviewResponse, error) {
	id, err := strconv.Atoi(movieID)
	if err != nil {
		s.log.Warn("Invalid movie ID format",
			zap.String("movie_id", movieID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %s", ErrInvalidMovieID, movieID)
	}

	// No existence check on the movie: an unknown id and a movie without
	// reviews both yield an empty list.
	reviews, err := s.repo.Review.FindByMovieID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get movie reviews",
			zap.Error(err),
			zap.Int("movie_id", id),
		)
		return nil, fmt.Errorf("get movie reviews: %w", err)
	}

	reviewResponses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		reviewResponses[i] = response.ReviewToResponse(review)
	}

	s.log.Info("Movie reviews retrieved",
		zap.Int("movie_id", id),
		zap.Int("count", len(reviewResponses)),
	)

	return reviewResponses, nil
}

func (s *reviewService) CreateReview(ctx context.Context, movieID string, req *request.ReviewRequest) (*response.ReviewResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	id, err := strconv.Atoi(movieID)
	if err != nil {
		s.log.Warn("Invalid movie ID format",
			zap.String("movie_id", movieID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %s", ErrInvalidMovieID, movieID)
	}

	// Check if movie exists
	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to check movie existence",
			zap.Error(err),
			zap.Int("movie_id", id),
		)
		return nil, fmt.Errorf("check movie: %w", err)
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	review := &entity.Review{
		MovieID:      id,
		ReviewerName: req.ReviewerName,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}

	// Save review; the repository assigns the id
	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.Int("movie_id", id),
		)
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.Int("review_id", review.ID),
		zap.Int("movie_id", id),
		zap.Int("rating", review.Rating),
	)

	reviewResp := response.ReviewToResponse(review)
	return &reviewResp, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewID string) error {
	id, err := strconv.Atoi(reviewID)
	if err != nil {
		s.log.Warn("Invalid review ID format",
			zap.String("review_id", reviewID),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %s", ErrInvalidReviewID, reviewID)
	}

	if err := s.repo.Review.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		s.log.Error("Failed to delete review",
			zap.Error(err),
			zap.Int("review_id", id),
		)
		return fmt.Errorf("delete review: %w", err)
	}

	s.log.Info("Review deleted", zap.Int("review_id", id))

	return nil
}

func (s *reviewService) GetMovieReviewStats(ctx context.Context, movieID string) (*response.AverageRatingResponse, error) {
	id, err := strconv.Atoi(movieID)
	if err != nil {
		s.log.Warn("Invalid movie ID format",
			zap.String("movie_id", movieID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %s", ErrInvalidMovieID, movieID)
	}

	// A movie with no reviews averages 0.0; there is no not-found case.
	avgRating, reviewCount, err := s.repo.Review.GetMovieReviewStats(ctx, id)
	if err != nil {
		s.log.Error("Failed to get movie review stats",
			zap.Error(err),
			zap.Int("movie_id", id),
		)
		return nil, fmt.Errorf("get movie review stats: %w", err)
	}

	s.log.Info("Movie review stats retrieved",
		zap.Int("movie_id", id),
		zap.Float64("avg_rating", avgRating),
		zap.Int64("review_count", reviewCount),
	)

	return &response.AverageRatingResponse{AverageRating: avgRating}, nil
}
