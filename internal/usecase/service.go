package usecase

import (
	"github.com/Thanchanok1900/FinalWorkshopAjRoyle/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Movie  MovieService
	Review ReviewService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Movie:  NewMovieService(repo, log),
		Review: NewReviewService(repo, log),
	}
}
