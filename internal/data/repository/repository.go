package repository

import (
	"errors"

	"go.uber.org/zap"
)

// ErrRecordNotFound is returned by store mutations that target an id
// with no matching record.
var ErrRecordNotFound = errors.New("record not found")

type Repository struct {
	Movie  MovieRepository
	Review ReviewRepository
}

func NewRepository(log *zap.Logger) *Repository {
	return &Repository{
		Movie:  NewMovieRepository(log),
		Review: NewReviewRepository(log),
	}
}
