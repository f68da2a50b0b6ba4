package wire

import (
	"github.com/Thanchanok1900/FinalWorkshopAjRoyle/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	// GET /movies/{id}/reviews - list reviews for a movie
	r.Get("/movies/{id}/reviews", reviewHandler.GetMovieReviews)

	// POST /movies/{id}/reviews - create review, the movie must exist
	r.Post("/movies/{id}/reviews", reviewHandler.CreateReview)

	// GET /movies/{id}/average-rating - mean rating, 0.0 without reviews
	r.Get("/movies/{id}/average-rating", reviewHandler.GetAverageRating)

	// DELETE /reviews/{id} - delete a single review
	r.Delete("/reviews/{id}", reviewHandler.DeleteReview)
}
