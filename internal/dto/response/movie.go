package response

import (
	"github.com/Thanchanok1900/FinalWorkshopAjRoyle/internal/data/entity"
)

// MovieResponse is the bare movie wire shape used by the single-movie
// endpoints and by search results.
type MovieResponse struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Director    string `json:"director"`
	ReleaseYear int    `json:"releaseYear"`
}

// MovieWithRatingResponse is the GET /movies list item: the movie plus
// its computed average rating. The rating lives only in the response;
// stored movie records are never mutated by it.
type MovieWithRatingResponse struct {
	MovieResponse
	AverageRating float64 `json:"averageRating"`
}

// AverageRatingResponse is the body of GET /movies/{id}/average-rating.
type AverageRatingResponse struct {
	AverageRating float64 `json:"averageRating"`
}

// Helper converters
func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Director:    movie.Director,
		ReleaseYear: movie.ReleaseYear,
	}
}

func MovieToResponseWithRating(movie *entity.Movie, averageRating float64) MovieWithRatingResponse {
	return MovieWithRatingResponse{
		MovieResponse: MovieToResponse(movie),
		AverageRating: averageRating,
	}
}
