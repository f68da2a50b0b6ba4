package wire

import (
	"github.com/Thanchanok1900/FinalWorkshopAjRoyle/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	// GET /movies - list all movies with their average rating
	r.Get("/movies", movieHandler.GetMovies)

	// GET /movies/search - substring search over title and director
	// (registered alongside /movies/{id}; chi matches the static
	// segment first)
	r.Get("/movies/search", movieHandler.SearchMovies)

	// GET /movies/{id} - movie details
	r.Get("/movies/{id}", movieHandler.GetMovieByID)

	// POST /movies - create movie
	r.Post("/movies", movieHandler.CreateMovie)

	// PUT /movies/{id} - replace all movie fields, keeping the id
	r.Put("/movies/{id}", movieHandler.UpdateMovie)

	// DELETE /movies/{id} - delete movie, reviews are not cascaded
	r.Delete("/movies/{id}", movieHandler.DeleteMovie)
}
