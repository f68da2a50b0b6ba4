package request

// MovieRequest is the body of POST /movies and PUT /movies/{id}. The
// update replaces the stored record wholesale, so every field is taken
// as sent; none carries field-level validation.
type MovieRequest struct {
	Title       string `json:"title"`
	Director    string `json:"director"`
	ReleaseYear int    `json:"releaseYear"`
}
