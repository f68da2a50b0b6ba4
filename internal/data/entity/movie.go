package entity

// Movie is a catalog entry. IDs are assigned sequentially by the movie
// repository, starting at 1, and are never reused after deletion.
type Movie struct {
	ID          int
	Title       string
	Director    string
	ReleaseYear int
}
