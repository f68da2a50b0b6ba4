package entity

// Review is a rating with an optional comment attached to a movie.
// Review IDs run on their own sequence, independent of movie IDs.
// MovieID is only checked against an existing movie at creation time;
// deleting a movie leaves its reviews in place.
type Review struct {
	ID           int
	MovieID      int
	ReviewerName string
	Rating       int // 1-5
	Comment      string
}
