package request

// ReviewRequest is the body of POST /movies/{id}/reviews. The rating is
// the only validated field: anything outside 1..5 is rejected before
// the review reaches the store.
type ReviewRequest struct {
	ReviewerName string `json:"reviewerName"`
	Rating       int    `json:"rating" validate:"min=1,max=5"`
	Comment      string `json:"comment"`
}
