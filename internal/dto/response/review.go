package response

import (
	"github.com/Thanchanok1900/FinalWorkshopAjRoyle/internal/data/entity"
)

type ReviewResponse struct {
	ID           int    `json:"id"`
	MovieID      int    `json:"movieId"`
	ReviewerName string `json:"reviewerName"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
}

// Helper converter
func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:           review.ID,
		MovieID:      review.MovieID,
		ReviewerName: review.ReviewerName,
		Rating:       review.Rating,
		Comment:      review.Comment,
	}
}
