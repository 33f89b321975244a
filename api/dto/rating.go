package dto

// RatingAggregate is the on-demand aggregate for one rated user.
// Zero ratings yield an average of 0 and a count of 0.
type RatingAggregate struct {
	Average float64 `json:"avgRating"`
	Count   int     `json:"ratingCount"`
}
