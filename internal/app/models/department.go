package models

// Department groups employees and is optionally part of a yearly offer.
type Department struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	FacultyName string `json:"facultyName"`
	OfferID     *int64 `json:"offerId,omitempty"`
}

// Role is a job role employees and courses can be bound to.
type Role struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
