package feedback

import (
	"fmt"
	"strings"
	"time"
)

const (
	MinRating = 1
	MaxRating = 5

	maxCommentLength = 2000
)

// Feedback represents a user's rating of how a complaint was handled.
type Feedback struct {
	id          uint
	complaintID uint
	userID      uint
	rating      int
	comment     string
	createdAt   time.Time
}

// NewFeedback creates feedback for a complaint. Ratings outside the 1-5
// range are rejected before anything is stored.
func NewFeedback(complaintID, userID uint, rating int, comment string) (*Feedback, error) {
	if complaintID == 0 {
		return nil, fmt.Errorf("complaint ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if rating < MinRating || rating > MaxRating {
		return nil, fmt.Errorf("rating must be between %d and %d, got %d", MinRating, MaxRating, rating)
	}

	comment = strings.TrimSpace(comment)
	if len(comment) > maxCommentLength {
		return nil, fmt.Errorf("comment cannot exceed %d characters", maxCommentLength)
	}

	return &Feedback{
		complaintID: complaintID,
		userID:      userID,
		rating:      rating,
		comment:     comment,
		createdAt:   time.Now().UTC(),
	}, nil
}

// ReconstructFeedback reconstructs feedback from persistence
func ReconstructFeedback(id, complaintID, userID uint, rating int, comment string, createdAt time.Time) (*Feedback, error) {
	if id == 0 {
		return nil, fmt.Errorf("feedback ID cannot be zero")
	}
	if complaintID == 0 {
		return nil, fmt.Errorf("complaint ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if rating < MinRating || rating > MaxRating {
		return nil, fmt.Errorf("rating must be between %d and %d, got %d", MinRating, MaxRating, rating)
	}

	return &Feedback{
		id:          id,
		complaintID: complaintID,
		userID:      userID,
		rating:      rating,
		comment:     comment,
		createdAt:   createdAt,
	}, nil
}

func (f *Feedback) ID() uint {
	return f.id
}

func (f *Feedback) ComplaintID() uint {
	return f.complaintID
}

func (f *Feedback) UserID() uint {
	return f.userID
}

func (f *Feedback) Rating() int {
	return f.rating
}

func (f *Feedback) Comment() string {
	return f.comment
}

func (f *Feedback) CreatedAt() time.Time {
	return f.createdAt
}

func (f *Feedback) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("feedback ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("feedback ID cannot be zero")
	}
	f.id = id
	return nil
}
