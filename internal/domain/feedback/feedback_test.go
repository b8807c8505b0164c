package feedback

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFeedback(t *testing.T) {
	f, err := NewFeedback(10, 2, 4, "  handled quickly  ")
	require.NoError(t, err)

	assert.Equal(t, uint(0), f.ID())
	assert.Equal(t, uint(10), f.ComplaintID())
	assert.Equal(t, uint(2), f.UserID())
	assert.Equal(t, 4, f.Rating())
	assert.Equal(t, "handled quickly", f.Comment())
	assert.False(t, f.CreatedAt().IsZero())
}

func TestNewFeedback_RatingBounds(t *testing.T) {
	for _, rating := range []int{1, 2, 3, 4, 5} {
		_, err := NewFeedback(10, 2, rating, "")
		assert.NoError(t, err, "rating %d must be accepted", rating)
	}

	for _, rating := range []int{0, 6, -1, 100} {
		_, err := NewFeedback(10, 2, rating, "")
		assert.Error(t, err, "rating %d must be rejected", rating)
	}
}

func TestNewFeedback_Validation(t *testing.T) {
	_, err := NewFeedback(0, 2, 3, "")
	assert.Error(t, err)

	_, err = NewFeedback(10, 0, 3, "")
	assert.Error(t, err)

	_, err = NewFeedback(10, 2, 3, strings.Repeat("a", 2001))
	assert.Error(t, err)
}

func TestReconstructFeedback(t *testing.T) {
	now := time.Now().UTC()

	f, err := ReconstructFeedback(7, 10, 2, 5, "great", now)
	require.NoError(t, err)
	assert.Equal(t, uint(7), f.ID())
	assert.Equal(t, 5, f.Rating())

	_, err = ReconstructFeedback(0, 10, 2, 5, "", now)
	assert.Error(t, err)

	_, err = ReconstructFeedback(7, 10, 2, 6, "", now)
	assert.Error(t, err)
}

func TestFeedback_SetID(t *testing.T) {
	f, err := NewFeedback(10, 2, 3, "")
	require.NoError(t, err)

	require.NoError(t, f.SetID(1))
	assert.Error(t, f.SetID(2))
	assert.Equal(t, uint(1), f.ID())
}
