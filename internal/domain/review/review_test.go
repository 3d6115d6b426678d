package review

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReview(t *testing.T) {
	tests := []struct {
		name     string
		ticketID uint
		rating   int
		headline string
		body     string
		ownerID  uint
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "valid review",
			ticketID: 1,
			rating:   4,
			headline: "Solid work",
			body:     "The approach holds up under load.",
			ownerID:  2,
			wantErr:  false,
		},
		{
			name:     "valid review with empty body",
			ticketID: 1,
			rating:   0,
			headline: "Needs rework",
			body:     "",
			ownerID:  2,
			wantErr:  false,
		},
		{
			name:     "valid review at max rating",
			ticketID: 1,
			rating:   5,
			headline: "Excellent",
			ownerID:  2,
			wantErr:  false,
		},
		{
			name:     "zero ticket ID",
			ticketID: 0,
			rating:   3,
			headline: "Fine",
			ownerID:  2,
			wantErr:  true,
			errMsg:   "ticket ID is required",
		},
		{
			name:     "rating below minimum",
			ticketID: 1,
			rating:   -1,
			headline: "Fine",
			ownerID:  2,
			wantErr:  true,
			errMsg:   "rating must be between 0 and 5",
		},
		{
			name:     "rating above maximum",
			ticketID: 1,
			rating:   6,
			headline: "Fine",
			ownerID:  2,
			wantErr:  true,
			errMsg:   "rating must be between 0 and 5",
		},
		{
			name:     "empty headline",
			ticketID: 1,
			rating:   3,
			headline: "",
			ownerID:  2,
			wantErr:  true,
			errMsg:   "headline is required",
		},
		{
			name:     "headline too long",
			ticketID: 1,
			rating:   3,
			headline: strings.Repeat("h", MaxHeadlineLength+1),
			ownerID:  2,
			wantErr:  true,
			errMsg:   "headline exceeds maximum length",
		},
		{
			name:     "headline at max length",
			ticketID: 1,
			rating:   3,
			headline: strings.Repeat("h", MaxHeadlineLength),
			ownerID:  2,
			wantErr:  false,
		},
		{
			name:     "body too long",
			ticketID: 1,
			rating:   3,
			headline: "Fine",
			body:     strings.Repeat("b", MaxBodyLength+1),
			ownerID:  2,
			wantErr:  true,
			errMsg:   "body exceeds maximum length",
		},
		{
			name:     "zero owner ID",
			ticketID: 1,
			rating:   3,
			headline: "Fine",
			ownerID:  0,
			wantErr:  true,
			errMsg:   "owner ID is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReview(tt.ticketID, tt.rating, tt.headline, tt.body, tt.ownerID)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, r)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, r)
			assert.Equal(t, uint(0), r.ID())
			assert.Equal(t, tt.ticketID, r.TicketID())
			assert.Equal(t, tt.rating, r.Rating())
			assert.Equal(t, tt.headline, r.Headline())
			assert.Equal(t, tt.body, r.Body())
			assert.Equal(t, tt.ownerID, r.OwnerID())
			assert.False(t, r.CreatedAt().IsZero())
			assert.Equal(t, r.CreatedAt(), r.UpdatedAt())
		})
	}
}

func TestReview_SetID(t *testing.T) {
	r, err := NewReview(1, 4, "Solid", "", 2)
	require.NoError(t, err)

	err = r.SetID(10)
	require.NoError(t, err)
	assert.Equal(t, uint(10), r.ID())

	err = r.SetID(11)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already set")
	assert.Equal(t, uint(10), r.ID())

	r2, err := NewReview(1, 4, "Solid", "", 2)
	require.NoError(t, err)
	err = r2.SetID(0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be zero")
}

func TestReview_IsOwnedBy(t *testing.T) {
	r, err := NewReview(1, 4, "Solid", "", 7)
	require.NoError(t, err)

	assert.True(t, r.IsOwnedBy(7))
	assert.False(t, r.IsOwnedBy(8))
}

func TestReview_UpdateRating(t *testing.T) {
	tests := []struct {
		name    string
		rating  int
		wantErr bool
	}{
		{name: "valid minimum", rating: 0, wantErr: false},
		{name: "valid maximum", rating: 5, wantErr: false},
		{name: "below minimum", rating: -1, wantErr: true},
		{name: "above maximum", rating: 6, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReview(1, 3, "Fine", "", 2)
			require.NoError(t, err)

			err = r.UpdateRating(tt.rating)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, 3, r.Rating())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.rating, r.Rating())
		})
	}
}

func TestReview_UpdateHeadline(t *testing.T) {
	r, err := NewReview(1, 3, "Fine", "", 2)
	require.NoError(t, err)

	err = r.UpdateHeadline("Better headline")
	require.NoError(t, err)
	assert.Equal(t, "Better headline", r.Headline())

	err = r.UpdateHeadline("")
	require.Error(t, err)
	assert.Equal(t, "Better headline", r.Headline())

	err = r.UpdateHeadline(strings.Repeat("h", MaxHeadlineLength+1))
	require.Error(t, err)
	assert.Equal(t, "Better headline", r.Headline())
}

func TestReview_UpdateBody(t *testing.T) {
	r, err := NewReview(1, 3, "Fine", "original", 2)
	require.NoError(t, err)

	err = r.UpdateBody("updated body")
	require.NoError(t, err)
	assert.Equal(t, "updated body", r.Body())

	err = r.UpdateBody("")
	require.NoError(t, err)
	assert.Equal(t, "", r.Body())

	err = r.UpdateBody(strings.Repeat("b", MaxBodyLength+1))
	require.Error(t, err)
	assert.Equal(t, "", r.Body())
}

func TestReconstructReview(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)

	r, err := ReconstructReview(5, 1, 4, "Solid", "body text", 2, createdAt, updatedAt)
	require.NoError(t, err)
	assert.Equal(t, uint(5), r.ID())
	assert.Equal(t, uint(1), r.TicketID())
	assert.Equal(t, 4, r.Rating())
	assert.Equal(t, "Solid", r.Headline())
	assert.Equal(t, "body text", r.Body())
	assert.Equal(t, uint(2), r.OwnerID())
	assert.Equal(t, createdAt, r.CreatedAt())
	assert.Equal(t, updatedAt, r.UpdatedAt())

	_, err = ReconstructReview(0, 1, 4, "Solid", "", 2, createdAt, updatedAt)
	require.Error(t, err)

	_, err = ReconstructReview(5, 0, 4, "Solid", "", 2, createdAt, updatedAt)
	require.Error(t, err)

	_, err = ReconstructReview(5, 1, 4, "Solid", "", 0, createdAt, updatedAt)
	require.Error(t, err)
}
