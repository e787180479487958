package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugFromTitle(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Carol of the Bells - Mega Tree", "carol-of-the-bells-mega-tree"},
		{"  Thunderstruck!!  ", "thunderstruck"},
		{"Wizards In Winter (2024)", "wizards-in-winter-2024"},
	}

	for _, tt := range tests {
		s, err := SlugFromTitle(tt.title)
		require.NoError(t, err, tt.title)
		assert.Equal(t, tt.want, s.String())
	}
}

func TestSlugFromTitleRejectsEmpty(t *testing.T) {
	_, err := SlugFromTitle("!!!")
	assert.Error(t, err)
}

func TestNewSlug(t *testing.T) {
	_, err := NewSlug("valid-slug-123")
	assert.NoError(t, err)

	_, err = NewSlug("No Uppercase")
	assert.Error(t, err)

	_, err = NewSlug("")
	assert.Error(t, err)
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, StatusDraft.CanTransitionTo(StatusPending))
	assert.True(t, StatusPending.CanTransitionTo(StatusApproved))
	assert.True(t, StatusPending.CanTransitionTo(StatusRejected))
	assert.True(t, StatusRejected.CanTransitionTo(StatusPending))
	assert.True(t, StatusApproved.CanTransitionTo(StatusArchived))

	assert.False(t, StatusDraft.CanTransitionTo(StatusApproved))
	assert.False(t, StatusArchived.CanTransitionTo(StatusPending))
	assert.False(t, StatusApproved.CanTransitionTo(StatusPending))
}
