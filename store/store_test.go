package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"playhub/models"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestUserUpdateClauses(t *testing.T) {
	fields, args := userUpdateClauses(models.UserUpdate{
		Username:  strPtr("neo"),
		AvatarURL: strPtr("https://example.com/a.png"),
	})

	assert.Equal(t, []string{"username = ?", "avatar_url = ?"}, fields)
	assert.Equal(t, []any{"neo", "https://example.com/a.png"}, args)
}

func TestUserUpdateClausesEmpty(t *testing.T) {
	fields, args := userUpdateClauses(models.UserUpdate{})
	assert.Empty(t, fields)
	assert.Empty(t, args)
	assert.True(t, models.UserUpdate{}.Empty())
}

func TestUserUpdateClausesAllFields(t *testing.T) {
	fields, args := userUpdateClauses(models.UserUpdate{
		Username:    strPtr("neo"),
		Email:       strPtr("neo@matrix.io"),
		DisplayName: strPtr("The One"),
		AvatarURL:   strPtr("https://example.com/a.png"),
	})

	assert.Equal(t, []string{"username = ?", "email = ?", "display_name = ?", "avatar_url = ?"}, fields)
	assert.Len(t, args, 4)
}

func TestStatsUpdateClauses(t *testing.T) {
	fields, args := statsUpdateClauses(models.StatsUpdate{
		Wins:           intPtr(5),
		TournamentsWon: intPtr(1),
	})

	assert.Equal(t, []string{"wins = ?", "tournaments_won = ?"}, fields)
	assert.Equal(t, []any{5, 1}, args)
}

func TestStatsUpdateClausesZeroValueIsSet(t *testing.T) {
	// A pointer to zero is an explicit reset, not an omitted field.
	fields, args := statsUpdateClauses(models.StatsUpdate{Losses: intPtr(0)})
	assert.Equal(t, []string{"losses = ?"}, fields)
	assert.Equal(t, []any{0}, args)
}
