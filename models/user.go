package models

import (
	"database/sql"
	"time"
)

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	DisplayName  string    `json:"display_name"`
	AvatarURL    string    `json:"avatar_url"`
	IsActive     bool      `json:"is_active"`
	IsVerified   bool      `json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UserStats struct {
	ID                int64 `json:"id"`
	UserID            int64 `json:"user_id"`
	Wins              int   `json:"wins"`
	Losses            int   `json:"losses"`
	TournamentsPlayed int   `json:"tournaments_played"`
	TournamentsWon    int   `json:"tournaments_won"`
}

// UserResponse is the public shape of a user. The password hash never
// leaves the store layer.
type UserResponse struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url"`
	IsActive    bool      `json:"is_active"`
	IsVerified  bool      `json:"is_verified"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Profile is a user merged with their stats row.
type Profile struct {
	UserResponse
	Stats *UserStats `json:"stats,omitempty"`
}

// SearchResult is the trimmed-down shape returned by user search.
type SearchResult struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
		IsActive:    u.IsActive,
		IsVerified:  u.IsVerified,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// UserUpdate carries the fields of a partial profile update. Nil means
// "leave unchanged".
type UserUpdate struct {
	Username    *string
	Email       *string
	DisplayName *string
	AvatarURL   *string
}

func (u UserUpdate) Empty() bool {
	return u.Username == nil && u.Email == nil && u.DisplayName == nil && u.AvatarURL == nil
}

// StatsUpdate carries the fields of a partial stats update.
type StatsUpdate struct {
	Wins              *int
	Losses            *int
	TournamentsPlayed *int
	TournamentsWon    *int
}

func (s StatsUpdate) Empty() bool {
	return s.Wins == nil && s.Losses == nil && s.TournamentsPlayed == nil && s.TournamentsWon == nil
}

// NullableString maps empty strings to SQL NULL for optional columns.
func NullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
