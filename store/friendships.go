package store

import (
	"database/sql"

	"playhub/models"
)

const friendshipColumns = "id, requester_id, addressee_id, status, created_at, updated_at"

func scanFriendship(row scanner) (*models.Friendship, error) {
	var f models.Friendship
	err := row.Scan(&f.ID, &f.RequesterID, &f.AddresseeID, &f.Status, &f.CreatedAt, &f.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *mysqlStore) CreateFriendship(requesterID, addresseeID int64) (*models.Friendship, error) {
	result, err := s.db.Exec(
		"INSERT INTO friendships (requester_id, addressee_id) VALUES (?, ?)",
		requesterID, addresseeID,
	)
	if err != nil {
		if isDuplicate(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return s.FriendshipByID(id)
}

func (s *mysqlStore) FriendshipByID(id int64) (*models.Friendship, error) {
	return scanFriendship(s.db.QueryRow("SELECT "+friendshipColumns+" FROM friendships WHERE id = ?", id))
}

// FriendshipBetween finds an edge between two users in either direction.
func (s *mysqlStore) FriendshipBetween(a, b int64) (*models.Friendship, error) {
	return scanFriendship(s.db.QueryRow(
		"SELECT "+friendshipColumns+" FROM friendships WHERE (requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
		a, b, b, a,
	))
}

func (s *mysqlStore) SetFriendshipStatus(id int64, status string) (*models.Friendship, error) {
	result, err := s.db.Exec(
		"UPDATE friendships SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ? AND status = 'pending'",
		status, id,
	)
	if err != nil {
		return nil, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrNotFound
	}
	return s.FriendshipByID(id)
}

// Friends returns every user with an accepted edge to userID, regardless of
// which side initiated it.
func (s *mysqlStore) Friends(userID int64) ([]models.UserResponse, error) {
	rows, err := s.db.Query(`
		SELECT u.id, u.username, u.email, u.display_name, u.avatar_url,
		       u.is_active, u.is_verified, u.created_at, u.updated_at
		FROM users u
		JOIN friendships f ON (
			(f.requester_id = ? AND f.addressee_id = u.id) OR
			(f.addressee_id = ? AND f.requester_id = u.id)
		)
		WHERE f.status = 'accepted'
		ORDER BY u.username
	`, userID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	friends := []models.UserResponse{}
	for rows.Next() {
		var u models.UserResponse
		var displayName, avatarURL sql.NullString
		if err := rows.Scan(
			&u.ID, &u.Username, &u.Email, &displayName, &avatarURL,
			&u.IsActive, &u.IsVerified, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, err
		}
		u.DisplayName = displayName.String
		u.AvatarURL = avatarURL.String
		friends = append(friends, u)
	}
	return friends, rows.Err()
}

func (s *mysqlStore) PendingRequests(userID int64) ([]models.PendingRequest, error) {
	rows, err := s.db.Query(`
		SELECT f.id, f.requester_id, f.addressee_id, f.status, f.created_at, f.updated_at,
		       u.username, u.display_name
		FROM friendships f
		JOIN users u ON u.id = f.requester_id
		WHERE f.addressee_id = ? AND f.status = 'pending'
		ORDER BY f.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []models.PendingRequest{}
	for rows.Next() {
		var p models.PendingRequest
		var displayName sql.NullString
		if err := rows.Scan(
			&p.ID, &p.RequesterID, &p.AddresseeID, &p.Status, &p.CreatedAt, &p.UpdatedAt,
			&p.RequesterUsername, &displayName,
		); err != nil {
			return nil, err
		}
		p.RequesterDisplayName = displayName.String
		requests = append(requests, p)
	}
	return requests, rows.Err()
}
