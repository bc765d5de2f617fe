package store

import (
	"database/sql"
	"strings"

	"playhub/models"
)

const userColumns = "id, username, email, password_hash, display_name, avatar_url, is_active, is_verified, created_at, updated_at"

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (*models.User, error) {
	var u models.User
	var displayName, avatarURL sql.NullString
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&displayName, &avatarURL, &u.IsActive, &u.IsVerified,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	u.DisplayName = displayName.String
	u.AvatarURL = avatarURL.String
	return &u, nil
}

// CreateUser inserts the user row and its zeroed stats row as one
// transaction; a crash between the two never leaves a user without stats.
func (s *mysqlStore) CreateUser(username, email, passwordHash, displayName string) (*models.User, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}

	result, err := tx.Exec(
		"INSERT INTO users (username, email, password_hash, display_name) VALUES (?, ?, ?, ?)",
		username, email, passwordHash, displayName,
	)
	if err != nil {
		tx.Rollback()
		if isDuplicate(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if _, err := tx.Exec("INSERT INTO user_stats (user_id) VALUES (?)", id); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return s.UserByID(id)
}

func (s *mysqlStore) UserByID(id int64) (*models.User, error) {
	return scanUser(s.db.QueryRow("SELECT "+userColumns+" FROM users WHERE id = ?", id))
}

func (s *mysqlStore) UserByUsername(username string) (*models.User, error) {
	return scanUser(s.db.QueryRow("SELECT "+userColumns+" FROM users WHERE username = ?", username))
}

func (s *mysqlStore) UserByEmail(email string) (*models.User, error) {
	return scanUser(s.db.QueryRow("SELECT "+userColumns+" FROM users WHERE email = ?", email))
}

// userUpdateClauses translates a partial update into SET clauses and their
// bind arguments. Column names are fixed strings; values are always bound.
func userUpdateClauses(upd models.UserUpdate) ([]string, []any) {
	var fields []string
	var args []any
	if upd.Username != nil {
		fields = append(fields, "username = ?")
		args = append(args, *upd.Username)
	}
	if upd.Email != nil {
		fields = append(fields, "email = ?")
		args = append(args, *upd.Email)
	}
	if upd.DisplayName != nil {
		fields = append(fields, "display_name = ?")
		args = append(args, *upd.DisplayName)
	}
	if upd.AvatarURL != nil {
		fields = append(fields, "avatar_url = ?")
		args = append(args, *upd.AvatarURL)
	}
	return fields, args
}

func (s *mysqlStore) UpdateUser(id int64, upd models.UserUpdate) (*models.User, error) {
	fields, args := userUpdateClauses(upd)
	if len(fields) == 0 {
		return s.UserByID(id)
	}

	fields = append(fields, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	_, err := s.db.Exec("UPDATE users SET "+strings.Join(fields, ", ")+" WHERE id = ?", args...)
	if err != nil {
		if isDuplicate(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	return s.UserByID(id)
}

func (s *mysqlStore) DeleteUser(id int64) error {
	result, err := s.db.Exec("DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mysqlStore) SearchUsers(q string, limit, offset int) ([]models.SearchResult, int, error) {
	pattern := "%" + q + "%"

	var total int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM users WHERE username LIKE ? OR display_name LIKE ?",
		pattern, pattern,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := s.db.Query(`
		SELECT id, username, display_name, avatar_url FROM users
		WHERE username LIKE ? OR display_name LIKE ?
		ORDER BY username
		LIMIT ? OFFSET ?
	`, pattern, pattern, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	results := []models.SearchResult{}
	for rows.Next() {
		var r models.SearchResult
		var displayName, avatarURL sql.NullString
		if err := rows.Scan(&r.ID, &r.Username, &displayName, &avatarURL); err != nil {
			return nil, 0, err
		}
		r.DisplayName = displayName.String
		r.AvatarURL = avatarURL.String
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return results, total, nil
}
