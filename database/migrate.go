package database

import (
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
)

type Migration struct {
	ID   int
	Name string
	SQL  string
}

// Migrations run in order of ID and each is recorded in the migrations
// table, so re-running the service never re-applies one.
var Migrations = []Migration{
	{
		ID:   1,
		Name: "create_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
			id            BIGINT AUTO_INCREMENT PRIMARY KEY,
			username      VARCHAR(30) NOT NULL,
			email         VARCHAR(255) NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			display_name  VARCHAR(50),
			avatar_url    VARCHAR(255),
			is_active     BOOLEAN NOT NULL DEFAULT TRUE,
			is_verified   BOOLEAN NOT NULL DEFAULT FALSE,
			created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uk_username (username),
			UNIQUE KEY uk_email (email)
		)`,
	},
	{
		ID:   2,
		Name: "create_user_stats",
		SQL: `CREATE TABLE IF NOT EXISTS user_stats (
			id                 BIGINT AUTO_INCREMENT PRIMARY KEY,
			user_id            BIGINT NOT NULL,
			wins               INT NOT NULL DEFAULT 0,
			losses             INT NOT NULL DEFAULT 0,
			tournaments_played INT NOT NULL DEFAULT 0,
			tournaments_won    INT NOT NULL DEFAULT 0,
			UNIQUE KEY uk_user (user_id),
			CONSTRAINT fk_stats_user FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
		)`,
	},
	{
		ID:   3,
		Name: "create_friendships",
		SQL: `CREATE TABLE IF NOT EXISTS friendships (
			id           BIGINT AUTO_INCREMENT PRIMARY KEY,
			requester_id BIGINT NOT NULL,
			addressee_id BIGINT NOT NULL,
			status       ENUM('pending', 'accepted', 'rejected') NOT NULL DEFAULT 'pending',
			created_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uk_edge (requester_id, addressee_id),
			INDEX idx_addressee (addressee_id),
			CONSTRAINT fk_friend_requester FOREIGN KEY (requester_id) REFERENCES users(id) ON DELETE CASCADE,
			CONSTRAINT fk_friend_addressee FOREIGN KEY (addressee_id) REFERENCES users(id) ON DELETE CASCADE
		)`,
	},
}

// Migrate applies every migration that has not been recorded yet.
func Migrate(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS migrations (
		id          INT PRIMARY KEY,
		name        VARCHAR(100) NOT NULL,
		executed_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	executed := make(map[int]bool)
	rows, err := db.Query("SELECT id FROM migrations ORDER BY id")
	if err != nil {
		return fmt.Errorf("read executed migrations: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return err
		}
		executed[id] = true
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, m := range Migrations {
		if executed[m.ID] {
			continue
		}
		if _, err := db.Exec(m.SQL); err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.ID, m.Name, err)
		}
		if _, err := db.Exec("INSERT INTO migrations (id, name) VALUES (?, ?)", m.ID, m.Name); err != nil {
			return fmt.Errorf("record migration %d: %w", m.ID, err)
		}
		logrus.Infof("applied migration %d (%s)", m.ID, m.Name)
	}

	return nil
}
