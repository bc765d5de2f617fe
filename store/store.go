package store

import (
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"playhub/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// Store is the data-access layer: one method per query shape.
type Store interface {
	CreateUser(username, email, passwordHash, displayName string) (*models.User, error)
	UserByID(id int64) (*models.User, error)
	UserByUsername(username string) (*models.User, error)
	UserByEmail(email string) (*models.User, error)
	UpdateUser(id int64, upd models.UserUpdate) (*models.User, error)
	DeleteUser(id int64) error
	SearchUsers(q string, limit, offset int) ([]models.SearchResult, int, error)

	Stats(userID int64) (*models.UserStats, error)
	UpdateStats(userID int64, upd models.StatsUpdate) (*models.UserStats, error)

	CreateFriendship(requesterID, addresseeID int64) (*models.Friendship, error)
	FriendshipByID(id int64) (*models.Friendship, error)
	FriendshipBetween(a, b int64) (*models.Friendship, error)
	SetFriendshipStatus(id int64, status string) (*models.Friendship, error)
	Friends(userID int64) ([]models.UserResponse, error)
	PendingRequests(userID int64) ([]models.PendingRequest, error)
}

type mysqlStore struct {
	db *sql.DB
}

// New wraps an open database handle. The handle stays owned by the caller.
func New(db *sql.DB) Store {
	return &mysqlStore{db: db}
}

// isDuplicate reports whether err is a MySQL unique-constraint violation.
func isDuplicate(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
