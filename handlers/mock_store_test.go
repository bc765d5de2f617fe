package handlers

import (
	"github.com/stretchr/testify/mock"

	"playhub/models"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) CreateUser(username, email, passwordHash, displayName string) (*models.User, error) {
	args := m.Called(username, email, passwordHash, displayName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStore) UserByID(id int64) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStore) UserByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStore) UserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStore) UpdateUser(id int64, upd models.UserUpdate) (*models.User, error) {
	args := m.Called(id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStore) DeleteUser(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStore) SearchUsers(q string, limit, offset int) ([]models.SearchResult, int, error) {
	args := m.Called(q, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.SearchResult), args.Int(1), args.Error(2)
}

func (m *MockStore) Stats(userID int64) (*models.UserStats, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserStats), args.Error(1)
}

func (m *MockStore) UpdateStats(userID int64, upd models.StatsUpdate) (*models.UserStats, error) {
	args := m.Called(userID, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserStats), args.Error(1)
}

func (m *MockStore) CreateFriendship(requesterID, addresseeID int64) (*models.Friendship, error) {
	args := m.Called(requesterID, addresseeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Friendship), args.Error(1)
}

func (m *MockStore) FriendshipByID(id int64) (*models.Friendship, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Friendship), args.Error(1)
}

func (m *MockStore) FriendshipBetween(a, b int64) (*models.Friendship, error) {
	args := m.Called(a, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Friendship), args.Error(1)
}

func (m *MockStore) SetFriendshipStatus(id int64, status string) (*models.Friendship, error) {
	args := m.Called(id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Friendship), args.Error(1)
}

func (m *MockStore) Friends(userID int64) ([]models.UserResponse, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserResponse), args.Error(1)
}

func (m *MockStore) PendingRequests(userID int64) ([]models.PendingRequest, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PendingRequest), args.Error(1)
}
