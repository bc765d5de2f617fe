package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"playhub/models"
	"playhub/store"
)

func TestGetStats(t *testing.T) {
	s := &MockStore{}
	s.On("UserByID", int64(1)).Return(testUser(1, "neo", "neo@matrix.io"), nil)
	s.On("Stats", int64(1)).Return(&models.UserStats{ID: 1, UserID: 1, Wins: 3, Losses: 2}, nil)

	r := newTestRouter(s)
	w := doRequest(t, r, http.MethodGet, "/api/users/1/stats", "", nil)

	requireStatus(t, w, http.StatusOK)
	data := dataMap(t, decode(t, w))
	assert.Equal(t, float64(3), data["wins"])
	assert.Equal(t, float64(2), data["losses"])
}

func TestGetStatsUserNotFound(t *testing.T) {
	s := &MockStore{}
	s.On("UserByID", int64(9)).Return(nil, store.ErrNotFound)

	r := newTestRouter(s)
	w := doRequest(t, r, http.MethodGet, "/api/users/9/stats", "", nil)

	requireStatus(t, w, http.StatusNotFound)
}

func TestUpdateStats(t *testing.T) {
	s := &MockStore{}
	s.On("UserByID", int64(1)).Return(testUser(1, "neo", "neo@matrix.io"), nil)
	s.On("UpdateStats", int64(1), mock.MatchedBy(func(upd models.StatsUpdate) bool {
		return upd.Wins != nil && *upd.Wins == 5 && upd.Losses == nil
	})).Return(&models.UserStats{ID: 1, UserID: 1, Wins: 5}, nil)

	r := newTestRouter(s)
	w := doRequest(t, r, http.MethodPut, "/api/users/1/stats", tokenFor(t, 1, "neo"), gin.H{
		"wins": 5,
	})

	requireStatus(t, w, http.StatusOK)
	data := dataMap(t, decode(t, w))
	assert.Equal(t, float64(5), data["wins"])
	s.AssertExpectations(t)
}

func TestUpdateStatsWrongOwner(t *testing.T) {
	s := &MockStore{}
	r := newTestRouter(s)
	w := doRequest(t, r, http.MethodPut, "/api/users/1/stats", tokenFor(t, 2, "smith"), gin.H{
		"wins": 5,
	})

	requireStatus(t, w, http.StatusForbidden)
	s.AssertNotCalled(t, "UpdateStats", mock.Anything, mock.Anything)
}

func TestUpdateStatsNegative(t *testing.T) {
	s := &MockStore{}
	r := newTestRouter(s)
	w := doRequest(t, r, http.MethodPut, "/api/users/1/stats", tokenFor(t, 1, "neo"), gin.H{
		"wins": -1,
	})

	requireStatus(t, w, http.StatusBadRequest)
	s.AssertNotCalled(t, "UpdateStats", mock.Anything, mock.Anything)
}

func TestUpdateStatsRequiresToken(t *testing.T) {
	s := &MockStore{}
	r := newTestRouter(s)
	w := doRequest(t, r, http.MethodPut, "/api/users/1/stats", "", gin.H{"wins": 1})

	requireStatus(t, w, http.StatusUnauthorized)
}
