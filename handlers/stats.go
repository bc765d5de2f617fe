package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"playhub/cache"
	"playhub/middleware"
	"playhub/models"
	"playhub/store"
	"playhub/utils"
)

type UpdateStatsRequest struct {
	Wins              *int `json:"wins" binding:"omitempty,min=0"`
	Losses            *int `json:"losses" binding:"omitempty,min=0"`
	TournamentsPlayed *int `json:"tournaments_played" binding:"omitempty,min=0"`
	TournamentsWon    *int `json:"tournaments_won" binding:"omitempty,min=0"`
}

func (h *Handler) GetStats(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var cached models.UserStats
	if hit, err := h.cache.Get(c.Request.Context(), cache.StatsKey(id), &cached); err == nil && hit {
		utils.Success(c, cached)
		return
	}

	if _, err := h.store.UserByID(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "user not found")
			return
		}
		logrus.WithError(err).Error("stats: user lookup failed")
		utils.InternalError(c, "failed to fetch stats")
		return
	}

	stats, err := h.store.Stats(id)
	if errors.Is(err, store.ErrNotFound) {
		utils.NotFound(c, "stats not found")
		return
	}
	if err != nil {
		logrus.WithError(err).Error("stats: lookup failed")
		utils.InternalError(c, "failed to fetch stats")
		return
	}

	if err := h.cache.Set(c.Request.Context(), cache.StatsKey(id), stats); err != nil {
		logrus.WithError(err).Warn("stats: cache write failed")
	}

	utils.Success(c, stats)
}

func (h *Handler) UpdateStats(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	claims := middleware.GetClaims(c)
	if claims == nil || claims.UserID != id {
		utils.Forbidden(c, "you are not allowed to update these stats")
		return
	}

	var req UpdateStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	if _, err := h.store.UserByID(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "user not found")
			return
		}
		logrus.WithError(err).Error("update stats: user lookup failed")
		utils.InternalError(c, "failed to update stats")
		return
	}

	stats, err := h.store.UpdateStats(id, models.StatsUpdate{
		Wins:              req.Wins,
		Losses:            req.Losses,
		TournamentsPlayed: req.TournamentsPlayed,
		TournamentsWon:    req.TournamentsWon,
	})
	if err != nil {
		logrus.WithError(err).Error("update stats: update failed")
		utils.InternalError(c, "failed to update stats")
		return
	}

	if err := h.cache.Delete(c.Request.Context(), cache.StatsKey(id), cache.ProfileKey(id)); err != nil {
		logrus.WithError(err).Warn("update stats: cache invalidation failed")
	}

	utils.SuccessMessage(c, "stats updated successfully", stats)
}
