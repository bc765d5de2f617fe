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

type UpdateUserRequest struct {
	Username    *string `json:"username" binding:"omitempty,min=3,max=30,username"`
	Email       *string `json:"email" binding:"omitempty,email"`
	DisplayName *string `json:"display_name" binding:"omitempty,min=1,max=50"`
	AvatarURL   *string `json:"avatar_url" binding:"omitempty,url"`
}

type SearchQuery struct {
	Q string `form:"q" binding:"required,max=50"`
	paginationQuery
}

func (h *Handler) GetProfile(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var cached models.Profile
	if hit, err := h.cache.Get(c.Request.Context(), cache.ProfileKey(id), &cached); err == nil && hit {
		utils.Success(c, cached)
		return
	}

	user, err := h.store.UserByID(id)
	if errors.Is(err, store.ErrNotFound) {
		utils.NotFound(c, "user not found")
		return
	}
	if err != nil {
		logrus.WithError(err).Error("profile: user lookup failed")
		utils.InternalError(c, "failed to fetch profile")
		return
	}

	stats, err := h.store.Stats(id)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		logrus.WithError(err).Error("profile: stats lookup failed")
		utils.InternalError(c, "failed to fetch profile")
		return
	}

	profile := models.Profile{UserResponse: *user.ToResponse(), Stats: stats}

	if err := h.cache.Set(c.Request.Context(), cache.ProfileKey(id), profile); err != nil {
		logrus.WithError(err).Warn("profile: cache write failed")
	}

	utils.Success(c, profile)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	claims := middleware.GetClaims(c)
	if claims == nil || claims.UserID != id {
		utils.Forbidden(c, "you are not allowed to update this profile")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	existing, err := h.store.UserByID(id)
	if errors.Is(err, store.ErrNotFound) {
		utils.NotFound(c, "user not found")
		return
	}
	if err != nil {
		logrus.WithError(err).Error("update user: lookup failed")
		utils.InternalError(c, "failed to update user")
		return
	}

	if req.Username != nil && *req.Username != existing.Username {
		if _, err := h.store.UserByUsername(*req.Username); err == nil {
			utils.BadRequest(c, "username already in use")
			return
		} else if !errors.Is(err, store.ErrNotFound) {
			logrus.WithError(err).Error("update user: username lookup failed")
			utils.InternalError(c, "failed to update user")
			return
		}
	}

	if req.Email != nil && *req.Email != existing.Email {
		if _, err := h.store.UserByEmail(*req.Email); err == nil {
			utils.BadRequest(c, "email already in use")
			return
		} else if !errors.Is(err, store.ErrNotFound) {
			logrus.WithError(err).Error("update user: email lookup failed")
			utils.InternalError(c, "failed to update user")
			return
		}
	}

	updated, err := h.store.UpdateUser(id, models.UserUpdate{
		Username:    req.Username,
		Email:       req.Email,
		DisplayName: req.DisplayName,
		AvatarURL:   req.AvatarURL,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			utils.BadRequest(c, "username or email already in use")
			return
		}
		logrus.WithError(err).Error("update user: update failed")
		utils.InternalError(c, "failed to update user")
		return
	}

	if err := h.cache.Delete(c.Request.Context(), cache.ProfileKey(id)); err != nil {
		logrus.WithError(err).Warn("update user: cache invalidation failed")
	}

	utils.SuccessMessage(c, "user updated successfully", updated.ToResponse())
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	claims := middleware.GetClaims(c)
	if claims == nil || claims.UserID != id {
		utils.Forbidden(c, "you are not allowed to delete this profile")
		return
	}

	err := h.store.DeleteUser(id)
	if errors.Is(err, store.ErrNotFound) {
		utils.NotFound(c, "user not found")
		return
	}
	if err != nil {
		logrus.WithError(err).Error("delete user: delete failed")
		utils.InternalError(c, "failed to delete user")
		return
	}

	if err := h.cache.Delete(c.Request.Context(), cache.ProfileKey(id), cache.StatsKey(id)); err != nil {
		logrus.WithError(err).Warn("delete user: cache invalidation failed")
	}

	utils.SuccessMessage(c, "user deleted successfully", nil)
}

func (h *Handler) SearchUsers(c *gin.Context) {
	var query SearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.BindError(c, err)
		return
	}

	offset := (query.Page - 1) * query.Limit
	users, total, err := h.store.SearchUsers(query.Q, query.Limit, offset)
	if err != nil {
		logrus.WithError(err).Error("search: query failed")
		utils.InternalError(c, "failed to search users")
		return
	}

	utils.Success(c, gin.H{
		"users":      users,
		"pagination": models.NewPagination(query.Page, query.Limit, total),
	})
}
