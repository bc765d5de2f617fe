package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"playhub/auth"
	"playhub/store"
	"playhub/utils"
)

type RegisterRequest struct {
	Username    string `json:"username" binding:"required,min=3,max=30,username"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8,password"`
	DisplayName string `json:"display_name" binding:"omitempty,min=1,max=50"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	if _, err := h.store.UserByUsername(req.Username); err == nil {
		utils.BadRequest(c, "username already in use")
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		logrus.WithError(err).Error("register: username lookup failed")
		utils.InternalError(c, "failed to register user")
		return
	}

	if _, err := h.store.UserByEmail(req.Email); err == nil {
		utils.BadRequest(c, "email already in use")
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		logrus.WithError(err).Error("register: email lookup failed")
		utils.InternalError(c, "failed to register user")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		logrus.WithError(err).Error("register: password hashing failed")
		utils.InternalError(c, "failed to register user")
		return
	}

	displayName := req.DisplayName
	if displayName == "" {
		displayName = req.Username
	}

	user, err := h.store.CreateUser(req.Username, req.Email, hash, displayName)
	if err != nil {
		// The unique constraints are the source of truth under concurrent
		// registration; a duplicate slipping past the pre-checks lands here.
		if errors.Is(err, store.ErrDuplicate) {
			utils.BadRequest(c, "username or email already in use")
			return
		}
		logrus.WithError(err).Error("register: user creation failed")
		utils.InternalError(c, "failed to register user")
		return
	}

	utils.Created(c, "user registered successfully", user.ToResponse())
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	user, err := h.store.UserByEmail(req.Email)
	if errors.Is(err, store.ErrNotFound) {
		utils.Unauthorized(c, "invalid credentials")
		return
	}
	if err != nil {
		logrus.WithError(err).Error("login: user lookup failed")
		utils.InternalError(c, "failed to log in")
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		utils.Unauthorized(c, "invalid credentials")
		return
	}

	token, err := auth.GenerateToken(user.ID, user.Username, h.jwtSecret)
	if err != nil {
		logrus.WithError(err).Error("login: token generation failed")
		utils.InternalError(c, "failed to log in")
		return
	}

	utils.SuccessMessage(c, "login successful", gin.H{
		"token": token,
		"user":  user.ToResponse(),
	})
}
