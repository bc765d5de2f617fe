package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"playhub/middleware"
	"playhub/models"
	"playhub/store"
	"playhub/utils"
)

type FriendRequestBody struct {
	AddresseeID int64 `json:"addressee_id" binding:"required,min=1"`
}

type FriendResponseBody struct {
	Action string `json:"action" binding:"required,oneof=accept reject"`
}

func (h *Handler) SendFriendRequest(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req FriendRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	if req.AddresseeID == claims.UserID {
		utils.BadRequest(c, "cannot send a friend request to yourself")
		return
	}

	if _, err := h.store.UserByID(req.AddresseeID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "user not found")
			return
		}
		logrus.WithError(err).Error("friend request: addressee lookup failed")
		utils.InternalError(c, "failed to send friend request")
		return
	}

	existing, err := h.store.FriendshipBetween(claims.UserID, req.AddresseeID)
	if err == nil {
		switch existing.Status {
		case models.FriendshipAccepted:
			utils.BadRequest(c, "already friends")
		case models.FriendshipPending:
			utils.BadRequest(c, "friend request already sent")
		default:
			utils.BadRequest(c, "cannot send friend request")
		}
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		logrus.WithError(err).Error("friend request: edge lookup failed")
		utils.InternalError(c, "failed to send friend request")
		return
	}

	friendship, err := h.store.CreateFriendship(claims.UserID, req.AddresseeID)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			utils.BadRequest(c, "friend request already sent")
			return
		}
		logrus.WithError(err).Error("friend request: insert failed")
		utils.InternalError(c, "failed to send friend request")
		return
	}

	utils.Created(c, "friend request sent", friendship)
}

func (h *Handler) RespondFriendRequest(c *gin.Context) {
	claims := middleware.GetClaims(c)

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req FriendResponseBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	friendship, err := h.store.FriendshipByID(id)
	if errors.Is(err, store.ErrNotFound) {
		utils.NotFound(c, "friend request not found")
		return
	}
	if err != nil {
		logrus.WithError(err).Error("friend response: lookup failed")
		utils.InternalError(c, "failed to respond to friend request")
		return
	}

	if friendship.AddresseeID != claims.UserID {
		utils.Forbidden(c, "you are not allowed to respond to this friend request")
		return
	}

	if friendship.Status != models.FriendshipPending {
		utils.BadRequest(c, "friend request already responded to")
		return
	}

	status := models.FriendshipAccepted
	if req.Action == "reject" {
		status = models.FriendshipRejected
	}

	updated, err := h.store.SetFriendshipStatus(id, status)
	if err != nil {
		// A pending edge can only be updated once; losing the race means
		// someone already responded.
		if errors.Is(err, store.ErrNotFound) {
			utils.BadRequest(c, "friend request already responded to")
			return
		}
		logrus.WithError(err).Error("friend response: update failed")
		utils.InternalError(c, "failed to respond to friend request")
		return
	}

	utils.SuccessMessage(c, "friend request "+updated.Status, updated)
}

func (h *Handler) GetFriends(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var query paginationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.BindError(c, err)
		return
	}

	if _, err := h.store.UserByID(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "user not found")
			return
		}
		logrus.WithError(err).Error("friends: user lookup failed")
		utils.InternalError(c, "failed to fetch friends")
		return
	}

	friends, err := h.store.Friends(id)
	if err != nil {
		logrus.WithError(err).Error("friends: query failed")
		utils.InternalError(c, "failed to fetch friends")
		return
	}

	total := len(friends)
	offset := (query.Page - 1) * query.Limit
	if offset > total {
		offset = total
	}
	end := offset + query.Limit
	if end > total {
		end = total
	}

	utils.Success(c, gin.H{
		"friends":    friends[offset:end],
		"pagination": models.NewPagination(query.Page, query.Limit, total),
	})
}

func (h *Handler) GetPendingRequests(c *gin.Context) {
	claims := middleware.GetClaims(c)

	requests, err := h.store.PendingRequests(claims.UserID)
	if err != nil {
		logrus.WithError(err).Error("pending requests: query failed")
		utils.InternalError(c, "failed to fetch pending requests")
		return
	}

	utils.Success(c, requests)
}
