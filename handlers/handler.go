package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"playhub/cache"
	"playhub/store"
	"playhub/utils"
)

// Handler holds the dependencies every endpoint needs. Everything is
// injected; there is no package-level state.
type Handler struct {
	store     store.Store
	cache     *cache.Cache
	jwtSecret string
}

func New(s store.Store, c *cache.Cache, jwtSecret string) *Handler {
	return &Handler{store: s, cache: c, jwtSecret: jwtSecret}
}

type paginationQuery struct {
	Page  int `form:"page,default=1" binding:"min=1"`
	Limit int `form:"limit,default=20" binding:"min=1,max=100"`
}

// parseID reads a numeric path parameter, answering 400 itself when the
// value is not a positive integer.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		utils.BadRequest(c, "invalid "+name+" parameter")
		return 0, false
	}
	return id, true
}
