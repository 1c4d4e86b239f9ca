package resorts

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mehedishopnil/rci-maria-server/internal/handlers/common"
	"github.com/mehedishopnil/rci-maria-server/internal/store"
)

const (
	defaultPage  = 1
	defaultLimit = 15
)

// ListPaged returns one page of resorts plus the counts the client needs to
// render a pager. Pages are 1-based; absent or malformed page/limit values
// fall back to the defaults instead of failing. A page past the end is an
// empty array with the counts intact.
func (h *Handler) ListPaged(c *gin.Context) {
	page := common.PositiveInt(c.Query("page"), defaultPage)
	limit := common.PositiveInt(c.Query("limit"), defaultLimit)
	skip := (page - 1) * limit

	ctx := c.Request.Context()

	docs, err := h.Store.Find(ctx, store.Document{}, skip, limit)
	if err != nil {
		common.ServerError(c, "list resorts page", err)
		return
	}
	count, err := h.Store.Count(ctx, store.Document{})
	if err != nil {
		common.ServerError(c, "count resorts", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"resorts":      docs,
		"totalPages":   (count + limit - 1) / limit,
		"currentPage":  page,
		"totalResorts": count,
	})
}
