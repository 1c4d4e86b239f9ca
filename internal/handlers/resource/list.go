package resource

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mehedishopnil/rci-maria-server/internal/handlers/common"
	"github.com/mehedishopnil/rci-maria-server/internal/store"
)

// ListAll returns every document in the collection. No documents is an empty
// array, not an error.
func (h *Handler) ListAll(c *gin.Context) {
	docs, err := h.Store.Find(c.Request.Context(), store.Document{}, 0, 0)
	if err != nil {
		common.ServerError(c, "list "+strings.ToLower(h.Name)+"s", err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// ListCapped returns a handler serving at most limit documents.
func (h *Handler) ListCapped(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		docs, err := h.Store.Find(c.Request.Context(), store.Document{}, 0, limit)
		if err != nil {
			common.ServerError(c, "list "+strings.ToLower(h.Name)+"s", err)
			return
		}
		c.JSON(http.StatusOK, docs)
	}
}
