package resource

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mehedishopnil/rci-maria-server/internal/handlers/common"
	"github.com/mehedishopnil/rci-maria-server/internal/store"
)

// GetByField returns a handler that looks up a single document by the given
// query parameter (e.g. GET /users?email=...). Absent match answers 404.
func (h *Handler) GetByField(field string) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := h.Store.FindOne(c.Request.Context(), store.Document{field: c.Query(field)})
		if errors.Is(err, store.ErrNotFound) {
			common.Error(c, http.StatusNotFound, common.CodeNotFound,
				fmt.Sprintf("%s not found", h.Name))
			return
		}
		if err != nil {
			common.ServerError(c, "find "+strings.ToLower(h.Name), err)
			return
		}
		c.JSON(http.StatusOK, doc)
	}
}

// ListByField returns a handler that looks up every document matching the
// given query parameter. A document can match more than once per key (a user
// may hold several bookings), so the result is always an array; an empty
// match answers 404.
func (h *Handler) ListByField(field string) gin.HandlerFunc {
	return func(c *gin.Context) {
		docs, err := h.Store.Find(c.Request.Context(), store.Document{field: c.Query(field)}, 0, 0)
		if err != nil {
			common.ServerError(c, "find "+strings.ToLower(h.Name)+"s", err)
			return
		}
		if len(docs) == 0 {
			common.Error(c, http.StatusNotFound, common.CodeNotFound,
				fmt.Sprintf("No %ss found", strings.ToLower(h.Name)))
			return
		}
		c.JSON(http.StatusOK, docs)
	}
}
