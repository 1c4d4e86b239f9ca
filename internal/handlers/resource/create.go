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

// Create inserts one document.
// KISS flow:
// 1) Bind the arbitrary JSON body
// 2) Reject if a required field is missing or blank
// 3) Reject if the unique key already exists (conflict)
// 4) Insert and return the new id
// Validation failures never reach the store.
func (h *Handler) Create(c *gin.Context) {
	var doc store.Document
	if err := c.ShouldBindJSON(&doc); err != nil || doc == nil {
		common.Error(c, http.StatusBadRequest, common.CodeInvalidRequest,
			"Request body must be a JSON object")
		return
	}

	if missing := common.MissingFields(doc, h.Required); len(missing) > 0 {
		common.Error(c, http.StatusBadRequest, common.CodeInvalidRequest,
			fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")))
		return
	}

	ctx := c.Request.Context()

	if h.UniqueKey != "" {
		_, err := h.Store.FindOne(ctx, store.Document{h.UniqueKey: doc[h.UniqueKey]})
		switch {
		case err == nil:
			common.Error(c, http.StatusConflict, common.CodeConflict,
				fmt.Sprintf("%s with this %s already exists", h.Name, h.UniqueKey))
			return
		case !errors.Is(err, store.ErrNotFound):
			common.ServerError(c, "find "+strings.ToLower(h.Name), err)
			return
		}
	}

	id, err := h.Store.Insert(ctx, doc)
	if err != nil {
		// The unique index can still reject a racing duplicate.
		if errors.Is(err, store.ErrDuplicate) {
			common.Error(c, http.StatusConflict, common.CodeConflict,
				fmt.Sprintf("%s with this %s already exists", h.Name, h.UniqueKey))
			return
		}
		common.ServerError(c, "insert "+strings.ToLower(h.Name), err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("%s successfully added", h.Name),
		h.IDKey:   id,
	})
}
