package users

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mehedishopnil/rci-maria-server/internal/handlers/common"
	"github.com/mehedishopnil/rci-maria-server/internal/store"
)

// UpdateRole flips a user's admin flag.
// KISS flow:
// 1) Validate payload (isAdmin must be a real boolean, not a truthy value)
// 2) Set isAdmin on the user matched by email
// 3) 404 when no user matched; never insert
func (h *Handler) UpdateRole(c *gin.Context) {
	var in struct {
		Email   string `json:"email"`
		IsAdmin *bool  `json:"isAdmin"`
	}
	if err := c.ShouldBindJSON(&in); err != nil ||
		strings.TrimSpace(in.Email) == "" ||
		in.IsAdmin == nil {
		common.Error(c, http.StatusBadRequest, common.CodeInvalidRequest,
			"Email and isAdmin status are required")
		return
	}

	matched, err := h.Store.SetFields(c.Request.Context(),
		store.Document{"email": in.Email},
		store.Document{"isAdmin": *in.IsAdmin})
	if err != nil {
		common.ServerError(c, "update user role", err)
		return
	}
	if matched == 0 {
		common.Error(c, http.StatusNotFound, common.CodeNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User role updated successfully"})
}
