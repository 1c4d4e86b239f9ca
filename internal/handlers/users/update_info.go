package users

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mehedishopnil/rci-maria-server/internal/handlers/common"
	"github.com/mehedishopnil/rci-maria-server/internal/store"
)

// Fields a profile update may set. Anything else in the body is ignored.
var profileFields = []string{"age", "securityDeposit", "idNumber"}

// UpdateInfo sets profile fields on the user matched by email. Only the
// fields present in the body are written, so a partial update never blanks
// the others. Never inserts.
func (h *Handler) UpdateInfo(c *gin.Context) {
	var in store.Document
	if err := c.ShouldBindJSON(&in); err != nil {
		common.Error(c, http.StatusBadRequest, common.CodeInvalidRequest,
			"Request body must be a JSON object")
		return
	}

	email, _ := in["email"].(string)
	fields := store.Document{}
	for _, f := range profileFields {
		if v, ok := in[f]; ok {
			fields[f] = v
		}
	}
	// An empty $set is a driver error, so reject it up front.
	if strings.TrimSpace(email) == "" || len(fields) == 0 {
		common.Error(c, http.StatusBadRequest, common.CodeInvalidRequest,
			"Email and at least one profile field are required")
		return
	}

	matched, err := h.Store.SetFields(c.Request.Context(),
		store.Document{"email": email}, fields)
	if err != nil {
		common.ServerError(c, "update user info", err)
		return
	}
	if matched == 0 {
		common.Error(c, http.StatusNotFound, common.CodeNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User information updated successfully"})
}
