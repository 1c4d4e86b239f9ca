package common

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mehedishopnil/rci-maria-server/internal/store"
)

// Package common provides small, shared helpers used across handlers.
// KISS: tiny functions, no shared mutable state, and clear, focused behavior.

// Error codes used in the uniform error envelope.
const (
	CodeInvalidRequest = "invalid_request"
	CodeConflict       = "conflict"
	CodeNotFound       = "not_found"
	CodeServerError    = "server_error"
)

// Error writes the uniform error envelope every endpoint uses.
func Error(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"error": code, "message": message})
}

// ServerError logs the underlying failure server-side and answers with a
// generic 500. Driver details never reach the caller.
func ServerError(c *gin.Context, op string, err error) {
	log.Printf("%s: %v", op, err)
	Error(c, http.StatusInternalServerError, CodeServerError, "Internal Server Error")
}

// MissingFields returns the required fields that are absent from doc or are
// blank strings.
func MissingFields(doc store.Document, required []string) []string {
	var missing []string
	for _, f := range required {
		v, ok := doc[f]
		if !ok || v == nil {
			missing = append(missing, f)
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// PositiveInt parses a query value as a positive integer, falling back to def
// when the value is absent, malformed, or < 1.
func PositiveInt(raw string, def int64) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n < 1 {
		return def
	}
	return n
}
