package middleware

import (
	"github.com/gin-gonic/gin"
)

// TerminalIDHeader identifies the POS counter making the request.
const TerminalIDHeader = "X-Terminal-ID"

// Terminal resolves the terminal identity for the request. Counters send
// X-Terminal-ID; anything without one falls back to its client IP so
// idempotency and rate limiting still have a stable key.
func Terminal() gin.HandlerFunc {
	return func(c *gin.Context) {
		terminalID := c.GetHeader(TerminalIDHeader)
		if terminalID == "" {
			terminalID = c.ClientIP()
		}
		c.Set("terminal_id", terminalID)
		c.Next()
	}
}

// GetTerminalID returns the terminal identity set by Terminal.
func GetTerminalID(c *gin.Context) string {
	if v, exists := c.Get("terminal_id"); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return c.ClientIP()
}
