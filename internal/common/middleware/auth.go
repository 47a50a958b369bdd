package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"github.com/Porismic/JupiterBot/internal/common/errors"
)

// StaffTokenHeader carries the shared staff secret.
const StaffTokenHeader = "X-Staff-Token"

// RequireStaff admits requests presenting the staff token. An empty token
// locks the staff API.
func RequireStaff(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		presented := c.GetHeader(StaffTokenHeader)
		if token == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
			_ = c.Error(errors.NewPermissionDeniedError("staff token required"))
			c.Abort()
			return
		}
		c.Next()
	}
}
