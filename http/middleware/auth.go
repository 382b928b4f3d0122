package middlewares

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"github.com/kngsnwn/gigapress/utils"
)

// PrivateKeyAuth checks the shared Private-Key header. With no key
// configured the check is disabled and every request passes.
func (m *Middlewares) PrivateKeyAuth() gin.HandlerFunc {
	key := m.cfg.EnvConfig.PrivateKey

	return func(c *gin.Context) {
		if key == "" {
			c.Next()
			return
		}
		provided := c.GetHeader("Private-Key")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
			utils.JSON401(c, "Unauthorized: invalid private key")
			c.Abort()
			return
		}
		c.Next()
	}
}
