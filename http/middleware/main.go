package middlewares

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/kngsnwn/gigapress/config"
)

type Middlewares struct {
	cfg *config.Config
}

func NewMiddlewares(cfg *config.Config) *Middlewares {
	return &Middlewares{cfg: cfg}
}

func (m *Middlewares) CORS() gin.HandlerFunc {
	allowed := m.cfg.EnvConfig.CORS.AllowDomains

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Private-Key"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if allowed == "" || allowed == "*" {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	} else {
		corsConfig.AllowOrigins = strings.Split(allowed, ",")
	}

	return cors.New(corsConfig)
}
