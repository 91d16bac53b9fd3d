package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/shopward/shopward_backend/internal/core/ports/services"
	"github.com/shopward/shopward_backend/internal/middleware"
	"github.com/shopward/shopward_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerHomeRoutes(r)

	// Public authentication routes, rate limited
	registerAuthRoutes(r, cfg, services)

	// Activity routes stay public; the back-office feed is readable without a session
	registerActivityRoutes(r.Group("/activities"), services.Activity)

	// Everything else requires a verified access token
	authMW := middleware.AuthMiddleware(cfg.AccessTokenSecret)
	registerUserRoutes(r.Group("/users", authMW), services.User)
	registerProductRoutes(r.Group("/products", authMW), services.Product)
}
