package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"numberpool/internal/domain/identity"
	"numberpool/internal/handler/api"
	"numberpool/internal/handler/middleware"
	"numberpool/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, slotsHandler *api.SlotsHandler, reviewHandler *api.ReviewHandler, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter) {
	setupMiddleware(engine, cfg, rateLimiter)
	setupRoutes(engine, slotsHandler, reviewHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, rateLimiter *middleware.RateLimiter) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(rateLimiter.Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, slotsHandler *api.SlotsHandler, reviewHandler *api.ReviewHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		slots := apiGroup.Group("/slots")
		slots.Use(authMiddleware.RequireAuth())
		{
			addRoutes(slots, []route{
				{Method: http.MethodGet, Path: "", Handler: slotsHandler.ListSlots},
				{Method: http.MethodGet, Path: "/:number", Handler: slotsHandler.GetSlot},
				{Method: http.MethodPost, Path: "/:number/claim", Handler: slotsHandler.Claim},
				{Method: http.MethodPost, Path: "/proof", Handler: slotsHandler.SubmitProof},
			})
		}

		review := apiGroup.Group("/review")
		review.Use(authMiddleware.RequireAuth())
		review.Use(authMiddleware.RequireRoleAtLeast(identity.RoleReviewer))
		{
			addRoutes(review, []route{
				{Method: http.MethodGet, Path: "/board", Handler: reviewHandler.Board},
				{Method: http.MethodPost, Path: "/:number/approve", Handler: reviewHandler.Approve},
				{Method: http.MethodPost, Path: "/:number/reject", Handler: reviewHandler.Reject},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
