package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tableline/internal/handler/api"
	"tableline/internal/handler/middleware"
	"tableline/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, functionHandler *api.FunctionHandler, eventHandler *api.EventHandler, debugHandler *api.DebugHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, functionHandler, eventHandler, debugHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, functionHandler *api.FunctionHandler, eventHandler *api.EventHandler, debugHandler *api.DebugHandler) {
	engine.GET("/", serviceIndex)
	engine.GET("/health", healthCheck)

	webhook := engine.Group("/webhook")
	{
		addRoutes(webhook, []route{
			{Method: http.MethodPost, Path: "/functions", Handler: functionHandler.Dispatch},
			{Method: http.MethodPost, Path: "/call-events", Handler: eventHandler.CallEvent},
		})
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/debug/reservations/:id", debugHandler.GetReservation)
	}
}

func serviceIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "tableline",
		"status":  "active",
		"endpoints": gin.H{
			"/webhook/functions":   "POST - voice agent function calls",
			"/webhook/call-events": "POST - call lifecycle events",
			"/health":              "GET - health check",
		},
	})
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "tableline",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
