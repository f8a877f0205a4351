package server

import (
	"net/http"
	"time"

	"gameshelf/backend/internal/api/controller"
	"gameshelf/backend/internal/api/response"
	"gameshelf/backend/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Server owns the gin engine and its routes.
type Server struct {
	engine *gin.Engine
}

// NewServer builds the engine: middleware, CORS, the catalog and user
// route groups, the health check and the fallback handlers.
func NewServer(cfg *config.Config, games *controller.GameController, users *controller.UserController) *Server {
	if !cfg.Development() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())

	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Origins(),
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	engine.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	api := engine.Group("/api")
	{
		gameRoutes := api.Group("/games")
		{
			gameRoutes.POST("", games.Create)
			gameRoutes.GET("", games.List)
			gameRoutes.GET("/by-user/:userID", games.ListByUser)
			gameRoutes.GET("/:id", games.Get)
			gameRoutes.PUT("/:id", games.Update)
			gameRoutes.DELETE("/:id", games.Delete)
		}
	}

	userRoutes := engine.Group("/user")
	{
		userRoutes.POST("/register", users.Register)
		userRoutes.POST("/login", users.Login)
		userRoutes.GET("/all", users.List)
	}

	engine.NoRoute(func(c *gin.Context) {
		response.ErrorResponse(c, http.StatusNotFound, "route not found")
	})

	return &Server{engine: engine}
}

// Engine exposes the underlying handler for the HTTP server and tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
