package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "finverse/docs"
	"finverse/internal/config"
	"finverse/internal/handler"
	"finverse/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	personaH *handler.PersonaHandler,
	filingH *handler.FilingHandler,
	chatH *handler.ChatHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg))

	// Health checks
	r.GET("/health", healthH.Health)
	r.GET("/readyz", healthH.Readiness)

	api := r.Group("/api")

	// Persona routes
	api.GET("/personas", personaH.List)
	api.GET("/persona/:id", personaH.GetByID)
	api.POST("/persona", personaH.Select)

	// Advisory chat
	api.POST("/chat", chatH.Chat)

	// SEC filing parser and archive
	api.POST("/sec-filing", filingH.Parse)
	api.POST("/sec-filing/export", filingH.Export)
	api.GET("/sec-filing/archive/:ticker/:form/:year", filingH.ArchiveURL)
	api.DELETE("/sec-filing/archive/:ticker/:form/:year", filingH.DeleteArchive)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
