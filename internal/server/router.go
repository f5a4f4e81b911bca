package server

import (
	"net/http"

	"github.com/SergioReyes42/SistemaContable/internal/config"
	"github.com/SergioReyes42/SistemaContable/internal/handlers"
	"github.com/SergioReyes42/SistemaContable/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Static("/static", "./web/static")
	r.LoadHTMLGlob("web/templates/*.html")

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("movimientos_session", store))

	r.Use(middleware.InjectUser())

	// AUTH
	r.GET("/login", handlers.ShowLogin)
	r.POST("/login", handlers.Login)
	r.GET("/logout", handlers.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	// REGISTRO Y REPORTE
	auth.GET("/", handlers.IndexPage)
	auth.POST("/agregar", handlers.CreateMovement)
	auth.GET("/reporte", handlers.Report)
	auth.GET("/export/csv", handlers.ExportCSV)
	auth.GET("/export/xlsx", handlers.ExportXLSX)
	auth.GET("/export/pdf", handlers.ExportPDF)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
