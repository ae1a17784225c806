package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "bustms/internal/config"
	h "bustms/internal/http/handlers"
	"bustms/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the read-only status API.
func NewRouter(env intconfig.Env, handlers h.Handlers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     env.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health)
		api.GET("/routes", handlers.Routes)

		buses := api.Group("/buses")
		buses.GET("", handlers.Buses)
		buses.GET("/:bus/seats", handlers.BusSeats)

		auth := api.Group("/auth")
		auth.POST("/token", handlers.IssueToken)

		revenue := api.Group("/revenue")
		revenue.Use(middleware.RequireOperator([]byte(env.JWTSecret)))
		revenue.GET("", handlers.Revenue)
		revenue.GET("/report.pdf", handlers.RevenueReportPDF)
	}

	return r
}
