package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	cfg := loadConfig()
	initLogger(cfg.LogLevel)

	if err := openDatabase(cfg.DBPath); err != nil {
		logger.Fatal().Err(err).Msg("failed to open database")
	}
	if err := seedFromFile(cfg.ContentFile); err != nil {
		logger.Fatal().Err(err).Msg("failed to seed content")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics = newCollector(registry)

	initAdminToken()
	go cleanupOldVisitorData()

	r := gin.Default()
	r.LoadHTMLGlob("templates/*")

	r.Static("/images", "./images")
	r.Static("/static", "./static")

	r.Use(clientHintMiddleware())
	r.Use(visitorTrackingMiddleware())

	src := newContentSource(cfg)

	// Home page route
	r.GET("/", indexHandler(src))
	r.POST("/theme", setThemeHandler)

	registerNavRoutes(r)
	registerAPIRoutes(r)
	registerContactRoutes(r, cfg)
	registerMetricsRoute(r, registry)
	setupAdminRoutes(r, cfg)

	logger.Info().Str("port", cfg.Port).Msg("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}
