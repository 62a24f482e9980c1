// Package server exposes the Tradeboard HTTP API over gin.
package server

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/quantfeed/tradeboard/internal/config"
	"github.com/quantfeed/tradeboard/internal/copytrade"
	"github.com/quantfeed/tradeboard/internal/market"
)

// Server wires the market data and copy-trading services into HTTP routes.
type Server struct {
	cfg    *config.ServerConfig
	market *market.Service
	copy   *copytrade.Service
	logger *slog.Logger

	engine *gin.Engine
}

// New creates the server and registers all routes.
func New(cfg *config.ServerConfig, marketSvc *market.Service, copySvc *copytrade.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	s := &Server{
		cfg:    cfg,
		market: marketSvc,
		copy:   copySvc,
		logger: logger,
		engine: engine,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/", s.hello)

	api := s.engine.Group("/api")
	{
		api.GET("/price/:base/:quote", s.getPrice)
		api.GET("/price/:base/:quote/history", s.getPriceHistory)
		api.GET("/leaderboard", s.getLeaderboard)

		api.POST("/traders", s.registerTrader)
		api.GET("/traders/:id", s.getTrader)
		api.POST("/traders/:id/followers", s.addFollower)

		api.POST("/trades", s.submitTrade)
	}
}

// Handler returns the underlying http.Handler, used by tests and by main
// to build the http.Server.
func (s *Server) Handler() *gin.Engine {
	return s.engine
}
