package handlers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"go-payture-block/internal/config"
	"go-payture-block/internal/errors"
	"go-payture-block/internal/logger"
)

// BlockPath is where the sandbox serves the Block operation.
const BlockPath = "/api/Block"

// NewRouter wires the sandbox gateway's routes.
func NewRouter(cfg *config.Config, lgr *logger.Logger, eh *errors.ErrorHandler, store *BlockStore) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if lgr.Enabled(logger.DEBUG) {
		router.Use(gin.Logger())
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsConfig))

	blockHandler := NewBlockHandler(cfg, lgr, eh, store)
	blockListHandler := NewBlockListHandler(cfg, lgr, eh, store)
	configHandler := NewConfigHandler(cfg, lgr, eh)

	api := router.Group("/api")
	{
		api.GET("/Block", blockHandler.Block)
		api.GET("/blocks", blockListHandler.GetBlocks)
		api.GET("/config", configHandler.GetConfig)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Unix(),
		})
	})

	router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	return router
}
