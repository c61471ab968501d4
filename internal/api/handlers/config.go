package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-payture-block/internal/config"
	"go-payture-block/internal/errors"
	"go-payture-block/internal/logger"
)

type ConfigHandler struct {
	config       *config.Config
	logger       *logger.Logger
	errorHandler *errors.ErrorHandler
}

type ConfigResponse struct {
	Success bool `json:"success"`
	Data    struct {
		MerchantKey string `json:"merchant_key"`
		Amount      string `json:"amount"`
		Environment string `json:"environment"`
		BlockPath   string `json:"block_path"`
	} `json:"data"`
}

func NewConfigHandler(cfg *config.Config, log *logger.Logger, eh *errors.ErrorHandler) *ConfigHandler {
	return &ConfigHandler{
		config:       cfg,
		logger:       log,
		errorHandler: eh,
	}
}

// GetConfig tells a client which sandbox fixtures this gateway accepts.
func (h *ConfigHandler) GetConfig(c *gin.Context) {
	h.logger.Debug("Config request received", nil, logger.ChannelGateway)

	response := ConfigResponse{
		Success: true,
	}

	response.Data.MerchantKey = h.config.MerchantKey
	response.Data.Amount = h.config.BlockAmount
	response.Data.Environment = h.config.AppEnv
	response.Data.BlockPath = BlockPath

	c.Header("X-Content-Type-Options", "nosniff")
	c.Header("X-Frame-Options", "DENY")

	c.JSON(http.StatusOK, response)
}
