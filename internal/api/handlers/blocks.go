package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-payture-block/internal/config"
	"go-payture-block/internal/errors"
	"go-payture-block/internal/logger"
)

type BlockListHandler struct {
	config       *config.Config
	logger       *logger.Logger
	errorHandler *errors.ErrorHandler
	store        *BlockStore
}

type BlockListRequest struct {
	OrderID string `form:"order_id"`
	Limit   int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Page    int    `form:"page" binding:"omitempty,min=1"`
}

type BlockListResponse struct {
	Success    bool          `json:"success"`
	Blocks     []BlockRecord `json:"blocks"`
	Pagination struct {
		Page       int `json:"page"`
		Limit      int `json:"limit"`
		Total      int `json:"total"`
		TotalPages int `json:"total_pages"`
	} `json:"pagination"`
}

func NewBlockListHandler(cfg *config.Config, log *logger.Logger, eh *errors.ErrorHandler, store *BlockStore) *BlockListHandler {
	return &BlockListHandler{
		config:       cfg,
		logger:       log,
		errorHandler: eh,
		store:        store,
	}
}

func (h *BlockListHandler) GetBlocks(c *gin.Context) {
	h.logger.Debug("Block list request received", nil, logger.ChannelGateway)

	var req BlockListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		failure := h.errorHandler.HandleRequestError(err, "block list query")
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": failure})
		return
	}

	if req.Limit == 0 {
		req.Limit = 25
	}
	if req.Page == 0 {
		req.Page = 1
	}

	filtered := []BlockRecord{}
	for _, record := range h.store.Recent() {
		if req.OrderID != "" && record.OrderID != req.OrderID {
			continue
		}
		filtered = append(filtered, record)
	}

	total := len(filtered)
	totalPages := (total + req.Limit - 1) / req.Limit
	startIndex := (req.Page - 1) * req.Limit
	endIndex := startIndex + req.Limit

	if startIndex >= total {
		filtered = []BlockRecord{}
	} else {
		if endIndex > total {
			endIndex = total
		}
		filtered = filtered[startIndex:endIndex]
	}

	response := BlockListResponse{
		Success: true,
		Blocks:  filtered,
	}
	response.Pagination.Page = req.Page
	response.Pagination.Limit = req.Limit
	response.Pagination.Total = total
	response.Pagination.TotalPages = totalPages

	c.JSON(http.StatusOK, response)
}
