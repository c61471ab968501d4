package handlers

import (
	"encoding/xml"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"go-payture-block/internal/block"
	"go-payture-block/internal/config"
	"go-payture-block/internal/errors"
	"go-payture-block/internal/logger"
)

// BlockHandler serves a sandbox version of the gateway's Block operation.
type BlockHandler struct {
	config       *config.Config
	logger       *logger.Logger
	errorHandler *errors.ErrorHandler
	store        *BlockStore
	validate     *validator.Validate
}

type BlockResponse struct {
	XMLName xml.Name `xml:"Block"`
	OrderID string   `xml:"OrderId,attr"`
	Key     string   `xml:"Key,attr,omitempty"`
	Success string   `xml:"Success,attr"`
	Amount  string   `xml:"Amount,attr,omitempty"`
	ErrCode string   `xml:"ErrCode,attr,omitempty"`
}

// cardData is validated field by field in declaration order; the first
// failing field decides the error code.
type cardData struct {
	PAN        string `validate:"required,number,min=12,max=19"`
	EMonth     string `validate:"required,number,max=2"`
	EYear      string `validate:"required,number,len=2"`
	SecureCode string `validate:"omitempty,number,min=3,max=4"`
}

var cardFieldErrCodes = map[string]string{
	"PAN":        block.ErrWrongPAN,
	"EMonth":     block.ErrWrongExpireDate,
	"EYear":      block.ErrCardExpired,
	"SecureCode": block.ErrWrongPayInfo,
}

func NewBlockHandler(cfg *config.Config, log *logger.Logger, eh *errors.ErrorHandler, store *BlockStore) *BlockHandler {
	return &BlockHandler{
		config:       cfg,
		logger:       log,
		errorHandler: eh,
		store:        store,
		validate:     validator.New(),
	}
}

func (h *BlockHandler) Block(c *gin.Context) {
	orderID := c.Query(block.ParamOrderID)
	response := BlockResponse{OrderID: orderID, Success: block.SuccessFalse}

	errCode := h.check(c)
	if errCode == "" {
		key := c.Query(block.ParamKey)
		amount := c.Query(block.ParamAmount)
		if h.store.Reserve(BlockRecord{OrderID: orderID, Amount: amount, Merchant: key}) {
			response.Success = block.SuccessTrue
			response.Key = key
			response.Amount = amount
		} else {
			errCode = block.ErrDuplicateOrderID
		}
	}
	response.ErrCode = errCode

	h.logger.Info("Block request handled", map[string]interface{}{
		"order_id": orderID,
		"success":  response.Success,
		"err_code": errCode,
	}, logger.ChannelGateway)

	// The gateway reports failures in the body, never in the status.
	c.XML(http.StatusOK, response)
}

// check returns the error code for the first invalid part of the request,
// or "" when the request may be blocked.
func (h *BlockHandler) check(c *gin.Context) string {
	key, ok := c.GetQuery(block.ParamKey)
	if !ok || key != h.config.MerchantKey {
		return block.ErrAccessDenied
	}

	orderID, ok := c.GetQuery(block.ParamOrderID)
	if !ok || orderID == "" {
		return block.ErrWrongParams
	}

	amount, ok := c.GetQuery(block.ParamAmount)
	if !ok {
		return block.ErrAmount
	}
	if err := h.validate.Var(amount, "required,number"); err != nil {
		return block.ErrAmount
	}
	if n, err := strconv.ParseInt(amount, 10, 64); err != nil || n <= 0 {
		return block.ErrAmount
	}

	encoded, ok := c.GetQuery(block.ParamPayInfo)
	if !ok || encoded == "" {
		return block.ErrWrongPayInfo
	}
	payInfo, err := block.DecodePayInfo(encoded)
	if err != nil {
		h.logger.Debug("Undecodable PayInfo", map[string]interface{}{
			"error": err.Error(),
		}, logger.ChannelGateway)
		return block.ErrWrongPayInfo
	}

	if code := h.checkCard(payInfo); code != "" {
		return code
	}

	if v, ok := payInfo.Get(block.FieldOrderID); ok && v != orderID {
		return block.ErrWrongPayInfo
	}
	if v, ok := payInfo.Get(block.FieldAmount); ok && v != amount {
		return block.ErrWrongPayInfo
	}
	return ""
}

func (h *BlockHandler) checkCard(payInfo block.PayInfo) string {
	var card cardData
	card.PAN, _ = payInfo.Get(block.FieldPAN)
	card.EMonth, _ = payInfo.Get(block.FieldEMonth)
	card.EYear, _ = payInfo.Get(block.FieldEYear)
	card.SecureCode, _ = payInfo.Get(block.FieldSecureCode)

	if err := h.validate.Struct(&card); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			return cardFieldErrCodes[fieldErrs[0].Field()]
		}
		return block.ErrWrongPayInfo
	}

	if month, _ := strconv.Atoi(card.EMonth); month < 1 || month > 12 {
		return block.ErrWrongExpireDate
	}
	return ""
}
