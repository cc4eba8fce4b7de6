package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendsim/vendsim/internal/apperrors"
	portssvc "github.com/vendsim/vendsim/internal/core/ports/services"
	"github.com/vendsim/vendsim/internal/dto"
	"github.com/vendsim/vendsim/internal/middleware"
)

// sessionHandler handles HTTP intents against the transaction session.
type sessionHandler struct {
	sessionService portssvc.SessionSvcFacade
}

// newSessionHandler creates a new sessionHandler.
func newSessionHandler(ss portssvc.SessionSvcFacade) *sessionHandler {
	return &sessionHandler{sessionService: ss}
}

// registerSessionRoutes registers the intent routes of the session.
func registerSessionRoutes(rg *gin.RouterGroup, sessionService portssvc.SessionSvcFacade) {
	h := newSessionHandler(sessionService)

	session := rg.Group("/session")
	{
		session.GET("", h.getSession)
		session.POST("/product", h.selectProduct)
		session.POST("/currency", h.selectCurrency)
		session.POST("/payment-type", h.selectPaymentType)
		session.POST("/cash/coin", h.insertDenomination)
		session.POST("/cash/pay", h.payCash)
		session.GET("/cash/buttons", h.cashButtons)
		session.POST("/card/account", h.selectAccount)
		session.POST("/card/card", h.selectCard)
		session.POST("/card/pay", h.payCard)
		session.GET("/change", h.changeTable)
		session.GET("/denominations", h.denominationsTable)
		session.POST("/reset", h.reset)
	}
}

func (h *sessionHandler) getSession(c *gin.Context) {
	c.JSON(http.StatusOK, h.sessionService.Snapshot(c.Request.Context()))
}

func (h *sessionHandler) selectProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SelectProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SelectProduct", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.sessionService.SelectProduct(c.Request.Context(), req)
	if err != nil {
		respondIntentError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *sessionHandler) selectCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SelectCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SelectCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.sessionService.SelectCurrency(c.Request.Context(), req)
	if err != nil {
		respondIntentError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *sessionHandler) selectPaymentType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SelectPaymentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SelectPaymentType", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.sessionService.SelectPaymentType(c.Request.Context(), req)
	if err != nil {
		respondIntentError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *sessionHandler) insertDenomination(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.InsertDenominationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for InsertDenomination", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.sessionService.InsertDenomination(c.Request.Context(), req)
	if err != nil {
		respondIntentError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *sessionHandler) payCash(c *gin.Context) {
	resp, err := h.sessionService.PayCash(c.Request.Context())
	if err != nil {
		respondIntentError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *sessionHandler) cashButtons(c *gin.Context) {
	resp, err := h.sessionService.CashButtons(c.Request.Context())
	if err != nil {
		respondIntentError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *sessionHandler) selectAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SelectAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SelectAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.sessionService.SelectAccount(c.Request.Context(), req)
	if err != nil {
		respondIntentError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *sessionHandler) selectCard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SelectCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SelectCard", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.sessionService.SelectCard(c.Request.Context(), req)
	if err != nil {
		respondIntentError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *sessionHandler) payCard(c *gin.Context) {
	resp, err := h.sessionService.PayCard(c.Request.Context())
	if err != nil {
		respondIntentError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *sessionHandler) changeTable(c *gin.Context) {
	resp, err := h.sessionService.ChangeTable(c.Request.Context())
	if err != nil {
		respondIntentError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *sessionHandler) denominationsTable(c *gin.Context) {
	resp, err := h.sessionService.DenominationsTable(c.Request.Context())
	if err != nil {
		respondIntentError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *sessionHandler) reset(c *gin.Context) {
	c.JSON(http.StatusOK, h.sessionService.Reset(c.Request.Context()))
}

// respondIntentError maps a transaction failure to an HTTP status. Every
// rule violation is a recoverable validation failure, never a crash.
func respondIntentError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrInvalidCurrency),
		errors.Is(err, apperrors.ErrInvalidPaymentType),
		errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrProductNotSelected),
		errors.Is(err, apperrors.ErrAccountNotSelected),
		errors.Is(err, apperrors.ErrCardNotSelected),
		errors.Is(err, apperrors.ErrInsufficientFunds),
		errors.Is(err, apperrors.ErrInsufficientChange),
		errors.Is(err, apperrors.ErrInsufficientBalance):
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
