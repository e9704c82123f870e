package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Gunvolt24/cinema_tickets/internal/domain"
	"github.com/Gunvolt24/cinema_tickets/internal/ports"
	"github.com/Gunvolt24/cinema_tickets/pkg/validate"
	"github.com/gin-gonic/gin"
)

const (
	defaultHandlerTimeout = 5 * time.Second
	maxBodyBytes          = 64 << 10
)

// errorResponse — тело ответа при отказе.
type errorResponse struct {
	Error  string        `json:"error"`
	Reason domain.Reason `json:"reason,omitempty"`
}

type Handler struct {
	service ports.TicketPurchaser
	log     ports.Logger
	timeout time.Duration
}

func NewHandler(service ports.TicketPurchaser, log ports.Logger, timeout time.Duration) *Handler {
	if timeout <= 0 {
		timeout = defaultHandlerTimeout
	}
	return &Handler{service: service, log: log, timeout: timeout}
}

// purchase — POST /purchases: 204 при успехе.
func (h *Handler) purchase(c *gin.Context) {
	accountID, requests, ok := h.bindPurchase(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if err := h.service.PurchaseTickets(ctx, accountID, requests); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// validatePurchase — POST /purchases/validate: расчёт без оплаты и резерва.
func (h *Handler) validatePurchase(c *gin.Context) {
	accountID, requests, ok := h.bindPurchase(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	order, err := h.service.Quote(ctx, accountID, requests)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) bindPurchase(c *gin.Context) (int64, []domain.TicketRequest, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "cannot read request body", Reason: domain.ReasonMalformedRequest})
		return 0, nil, false
	}

	accountID, requests, err := validate.DecodeTicketRequests(raw)
	if err != nil {
		h.writeError(c, err)
		return 0, nil, false
	}
	return accountID, requests, true
}

// writeError: отказ валидации — 400/422 с причиной, прочее — 500 без деталей.
func (h *Handler) writeError(c *gin.Context, err error) {
	ctx := c.Request.Context()
	if errors.Is(err, domain.ErrInvalidPurchase) {
		reason, _ := domain.ReasonOf(err)
		status := http.StatusUnprocessableEntity
		if reason == domain.ReasonMalformedRequest {
			status = http.StatusBadRequest
		}
		c.JSON(status, errorResponse{Error: err.Error(), Reason: reason})
		return
	}

	if errors.Is(err, context.DeadlineExceeded) {
		h.log.Errorf(ctx, "purchase timed out: %v", err)
		c.JSON(http.StatusGatewayTimeout, errorResponse{Error: "purchase timed out"})
		return
	}

	h.log.Errorf(ctx, "purchase failed: %v", err)
	c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}
