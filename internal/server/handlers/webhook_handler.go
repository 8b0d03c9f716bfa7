package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/herdmethane/internal/domain/models"
	"github.com/mamadbah2/herdmethane/internal/monitoring"
	service "github.com/mamadbah2/herdmethane/internal/service/whatsapp"
)

// WebhookHandler exposes the chat channel over Meta's webhook contract.
type WebhookHandler struct {
	svc    service.MessagingService
	logger *zap.Logger
}

// NewWebhookHandler wires the messaging service behind the webhook routes.
func NewWebhookHandler(svc service.MessagingService, logger *zap.Logger) *WebhookHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WebhookHandler{svc: svc, logger: logger}
}

// Verify responds to Meta's webhook verification challenge.
func (h *WebhookHandler) Verify(c *gin.Context) {
	resp, err := h.svc.VerifyWebhookToken(c.Query("hub.mode"), c.Query("hub.verify_token"), c.Query("hub.challenge"))
	if err != nil {
		h.logger.Warn("webhook subscription refused", zap.String("mode", c.Query("hub.mode")), zap.Error(err))
		c.String(http.StatusForbidden, "verification failed")
		return
	}

	c.String(http.StatusOK, resp)
}

// Receive ingests chat callbacks. Any payload that binds is acknowledged with 200, including
// ones whose reply failed.
func (h *WebhookHandler) Receive(c *gin.Context) {
	var payload models.WebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		monitoring.WebhookPayloadsTotal.WithLabelValues(monitoring.StatusInvalidInput).Inc()
		h.logger.Warn("rejected webhook body", zap.Error(err))
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid payload"})
		return
	}

	status := monitoring.StatusOK
	if err := h.svc.HandleWebhook(c.Request.Context(), payload); err != nil {
		status = monitoring.StatusError
		h.logger.Error("chat reply failed", zap.String("object", payload.Object), zap.Error(err))
	}
	monitoring.WebhookPayloadsTotal.WithLabelValues(status).Inc()

	c.Status(http.StatusOK)
}
