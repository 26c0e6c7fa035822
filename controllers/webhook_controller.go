package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/hazard-report/bot-go/dialog"
	"github.com/hazard-report/bot-go/messaging"
)

type WebhookController struct {
	Dialog *dialog.Controller
}

func NewWebhookController(dc *dialog.Controller) *WebhookController {
	return &WebhookController{Dialog: dc}
}

// Handle consumes one webhook delivery. Events in a batch belong to
// different users and are processed concurrently; ordering within a single
// user is preserved by the dialog controller's per-user lock.
func (wc *WebhookController) Handle(c *gin.Context) {
	var req messaging.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g, ctx := errgroup.WithContext(c.Request.Context())
	for _, event := range req.Events {
		event := event
		g.Go(func() error {
			return wc.Dialog.HandleEvent(ctx, event)
		})
	}

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Int("events", len(req.Events)).Msg("webhook batch failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process events"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true})
}
