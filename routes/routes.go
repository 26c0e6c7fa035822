package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hazard-report/bot-go/config"
	"github.com/hazard-report/bot-go/controllers"
	"github.com/hazard-report/bot-go/dialog"
	"github.com/hazard-report/bot-go/middleware"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, dc *dialog.Controller, botConfig *config.BotConfig) {
	healthController := controllers.NewHealthController(db)
	webhookController := controllers.NewWebhookController(dc)

	r.GET("/health", healthController.Check)

	webhook := r.Group("/webhook")
	webhook.Use(middleware.SignatureMiddleware(botConfig.ChannelSecret))
	{
		webhook.POST("", webhookController.Handle)
	}
}
