package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

func (hc *HealthController) Check(c *gin.Context) {
	sqlDB, err := hc.DB.DB()
	if err != nil || sqlDB.Ping() != nil {
		c.JSON(http.StatusServiceUnavailable, StandardResponse{
			Success: false,
			Message: "Database unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Message: "OK"})
}
