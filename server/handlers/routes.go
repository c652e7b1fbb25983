package handlers

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every handler into the router under /api/v1.
func RegisterRoutes(router *gin.Engine, discounts *DiscountHandler, templates *TemplateHandler) {
	router.GET("/health", HandleHealth)

	api := router.Group("/api/v1")

	discountsAPI := api.Group("/discounts")
	{
		discountsAPI.POST("/report", discounts.HandleDiscountReport)
		discountsAPI.POST("/output", discounts.HandleDiscountOutput)
		discountsAPI.POST("/issues", discounts.HandleDiscountIssues)
	}

	templatesAPI := api.Group("/templates")
	{
		templatesAPI.GET("/input", templates.HandleInputTemplate)
	}
}
