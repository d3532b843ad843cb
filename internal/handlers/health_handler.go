package handlers

import (
	"github.com/gofiber/fiber/v2"

	"resume-analyzer/internal/models"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// HandleHealth handles GET /health.
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(models.Success(fiber.Map{
		"status": "healthy",
	}))
}

// HandleRoot handles GET / with basic API information.
func (h *HealthHandler) HandleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "AI Resume Analyzer API",
		"version": "1.0.0",
		"endpoints": fiber.Map{
			"ats_score":   "/api/ats-score",
			"jd_match":    "/api/jd-match",
			"compare_jds": "/api/compare-jds",
			"health":      "/health",
		},
	})
}
