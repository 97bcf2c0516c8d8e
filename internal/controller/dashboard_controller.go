package controller

import (
	"applicant-portal-be/internal/identity"
	"applicant-portal-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDashboardController interface {
	RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler)
	GetDashboard(ctx *fiber.Ctx) error
}

type dashboardController struct {
	service  service.IDashboardService
	provider identity.Provider
}

func NewDashboardController(service service.IDashboardService, provider identity.Provider) IDashboardController {
	return &dashboardController{service: service, provider: provider}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler) {
	h := r.Group("/dashboard", authMiddleware)
	h.Get("/", c.GetDashboard)
}

func (c *dashboardController) GetDashboard(ctx *fiber.Ctx) error {
	sessionID, _ := ctx.Locals("session_id").(string)
	session, found := c.provider.Resolve(sessionID)
	if !found {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"code":    401,
			"message": "session expired",
		})
	}

	res, err := c.service.GetDashboard(ctx.Context(), session)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"code":    500,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Dashboard resolved",
		"data":    res,
	})
}
