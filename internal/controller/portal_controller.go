package controller

import (
	"errors"
	"strings"

	"applicant-portal-be/internal/dto"
	"applicant-portal-be/internal/identity"
	"applicant-portal-be/internal/navigation"
	"applicant-portal-be/internal/pkg/serverutils"
	"applicant-portal-be/internal/service"
	"applicant-portal-be/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

type IPortalController interface {
	RegisterRoutes(r fiber.Router)
	View(ctx *fiber.Ctx) error
	State(ctx *fiber.Ctx) error
	Navigate(ctx *fiber.Ctx) error
	SignupPrefill(ctx *fiber.Ctx) error
}

type portalController struct {
	portal    service.IPortalService
	provider  identity.Provider
	jwtSecret string
}

func NewPortalController(portal service.IPortalService, provider identity.Provider, jwtSecret string) IPortalController {
	return &portalController{portal: portal, provider: provider, jwtSecret: jwtSecret}
}

func (c *portalController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/portal")
	h.Get("/view", c.View)
	h.Get("/state", c.State)
	h.Post("/navigate", c.Navigate)
	h.Get("/signup-prefill", c.SignupPrefill)
}

// View resolves a path the way a fresh page load would: the session comes
// from an optional bearer token, not from the portal state machine, so every
// request is answered independently.
func (c *portalController) View(ctx *fiber.Ctx) error {
	path := ctx.Query("path", navigation.PathRoot)
	authenticated := c.resolveSession(ctx) != nil

	page := navigation.Resolve(path, authenticated)
	res := &dto.PortalViewResponse{Page: string(page)}
	if action, ok := navigation.RedirectFor(path, authenticated); ok {
		res.Redirect = &dto.HistoryActionResponse{Path: action.Path, Replace: action.Replace}
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "View resolved",
		"data":    res,
	})
}

func (c *portalController) State(ctx *fiber.Ctx) error {
	view := c.portal.CurrentView()
	res := &dto.PortalStateResponse{
		State: string(view.State),
		Page:  string(view.Page),
	}
	if view.Session != nil {
		res.UserId = view.Session.UserId
		res.Email = view.Session.Email
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Portal state",
		"data":    res,
	})
}

func (c *portalController) Navigate(ctx *fiber.Ctx) error {
	var req dto.NavigateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": err.Error(),
		})
	}

	action, err := c.portal.Navigate(navigation.Page(req.Page))
	if err != nil {
		if errors.Is(err, service.ErrAlreadyAuthenticated) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false,
				"code":    409,
				"message": err.Error(),
			})
		}
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Navigation applied",
		"data":    &dto.HistoryActionResponse{Path: action.Path, Replace: action.Replace},
	})
}

// SignupPrefill echoes the contact id a signup link carries so the form can
// prefill it.
func (c *portalController) SignupPrefill(ctx *fiber.Ctx) error {
	contactID := ctx.Query("contactId")
	if contactID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": "contactId query parameter is required",
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Prefill resolved",
		"data":    &dto.SignupPrefillResponse{ContactId: contactID},
	})
}

func (c *portalController) resolveSession(ctx *fiber.Ctx) *store.Session {
	authHeader := ctx.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte(c.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	sessionID, ok := claims["session_id"].(string)
	if !ok {
		return nil
	}
	session, found := c.provider.Resolve(sessionID)
	if !found {
		return nil
	}
	return session
}
