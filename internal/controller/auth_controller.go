package controller

import (
	"errors"

	"applicant-portal-be/internal/dto"
	"applicant-portal-be/internal/pkg/serverutils"
	"applicant-portal-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	SignIn(ctx *fiber.Ctx) error
	SignUp(ctx *fiber.Ctx) error
	SignOut(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/signin", c.SignIn)
	h.Post("/signup", c.SignUp)
	h.Post("/signout", c.SignOut)
}

func (c *authController) SignIn(ctx *fiber.Ctx) error {
	var req dto.SignInRequest
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

	res, err := c.service.SignIn(ctx.Context(), &req)
	if err != nil {
		return authErrorResponse(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Signed in successfully",
		"data":    res,
	})
}

func (c *authController) SignUp(ctx *fiber.Ctx) error {
	var req dto.SignUpRequest
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

	res, err := c.service.SignUp(ctx.Context(), &req)
	if err != nil {
		return authErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"code":    201,
		"message": "Account created successfully",
		"data":    res,
	})
}

// SignOut always answers success: a sign-out that fails server-side still
// ends the caller's session from their point of view.
func (c *authController) SignOut(ctx *fiber.Ctx) error {
	var req dto.SignOutRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if req.SessionId == "" {
		if id, ok := ctx.Locals("session_id").(string); ok {
			req.SessionId = id
		}
	}

	if err := c.service.SignOut(ctx.Context(), req.SessionId); err != nil {
		if errors.Is(err, service.ErrOperationInFlight) {
			return authErrorResponse(ctx, err)
		}
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Signed out successfully",
		"data":    nil,
	})
}

func authErrorResponse(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrOperationInFlight) {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"code":    409,
			"message": err.Error(),
		})
	}

	authErr := service.AsAuthError(err)
	status := fiber.StatusInternalServerError
	switch authErr.Kind {
	case service.KindValidation:
		status = fiber.StatusBadRequest
	case service.KindCredential:
		status = fiber.StatusUnauthorized
	case service.KindNetwork:
		status = fiber.StatusBadGateway
	}
	return ctx.Status(status).JSON(fiber.Map{
		"success": false,
		"code":    status,
		"message": authErr.Message,
	})
}
