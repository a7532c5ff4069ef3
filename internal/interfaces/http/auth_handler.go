package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/straydog-api/internal/application/auth"
	"github.com/jhoicas/straydog-api/internal/application/dto"
	"github.com/jhoicas/straydog-api/pkg/response"
)

// AuthHandler handles registration, login and the current user.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler builds the auth handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Register a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegisterRequest  true  "name, email, password"
// @Success      201   {object}  response.Envelope{data=dto.AuthResponse}
// @Failure      400   {object}  response.Envelope
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return httpError(err, "User not found")
	}
	return c.Status(fiber.StatusCreated).JSON(response.OK("Registration successful", out))
}

// Login godoc
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequest  true  "email, password"
// @Success      200   {object}  response.Envelope{data=dto.AuthResponse}
// @Failure      401   {object}  response.Envelope
// @Failure      403   {object}  response.Envelope
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return httpError(err, "User not found")
	}
	return c.JSON(response.OK("Login successful", out))
}

// Me godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope{data=dto.UserResponse}
// @Failure      401  {object}  response.Envelope
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(response.OK("User retrieved", auth.ToUserResponse(CurrentUser(c))))
}
