package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/straydog-api/internal/application/dto"
	"github.com/jhoicas/straydog-api/internal/application/usecase"
	"github.com/jhoicas/straydog-api/pkg/response"
)

const volunteerNotFound = "Volunteer not found"

// VolunteerHandler serves /api/volunteers.
type VolunteerHandler struct {
	uc *usecase.VolunteerUseCase
}

// NewVolunteerHandler builds the handler.
func NewVolunteerHandler(uc *usecase.VolunteerUseCase) *VolunteerHandler {
	return &VolunteerHandler{uc: uc}
}

// List godoc
// @Summary      List volunteers
// @Tags         volunteers
// @Produce      json
// @Param        status  query  string  false  "status filter"
// @Param        role    query  string  false  "role filter"
// @Param        page    query  int     false  "page"
// @Param        limit   query  int     false  "page size"
// @Success      200  {object}  response.Envelope{data=[]entity.Volunteer}
// @Router       /api/volunteers [get]
func (h *VolunteerHandler) List(c *fiber.Ctx) error {
	var f dto.VolunteerFilter
	if err := c.QueryParser(&f); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}
	res, err := h.uc.List(c.UserContext(), f, listQuery(c))
	if err != nil {
		return httpError(err, volunteerNotFound)
	}
	return c.JSON(response.Page("Volunteers retrieved", res))
}

// Get godoc
// @Summary      Get a volunteer
// @Tags         volunteers
// @Produce      json
// @Param        id   path      string  true  "volunteer id"
// @Success      200  {object}  response.Envelope{data=entity.Volunteer}
// @Failure      404  {object}  response.Envelope
// @Router       /api/volunteers/{id} [get]
func (h *VolunteerHandler) Get(c *fiber.Ctx) error {
	v, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return httpError(err, volunteerNotFound)
	}
	return c.JSON(response.OK("Volunteer retrieved", v))
}

// GetByUser godoc
// @Summary      Volunteer profile of a user
// @Tags         volunteers
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "user id"
// @Success      200     {object}  response.Envelope{data=entity.Volunteer}
// @Failure      404     {object}  response.Envelope
// @Router       /api/volunteers/user/{userId} [get]
func (h *VolunteerHandler) GetByUser(c *fiber.Ctx) error {
	v, err := h.uc.GetByUserID(c.UserContext(), c.Params("userId"))
	if err != nil {
		return httpError(err, "Volunteer profile not found")
	}
	return c.JSON(response.OK("Volunteer retrieved", v))
}

// Register godoc
// @Summary      Apply as a volunteer
// @Tags         volunteers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.RegisterVolunteerRequest  true  "application"
// @Success      201   {object}  response.Envelope{data=entity.Volunteer}
// @Failure      400   {object}  response.Envelope
// @Router       /api/volunteers/register [post]
func (h *VolunteerHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterVolunteerRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	v, err := h.uc.Register(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return httpError(err, volunteerNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(response.OK("Volunteer registration submitted", v))
}

// UpdateStatus godoc
// @Summary      Review a volunteer application
// @Tags         volunteers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "volunteer id"
// @Param        body  body      dto.StatusRequest  true  "status"
// @Success      200   {object}  response.Envelope{data=entity.Volunteer}
// @Failure      404   {object}  response.Envelope
// @Router       /api/volunteers/{id}/status [patch]
func (h *VolunteerHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.StatusRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	v, err := h.uc.UpdateStatus(c.UserContext(), c.Params("id"), in.Status)
	if err != nil {
		return httpError(err, volunteerNotFound)
	}
	return c.JSON(response.OK(usecase.StatusMessage("Volunteer", in.Status), v))
}
