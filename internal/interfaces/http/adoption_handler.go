package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/straydog-api/internal/application/dto"
	"github.com/jhoicas/straydog-api/internal/application/usecase"
	"github.com/jhoicas/straydog-api/pkg/response"
)

const dogNotFound = "Dog not found"

// AdoptionHandler serves /api/adoptions.
type AdoptionHandler struct {
	uc *usecase.AdoptionUseCase
}

// NewAdoptionHandler builds the handler.
func NewAdoptionHandler(uc *usecase.AdoptionUseCase) *AdoptionHandler {
	return &AdoptionHandler{uc: uc}
}

// List godoc
// @Summary      List dogs for adoption
// @Tags         adoptions
// @Produce      json
// @Param        status  query  string  false  "AVAILABLE, PENDING or ADOPTED"
// @Param        size    query  string  false  "SMALL, MEDIUM or LARGE"
// @Param        gender  query  string  false  "MALE, FEMALE or UNKNOWN"
// @Param        page    query  int     false  "page"
// @Param        limit   query  int     false  "page size"
// @Success      200  {object}  response.Envelope{data=[]entity.AdoptionDog}
// @Router       /api/adoptions [get]
func (h *AdoptionHandler) List(c *fiber.Ctx) error {
	var f dto.AdoptionDogFilter
	if err := c.QueryParser(&f); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}
	res, err := h.uc.List(c.UserContext(), f, listQuery(c))
	if err != nil {
		return httpError(err, dogNotFound)
	}
	return c.JSON(response.Page("Dogs retrieved", res))
}

// Get godoc
// @Summary      Get a dog listed for adoption
// @Tags         adoptions
// @Produce      json
// @Param        id   path      string  true  "dog id"
// @Success      200  {object}  response.Envelope{data=entity.AdoptionDog}
// @Failure      404  {object}  response.Envelope
// @Router       /api/adoptions/{id} [get]
func (h *AdoptionHandler) Get(c *fiber.Ctx) error {
	d, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return httpError(err, dogNotFound)
	}
	return c.JSON(response.OK("Dog retrieved", d))
}

// Create godoc
// @Summary      List a dog for adoption
// @Tags         adoptions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateAdoptionDogRequest  true  "dog"
// @Success      201   {object}  response.Envelope{data=entity.AdoptionDog}
// @Router       /api/adoptions [post]
func (h *AdoptionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAdoptionDogRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	d, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return httpError(err, dogNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(response.OK("Dog added for adoption successfully", d))
}

// Update godoc
// @Summary      Update a listed dog
// @Tags         adoptions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                        true  "dog id"
// @Param        body  body      dto.UpdateAdoptionDogRequest  true  "fields to change"
// @Success      200   {object}  response.Envelope{data=entity.AdoptionDog}
// @Router       /api/adoptions/{id} [put]
func (h *AdoptionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAdoptionDogRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	d, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return httpError(err, dogNotFound)
	}
	return c.JSON(response.OK("Dog updated successfully", d))
}

// UpdateStatus godoc
// @Summary      Change the availability of a listed dog
// @Tags         adoptions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "dog id"
// @Param        body  body      dto.StatusRequest  true  "AVAILABLE, PENDING or ADOPTED"
// @Success      200   {object}  response.Envelope{data=entity.AdoptionDog}
// @Failure      404   {object}  response.Envelope
// @Router       /api/adoptions/{id}/status [patch]
func (h *AdoptionHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.StatusRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	d, err := h.uc.UpdateStatus(c.UserContext(), c.Params("id"), in.Status)
	if err != nil {
		return httpError(err, dogNotFound)
	}
	return c.JSON(response.OK("Adoption status updated", d))
}

// Delete godoc
// @Summary      Remove a listed dog
// @Tags         adoptions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "dog id"
// @Success      200  {object}  response.Envelope
// @Router       /api/adoptions/{id} [delete]
func (h *AdoptionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return httpError(err, dogNotFound)
	}
	return c.JSON(response.OK("Dog deleted successfully", nil))
}
