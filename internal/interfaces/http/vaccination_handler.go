package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/straydog-api/internal/application/dto"
	"github.com/jhoicas/straydog-api/internal/application/usecase"
	"github.com/jhoicas/straydog-api/pkg/response"
)

const vaccinationNotFound = "Vaccination record not found"

// VaccinationHandler serves /api/vaccinations.
type VaccinationHandler struct {
	uc *usecase.VaccinationUseCase
}

// NewVaccinationHandler builds the handler.
func NewVaccinationHandler(uc *usecase.VaccinationUseCase) *VaccinationHandler {
	return &VaccinationHandler{uc: uc}
}

// List godoc
// @Summary      List vaccination records
// @Tags         vaccinations
// @Produce      json
// @Security     BearerAuth
// @Param        dogReportId  query  string  false  "linked report"
// @Param        page         query  int     false  "page"
// @Param        limit        query  int     false  "page size"
// @Success      200  {object}  response.Envelope{data=[]entity.Vaccination}
// @Router       /api/vaccinations [get]
func (h *VaccinationHandler) List(c *fiber.Ctx) error {
	var f dto.VaccinationFilter
	if err := c.QueryParser(&f); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}
	res, err := h.uc.List(c.UserContext(), f, listQuery(c))
	if err != nil {
		return httpError(err, vaccinationNotFound)
	}
	return c.JSON(response.Page("Vaccination records retrieved", res))
}

// Get godoc
// @Summary      Get a vaccination record
// @Tags         vaccinations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "record id"
// @Success      200  {object}  response.Envelope{data=entity.Vaccination}
// @Failure      404  {object}  response.Envelope
// @Router       /api/vaccinations/{id} [get]
func (h *VaccinationHandler) Get(c *fiber.Ctx) error {
	v, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return httpError(err, vaccinationNotFound)
	}
	return c.JSON(response.OK("Vaccination record retrieved", v))
}

// Create godoc
// @Summary      Open a vaccination record
// @Tags         vaccinations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateVaccinationRequest  true  "record"
// @Success      201   {object}  response.Envelope{data=entity.Vaccination}
// @Router       /api/vaccinations [post]
func (h *VaccinationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVaccinationRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	v, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return httpError(err, vaccinationNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(response.OK("Vaccination record created successfully", v))
}

// AddRecord godoc
// @Summary      Append a vaccination
// @Tags         vaccinations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                        true  "record id"
// @Param        body  body      dto.VaccinationRecordRequest  true  "vaccination"
// @Success      200   {object}  response.Envelope{data=entity.Vaccination}
// @Failure      404   {object}  response.Envelope
// @Router       /api/vaccinations/{id}/records [post]
func (h *VaccinationHandler) AddRecord(c *fiber.Ctx) error {
	var in dto.VaccinationRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	v, err := h.uc.AddRecord(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return httpError(err, vaccinationNotFound)
	}
	return c.JSON(response.OK("Vaccination added to record", v))
}

// Delete godoc
// @Summary      Delete a vaccination record
// @Tags         vaccinations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "record id"
// @Success      200  {object}  response.Envelope
// @Router       /api/vaccinations/{id} [delete]
func (h *VaccinationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return httpError(err, vaccinationNotFound)
	}
	return c.JSON(response.OK("Vaccination record deleted successfully", nil))
}
