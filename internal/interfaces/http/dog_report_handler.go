package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/straydog-api/internal/application/dto"
	"github.com/jhoicas/straydog-api/internal/application/usecase"
	"github.com/jhoicas/straydog-api/pkg/response"
)

const reportNotFound = "Report not found"

// DogReportHandler serves /api/dog-reports.
type DogReportHandler struct {
	uc *usecase.DogReportUseCase
}

// NewDogReportHandler builds the handler.
func NewDogReportHandler(uc *usecase.DogReportUseCase) *DogReportHandler {
	return &DogReportHandler{uc: uc}
}

// List godoc
// @Summary      List dog reports
// @Tags         dog-reports
// @Produce      json
// @Param        status     query  string  false  "status filter"
// @Param        condition  query  string  false  "condition filter"
// @Param        page       query  int     false  "page (default 1)"
// @Param        limit      query  int     false  "page size 1..100 (default 10)"
// @Success      200  {object}  response.Envelope{data=[]entity.DogReport}
// @Router       /api/dog-reports [get]
func (h *DogReportHandler) List(c *fiber.Ctx) error {
	var f dto.DogReportFilter
	if err := c.QueryParser(&f); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}
	res, err := h.uc.List(c.UserContext(), f, listQuery(c))
	if err != nil {
		return httpError(err, reportNotFound)
	}
	return c.JSON(response.Page("Reports retrieved", res))
}

// Get godoc
// @Summary      Get a dog report
// @Tags         dog-reports
// @Produce      json
// @Param        id   path      string  true  "report id"
// @Success      200  {object}  response.Envelope{data=entity.DogReport}
// @Failure      404  {object}  response.Envelope
// @Router       /api/dog-reports/{id} [get]
func (h *DogReportHandler) Get(c *fiber.Ctx) error {
	r, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return httpError(err, reportNotFound)
	}
	return c.JSON(response.OK("Report retrieved", r))
}

// Create godoc
// @Summary      Report a stray dog
// @Tags         dog-reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateDogReportRequest  true  "report"
// @Success      201   {object}  response.Envelope{data=entity.DogReport}
// @Failure      400   {object}  response.Envelope
// @Router       /api/dog-reports [post]
func (h *DogReportHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDogReportRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	r, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return httpError(err, reportNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(response.OK("Report created successfully", r))
}

// Update godoc
// @Summary      Update a dog report
// @Tags         dog-reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                      true  "report id"
// @Param        body  body      dto.UpdateDogReportRequest  true  "fields to change"
// @Success      200   {object}  response.Envelope{data=entity.DogReport}
// @Failure      404   {object}  response.Envelope
// @Router       /api/dog-reports/{id} [put]
func (h *DogReportHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDogReportRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	r, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return httpError(err, reportNotFound)
	}
	return c.JSON(response.OK("Report updated successfully", r))
}

// Delete godoc
// @Summary      Delete a dog report
// @Tags         dog-reports
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "report id"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /api/dog-reports/{id} [delete]
func (h *DogReportHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return httpError(err, reportNotFound)
	}
	return c.JSON(response.OK("Report deleted successfully", nil))
}

// Assign godoc
// @Summary      Assign a volunteer to a report
// @Tags         dog-reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                      true  "report id"
// @Param        body  body      dto.AssignVolunteerRequest  true  "volunteer"
// @Success      200   {object}  response.Envelope{data=entity.DogReport}
// @Failure      404   {object}  response.Envelope
// @Router       /api/dog-reports/{id}/assign [patch]
func (h *DogReportHandler) Assign(c *fiber.Ctx) error {
	var in dto.AssignVolunteerRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	r, err := h.uc.Assign(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return httpError(err, "Report or volunteer not found")
	}
	return c.JSON(response.OK("Volunteer assigned successfully", r))
}

// AddNote godoc
// @Summary      Add a note to a report
// @Tags         dog-reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "report id"
// @Param        body  body      dto.ContentRequest  true  "note"
// @Success      200   {object}  response.Envelope{data=entity.DogReport}
// @Failure      404   {object}  response.Envelope
// @Router       /api/dog-reports/{id}/notes [post]
func (h *DogReportHandler) AddNote(c *fiber.Ctx) error {
	var in dto.ContentRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	r, err := h.uc.AddNote(c.UserContext(), c.Params("id"), CurrentUser(c).Name, in.Content)
	if err != nil {
		return httpError(err, reportNotFound)
	}
	return c.JSON(response.OK("Note added successfully", r))
}

// listQuery reads page and limit after PaginationRules accepted them. Absent
// values are zero and take the pagination defaults.
func listQuery(c *fiber.Ctx) dto.ListQuery {
	return dto.ListQuery{Page: c.QueryInt("page"), Limit: c.QueryInt("limit")}
}
