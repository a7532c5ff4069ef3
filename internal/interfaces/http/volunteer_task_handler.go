package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/straydog-api/internal/application/dto"
	"github.com/jhoicas/straydog-api/internal/application/usecase"
	"github.com/jhoicas/straydog-api/pkg/response"
)

const taskNotFound = "Task not found"

// VolunteerTaskHandler serves /api/volunteer-tasks.
type VolunteerTaskHandler struct {
	uc *usecase.VolunteerTaskUseCase
}

// NewVolunteerTaskHandler builds the handler.
func NewVolunteerTaskHandler(uc *usecase.VolunteerTaskUseCase) *VolunteerTaskHandler {
	return &VolunteerTaskHandler{uc: uc}
}

// taskError answers 404 "Volunteer not found" for a missing volunteer and
// the task message for everything else.
func taskError(err error) error {
	if errors.Is(err, usecase.ErrVolunteerNotFound) {
		return fiber.NewError(fiber.StatusNotFound, volunteerNotFound)
	}
	return httpError(err, taskNotFound)
}

// List godoc
// @Summary      List volunteer tasks
// @Tags         volunteer-tasks
// @Produce      json
// @Security     BearerAuth
// @Param        volunteerId  query  string  false  "volunteer filter"
// @Param        status       query  string  false  "PENDING, IN_PROGRESS, COMPLETED or CANCELLED"
// @Param        priority     query  string  false  "LOW, MEDIUM, HIGH or URGENT"
// @Param        page         query  int     false  "page"
// @Param        limit        query  int     false  "page size"
// @Success      200  {object}  response.Envelope{data=[]entity.VolunteerTask}
// @Router       /api/volunteer-tasks [get]
func (h *VolunteerTaskHandler) List(c *fiber.Ctx) error {
	var f dto.VolunteerTaskFilter
	if err := c.QueryParser(&f); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}
	res, err := h.uc.List(c.UserContext(), f, listQuery(c))
	if err != nil {
		return taskError(err)
	}
	return c.JSON(response.Page("Tasks retrieved", res))
}

// Mine godoc
// @Summary      Tasks of the caller's volunteer profile
// @Tags         volunteer-tasks
// @Produce      json
// @Security     BearerAuth
// @Param        status  query  string  false  "status filter"
// @Param        page    query  int     false  "page"
// @Param        limit   query  int     false  "page size"
// @Success      200  {object}  response.Envelope{data=[]entity.VolunteerTask}
// @Failure      404  {object}  response.Envelope
// @Router       /api/volunteer-tasks/my-tasks [get]
func (h *VolunteerTaskHandler) Mine(c *fiber.Ctx) error {
	var f dto.VolunteerTaskFilter
	if err := c.QueryParser(&f); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}
	res, err := h.uc.ListForUser(c.UserContext(), GetUserID(c), f, listQuery(c))
	if err != nil {
		return taskError(err)
	}
	return c.JSON(response.Page("Tasks retrieved", res))
}

// ByVolunteer godoc
// @Summary      Tasks of one volunteer
// @Tags         volunteer-tasks
// @Produce      json
// @Security     BearerAuth
// @Param        volunteerId  path   string  true   "volunteer id"
// @Param        page         query  int     false  "page"
// @Param        limit        query  int     false  "page size"
// @Success      200  {object}  response.Envelope{data=[]entity.VolunteerTask}
// @Router       /api/volunteer-tasks/volunteer/{volunteerId} [get]
func (h *VolunteerTaskHandler) ByVolunteer(c *fiber.Ctx) error {
	f := dto.VolunteerTaskFilter{VolunteerID: c.Params("volunteerId"), Status: c.Query("status")}
	res, err := h.uc.List(c.UserContext(), f, listQuery(c))
	if err != nil {
		return taskError(err)
	}
	return c.JSON(response.Page("Tasks retrieved", res))
}

// Get godoc
// @Summary      Get a volunteer task
// @Tags         volunteer-tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "task id"
// @Success      200  {object}  response.Envelope{data=entity.VolunteerTask}
// @Failure      404  {object}  response.Envelope
// @Router       /api/volunteer-tasks/{id} [get]
func (h *VolunteerTaskHandler) Get(c *fiber.Ctx) error {
	t, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return taskError(err)
	}
	return c.JSON(response.OK("Task retrieved", t))
}

// Create godoc
// @Summary      Assign a task to a volunteer
// @Tags         volunteer-tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateVolunteerTaskRequest  true  "task"
// @Success      201   {object}  response.Envelope{data=entity.VolunteerTask}
// @Failure      404   {object}  response.Envelope
// @Router       /api/volunteer-tasks [post]
func (h *VolunteerTaskHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVolunteerTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	t, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return taskError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(response.OK("Task created successfully", t))
}

// Update godoc
// @Summary      Update a volunteer task
// @Tags         volunteer-tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                          true  "task id"
// @Param        body  body      dto.UpdateVolunteerTaskRequest  true  "fields to change"
// @Success      200   {object}  response.Envelope{data=entity.VolunteerTask}
// @Router       /api/volunteer-tasks/{id} [put]
func (h *VolunteerTaskHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateVolunteerTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	t, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return taskError(err)
	}
	return c.JSON(response.OK("Task updated successfully", t))
}

// UpdateStatus godoc
// @Summary      Move a task along its lifecycle
// @Tags         volunteer-tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "task id"
// @Param        body  body      dto.TaskStatusRequest  true  "status and optional notes"
// @Success      200   {object}  response.Envelope{data=entity.VolunteerTask}
// @Router       /api/volunteer-tasks/{id}/status [patch]
func (h *VolunteerTaskHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.TaskStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	t, err := h.uc.UpdateStatus(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return taskError(err)
	}
	return c.JSON(response.OK("Task status updated", t))
}

// Delete godoc
// @Summary      Remove a volunteer task
// @Tags         volunteer-tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "task id"
// @Success      200  {object}  response.Envelope
// @Router       /api/volunteer-tasks/{id} [delete]
func (h *VolunteerTaskHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return taskError(err)
	}
	return c.JSON(response.OK("Task deleted successfully", nil))
}
