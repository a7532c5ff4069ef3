package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/straydog-api/internal/application/dto"
	"github.com/jhoicas/straydog-api/internal/application/usecase"
	"github.com/jhoicas/straydog-api/pkg/response"
)

const postNotFound = "Post not found"

// ForumHandler serves /api/forum.
type ForumHandler struct {
	uc *usecase.ForumUseCase
}

// NewForumHandler builds the handler.
func NewForumHandler(uc *usecase.ForumUseCase) *ForumHandler {
	return &ForumHandler{uc: uc}
}

// List godoc
// @Summary      List forum posts
// @Description  Pinned posts first, then newest.
// @Tags         forum
// @Produce      json
// @Param        category  query  string  false  "category filter"
// @Param        page      query  int     false  "page"
// @Param        limit     query  int     false  "page size"
// @Success      200  {object}  response.Envelope{data=[]entity.ForumPost}
// @Router       /api/forum [get]
func (h *ForumHandler) List(c *fiber.Ctx) error {
	var f dto.ForumPostFilter
	if err := c.QueryParser(&f); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}
	res, err := h.uc.List(c.UserContext(), f, listQuery(c))
	if err != nil {
		return httpError(err, postNotFound)
	}
	return c.JSON(response.Page("Posts retrieved", res))
}

// Get godoc
// @Summary      Get a forum post
// @Tags         forum
// @Produce      json
// @Param        id   path      string  true  "post id"
// @Success      200  {object}  response.Envelope{data=entity.ForumPost}
// @Failure      404  {object}  response.Envelope
// @Router       /api/forum/{id} [get]
func (h *ForumHandler) Get(c *fiber.Ctx) error {
	p, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return httpError(err, postNotFound)
	}
	return c.JSON(response.OK("Post retrieved", p))
}

// Create godoc
// @Summary      Start a forum thread
// @Tags         forum
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateForumPostRequest  true  "post"
// @Success      201   {object}  response.Envelope{data=entity.ForumPost}
// @Router       /api/forum [post]
func (h *ForumHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateForumPostRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	p, err := h.uc.Create(c.UserContext(), CurrentUser(c), in)
	if err != nil {
		return httpError(err, postNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(response.OK("Post created successfully", p))
}

// Comment godoc
// @Summary      Comment on a post
// @Tags         forum
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "post id"
// @Param        body  body      dto.ContentRequest  true  "comment"
// @Success      200   {object}  response.Envelope{data=entity.ForumPost}
// @Failure      403   {object}  response.Envelope
// @Failure      404   {object}  response.Envelope
// @Router       /api/forum/{id}/comments [post]
func (h *ForumHandler) Comment(c *fiber.Ctx) error {
	var in dto.ContentRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	p, err := h.uc.Comment(c.UserContext(), c.Params("id"), CurrentUser(c), in.Content)
	if err != nil {
		return httpError(err, postNotFound)
	}
	return c.JSON(response.OK("Comment added", p))
}
