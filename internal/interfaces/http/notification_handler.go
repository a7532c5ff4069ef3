package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/straydog-api/internal/application/dto"
	"github.com/jhoicas/straydog-api/internal/application/usecase"
	"github.com/jhoicas/straydog-api/pkg/response"
)

// NotificationHandler serves /api/notifications. Every route acts on the caller's own notifications.
type NotificationHandler struct {
	uc *usecase.NotificationUseCase
}

// NewNotificationHandler builds the handler.
func NewNotificationHandler(uc *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List godoc
// @Summary      List my notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        read   query  bool  false  "filter by read state"
// @Param        page   query  int   false  "page"
// @Param        limit  query  int   false  "page size"
// @Success      200  {object}  response.Envelope{data=[]entity.Notification}
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	var read *bool
	if raw := c.Query("read"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "read must be true or false")
		}
		read = &b
	}
	res, err := h.uc.List(c.UserContext(), GetUserID(c), read, listQuery(c))
	if err != nil {
		return httpError(err, "Notification not found")
	}
	return c.JSON(response.Page("Notifications retrieved", res))
}

// UnreadCount godoc
// @Summary      Count my unread notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope{data=dto.CountResponse}
// @Router       /api/notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	n, err := h.uc.UnreadCount(c.UserContext(), GetUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(response.OK("Unread count retrieved", dto.CountResponse{Count: n}))
}

// MarkRead godoc
// @Summary      Mark a notification as read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "notification id"
// @Success      200  {object}  response.Envelope{data=entity.Notification}
// @Failure      404  {object}  response.Envelope
// @Router       /api/notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	n, err := h.uc.MarkRead(c.UserContext(), c.Params("id"), GetUserID(c))
	if err != nil {
		return httpError(err, "Notification not found")
	}
	return c.JSON(response.OK("Notification marked as read", n))
}

// MarkAllRead godoc
// @Summary      Mark all my notifications as read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope{data=dto.CountResponse}
// @Router       /api/notifications/read-all [patch]
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	n, err := h.uc.MarkAllRead(c.UserContext(), GetUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(response.OK("All notifications marked as read", dto.CountResponse{Count: n}))
}
