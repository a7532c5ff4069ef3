package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/straydog-api/internal/application/dto"
	"github.com/jhoicas/straydog-api/internal/application/usecase"
	"github.com/jhoicas/straydog-api/internal/domain"
	"github.com/jhoicas/straydog-api/pkg/response"
)

const donationNotFound = "Donation not found"

// DonationHandler serves /api/donations.
type DonationHandler struct {
	uc *usecase.DonationUseCase
}

// NewDonationHandler builds the handler.
func NewDonationHandler(uc *usecase.DonationUseCase) *DonationHandler {
	return &DonationHandler{uc: uc}
}

// List godoc
// @Summary      List donations
// @Tags         donations
// @Produce      json
// @Security     BearerAuth
// @Param        status  query  string  false  "PENDING, COMPLETED, FAILED or REFUNDED"
// @Param        page    query  int     false  "page"
// @Param        limit   query  int     false  "page size"
// @Success      200  {object}  response.Envelope{data=[]entity.Donation}
// @Router       /api/donations [get]
func (h *DonationHandler) List(c *fiber.Ctx) error {
	var f dto.DonationFilter
	if err := c.QueryParser(&f); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}
	res, err := h.uc.List(c.UserContext(), f, listQuery(c))
	if err != nil {
		return httpError(err, donationNotFound)
	}
	return c.JSON(response.Page("Donations retrieved", res))
}

// Create godoc
// @Summary      Make a donation
// @Description  Public. A valid bearer token links the donation to the caller.
// @Tags         donations
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateDonationRequest  true  "donation"
// @Success      201   {object}  response.Envelope{data=entity.Donation}
// @Failure      400   {object}  response.Envelope
// @Router       /api/donations [post]
func (h *DonationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDonationRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	d, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return httpError(err, donationNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(response.OK("Donation created successfully", d))
}

// Stats godoc
// @Summary      Completed donation totals
// @Tags         donations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope{data=dto.DonationStats}
// @Router       /api/donations/stats [get]
func (h *DonationHandler) Stats(c *fiber.Ctx) error {
	s, err := h.uc.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(response.OK("Donation stats retrieved", s))
}

// UpdateStatus godoc
// @Summary      Change a donation status
// @Tags         donations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "donation id"
// @Param        body  body      dto.StatusRequest  true  "status"
// @Success      200   {object}  response.Envelope{data=entity.Donation}
// @Failure      404   {object}  response.Envelope
// @Router       /api/donations/{id}/status [patch]
func (h *DonationHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.StatusRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	d, err := h.uc.UpdateStatus(c.UserContext(), c.Params("id"), in.Status)
	if err != nil {
		return httpError(err, donationNotFound)
	}
	return c.JSON(response.OK("Donation status updated", d))
}

// Receipt godoc
// @Summary      Download a donation receipt
// @Description  Only completed donations have a receipt.
// @Tags         donations
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path  string  true  "donation id"
// @Success      200  {file}    binary
// @Failure      400  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /api/donations/{id}/receipt [get]
func (h *DonationHandler) Receipt(c *fiber.Ctx) error {
	id := c.Params("id")
	pdf, err := h.uc.Receipt(c.UserContext(), id)
	if errors.Is(err, domain.ErrInvalidInput) {
		return fiber.NewError(fiber.StatusBadRequest, "Receipts are only available for completed donations")
	}
	if err != nil {
		return httpError(err, donationNotFound)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Attachment("receipt-" + id + ".pdf")
	return c.Send(pdf)
}
