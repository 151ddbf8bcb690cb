package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/inkatravel-api/internal/delivery/http/middleware"
	"github.com/inkatravel-api/internal/pkg/utils"
	"github.com/inkatravel-api/internal/pkg/validator"
	"github.com/inkatravel-api/internal/usecase"
	"github.com/inkatravel-api/internal/usecase/dto"
)

type TourHandler struct {
	tourUC *usecase.TourUseCase
	logger *zap.Logger
}

func NewTourHandler(tourUC *usecase.TourUseCase, logger *zap.Logger) *TourHandler {
	return &TourHandler{
		tourUC: tourUC,
		logger: logger,
	}
}

// Create godoc
// @Summary Create a tour
// @Description Creates a tour with multilingual content. The slug is derived from the Spanish title.
// @Tags Tours
// @Accept json
// @Produce json
// @Param request body dto.CreateTourRequest true "Tour payload"
// @Success 201 {object} utils.SuccessResponse{data=domain.Tour}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/tours [post]
func (h *TourHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTourRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	tour, err := h.tourUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, tour)
}

// List godoc
// @Summary List tours
// @Description Lists active tours as localized cards. Admins may pass all=true to include inactive tours.
// @Tags Tours
// @Produce json
// @Param category query string false "Filter by category" Enums(adventure, cultural, nature, gastronomy)
// @Param region query string false "Filter by region"
// @Param lang query string false "Response language" Enums(es, en, fr, de)
// @Success 200 {object} utils.SuccessResponse{data=[]dto.TourCardResponse}
// @Router /api/v1/tours [get]
func (h *TourHandler) List(c *fiber.Ctx) error {
	var q dto.TourListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid query parameters"})
	}
	if err := validator.Validate(&q); err != nil {
		return utils.SendError(c, err)
	}

	includeInactive := q.All && middleware.IsAdmin(c)
	tours, err := h.tourUC.List(c.Context(), q, includeInactive)
	if err != nil {
		return utils.SendError(c, err)
	}

	lang := middleware.RequestLanguage(c)
	cards := make([]dto.TourCardResponse, 0, len(tours))
	for _, t := range tours {
		cards = append(cards, dto.NewTourCard(t, lang))
	}

	return utils.SendSuccess(c, cards, &utils.Meta{
		Total: len(cards),
	})
}

// GetBySlug godoc
// @Summary Get a tour by slug
// @Description Serves the localized tour detail with its linked transport options.
// @Tags Tours
// @Produce json
// @Param slug path string true "Tour slug"
// @Param lang query string false "Response language" Enums(es, en, fr, de)
// @Success 200 {object} utils.SuccessResponse{data=dto.TourDetailResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/tours/slug/{slug} [get]
func (h *TourHandler) GetBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	lang := middleware.RequestLanguage(c)

	detail, err := h.tourUC.GetDetail(c.Context(), slug, lang, middleware.IsAdmin(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, detail, nil)
}

// Update godoc
// @Summary Update a tour
// @Description Applies a partial update. Arrays and sub-documents are replaced whole.
// @Tags Tours
// @Accept json
// @Produce json
// @Param id path string true "Tour ID"
// @Param request body dto.UpdateTourRequest true "Fields to update"
// @Success 200 {object} utils.SuccessResponse{data=domain.Tour}
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/tours/{id} [patch]
func (h *TourHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateTourRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	tour, err := h.tourUC.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, tour, nil)
}

// SetTransportOptions godoc
// @Summary Replace a tour's transport options
// @Description Accepts plain IDs or embedded objects; duplicates collapse.
// @Tags Tours
// @Accept json
// @Produce json
// @Param id path string true "Tour ID"
// @Param request body dto.SetTransportOptionsRequest true "Transport references"
// @Success 200 {object} utils.SuccessResponse{data=domain.Tour}
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/tours/{id}/transport-options [put]
func (h *TourHandler) SetTransportOptions(c *fiber.Ctx) error {
	var req dto.SetTransportOptionsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	tour, err := h.tourUC.SetTransportOptions(c.Context(), c.Params("id"), req.TransportOptions)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, tour, nil)
}

// Delete godoc
// @Summary Delete a tour
// @Tags Tours
// @Produce json
// @Param id path string true "Tour ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/tours/{id} [delete]
func (h *TourHandler) Delete(c *fiber.Ctx) error {
	if err := h.tourUC.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}
