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

type TransportHandler struct {
	transportUC *usecase.TransportUseCase
	logger      *zap.Logger
}

func NewTransportHandler(transportUC *usecase.TransportUseCase, logger *zap.Logger) *TransportHandler {
	return &TransportHandler{
		transportUC: transportUC,
		logger:      logger,
	}
}

// Create godoc
// @Summary Create a transport service
// @Description Creates a point-to-point transport service. Slug and route code are derived from the endpoints.
// @Tags Transport
// @Accept json
// @Produce json
// @Param request body dto.CreateTransportRequest true "Transport payload"
// @Success 201 {object} utils.SuccessResponse{data=domain.TourTransport}
// @Failure 400 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/tour-transport [post]
func (h *TransportHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTransportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	transport, err := h.transportUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, transport)
}

// List godoc
// @Summary List transport services
// @Description Lists active services as localized cards. All present filters combine with AND; q searches every stored language.
// @Tags Transport
// @Produce json
// @Param q query string false "Free-text search"
// @Param origin query string false "Origin name"
// @Param destination query string false "Destination name"
// @Param day query string false "Weekday the service must run on" Enums(Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday)
// @Param featured query bool false "Featured services only"
// @Param lang query string false "Response language" Enums(es, en, fr, de)
// @Success 200 {object} utils.SuccessResponse{data=[]dto.TransportCardResponse}
// @Router /api/v1/tour-transport [get]
func (h *TransportHandler) List(c *fiber.Ctx) error {
	var q dto.TransportListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid query parameters"})
	}
	if err := validator.Validate(&q); err != nil {
		return utils.SendError(c, err)
	}

	includeInactive := q.All && middleware.IsAdmin(c)
	transports, err := h.transportUC.List(c.Context(), q, includeInactive)
	if err != nil {
		return utils.SendError(c, err)
	}

	lang := middleware.RequestLanguage(c)
	cards := make([]dto.TransportCardResponse, 0, len(transports))
	for _, t := range transports {
		cards = append(cards, dto.NewTransportCard(t, lang))
	}

	return utils.SendSuccess(c, cards, &utils.Meta{
		Total: len(cards),
	})
}

// GetBySlug godoc
// @Summary Get a transport service by slug
// @Tags Transport
// @Produce json
// @Param slug path string true "Transport slug"
// @Param lang query string false "Response language" Enums(es, en, fr, de)
// @Success 200 {object} utils.SuccessResponse{data=dto.TransportDetailResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/tour-transport/{slug} [get]
func (h *TransportHandler) GetBySlug(c *fiber.Ctx) error {
	transport, err := h.transportUC.GetBySlug(c.Context(), c.Params("slug"), middleware.IsAdmin(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	detail := dto.NewTransportDetail(transport, middleware.RequestLanguage(c))
	return utils.SendSuccess(c, detail, nil)
}

// Update godoc
// @Summary Update a transport service
// @Tags Transport
// @Accept json
// @Produce json
// @Param id path string true "Transport ID"
// @Param request body dto.UpdateTransportRequest true "Fields to update"
// @Success 200 {object} utils.SuccessResponse{data=domain.TourTransport}
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/tour-transport/{id} [patch]
func (h *TransportHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateTransportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	transport, err := h.transportUC.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, transport, nil)
}

// Delete godoc
// @Summary Delete a transport service
// @Tags Transport
// @Produce json
// @Param id path string true "Transport ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/tour-transport/{id} [delete]
func (h *TransportHandler) Delete(c *fiber.Ctx) error {
	if err := h.transportUC.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}
