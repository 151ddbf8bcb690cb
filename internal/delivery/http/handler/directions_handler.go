package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/inkatravel-api/internal/pkg/utils"
	"github.com/inkatravel-api/internal/usecase"
	"github.com/inkatravel-api/internal/usecase/dto"
)

type DirectionsHandler struct {
	directionsUC *usecase.DirectionsUseCase
	logger       *zap.Logger
}

func NewDirectionsHandler(directionsUC *usecase.DirectionsUseCase, logger *zap.Logger) *DirectionsHandler {
	return &DirectionsHandler{
		directionsUC: directionsUC,
		logger:       logger,
	}
}

// GetTransportRoute godoc
// @Summary Get the driving route of a transport service
// @Description Serves the map geometry for a transport detail page. When the directions provider is unavailable the payload degrades to mapAvailable=false instead of failing.
// @Tags Transport
// @Produce json
// @Param slug path string true "Transport slug"
// @Success 200 {object} utils.SuccessResponse{data=dto.TransportRouteResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/tour-transport/{slug}/route [get]
func (h *DirectionsHandler) GetTransportRoute(c *fiber.Ctx) error {
	route, err := h.directionsUC.GetTransportRoute(c.Context(), c.Params("slug"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, dto.NewTransportRouteResponse(route), nil)
}
