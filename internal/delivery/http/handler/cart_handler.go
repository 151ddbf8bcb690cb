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

type CartHandler struct {
	cartUC *usecase.CartUseCase
	logger *zap.Logger
}

func NewCartHandler(cartUC *usecase.CartUseCase, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		cartUC: cartUC,
		logger: logger,
	}
}

// GetCart godoc
// @Summary Get the authenticated user's cart
// @Tags Cart
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.CartResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/cart [get]
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	cart, err := h.cartUC.GetCart(c.Context(), middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, dto.NewCartResponse(cart), nil)
}

// GetSummary godoc
// @Summary Get the cart summary badge payload
// @Description Best effort: anonymous callers and backend failures both settle to the empty summary with HTTP 200.
// @Tags Cart
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.CartSummary}
// @Router /api/v1/cart/summary [get]
func (h *CartHandler) GetSummary(c *fiber.Ctx) error {
	summary := h.cartUC.GetSummary(c.Context(), middleware.UserID(c))
	return utils.SendSuccess(c, summary, nil)
}

// AddItem godoc
// @Summary Add a product to the cart
// @Description Prices and titles come from the stored product. Re-adding the same product and date merges traveler counts.
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body dto.AddCartItemRequest true "Item to add"
// @Success 200 {object} utils.SuccessResponse{data=dto.CartResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/cart/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var req dto.AddCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	cart, err := h.cartUC.AddItem(c.Context(), middleware.UserID(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, dto.NewCartResponse(cart), nil)
}

// RemoveItem godoc
// @Summary Remove one cart line
// @Tags Cart
// @Produce json
// @Param itemId path string true "Cart item ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.CartResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/cart/items/{itemId} [delete]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	cart, err := h.cartUC.RemoveItem(c.Context(), middleware.UserID(c), c.Params("itemId"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, dto.NewCartResponse(cart), nil)
}

// Clear godoc
// @Summary Empty the cart
// @Tags Cart
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /api/v1/cart [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	if err := h.cartUC.Clear(c.Context(), middleware.UserID(c)); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"cleared": true}, nil)
}

// Checkout godoc
// @Summary Check out the cart
// @Description Snapshots the cart into a pending order and returns a prefilled WhatsApp link.
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body dto.CheckoutRequest true "Customer details"
// @Success 201 {object} utils.SuccessResponse{data=dto.CheckoutResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/cart/checkout [post]
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.cartUC.Checkout(c.Context(), middleware.UserID(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, result)
}
