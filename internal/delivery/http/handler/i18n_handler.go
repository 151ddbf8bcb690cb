package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/inkatravel-api/internal/delivery/http/middleware"
	"github.com/inkatravel-api/internal/pkg/utils"
	"github.com/inkatravel-api/internal/pkg/validator"
	"github.com/inkatravel-api/internal/usecase"
	"github.com/inkatravel-api/internal/usecase/dto"
)

type I18nHandler struct {
	i18nUC     *usecase.I18nUseCase
	cookieName string
	logger     *zap.Logger
}

func NewI18nHandler(i18nUC *usecase.I18nUseCase, cookieName string, logger *zap.Logger) *I18nHandler {
	return &I18nHandler{
		i18nUC:     i18nUC,
		cookieName: cookieName,
		logger:     logger,
	}
}

// GetDictionary godoc
// @Summary Get the UI translation dictionary
// @Description Serves the UI strings for the resolved request language.
// @Tags I18n
// @Produce json
// @Param lang query string false "Language override" Enums(es, en, fr, de)
// @Success 200 {object} utils.SuccessResponse{data=dto.LanguageResponse}
// @Router /api/v1/i18n/dictionary [get]
func (h *I18nHandler) GetDictionary(c *fiber.Ctx) error {
	resp := h.i18nUC.GetDictionary(middleware.RequestLanguage(c))
	return utils.SendSuccess(c, resp, nil)
}

// SetPreference godoc
// @Summary Save the UI language preference
// @Description Persists the choice for authenticated users and always refreshes the language cookie.
// @Tags I18n
// @Accept json
// @Produce json
// @Param request body dto.SetLanguageRequest true "Language choice"
// @Success 200 {object} utils.SuccessResponse{data=dto.LanguagePreferenceResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/i18n/preference [put]
func (h *I18nHandler) SetPreference(c *fiber.Ctx) error {
	var req dto.SetLanguageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.i18nUC.SetPreference(c.Context(), middleware.UserID(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    resp.Language,
		Expires:  time.Now().Add(365 * 24 * time.Hour),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return utils.SendSuccess(c, resp, nil)
}
