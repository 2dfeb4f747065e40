package handler

import (
	"errors"
	"strconv"

	"jobpilot/internal/delivery/http/dto"
	"jobpilot/internal/delivery/http/middleware"
	"jobpilot/internal/domain/user"
	"jobpilot/internal/pkg/response"
	"jobpilot/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobHandler struct {
	uc usecase.RecommendationUsecase
}

func NewJobHandler(uc usecase.RecommendationUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/recommendations", h.Recommendations)
}

func (h *JobHandler) Recommendations(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	location := c.Query("location")
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	result, err := h.uc.Recommend(c.Context(), userID, location, page)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoSkills):
			return middleware.NewAppError(fiber.StatusBadRequest, "No skills found in your resume to match jobs", nil, err)
		case errors.Is(err, user.ErrNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
		case errors.Is(err, usecase.ErrUnauthorized):
			return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(dto.FromRecommendationPage(result))
}
