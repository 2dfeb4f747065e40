package handler

import (
	"errors"

	"jobpilot/internal/delivery/http/dto"
	"jobpilot/internal/delivery/http/middleware"
	"jobpilot/internal/domain/user"
	"jobpilot/internal/pkg/response"
	"jobpilot/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ResumeHandler struct {
	uc usecase.ResumeUsecase
}

type saveParsedResumeRequest struct {
	ParsedData user.ParsedResume `json:"parsed_data"`
}

type markUploadedRequest struct {
	URL string `json:"url"`
}

type viewResumeRequest struct {
	URL string `json:"url"`
}

func NewResumeHandler(uc usecase.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/parsed", h.SaveParsed)
	r.Post("/uploaded", h.MarkUploaded)
	r.Post("/view", h.View)
}

func (h *ResumeHandler) SaveParsed(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req saveParsedResumeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.SaveParsedResume(c.Context(), userID, req.ParsedData); err != nil {
		return mapResumeUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Resume data saved", nil)
}

func (h *ResumeHandler) MarkUploaded(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req markUploadedRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	usr, err := h.uc.MarkUploaded(c.Context(), userID, req.URL)
	if err != nil {
		return mapResumeUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Resume marked as uploaded", dto.FromUser(usr))
}

func (h *ResumeHandler) View(c fiber.Ctx) error {
	if _, ok := middleware.UserIDFromCtx(c); !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req viewResumeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	text, err := h.uc.ViewResume(c.Context(), req.URL)
	if err != nil {
		if errors.Is(err, usecase.ErrParserUnavailable) {
			// 5xx from the error middleware collapses to a generic 500;
			// the parser being down deserves a 502 the frontend can show.
			return response.Error(c, fiber.StatusBadGateway, "Resume parser unavailable", nil)
		}
		return mapResumeUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"text": text})
}

func mapResumeUsecaseError(err error) error {
	switch {
	case errors.Is(err, user.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
