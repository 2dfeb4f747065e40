package handler

import (
	"errors"

	"jobpilot/internal/delivery/http/dto"
	"jobpilot/internal/delivery/http/middleware"
	"jobpilot/internal/domain/bookmark"
	"jobpilot/internal/domain/user"
	"jobpilot/internal/pkg/response"
	"jobpilot/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SavedJobHandler struct {
	bookmarks usecase.BookmarkUsecase
	gaps      usecase.SkillGapUsecase
}

type saveJobRequest struct {
	JobID       string   `json:"jobId"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Salary      string   `json:"salary"`
	Link        string   `json:"link"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	DatePosted  string   `json:"datePosted"`
	JobType     string   `json:"jobType"`
	MatchScore  int      `json:"matchScore"`
}

func NewSavedJobHandler(bookmarks usecase.BookmarkUsecase, gaps usecase.SkillGapUsecase) *SavedJobHandler {
	return &SavedJobHandler{bookmarks: bookmarks, gaps: gaps}
}

func (h *SavedJobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/saved", h.Save)
	r.Get("/saved", h.List)
	r.Delete("/saved/:jobId", h.Unsave)
	r.Get("/saved/:jobId/skill-gap", h.SkillGap)
}

func (h *SavedJobHandler) Save(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req saveJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	result, err := h.bookmarks.SaveJob(c.Context(), userID, usecase.SaveJobInput{
		JobID:       req.JobID,
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Salary:      req.Salary,
		Link:        req.Link,
		Description: req.Description,
		Skills:      req.Skills,
		DatePosted:  req.DatePosted,
		JobType:     req.JobType,
		MatchScore:  req.MatchScore,
	})
	if err != nil {
		return mapSavedJobError(err)
	}

	status := fiber.StatusCreated
	message := "Job saved successfully"
	if result.AlreadySaved {
		status = fiber.StatusOK
		message = "Job already saved"
	}

	return c.Status(status).JSON(dto.SaveJobResponse{
		Success:  true,
		Message:  message,
		SavedJob: dto.FromBookmark(result.Bookmark),
	})
}

func (h *SavedJobHandler) List(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	list, err := h.bookmarks.ListSaved(c.Context(), userID)
	if err != nil {
		return mapSavedJobError(err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.SavedJobsListResponse{
		Success:   true,
		Count:     len(list),
		SavedJobs: dto.FromBookmarks(list),
	})
}

func (h *SavedJobHandler) Unsave(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	if err := h.bookmarks.Unsave(c.Context(), userID, c.Params("jobId")); err != nil {
		return mapSavedJobError(err)
	}
	return response.Success(c, fiber.StatusOK, "Job removed from saved jobs", nil)
}

func (h *SavedJobHandler) SkillGap(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	report, err := h.gaps.AnalyzeGap(c.Context(), userID, c.Params("jobId"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoSkills):
			return middleware.NewAppError(fiber.StatusBadRequest, "No skills found in your resume. Please upload your resume first.", nil, err)
		case errors.Is(err, bookmark.ErrNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "Job not found. Please save the job first or try again with a different job.", nil, err)
		default:
			return mapSavedJobError(err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(dto.FromSkillGapReport(report))
}

func mapSavedJobError(err error) error {
	switch {
	case errors.Is(err, bookmark.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Saved job not found", nil, err)
	case errors.Is(err, user.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing required field", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
