package handler

import (
	"log/slog"
	"net/http"

	"liveseries/internal/delivery/http/response"
	"liveseries/internal/domain/entity"
	"liveseries/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PageHandler holds dependencies for content page handlers.
type PageHandler struct {
	uc     usecase.PageUsecase
	logger *slog.Logger
}

// NewPageHandler is the constructor for PageHandler, injected by Fx.
func NewPageHandler(uc usecase.PageUsecase, logger *slog.Logger) *PageHandler {
	return &PageHandler{uc: uc, logger: logger}
}

// pageInput is the request body for creating and updating pages.
type pageInput struct {
	Title       string `json:"title" validate:"required"`
	URL         string `json:"url" validate:"required"`
	Content     string `json:"content"`
	ShouldFetch bool   `json:"shouldFetch"`
}

// pageResponse is the wire shape of one page.
type pageResponse struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Content     string `json:"content"`
	ShouldFetch bool   `json:"shouldFetch"`
}

func toPageResponse(page *entity.Page) pageResponse {
	return pageResponse{
		ID:          page.ID,
		Title:       page.Title,
		URL:         page.URL,
		Content:     page.Content,
		ShouldFetch: page.ShouldFetch,
	}
}

// GetAllPages handles GET /pages.
func (h *PageHandler) GetAllPages(c echo.Context) error {
	pages, err := h.uc.GetAllPages(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	result := make([]pageResponse, 0, len(pages))
	for _, page := range pages {
		result = append(result, toPageResponse(page))
	}

	return response.Success(c, http.StatusOK, result, "")
}

// GetPage handles GET /pages/:id.
func (h *PageHandler) GetPage(c echo.Context) error {
	id, err := naturalParam(c, "id")
	if err != nil {
		return err
	}

	page, err := h.uc.GetPage(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPageResponse(page), "")
}

// CreatePage handles POST /pages.
func (h *PageHandler) CreatePage(c echo.Context) error {
	var input pageInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid page input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	page := &entity.Page{
		Title:       input.Title,
		URL:         input.URL,
		Content:     input.Content,
		ShouldFetch: input.ShouldFetch,
	}
	if err := h.uc.CreatePage(c.Request().Context(), page); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPageResponse(page), "Page created")
}

// UpdatePage handles PUT /pages/:id.
func (h *PageHandler) UpdatePage(c echo.Context) error {
	id, err := naturalParam(c, "id")
	if err != nil {
		return err
	}

	var input pageInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid page input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	page := &entity.Page{
		ID:          id,
		Title:       input.Title,
		URL:         input.URL,
		Content:     input.Content,
		ShouldFetch: input.ShouldFetch,
	}
	if err := h.uc.UpdatePage(c.Request().Context(), page); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPageResponse(page), "Page updated")
}

// DeletePage handles DELETE /pages/:id.
func (h *PageHandler) DeletePage(c echo.Context) error {
	id, err := naturalParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeletePage(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Page deleted")
}
