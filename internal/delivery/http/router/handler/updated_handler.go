package handler

import (
	"net/http"

	"liveseries/internal/delivery/http/response"
	"liveseries/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UpdatedHandler serves per-collection last-modified instants.
type UpdatedHandler struct {
	uc usecase.UpdatedUsecase
}

// NewUpdatedHandler is the constructor for UpdatedHandler, injected by Fx.
func NewUpdatedHandler(uc usecase.UpdatedUsecase) *UpdatedHandler {
	return &UpdatedHandler{uc: uc}
}

// GetUpdated handles GET /updated. The payload must never be cached or the
// frontend would stop noticing fresh data.
func (h *UpdatedHandler) GetUpdated(c echo.Context) error {
	result, err := h.uc.LastModified(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set("Cache-Control", "no-store")

	return response.Success(c, http.StatusOK, result, "")
}
