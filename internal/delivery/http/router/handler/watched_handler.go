package handler

import (
	"log/slog"
	"net/http"

	"liveseries/internal/delivery/http/middleware"
	"liveseries/internal/delivery/http/response"
	"liveseries/internal/domain/entity"
	domainerrors "liveseries/internal/domain/errors"
	"liveseries/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WatchedHandler holds dependencies for watched-episode handlers.
type WatchedHandler struct {
	uc     usecase.WatchedUsecase
	logger *slog.Logger
}

// NewWatchedHandler is the constructor for WatchedHandler, injected by Fx.
func NewWatchedHandler(uc usecase.WatchedUsecase, logger *slog.Logger) *WatchedHandler {
	return &WatchedHandler{uc: uc, logger: logger}
}

// watchedResponse is the wire shape of one user's watched record.
type watchedResponse struct {
	UserUUID        string                `json:"userUuid"`
	WatchedEpisodes entity.WatchedShowMap `json:"watchedEpisodes"`
}

// GetAllWatched handles GET /liveseries/watched-episodes.
func (h *WatchedHandler) GetAllWatched(c echo.Context) error {
	records, err := h.uc.GetAllWatched(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	result := make([]watchedResponse, 0, len(records))
	for _, record := range records {
		result = append(result, watchedResponse{
			UserUUID:        record.UserID.String(),
			WatchedEpisodes: record.Episodes,
		})
	}

	return response.Success(c, http.StatusOK, result, "")
}

// GetPersonalWatched handles GET /liveseries/watched-episodes/personal.
// A user who never recorded anything gets an empty map.
func (h *WatchedHandler) GetPersonalWatched(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	watched, err := h.uc.GetUserWatched(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, watched, "")
}

// SetWatchedSeason handles PUT /liveseries/watched-episodes/personal/:showId/:season.
// The body is a JSON array of natural episode numbers replacing the season's list.
func (h *WatchedHandler) SetWatchedSeason(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	showID, err := naturalParam(c, "showId")
	if err != nil {
		return err
	}
	season, err := naturalParam(c, "season")
	if err != nil {
		return err
	}

	var episodes []int
	if err := c.Bind(&episodes); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("body must be a JSON array of episode numbers")
	}
	for _, episode := range episodes {
		if episode < 1 {
			return domainerrors.ErrValidationFailed.WithDetails("episode numbers must be natural numbers")
		}
	}

	if err := h.uc.SetWatchedSeason(c.Request().Context(), userID, showID, season, episodes); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Watched episodes updated")
}
