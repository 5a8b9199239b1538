package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"liveseries/internal/delivery/http/middleware"
	"liveseries/internal/delivery/http/response"
	"liveseries/internal/domain/entity"
	domainerrors "liveseries/internal/domain/errors"
	"liveseries/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ShowHandler holds dependencies for liked/subscribed show handlers.
type ShowHandler struct {
	uc     usecase.ShowUsecase
	logger *slog.Logger
}

// NewShowHandler is the constructor for ShowHandler, injected by Fx.
func NewShowHandler(uc usecase.ShowUsecase, logger *slog.Logger) *ShowHandler {
	return &ShowHandler{uc: uc, logger: logger}
}

// userShowsResponse is the wire shape of one user's show record.
type userShowsResponse struct {
	UserUUID        string `json:"userUuid"`
	LikedShows      []int  `json:"likedShows"`
	SubscribedShows []int  `json:"subscribedShows"`
}

func toUserShowsResponse(record *entity.UserShows) userShowsResponse {
	liked := record.LikedShows
	if liked == nil {
		liked = []int{}
	}
	subscribed := record.SubscribedShows
	if subscribed == nil {
		subscribed = []int{}
	}

	return userShowsResponse{
		UserUUID:        record.UserID.String(),
		LikedShows:      liked,
		SubscribedShows: subscribed,
	}
}

// GetAllShows handles GET /liveseries/shows.
func (h *ShowHandler) GetAllShows(c echo.Context) error {
	records, err := h.uc.GetAllShows(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	result := make([]userShowsResponse, 0, len(records))
	for _, record := range records {
		result = append(result, toUserShowsResponse(record))
	}

	return response.Success(c, http.StatusOK, result, "")
}

// GetPersonalShows handles GET /liveseries/shows/personal.
func (h *ShowHandler) GetPersonalShows(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	record, err := h.uc.GetUserShows(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserShowsResponse(record), "")
}

// AddLikedShow handles POST /liveseries/shows/personal/liked/:showId.
func (h *ShowHandler) AddLikedShow(c echo.Context) error {
	return h.modify(c, h.uc.AddLikedShow, "Show liked")
}

// RemoveLikedShow handles DELETE /liveseries/shows/personal/liked/:showId.
func (h *ShowHandler) RemoveLikedShow(c echo.Context) error {
	return h.modify(c, h.uc.RemoveLikedShow, "Show unliked")
}

// AddSubscribedShow handles POST /liveseries/shows/personal/subscribed/:showId.
func (h *ShowHandler) AddSubscribedShow(c echo.Context) error {
	return h.modify(c, h.uc.AddSubscribedShow, "Show subscribed")
}

// RemoveSubscribedShow handles DELETE /liveseries/shows/personal/subscribed/:showId.
func (h *ShowHandler) RemoveSubscribedShow(c echo.Context) error {
	return h.modify(c, h.uc.RemoveSubscribedShow, "Show unsubscribed")
}

func (h *ShowHandler) modify(c echo.Context, op func(ctx context.Context, userID uuid.UUID, showID int) error, message string) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	showID, err := naturalParam(c, "showId")
	if err != nil {
		return err
	}

	if err := op(c.Request().Context(), userID, showID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, message)
}

// naturalParam parses a path parameter that must be a natural number.
func naturalParam(c echo.Context, name string) (int, error) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil || value < 1 {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be a natural number")
	}

	return value, nil
}
