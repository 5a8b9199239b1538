// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"liveseries/internal/delivery/http/middleware"
	"liveseries/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ShowHandler    *handler.ShowHandler
	WatchedHandler *handler.WatchedHandler
	PageHandler    *handler.PageHandler
	UpdatedHandler *handler.UpdatedHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	showHandler    *handler.ShowHandler
	watchedHandler *handler.WatchedHandler
	pageHandler    *handler.PageHandler
	updatedHandler *handler.UpdatedHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		showHandler:    params.ShowHandler,
		watchedHandler: params.WatchedHandler,
		pageHandler:    params.PageHandler,
		updatedHandler: params.UpdatedHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Collection freshness endpoint
	e.GET("/updated", r.updatedHandler.GetUpdated)

	// Content pages: reads are public, mutations require authentication
	pageGroup := e.Group("/pages")
	{
		pageGroup.GET("", r.pageHandler.GetAllPages)
		pageGroup.GET("/:id", r.pageHandler.GetPage)
		pageGroup.POST("", r.pageHandler.CreatePage, r.authMiddleware.Authenticate)
		pageGroup.PUT("/:id", r.pageHandler.UpdatePage, r.authMiddleware.Authenticate)
		pageGroup.DELETE("/:id", r.pageHandler.DeletePage, r.authMiddleware.Authenticate)
	}

	// Liked and subscribed shows
	showGroup := e.Group("/liveseries/shows")
	{
		showGroup.GET("", r.showHandler.GetAllShows)

		personal := showGroup.Group("/personal")
		personal.Use(r.authMiddleware.Authenticate)
		{
			personal.GET("", r.showHandler.GetPersonalShows)
			personal.POST("/liked/:showId", r.showHandler.AddLikedShow)
			personal.DELETE("/liked/:showId", r.showHandler.RemoveLikedShow)
			personal.POST("/subscribed/:showId", r.showHandler.AddSubscribedShow)
			personal.DELETE("/subscribed/:showId", r.showHandler.RemoveSubscribedShow)
		}
	}

	// Watched episodes
	watchedGroup := e.Group("/liveseries/watched-episodes")
	{
		watchedGroup.GET("", r.watchedHandler.GetAllWatched)

		personal := watchedGroup.Group("/personal")
		personal.Use(r.authMiddleware.Authenticate)
		{
			personal.GET("", r.watchedHandler.GetPersonalWatched)
			personal.PUT("/:showId/:season", r.watchedHandler.SetWatchedSeason)
		}
	}
}
