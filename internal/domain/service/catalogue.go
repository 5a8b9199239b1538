package service

import (
	"context"

	"liveseries/internal/domain/entity"
)

// CatalogueShow is a show's full episode listing as returned by the
// external catalogue. Listings are fetched fresh on demand, never cached.
type CatalogueShow struct {
	ID       int
	Name     string
	Episodes []entity.Episode
}

// CatalogueClient fetches show details from the external TV catalogue.
type CatalogueClient interface {
	// FetchShow retrieves one show's name and episode list by catalogue ID.
	FetchShow(ctx context.Context, showID int) (*CatalogueShow, error)
}
