// Package catalogue implements the Episodate show catalogue client.
package catalogue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"liveseries/config"
	"liveseries/internal/domain/entity"
	"liveseries/internal/domain/service"

	"github.com/pkg/errors"
)

// airDateLayout matches the catalogue's air_date strings, e.g. "2023-01-05 02:00:00".
// Times are UTC even though the strings carry no zone.
const airDateLayout = "2006-01-02 15:04:05"

type client struct {
	httpClient *http.Client
	logger     *slog.Logger
	base       string
}

type showDetailsResponse struct {
	TVShow struct {
		ID       int    `json:"id"`
		Name     string `json:"name"`
		Episodes []struct {
			Season  int    `json:"season"`
			Episode int    `json:"episode"`
			AirDate string `json:"air_date"`
		} `json:"episodes"`
	} `json:"tvShow"`
}

// NewClient builds a catalogue client against the configured base URL.
func NewClient(cfg *config.Config, logger *slog.Logger) service.CatalogueClient {
	return &client{
		httpClient: &http.Client{Timeout: cfg.Tracker.RequestTimeout},
		logger:     logger,
		base:       cfg.Tracker.CatalogueBase,
	}
}

// FetchShow retrieves one show's name and full episode list.
func (c *client) FetchShow(ctx context.Context, showID int) (*service.CatalogueShow, error) {
	url := fmt.Sprintf("%s?q=%d", c.base, showID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build show details request")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch show %d", showID)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, errors.Errorf("show %d details returned status %d", showID, res.StatusCode)
	}

	var body showDetailsResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, errors.Wrapf(err, "decode show %d details", showID)
	}
	if body.TVShow.Name == "" {
		return nil, errors.Errorf("show %d not found in catalogue", showID)
	}

	show := &service.CatalogueShow{
		ID:       showID,
		Name:     body.TVShow.Name,
		Episodes: make([]entity.Episode, 0, len(body.TVShow.Episodes)),
	}
	for _, ep := range body.TVShow.Episodes {
		airDate, err := time.ParseInLocation(airDateLayout, ep.AirDate, time.UTC)
		if err != nil {
			// Unannounced episodes carry empty or partial air dates.
			c.logger.Debug("Skipping episode with unparsable air date",
				slog.Int("showId", showID),
				slog.Int("season", ep.Season),
				slog.Int("episode", ep.Episode),
				slog.String("airDate", ep.AirDate))

			continue
		}

		show.Episodes = append(show.Episodes, entity.Episode{
			ShowID:   showID,
			ShowName: body.TVShow.Name,
			Season:   ep.Season,
			Episode:  ep.Episode,
			AirDate:  airDate,
		})
	}

	return show, nil
}
