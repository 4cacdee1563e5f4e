package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/ff-toolbox/internal/metrics"
	"github.com/yourusername/ff-toolbox/internal/models"
)

// ProjectionsClient implements RankingsSource against a JSON projections API
type ProjectionsClient struct {
	httpClient *RateLimitedHTTPClient
	name       string
	baseURL    string
	apiKey     string
	logger     *logrus.Logger
}

// projectionsResponse represents the payload returned by the projections API
type projectionsResponse struct {
	Season  int                `json:"season"`
	Players []projectionsEntry `json:"players"`
}

// projectionsEntry represents a single player row from the projections API
type projectionsEntry struct {
	Name     string  `json:"name"`
	Team     string  `json:"team"`
	Position string  `json:"position"`
	Points   float64 `json:"points"`
}

// NewProjectionsClient creates a new projections API client
func NewProjectionsClient(httpClient *RateLimitedHTTPClient, name, baseURL, apiKey string, logger *logrus.Logger) *ProjectionsClient {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return &ProjectionsClient{
		httpClient: httpClient,
		name:       name,
		baseURL:    baseURL,
		apiKey:     apiKey,
		logger:     logger,
	}
}

// Name returns the name of the rankings source
func (c *ProjectionsClient) Name() string {
	return c.name
}

// FetchProjections retrieves season-long point projections for a position
func (c *ProjectionsClient) FetchProjections(ctx context.Context, position models.Position, season int) ([]PlayerProjection, error) {
	start := time.Now()
	url := fmt.Sprintf("%s/projections?position=%s&season=%d", c.baseURL, position, season)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, NewSourceError(c.name, ErrCodeNetworkError, "failed to create request", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, NewSourceError(c.name, ErrCodeNetworkError, "failed to fetch projections", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, NewSourceError(c.name, ErrCodeAuthenticationFailed, "invalid API key", ErrAuthenticationFailed)
	case resp.StatusCode == http.StatusNotFound:
		return nil, NewSourceError(c.name, ErrCodeNotFound,
			fmt.Sprintf("no projections for %s season %d", position, season), ErrSourceNotFound)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, NewSourceError(c.name, ErrCodeRateLimitExceeded, "rate limited by provider", ErrRateLimitExceeded)
	case resp.StatusCode != http.StatusOK:
		return nil, NewSourceError(c.name, ErrCodeServerError,
			fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewSourceError(c.name, ErrCodeNetworkError, "failed to read response body", err)
	}

	var payload projectionsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, NewSourceError(c.name, ErrCodeInvalidData, "failed to parse projections", err)
	}

	projections := make([]PlayerProjection, 0, len(payload.Players))
	for _, entry := range payload.Players {
		if entry.Name == "" || entry.Points < 0 {
			c.logger.WithFields(logrus.Fields{
				"source": c.name,
				"entry":  entry,
			}).Warn("Skipping malformed projection entry")
			continue
		}
		projections = append(projections, PlayerProjection{
			Name:     entry.Name,
			NFLTeam:  entry.Team,
			Position: models.Position(entry.Position),
			Points:   entry.Points,
		})
	}

	if len(projections) == 0 {
		return nil, NewSourceError(c.name, ErrCodeInvalidData, "response contained no usable projections", ErrInvalidData)
	}

	metrics.RankingsFetchDuration.Observe(time.Since(start).Seconds())
	c.logger.WithFields(logrus.Fields{
		"source":   c.name,
		"position": position,
		"season":   season,
		"players":  len(projections),
	}).Debug("Fetched projections")

	return projections, nil
}
