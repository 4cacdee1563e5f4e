package datasource

import (
	"context"
	"errors"
	"sort"

	"github.com/yourusername/ff-toolbox/internal/models"
)

// RankingsSource defines the interface for fetching projected season points
// from external providers
type RankingsSource interface {
	// FetchProjections retrieves season-long point projections for a position
	FetchProjections(ctx context.Context, position models.Position, season int) ([]PlayerProjection, error)

	// Name returns the name of the rankings source
	Name() string
}

// PlayerProjection represents a normalized player projection from any source
type PlayerProjection struct {
	Name     string          `json:"name"`     // Player display name
	NFLTeam  string          `json:"team"`     // NFL team abbreviation
	Position models.Position `json:"position"` // Roster position
	Points   float64         `json:"points"`   // Projected season points
}

// PointsTable extracts the projected points from a set of projections,
// sorted best to worst. The result is the raw input for a rank mapper.
func PointsTable(projections []PlayerProjection) []float64 {
	points := make([]float64, len(projections))
	for i, p := range projections {
		points[i] = p.Points
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(points)))
	return points
}

// SourceError represents errors from rankings source operations
type SourceError struct {
	Source  string // Source name
	Code    string // Error code (e.g., "rate_limit_exceeded")
	Message string // Error message
	Err     error  // Underlying error
}

func (e SourceError) Error() string {
	if e.Err != nil {
		return e.Source + ": " + e.Code + ": " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Source + ": " + e.Code + ": " + e.Message
}

func (e SourceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeRateLimitExceeded    = "rate_limit_exceeded"
	ErrCodeAuthenticationFailed = "authentication_failed"
	ErrCodeNotFound             = "not_found"
	ErrCodeInvalidData          = "invalid_data"
	ErrCodeNetworkError         = "network_error"
	ErrCodeServerError          = "server_error"
)

// Error constructors
var (
	ErrRateLimitExceeded    = errors.New("rate limit exceeded")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrSourceNotFound       = errors.New("projections not found")
	ErrInvalidData          = errors.New("invalid projection data")
)

// NewSourceError creates a new rankings source error
func NewSourceError(source, code, message string, err error) SourceError {
	return SourceError{
		Source:  source,
		Code:    code,
		Message: message,
		Err:     err,
	}
}
