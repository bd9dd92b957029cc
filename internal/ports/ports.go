package ports

import (
	"context"
	"time"

	"svw.info/routegen/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Attempts int
	Duration time.Duration
}

// Generator produces a fresh route for the given parameters.
type Generator interface {
	Generate(ctx context.Context, p domain.GenerationParams) (*domain.Route, Stats, error)
}

// Scorer derives difficulty and flow from a completed route. It must never
// consult generation parameters, so identical routes score identically.
type Scorer interface {
	Score(ctx context.Context, r *domain.Route) (domain.ScoreResult, error)
}

// Validator re-checks a route against parameters (reach range, progression
// direction, row cap) and reports the offending holds.
type Validator interface {
	Validate(ctx context.Context, r *domain.Route, p domain.GenerationParams) (ok bool, conflicts []domain.PlacedHold, err error)
}

// Hinter points at the crux of a route.
type Hinter interface {
	Hint(ctx context.Context, r *domain.Route) (domain.Hint, bool, error)
}

// Storage persists and retrieves routes as JSON.
type Storage interface {
	Save(ctx context.Context, r *domain.SavedRoute) error
	Load(ctx context.Context, id string) (*domain.SavedRoute, error)
	List(ctx context.Context) ([]domain.RouteMeta, error)
}
