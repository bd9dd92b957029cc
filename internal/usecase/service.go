package usecase

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"svw.info/routegen/internal/domain"
	"svw.info/routegen/internal/metrics"
	"svw.info/routegen/internal/ports"
)

type Service struct {
	Generator ports.Generator
	Scorer    ports.Scorer
	Validator ports.Validator
	Hinter    ports.Hinter
	Storage   ports.Storage

	check *validator.Validate
}

func NewService(g ports.Generator, sc ports.Scorer, v ports.Validator, h ports.Hinter, st ports.Storage) *Service {
	return &Service{
		Generator: g,
		Scorer:    sc,
		Validator: v,
		Hinter:    h,
		Storage:   st,
		check:     validator.New(),
	}
}

var (
	errNotConfigured = errors.New("usecase dependency not configured")

	// ErrInvalidParams wraps parameter validation failures so transports can
	// map them to a client error.
	ErrInvalidParams = errors.New("usecase: invalid generation parameters")
)

// Generate validates the parameters, runs the generator and records metrics.
func (u *Service) Generate(ctx context.Context, p domain.GenerationParams) (*domain.Route, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	if err := u.check.Struct(p); err != nil {
		return nil, ports.Stats{}, errors.Join(ErrInvalidParams, err)
	}
	r, st, err := u.Generator.Generate(ctx, p)
	metrics.GenerateDuration.Observe(st.Duration.Seconds())
	if err != nil {
		phase := ""
		var genErr *domain.GenerationError
		if errors.As(err, &genErr) {
			phase = string(genErr.Phase)
		}
		metrics.GenerateTotal.WithLabelValues("error", phase).Inc()
		return nil, st, err
	}
	metrics.GenerateTotal.WithLabelValues("ok", "").Inc()
	return r, st, nil
}

func (u *Service) Score(ctx context.Context, r *domain.Route) (domain.ScoreResult, error) {
	if u.Scorer == nil {
		return domain.ScoreResult{}, errNotConfigured
	}
	return u.Scorer.Score(ctx, r)
}

func (u *Service) Validate(ctx context.Context, r *domain.Route, p domain.GenerationParams) (bool, []domain.PlacedHold, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, r, p)
}

func (u *Service) Hint(ctx context.Context, r *domain.Route) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, r)
}

// Persistence
func (u *Service) Save(ctx context.Context, r *domain.SavedRoute) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, r)
}
func (u *Service) Load(ctx context.Context, id string) (*domain.SavedRoute, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}
func (u *Service) List(ctx context.Context) ([]domain.RouteMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
