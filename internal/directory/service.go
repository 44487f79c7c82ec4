package directory

import (
	"context"
	"log/slog"
	"strings"

	"lawpoint/internal/platform/metrics"
	dErrors "lawpoint/pkg/domain-errors"
)

// Service holds the roster business rules, thin as they are. It never learns
// which backend served a call.
type Service struct {
	lawyers LawyerStore
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewService(lawyers LawyerStore, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{lawyers: lawyers, logger: logger, metrics: m}
}

func (s *Service) List(ctx context.Context) ([]Lawyer, error) {
	lawyers, err := s.lawyers.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "roster list failed", "error", err)
		return nil, dErrors.New(dErrors.CodeInternal, "could not list lawyers")
	}
	return lawyers, nil
}

func (s *Service) Create(ctx context.Context, req CreateLawyerRequest) (Lawyer, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return Lawyer{}, dErrors.New(dErrors.CodeBadRequest, "name is required")
	}

	lawyer, err := s.lawyers.Insert(ctx, Lawyer{
		Name:      name,
		Specialty: strings.TrimSpace(req.Specialty),
		Location:  strings.TrimSpace(req.Location),
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "roster insert failed", "error", err)
		return Lawyer{}, dErrors.New(dErrors.CodeInternal, "could not create lawyer")
	}

	s.metrics.LawyersCreatedTotal.Inc()
	return lawyer, nil
}
