package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/srgjo27/campus_event/internal/core/domain"
	"github.com/srgjo27/campus_event/internal/core/ports"
)

type ReportService struct {
	repo ports.ReportRepository
	log  zerolog.Logger
}

func NewReportService(repo ports.ReportRepository, log zerolog.Logger) *ReportService {
	return &ReportService{
		repo: repo,
		log:  log.With().Str("component", "report_service").Logger(),
	}
}

// Sales lists completed payments whose payment date falls in the inclusive
// filter range, newest first, with their total.
func (s *ReportService) Sales(ctx context.Context, filter domain.SalesFilter) (*domain.SalesReport, error) {
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, invalid("start date must not be after end date")
	}

	lines, err := s.repo.Sales(ctx, filter)
	if err != nil {
		return nil, err
	}

	report := domain.NewSalesReport(lines)

	s.log.Debug().Int("count", report.Count).Str("total", report.Total.StringFixed(2)).Msg("sales report built")

	return report, nil
}

func (s *ReportService) Events(ctx context.Context) ([]domain.EventReportLine, error) {
	lines, err := s.repo.EventSummary(ctx)
	if err != nil {
		return nil, err
	}

	if lines == nil {
		lines = []domain.EventReportLine{}
	}

	return lines, nil
}
