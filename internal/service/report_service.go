package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/vesteevolta/backend/internal/logger"
	"github.com/vesteevolta/backend/internal/models"
	"github.com/vesteevolta/backend/internal/repository/common"
	"github.com/vesteevolta/backend/internal/validation"
)

type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error)
	List(ctx context.Context) ([]models.Report, error)
	Update(ctx context.Context, report *models.Report) error
}

type ReportService struct {
	repo     ReportRepository
	clock    Clock
	notifier Notifier
}

func NewReportService(repo ReportRepository, clock Clock, notifier Notifier) *ReportService {
	return &ReportService{repo: repo, clock: clockOrSystem(clock), notifier: notifier}
}

type CreateReportInput struct {
	ReportedID         uuid.UUID
	ReportedClothingID uuid.UUID
	RentalID           *uuid.UUID
	Type               string
	Reason             string
	Description        *string
}

// Create files a report; it always starts OPEN.
func (s *ReportService) Create(ctx context.Context, reporterID uuid.UUID, in CreateReportInput) (*models.Report, error) {
	if strings.TrimSpace(in.Type) == "" {
		return nil, ErrReportTypeRequired
	}
	if strings.TrimSpace(in.Reason) == "" {
		return nil, ErrReportReasonRequired
	}
	if in.ReportedID == uuid.Nil {
		return nil, ErrReportedUserRequired
	}
	if in.ReportedClothingID == uuid.Nil {
		return nil, ErrReportedClothingRequired
	}
	if err := validation.ValidateLength("type", in.Type, 0, validation.MaxReportFieldLength); err != nil {
		return nil, invalid(err)
	}

	report := &models.Report{
		ReporterID:         reporterID,
		ReportedID:         in.ReportedID,
		ReportedClothingID: in.ReportedClothingID,
		RentalID:           in.RentalID,
		Type:               in.Type,
		Reason:             in.Reason,
		Description:        in.Description,
		Status:             models.ReportStatusOpen,
		Date:               s.clock.Now(),
	}
	if err := s.repo.Create(ctx, report); err != nil {
		return nil, storageError(err, nil)
	}

	logger.Log.WithField("report_id", report.ID).WithField("type", report.Type).Info("report filed")
	return report, nil
}

// UpdateStatus accepts only the exact upper-case tokens, checked before the
// report is loaded.
func (s *ReportService) UpdateStatus(ctx context.Context, id uuid.UUID, rawStatus string) (*models.Report, error) {
	status, ok := models.ParseReportStatus(rawStatus)
	if !ok {
		return nil, ErrInvalidReportStatus
	}

	report, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storageError(err, ErrReportNotFound)
	}

	report.Status = status
	if err := s.repo.Update(ctx, report); err != nil {
		return nil, storageError(err, ErrReportNotFound)
	}

	logger.Log.WithField("report_id", report.ID).WithField("status", status).Info("report status changed")
	if s.notifier != nil {
		s.notifier.BroadcastToUser(report.ReporterID, EventReportStatusChanged, map[string]interface{}{
			"report_id": report.ID,
			"status":    report.Status,
		})
	}
	return report, nil
}

func (s *ReportService) GetAll(ctx context.Context) ([]models.Report, error) {
	reports, err := s.repo.List(ctx)
	if err != nil {
		return nil, storageError(err, nil)
	}
	return reports, nil
}

// GetByID reports found=false instead of an error for a missing report.
func (s *ReportService) GetByID(ctx context.Context, id uuid.UUID) (*models.Report, bool, error) {
	report, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, storageError(err, nil)
	}
	return report, true, nil
}
