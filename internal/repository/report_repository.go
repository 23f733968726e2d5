package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/vesteevolta/backend/internal/models"
	"github.com/vesteevolta/backend/internal/repository/common"
)

type ReportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	return r.db.QueryRowxContext(ctx, `
		INSERT INTO reports (reporter_id, reported_id, reported_clothing_id, rental_id, type, reason, description, status, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`, report.ReporterID, report.ReportedID, report.ReportedClothingID, report.RentalID,
		report.Type, report.Reason, report.Description, report.Status, report.Date,
	).Scan(&report.ID, &report.CreatedAt)
}

func (r *ReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	return common.GetByID[models.Report](ctx, r.db, "reports", id)
}

func (r *ReportRepository) List(ctx context.Context) ([]models.Report, error) {
	reports := []models.Report{}
	if err := r.db.SelectContext(ctx, &reports, `SELECT * FROM reports ORDER BY created_at DESC`); err != nil {
		return nil, fmt.Errorf("report repository: list %w", err)
	}
	return reports, nil
}

// Update persists the moderation status.
func (r *ReportRepository) Update(ctx context.Context, report *models.Report) error {
	res, err := r.db.ExecContext(ctx, `UPDATE reports SET status = $2 WHERE id = $1`, report.ID, report.Status)
	return common.ExpectOneRow(res, err, "reports")
}
