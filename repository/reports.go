package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/hazard-report/bot-go/models"
)

// ReportRepository is the gorm-backed implementation of the dialog's report
// repository port.
type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

func (r *ReportRepository) CreateReport(ctx context.Context, reporterID string) (uint, error) {
	report := models.Report{ReporterID: reporterID}
	if err := r.DB.WithContext(ctx).Create(&report).Error; err != nil {
		return 0, fmt.Errorf("failed to create report: %w", err)
	}
	return report.ID, nil
}

// SetLocationIfNull writes the location only when none is recorded yet. A
// redelivered location event therefore never overwrites the first value.
func (r *ReportRepository) SetLocationIfNull(ctx context.Context, reportID uint, address string, lat, lon float64) error {
	err := r.DB.WithContext(ctx).
		Model(&models.Report{}).
		Where("id = ? AND address IS NULL", reportID).
		Updates(map[string]interface{}{
			"address":   address,
			"latitude":  lat,
			"longitude": lon,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to set report location: %w", err)
	}
	return nil
}

// AppendPhotos records the given URLs as ordered photos of the report,
// continuing from the report's current highest position. The whole batch is
// inserted in one transaction.
func (r *ReportRepository) AppendPhotos(ctx context.Context, reportID uint, urls []string) error {
	if len(urls) == 0 {
		return nil
	}

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.Photo{}).Where("report_id = ?", reportID).Count(&existing).Error; err != nil {
			return fmt.Errorf("failed to count report photos: %w", err)
		}

		photos := make([]models.Photo, len(urls))
		for i, url := range urls {
			photos[i] = models.Photo{
				ReportID: reportID,
				URL:      url,
				Position: int(existing) + i,
			}
		}

		if err := tx.Create(&photos).Error; err != nil {
			return fmt.Errorf("failed to record report photos: %w", err)
		}
		return nil
	})
}

func (r *ReportRepository) SetSeverityIfNull(ctx context.Context, reportID uint, severity string) error {
	err := r.DB.WithContext(ctx).
		Model(&models.Report{}).
		Where("id = ? AND severity IS NULL", reportID).
		Update("severity", severity).Error
	if err != nil {
		return fmt.Errorf("failed to set report severity: %w", err)
	}
	return nil
}

func (r *ReportRepository) ListReports(ctx context.Context, limit int) ([]models.Report, error) {
	query := r.DB.WithContext(ctx).
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var reports []models.Report
	if err := query.Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

func (r *ReportRepository) ListNotificationRecipients(ctx context.Context) ([]string, error) {
	var userIDs []string
	err := r.DB.WithContext(ctx).
		Model(&models.Recipient{}).
		Where("notify_enabled = ?", true).
		Pluck("user_id", &userIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notification recipients: %w", err)
	}
	return userIDs, nil
}
