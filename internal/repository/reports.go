// internal/repository/reports.go
package repository

import (
	"uxmetrics/internal/database"
	"uxmetrics/internal/models"
)

// SaveReport persists an exported report document.
func SaveReport(report *models.Report) error {
	return database.DB.Create(report).Error
}

// GetReport loads one report by id.
func GetReport(id uint) (*models.Report, error) {
	var report models.Report
	if err := database.DB.First(&report, id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// ListReports returns a study's reports, newest first.
func ListReports(studyID string) ([]models.Report, error) {
	var reports []models.Report
	err := database.DB.
		Where("study_id = ?", studyID).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}
