package models

import (
	"time"
)

// Severity labels suggested to the reporter. Free text is accepted as-is,
// these only drive the quick-reply buttons.
const (
	SeverityMinor    = "minor"
	SeverityModerate = "moderate"
	SeveritySevere   = "severe"
)

type Report struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ReporterID string   `gorm:"not null;index" json:"reporter_id"`
	Address    *string  `json:"address"`
	Latitude   *float64 `gorm:"type:decimal(10,8)" json:"latitude"`
	Longitude  *float64 `gorm:"type:decimal(11,8)" json:"longitude"`
	Severity   *string  `gorm:"type:varchar(50)" json:"severity"`

	Photos []Photo `gorm:"foreignKey:ReportID" json:"photos"`
}

type Photo struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	ReportID uint   `gorm:"not null;index" json:"report_id"`
	URL      string `gorm:"not null" json:"url"`
	Position int    `gorm:"not null" json:"position"`
}
