package dialog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hazard-report/bot-go/messaging"
	"github.com/hazard-report/bot-go/models"
)

func sampleReport(id uint, address, severity string, photoCount int) models.Report {
	lat, lon := 35.0, 139.0
	report := models.Report{
		ID:        id,
		Address:   &address,
		Latitude:  &lat,
		Longitude: &lon,
		Severity:  &severity,
	}
	for i := 0; i < photoCount; i++ {
		report.Photos = append(report.Photos, models.Photo{
			ReportID: id,
			URL:      fmt.Sprintf("https://photos.test/reports/%d/%d.jpg", id, i),
			Position: i,
		})
	}
	return report
}

func TestFormatReportListEmpty(t *testing.T) {
	groups := FormatReportList(nil, 5)

	require.Len(t, groups, 1)
	require.Len(t, groups[0], 1)
	text := groups[0][0].(messaging.TextMessage)
	assert.Contains(t, text.Text, "No reports")
}

func TestFormatReportListChunking(t *testing.T) {
	// 1 header + 3 + 4 + 4 summary/photo units = 12 -> 5/5/2
	reports := []models.Report{
		sampleReport(3, "Tokyo", "severe", 2),
		sampleReport(2, "Osaka", "moderate", 3),
		sampleReport(1, "Kyoto", "minor", 3),
	}

	groups := FormatReportList(reports, 5)

	require.Len(t, groups, 3)
	assert.Len(t, groups[0], 5)
	assert.Len(t, groups[1], 5)
	assert.Len(t, groups[2], 2)
}

func TestFormatReportListOrdering(t *testing.T) {
	reports := []models.Report{sampleReport(7, "Tokyo", "severe", 3)}

	groups := FormatReportList(reports, 50)

	require.Len(t, groups, 1)
	units := groups[0]
	require.Len(t, units, 5)

	summary := units[1].(messaging.TextMessage)
	assert.Contains(t, summary.Text, "#7")
	for i := 0; i < 3; i++ {
		image := units[2+i].(messaging.ImageMessage)
		assert.Equal(t, fmt.Sprintf("https://photos.test/reports/7/%d.jpg", i), image.OriginalContentURL)
		assert.Equal(t, image.OriginalContentURL, image.PreviewImageURL)
	}
}

func TestFormatReportSummary(t *testing.T) {
	report := sampleReport(9, "Shibuya Crossing, Tokyo", "moderate", 0)

	summary := formatReportSummary(report)

	assert.Contains(t, summary, "#9 [moderate]")
	assert.Contains(t, summary, "Shibuya Crossing, Tokyo")
	assert.Contains(t, summary, "https://www.google.com/maps/search/?api=1&query=Shibuya+Crossing%2C+Tokyo")
	assert.Contains(t, summary, "(35.000000, 139.000000)")
}

func TestFormatReportSummaryPartialReport(t *testing.T) {
	report := models.Report{ID: 4}

	summary := formatReportSummary(report)

	assert.Equal(t, "#4", summary)
}
