package dialog

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/hazard-report/bot-go/messaging"
	"github.com/hazard-report/bot-go/models"
)

// FormatReportList builds the full outbound message sequence for a set of
// reports: one header, then per report a text summary followed by its photos
// in sequence order. Because the transport caps messages per send, the
// sequence is partitioned into groups of batchSize; the caller sends the
// first group as the direct reply and the rest as pushes.
func FormatReportList(reports []models.Report, batchSize int) [][]messaging.Message {
	if batchSize <= 0 {
		batchSize = 1
	}

	if len(reports) == 0 {
		return [][]messaging.Message{{messaging.NewText(textNoReports)}}
	}

	units := []messaging.Message{
		messaging.NewText(fmt.Sprintf("%d report(s), newest first:", len(reports))),
	}
	for _, report := range reports {
		units = append(units, messaging.NewText(formatReportSummary(report)))
		for _, photo := range report.Photos {
			units = append(units, messaging.NewImage(photo.URL, photo.URL))
		}
	}

	var groups [][]messaging.Message
	for len(units) > batchSize {
		groups = append(groups, units[:batchSize])
		units = units[batchSize:]
	}
	return append(groups, units)
}

func formatReportSummary(report models.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "#%d", report.ID)
	if report.Severity != nil {
		fmt.Fprintf(&b, " [%s]", *report.Severity)
	}

	if report.Address != nil {
		fmt.Fprintf(&b, "\n%s\n%s", *report.Address, mapLink(*report.Address))
	}
	if report.Latitude != nil && report.Longitude != nil {
		fmt.Fprintf(&b, "\n(%.6f, %.6f)", *report.Latitude, *report.Longitude)
	}

	return b.String()
}

func mapLink(address string) string {
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(address)
}
