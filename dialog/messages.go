package dialog

import (
	"fmt"

	"github.com/hazard-report/bot-go/messaging"
	"github.com/hazard-report/bot-go/models"
)

// Keywords recognized on trimmed text. Matching is case-sensitive.
const (
	keywordReport = "report"
	keywordList   = "list"
	keywordDone   = "done"
	keywordAll    = "all"
)

const (
	textLocationPrompt  = "Please send the location of the damage."
	textListCountPrompt = "How many reports would you like? Send a number or 'all'."
	textListReprompt    = "Please send a positive number or 'all'."
	textNoReports       = "No reports have been submitted yet."
	textSeverityPrompt  = "How severe is the damage?"
	textNeedPhoto       = "Please send at least one photo before saying 'done'."
	textFailure         = "Sorry, something went wrong. Please try again."
)

func menuMessage() messaging.Message {
	return messaging.NewButtons(
		"Damage report menu",
		"What would you like to do?",
		keywordReport,
		keywordList,
	)
}

func locationReceivedMessage(address string, photoCap int) messaging.Message {
	return messaging.NewText(fmt.Sprintf(
		"Received location (%s). Now send up to %d photos of the damage, then say '%s'.",
		address, photoCap, keywordDone,
	))
}

func photoCountMessage(count, photoCap int) messaging.Message {
	return messaging.NewText(fmt.Sprintf(
		"Photo %d of %d received. Send another or say '%s'.",
		count, photoCap, keywordDone,
	))
}

func photoCapMessage(photoCap int) messaging.Message {
	return messaging.NewText(fmt.Sprintf(
		"You already sent %d photos. Say '%s' to continue.",
		photoCap, keywordDone,
	))
}

func severityPromptMessage() messaging.Message {
	return messaging.NewTextWithChoices(
		textSeverityPrompt,
		models.SeverityMinor,
		models.SeverityModerate,
		models.SeveritySevere,
	)
}

func severityRecordedMessage(severity string) messaging.Message {
	return messaging.NewText(fmt.Sprintf(
		"Thank you. Your report has been recorded with severity %q.",
		severity,
	))
}

func notificationMessage(reportID uint, reporterID, severity string) messaging.Message {
	return messaging.NewText(fmt.Sprintf(
		"New damage report #%d from %s (severity: %s)",
		reportID, reporterID, severity,
	))
}
