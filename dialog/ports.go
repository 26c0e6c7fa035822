package dialog

import (
	"context"

	"github.com/hazard-report/bot-go/messaging"
	"github.com/hazard-report/bot-go/models"
)

// ReportRepository is the durable store of report records. The SetXxxIfNull
// operations only write fields that are currently unset, which makes
// redelivered webhook events harmless.
type ReportRepository interface {
	CreateReport(ctx context.Context, reporterID string) (uint, error)
	SetLocationIfNull(ctx context.Context, reportID uint, address string, lat, lon float64) error
	AppendPhotos(ctx context.Context, reportID uint, urls []string) error
	SetSeverityIfNull(ctx context.Context, reportID uint, severity string) error

	// ListReports returns reports newest-first, with photos ordered by
	// position. limit <= 0 means all.
	ListReports(ctx context.Context, limit int) ([]models.Report, error)

	// ListNotificationRecipients returns the user ids of operators that
	// opted in to new-report notifications.
	ListNotificationRecipients(ctx context.Context) ([]string, error)
}

// PhotoStore persists photo bytes and returns a retrievable URL.
type PhotoStore interface {
	Store(ctx context.Context, data []byte, key string) (string, error)
}

// Messenger is the outbound side of the chat transport plus media download.
// Reply consumes a single-use token; Push and Multicast are out-of-band.
type Messenger interface {
	Reply(ctx context.Context, replyToken string, messages ...messaging.Message) error
	Push(ctx context.Context, to string, messages ...messaging.Message) error
	Multicast(ctx context.Context, to []string, messages ...messaging.Message) error
	MessageContent(ctx context.Context, messageID string) ([]byte, error)
}
