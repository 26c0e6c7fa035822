package dialog

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/hazard-report/bot-go/messaging"
)

const (
	DefaultPhotoCap  = 3
	DefaultBatchSize = 5
)

// Controller drives the per-user intake dialog. Each inbound event is
// classified against the user's current step; events that do not match the
// step's expected kind are ignored without a reply, which keeps the
// location -> photos -> severity progression strictly linear.
type Controller struct {
	sessions  Store
	reports   ReportRepository
	photos    PhotoStore
	messenger Messenger

	photoCap  int
	batchSize int
	locks     *userLocks
}

type Option func(*Controller)

func WithPhotoCap(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.photoCap = n
		}
	}
}

func WithBatchSize(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.batchSize = n
		}
	}
}

func NewController(sessions Store, reports ReportRepository, photos PhotoStore, messenger Messenger, opts ...Option) *Controller {
	c := &Controller{
		sessions:  sessions,
		reports:   reports,
		photos:    photos,
		messenger: messenger,
		photoCap:  DefaultPhotoCap,
		batchSize: DefaultBatchSize,
		locks:     newUserLocks(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HandleEvent processes one webhook event. Storage and upload failures are
// recovered here: the user gets a generic failure reply and the session does
// not advance, so the next matching event naturally retries. Only transport
// faults propagate to the caller.
func (dc *Controller) HandleEvent(ctx context.Context, event messaging.Event) error {
	userID := event.Source.UserID
	if userID == "" {
		return nil
	}

	switch event.Type {
	case messaging.EventTypeFollow:
		return dc.messenger.Reply(ctx, event.ReplyToken, menuMessage())
	case messaging.EventTypeMessage:
		if event.Message == nil {
			return nil
		}
		unlock := dc.locks.lock(userID)
		defer unlock()
		return dc.handleMessage(ctx, event)
	default:
		return nil
	}
}

func (dc *Controller) handleMessage(ctx context.Context, event messaging.Event) error {
	userID := event.Source.UserID
	session, ok := dc.sessions.Get(userID)
	if !ok {
		session = Session{UserID: userID, Step: StepIdle}
	}

	switch session.Step {
	case StepIdle:
		return dc.handleIdle(ctx, event, session)
	case StepAwaitingListCount:
		return dc.handleListCount(ctx, event, session)
	case StepAwaitingLocation:
		return dc.handleLocation(ctx, event, session)
	case StepAwaitingPhotos:
		return dc.handlePhotos(ctx, event, session)
	case StepAwaitingSeverity:
		return dc.handleSeverity(ctx, event, session)
	default:
		log.Warn().Str("userId", userID).Stringer("step", session.Step).Msg("session in unknown step, resetting")
		dc.sessions.Set(userID, Session{UserID: userID, Step: StepIdle})
		return nil
	}
}

func (dc *Controller) handleIdle(ctx context.Context, event messaging.Event, session Session) error {
	if event.Message.Type != messaging.MessageTypeText {
		return nil
	}

	switch strings.TrimSpace(event.Message.Text) {
	case keywordReport:
		reportID, err := dc.reports.CreateReport(ctx, session.UserID)
		if err != nil {
			log.Error().Err(err).Str("userId", session.UserID).Msg("failed to create report")
			return dc.messenger.Reply(ctx, event.ReplyToken, messaging.NewText(textFailure))
		}
		dc.sessions.Set(session.UserID, Session{
			UserID:   session.UserID,
			Step:     StepAwaitingLocation,
			ReportID: reportID,
		})
		log.Info().Str("userId", session.UserID).Uint("reportId", reportID).Msg("report started")
		return dc.messenger.Reply(ctx, event.ReplyToken, messaging.NewText(textLocationPrompt))

	case keywordList:
		dc.sessions.Set(session.UserID, Session{UserID: session.UserID, Step: StepAwaitingListCount})
		return dc.messenger.Reply(ctx, event.ReplyToken, messaging.NewText(textListCountPrompt))

	default:
		return nil
	}
}

func (dc *Controller) handleListCount(ctx context.Context, event messaging.Event, session Session) error {
	if event.Message.Type != messaging.MessageTypeText {
		return nil
	}

	text := strings.TrimSpace(event.Message.Text)
	limit := 0
	if text != keywordAll {
		n, err := strconv.Atoi(text)
		if err != nil || n < 1 {
			return dc.messenger.Reply(ctx, event.ReplyToken, messaging.NewText(textListReprompt))
		}
		limit = n
	}

	reports, err := dc.reports.ListReports(ctx, limit)
	if err != nil {
		log.Error().Err(err).Str("userId", session.UserID).Msg("failed to list reports")
		return dc.messenger.Reply(ctx, event.ReplyToken, messaging.NewText(textFailure))
	}

	groups := FormatReportList(reports, dc.batchSize)

	// The reply token is single use: first group goes out as the direct
	// reply, the rest follow as pushes, then the menu.
	if err := dc.messenger.Reply(ctx, event.ReplyToken, groups[0]...); err != nil {
		return err
	}
	for _, group := range groups[1:] {
		if err := dc.messenger.Push(ctx, session.UserID, group...); err != nil {
			return err
		}
	}
	if err := dc.messenger.Push(ctx, session.UserID, menuMessage()); err != nil {
		return err
	}

	dc.sessions.Set(session.UserID, Session{UserID: session.UserID, Step: StepIdle})
	return nil
}

func (dc *Controller) handleLocation(ctx context.Context, event messaging.Event, session Session) error {
	if event.Message.Type != messaging.MessageTypeLocation {
		return nil
	}

	msg := event.Message
	if err := dc.reports.SetLocationIfNull(ctx, session.ReportID, msg.Address, msg.Latitude, msg.Longitude); err != nil {
		log.Error().Err(err).Uint("reportId", session.ReportID).Msg("failed to persist location")
		return dc.messenger.Reply(ctx, event.ReplyToken, messaging.NewText(textFailure))
	}

	session.Step = StepAwaitingPhotos
	session.BufferedPhotos = nil
	dc.sessions.Set(session.UserID, session)
	return dc.messenger.Reply(ctx, event.ReplyToken, locationReceivedMessage(msg.Address, dc.photoCap))
}

func (dc *Controller) handlePhotos(ctx context.Context, event messaging.Event, session Session) error {
	switch event.Message.Type {
	case messaging.MessageTypeImage:
		if len(session.BufferedPhotos) >= dc.photoCap {
			return dc.messenger.Reply(ctx, event.ReplyToken, photoCapMessage(dc.photoCap))
		}
		session.BufferedPhotos = append(session.BufferedPhotos, event.Message.ID)
		dc.sessions.Set(session.UserID, session)
		return dc.messenger.Reply(ctx, event.ReplyToken, photoCountMessage(len(session.BufferedPhotos), dc.photoCap))

	case messaging.MessageTypeText:
		if strings.TrimSpace(event.Message.Text) != keywordDone {
			return nil
		}
		if len(session.BufferedPhotos) == 0 {
			return dc.messenger.Reply(ctx, event.ReplyToken, messaging.NewText(textNeedPhoto))
		}
		return dc.flushPhotos(ctx, event, session)

	default:
		return nil
	}
}

// flushPhotos commits the buffered photos as one batch: download each from
// the transport, store the bytes, then record all URLs in submission order.
// Any failure aborts the whole batch and leaves the session (and buffer)
// untouched so the user can retry with another "done". Objects already
// uploaded by a failed attempt are left behind; keys are fresh per attempt,
// so a retry never collides with them.
func (dc *Controller) flushPhotos(ctx context.Context, event messaging.Event, session Session) error {
	urls := make([]string, 0, len(session.BufferedPhotos))
	for i, messageID := range session.BufferedPhotos {
		data, err := dc.messenger.MessageContent(ctx, messageID)
		if err != nil {
			log.Error().Err(err).Str("messageId", messageID).Uint("reportId", session.ReportID).Msg("failed to download photo")
			return dc.messenger.Reply(ctx, event.ReplyToken, messaging.NewText(textFailure))
		}

		url, err := dc.photos.Store(ctx, data, photoKey(session.ReportID, i, data))
		if err != nil {
			log.Error().Err(err).Str("messageId", messageID).Uint("reportId", session.ReportID).Msg("failed to store photo")
			return dc.messenger.Reply(ctx, event.ReplyToken, messaging.NewText(textFailure))
		}
		urls = append(urls, url)
	}

	if err := dc.reports.AppendPhotos(ctx, session.ReportID, urls); err != nil {
		log.Error().Err(err).Uint("reportId", session.ReportID).Msg("failed to record photos")
		return dc.messenger.Reply(ctx, event.ReplyToken, messaging.NewText(textFailure))
	}

	// Buffer is cleared exactly once, together with the committed flush.
	session.BufferedPhotos = nil
	session.Step = StepAwaitingSeverity
	dc.sessions.Set(session.UserID, session)

	log.Info().Uint("reportId", session.ReportID).Int("photos", len(urls)).Msg("photos recorded")
	return dc.messenger.Reply(ctx, event.ReplyToken, severityPromptMessage())
}

func (dc *Controller) handleSeverity(ctx context.Context, event messaging.Event, session Session) error {
	if event.Message.Type != messaging.MessageTypeText {
		return nil
	}

	severity := strings.TrimSpace(event.Message.Text)
	if severity == "" {
		return nil
	}

	if err := dc.reports.SetSeverityIfNull(ctx, session.ReportID, severity); err != nil {
		log.Error().Err(err).Uint("reportId", session.ReportID).Msg("failed to persist severity")
		return dc.messenger.Reply(ctx, event.ReplyToken, messaging.NewText(textFailure))
	}

	dc.notifyRecipients(ctx, session.ReportID, session.UserID, severity)

	dc.sessions.Set(session.UserID, Session{UserID: session.UserID, Step: StepIdle})
	log.Info().Uint("reportId", session.ReportID).Str("severity", severity).Msg("report completed")
	return dc.messenger.Reply(ctx, event.ReplyToken,
		severityRecordedMessage(severity),
		menuMessage(),
	)
}

// notifyRecipients fans the new report out to opted-in operators. Best
// effort: a failed notification never fails the reporter-facing path.
func (dc *Controller) notifyRecipients(ctx context.Context, reportID uint, reporterID, severity string) {
	recipients, err := dc.reports.ListNotificationRecipients(ctx)
	if err != nil {
		log.Error().Err(err).Uint("reportId", reportID).Msg("failed to list notification recipients")
		return
	}
	if len(recipients) == 0 {
		return
	}

	if err := dc.messenger.Multicast(ctx, recipients, notificationMessage(reportID, reporterID, severity)); err != nil {
		log.Error().Err(err).Uint("reportId", reportID).Int("recipients", len(recipients)).Msg("failed to notify recipients")
	}
}

func photoKey(reportID uint, position int, data []byte) string {
	ext := ".jpg"
	switch http.DetectContentType(data) {
	case "image/png":
		ext = ".png"
	case "image/webp":
		ext = ".webp"
	case "image/gif":
		ext = ".gif"
	}
	return fmt.Sprintf("reports/%d/%d_%s%s", reportID, position, uuid.New().String(), ext)
}
