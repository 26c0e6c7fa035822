package messaging

// Outbound message units. Builders return values that serialize straight to
// the platform wire format, so callers never touch format literals.

type Message interface {
	message()
}

type TextMessage struct {
	Type       string      `json:"type"`
	Text       string      `json:"text"`
	QuickReply *QuickReply `json:"quickReply,omitempty"`
}

func (TextMessage) message() {}

type ImageMessage struct {
	Type               string `json:"type"`
	OriginalContentURL string `json:"originalContentUrl"`
	PreviewImageURL    string `json:"previewImageUrl"`
}

func (ImageMessage) message() {}

type ButtonsMessage struct {
	Type     string          `json:"type"`
	AltText  string          `json:"altText"`
	Template ButtonsTemplate `json:"template"`
}

func (ButtonsMessage) message() {}

type ButtonsTemplate struct {
	Type    string         `json:"type"`
	Title   string         `json:"title,omitempty"`
	Text    string         `json:"text"`
	Actions []ActionButton `json:"actions"`
}

type ActionButton struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Text  string `json:"text"`
}

type QuickReply struct {
	Items []QuickReplyItem `json:"items"`
}

type QuickReplyItem struct {
	Type   string       `json:"type"`
	Action ActionButton `json:"action"`
}

func NewText(text string) TextMessage {
	return TextMessage{Type: "text", Text: text}
}

// NewTextWithChoices attaches quick-reply buttons to a text message; tapping
// a choice sends it back as a plain text message.
func NewTextWithChoices(text string, choices ...string) TextMessage {
	msg := NewText(text)
	if len(choices) == 0 {
		return msg
	}
	qr := &QuickReply{}
	for _, choice := range choices {
		qr.Items = append(qr.Items, QuickReplyItem{
			Type:   "action",
			Action: ActionButton{Type: "message", Label: choice, Text: choice},
		})
	}
	msg.QuickReply = qr
	return msg
}

func NewImage(originalURL, previewURL string) ImageMessage {
	return ImageMessage{
		Type:               "image",
		OriginalContentURL: originalURL,
		PreviewImageURL:    previewURL,
	}
}

func NewButtons(altText, text string, actions ...string) ButtonsMessage {
	tmpl := ButtonsTemplate{Type: "buttons", Text: text}
	for _, action := range actions {
		tmpl.Actions = append(tmpl.Actions, ActionButton{
			Type:  "message",
			Label: action,
			Text:  action,
		})
	}
	return ButtonsMessage{Type: "template", AltText: altText, Template: tmpl}
}
