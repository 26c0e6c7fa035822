package messaging

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookRequestUnmarshal(t *testing.T) {
	payload := `{
		"destination": "bot-1",
		"events": [
			{
				"type": "message",
				"timestamp": 1700000000000,
				"replyToken": "rt-1",
				"source": {"type": "user", "userId": "user-1"},
				"message": {"id": "m-1", "type": "text", "text": "report"}
			},
			{
				"type": "message",
				"replyToken": "rt-2",
				"source": {"type": "user", "userId": "user-1"},
				"message": {
					"id": "m-2",
					"type": "location",
					"address": "Tokyo",
					"latitude": 35.0,
					"longitude": 139.0
				}
			},
			{
				"type": "message",
				"replyToken": "rt-3",
				"source": {"type": "user", "userId": "user-1"},
				"message": {"id": "m-3", "type": "image"}
			},
			{
				"type": "follow",
				"replyToken": "rt-4",
				"source": {"type": "user", "userId": "user-2"}
			}
		]
	}`

	var req WebhookRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))
	require.Len(t, req.Events, 4)

	text := req.Events[0]
	assert.Equal(t, EventTypeMessage, text.Type)
	assert.Equal(t, "user-1", text.Source.UserID)
	assert.Equal(t, MessageTypeText, text.Message.Type)
	assert.Equal(t, "report", text.Message.Text)

	location := req.Events[1]
	assert.Equal(t, MessageTypeLocation, location.Message.Type)
	assert.Equal(t, "Tokyo", location.Message.Address)
	assert.Equal(t, 35.0, location.Message.Latitude)
	assert.Equal(t, 139.0, location.Message.Longitude)

	image := req.Events[2]
	assert.Equal(t, MessageTypeImage, image.Message.Type)
	assert.Equal(t, "m-3", image.Message.ID)

	follow := req.Events[3]
	assert.Equal(t, EventTypeFollow, follow.Type)
	assert.Nil(t, follow.Message)
}
