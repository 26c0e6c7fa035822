package messaging

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTextWithChoicesSerialization(t *testing.T) {
	msg := NewTextWithChoices("How severe is the damage?", "minor", "moderate", "severe")

	data, err := json.Marshal(msg)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "text", decoded["type"])

	quickReply := decoded["quickReply"].(map[string]interface{})
	items := quickReply["items"].([]interface{})
	require.Len(t, items, 3)
	action := items[1].(map[string]interface{})["action"].(map[string]interface{})
	assert.Equal(t, "moderate", action["text"])
}

func TestNewTextWithoutChoicesHasNoQuickReply(t *testing.T) {
	data, err := json.Marshal(NewText("hello"))
	require.NoError(t, err)

	assert.NotContains(t, string(data), "quickReply")
}

func TestNewButtons(t *testing.T) {
	msg := NewButtons("Menu", "What would you like to do?", "report", "list")

	assert.Equal(t, "template", msg.Type)
	assert.Equal(t, "buttons", msg.Template.Type)
	require.Len(t, msg.Template.Actions, 2)
	assert.Equal(t, "report", msg.Template.Actions[0].Label)
	assert.Equal(t, "message", msg.Template.Actions[0].Type)
}
