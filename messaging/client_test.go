package messaging

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	path string
	auth string
	body map[string]interface{}
}

func newTestClient(t *testing.T, status int, content []byte) (*Client, *[]recordedRequest) {
	t.Helper()
	var requests []recordedRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recordedRequest{path: r.URL.Path, auth: r.Header.Get("Authorization")}
		if r.Method == http.MethodPost {
			data, _ := io.ReadAll(r.Body)
			json.Unmarshal(data, &rec.body)
		}
		requests = append(requests, rec)

		w.WriteHeader(status)
		if content != nil {
			w.Write(content)
		}
	}))
	t.Cleanup(server.Close)

	return NewClientWithEndpoints("test-token", server.URL, server.URL), &requests
}

func TestClientReply(t *testing.T) {
	client, requests := newTestClient(t, http.StatusOK, nil)

	err := client.Reply(context.Background(), "rt-1", NewText("hello"))

	require.NoError(t, err)
	require.Len(t, *requests, 1)
	req := (*requests)[0]
	assert.Equal(t, "/v2/bot/message/reply", req.path)
	assert.Equal(t, "Bearer test-token", req.auth)
	assert.Equal(t, "rt-1", req.body["replyToken"])
	messages := req.body["messages"].([]interface{})
	require.Len(t, messages, 1)
}

func TestClientMulticast(t *testing.T) {
	client, requests := newTestClient(t, http.StatusOK, nil)

	err := client.Multicast(context.Background(), []string{"op-1", "op-2"}, NewText("new report"))

	require.NoError(t, err)
	require.Len(t, *requests, 1)
	to := (*requests)[0].body["to"].([]interface{})
	assert.Equal(t, []interface{}{"op-1", "op-2"}, to)
}

func TestClientMulticastNoRecipients(t *testing.T) {
	client, requests := newTestClient(t, http.StatusOK, nil)

	err := client.Multicast(context.Background(), nil, NewText("new report"))

	require.NoError(t, err)
	assert.Empty(t, *requests)
}

func TestClientMessageContent(t *testing.T) {
	client, requests := newTestClient(t, http.StatusOK, []byte{0xff, 0xd8, 0xff})

	data, err := client.MessageContent(context.Background(), "m-1")

	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0xd8, 0xff}, data)
	assert.Equal(t, "/v2/bot/message/m-1/content", (*requests)[0].path)
}

func TestClientErrorStatus(t *testing.T) {
	client, _ := newTestClient(t, http.StatusUnauthorized, []byte(`{"message":"invalid token"}`))

	err := client.Push(context.Background(), "user-1", NewText("hello"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
