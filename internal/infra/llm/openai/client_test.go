package openai

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kenobicjj/youtubeanalystAPI/internal/domain"
	"github.com/kenobicjj/youtubeanalystAPI/internal/infra/provider"
)

const (
	testBaseURL         = "http://llm.test/v1"
	completionsEndpoint = testBaseURL + "/chat/completions"
	modelsEndpoint      = testBaseURL + "/models"
)

func newTestClient() (*Client, *httpmock.MockTransport) {
	mock := httpmock.NewMockTransport()
	client := New(provider.ClientConfig{
		BaseURL: testBaseURL,
		Timeout: 5 * time.Second,
	}, "ollama", "gemma3", mock, zap.NewNop())

	return client, mock
}

func chatResponse(content string) map[string]any {
	return map[string]any{
		"id":     "chatcmpl-1",
		"object": "chat.completion",
		"model":  "gemma3",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": "stop",
		}},
	}
}

// TestComplete_Success tests the chat request and the returned content.
func TestComplete_Success(t *testing.T) {
	client, mock := newTestClient()

	var body map[string]any
	var auth string
	mock.RegisterResponder("POST", completionsEndpoint,
		func(req *http.Request) (*http.Response, error) {
			auth = req.Header.Get("Authorization")
			if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
				return nil, err
			}

			return httpmock.NewJsonResponse(200, chatResponse("Summary text"))
		})

	out, err := client.Complete(context.Background(), "summarize",
		domain.CompletionOptions{Temperature: 0.1, TopP: 0.9})

	require.NoError(t, err)
	assert.Equal(t, "Summary text", out)
	assert.Equal(t, "Bearer ollama", auth)
	assert.Equal(t, "gemma3", body["model"])
	assert.InDelta(t, 0.1, body["temperature"], 1e-6)
	assert.InDelta(t, 0.9, body["top_p"], 1e-6)

	messages := body["messages"].([]any)
	require.Len(t, messages, 1)
	msg := messages[0].(map[string]any)
	assert.Equal(t, "user", msg["role"])
	assert.Equal(t, "summarize", msg["content"])
}

// TestComplete_NoChoices tests an empty completion.
func TestComplete_NoChoices(t *testing.T) {
	client, mock := newTestClient()

	mock.RegisterResponder("POST", completionsEndpoint,
		httpmock.NewJsonResponderOrPanic(200, map[string]any{"id": "x", "choices": []any{}}))

	out, err := client.Complete(context.Background(), "p", domain.CompletionOptions{})

	require.NoError(t, err)
	assert.Empty(t, out)
}

// TestComplete_APIError tests that error statuses map to ErrUpstreamStatus.
func TestComplete_APIError(t *testing.T) {
	tests := []struct {
		name      string
		responder httpmock.Responder
	}{
		{"json error body", httpmock.NewStringResponder(404,
			`{"error":{"message":"model not found","type":"invalid_request_error"}}`)},
		{"plain error body", httpmock.NewStringResponder(502, "bad gateway")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, mock := newTestClient()
			mock.RegisterResponder("POST", completionsEndpoint, tt.responder)

			_, err := client.Complete(context.Background(), "p", domain.CompletionOptions{})

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrUpstreamStatus)
		})
	}
}

// TestComplete_ConnectionRefused tests detection of a stopped server.
func TestComplete_ConnectionRefused(t *testing.T) {
	client, mock := newTestClient()

	mock.RegisterResponder("POST", completionsEndpoint,
		httpmock.NewErrorResponder(&net.OpError{
			Op:  "dial",
			Net: "tcp",
			Err: &os.SyscallError{Syscall: "connect", Err: syscall.ECONNREFUSED},
		}))

	_, err := client.Complete(context.Background(), "p", domain.CompletionOptions{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrModelServerUnreachable)
}

// TestListModels_Success tests mapping of the models listing.
func TestListModels_Success(t *testing.T) {
	client, mock := newTestClient()

	mock.RegisterResponder("GET", modelsEndpoint,
		httpmock.NewStringResponder(200, `{"object":"list","data":[
			{"id":"gemma3:latest","object":"model","created":1714557600,"owned_by":"library"},
			{"id":"llama3:8b","object":"model","created":0,"owned_by":"library"}
		]}`))

	models, err := client.ListModels(context.Background())

	require.NoError(t, err)
	require.Len(t, models, 2)
	assert.Equal(t, "gemma3:latest", models[0].Name)
	assert.Equal(t, time.Unix(1714557600, 0).UTC(), models[0].ModifiedAt)
	assert.Equal(t, "llama3:8b", models[1].Name)
	assert.True(t, models[1].ModifiedAt.IsZero())
}

// TestListModels_Error tests listing failures.
func TestListModels_Error(t *testing.T) {
	client, mock := newTestClient()

	mock.RegisterResponder("GET", modelsEndpoint,
		httpmock.NewStringResponder(500, `{"error":{"message":"boom"}}`))

	models, err := client.ListModels(context.Background())

	require.Error(t, err)
	assert.Nil(t, models)
	assert.ErrorIs(t, err, domain.ErrUpstreamStatus)
}
