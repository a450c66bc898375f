package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIChatClientComplete(t *testing.T) {
	var got struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string          `json:"role"`
			Content json.RawMessage `json:"content"`
		} `json:"messages"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "{\"total_calories\": 100}"}}]}`))
	}))
	defer server.Close()

	client := NewOpenAIChatClient(server.URL, "gpt-4o", 5*time.Second)
	reply, err := client.Complete(context.Background(), ChatRequest{
		APIKey:       "sk-test",
		SystemPrompt: "be strict",
		UserText:     "what is this",
		Images:       []ChatImage{{MimeType: "image/png", Data: "iVBORw0KGgo="}},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"total_calories": 100}`, reply)

	assert.Equal(t, "gpt-4o", got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.JSONEq(t, `"be strict"`, string(got.Messages[0].Content))

	var parts []contentPart
	require.NoError(t, json.Unmarshal(got.Messages[1].Content, &parts))
	require.Len(t, parts, 2)
	assert.Equal(t, "what is this", parts[0].Text)
	assert.Equal(t, "data:image/png;base64,iVBORw0KGgo=", parts[1].ImageURL.URL)
}

func TestOpenAIChatClientErrors(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error": {"message": "Incorrect API key provided"}}`))
		}))
		defer server.Close()

		client := NewOpenAIChatClient(server.URL, "gpt-4o", 5*time.Second)
		_, err := client.Complete(context.Background(), ChatRequest{APIKey: "bad"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
		assert.True(t, looksLikeAuthFailure(err))
	})

	t.Run("no choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"choices": []}`))
		}))
		defer server.Close()

		client := NewOpenAIChatClient(server.URL, "gpt-4o", 5*time.Second)
		_, err := client.Complete(context.Background(), ChatRequest{APIKey: "k"})
		assert.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client := NewOpenAIChatClient(server.URL, "gpt-4o", 5*time.Second)
		_, err := client.Complete(ctx, ChatRequest{APIKey: "k"})
		require.Error(t, err)
		assert.False(t, looksLikeAuthFailure(err))
	})
}
