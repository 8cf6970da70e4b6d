package agent_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/razoraze123/flux/internal/agent"
)

func TestGeminiClient_Converse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var body struct {
			SystemInstruction *struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"system_instruction"`
			Contents []struct {
				Role  string `json:"role"`
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		require.NotNil(t, body.SystemInstruction)
		assert.Equal(t, "system prompt", body.SystemInstruction.Parts[0].Text)

		require.Len(t, body.Contents, 2)
		assert.Equal(t, "model", body.Contents[0].Role)
		assert.Equal(t, "user", body.Contents[1].Role)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{
					"content": map[string]any{
						"role": "model",
						"parts": []map[string]string{
							{"text": "Bonjour !"},
						},
					},
				},
			},
		})
	}))
	defer server.Close()

	c := agent.NewGeminiClient("test-key", "gemini-2.5-flash", server.URL)

	reply, err := c.Converse(context.Background(), "system prompt", []agent.Message{
		{Role: agent.RoleAgent, Content: agent.WelcomeReply},
		{Role: agent.RoleUser, Content: "Salut"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Bonjour !", reply)
}

func TestGeminiClient_Converse_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	c := agent.NewGeminiClient("test-key", "gemini-2.5-flash", server.URL)

	_, err := c.Converse(context.Background(), "", []agent.Message{
		{Role: agent.RoleUser, Content: "Salut"},
	})
	assert.ErrorContains(t, err, "status 429")
}

func TestGeminiClient_Converse_EmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	c := agent.NewGeminiClient("test-key", "gemini-2.5-flash", server.URL)

	_, err := c.Converse(context.Background(), "", nil)
	assert.ErrorContains(t, err, "empty response")
}
