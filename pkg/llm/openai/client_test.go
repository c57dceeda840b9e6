package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/ai-service/pkg/config"
	"github.com/artem13815/ai-service/pkg/llm"
)

func settingsFor(url string) config.Settings {
	return config.Settings{
		Provider:              config.ProviderOpenAI,
		APIKey:                "sk-test",
		BaseURL:               url,
		Model:                 "gpt-4o-mini",
		RequestTimeoutSeconds: 2,
	}
}

func TestCompleteSendsChatRequest(t *testing.T) {
	var got struct {
		Model    string    `json:"model"`
		Messages []message `json:"messages"`
		Temp     float64   `json:"temperature"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x","choices":[{"index":0,"message":{"role":"assistant","content":"  Rinse with warm salt water.  "}}]}`))
	}))
	defer srv.Close()

	c := New(settingsFor(srv.URL + "/v1/"))
	reply, err := c.Complete(context.Background(), "the prompt")

	require.NoError(t, err)
	assert.Equal(t, "Rinse with warm salt water.", reply)
	assert.Equal(t, "gpt-4o-mini", got.Model)
	assert.Equal(t, []message{{Role: "user", Content: "the prompt"}}, got.Messages)
	assert.Equal(t, 0.2, got.Temp)
}

func TestCompleteWithoutKeyNeverCallsUpstream(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	s := settingsFor(srv.URL)
	s.APIKey = ""
	_, err := New(s).Complete(context.Background(), "hi")

	var cfgErr *llm.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Zero(t, calls.Load())
}

func TestCompleteNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"overloaded"}}`))
	}))
	defer srv.Close()

	_, err := New(settingsFor(srv.URL)).Complete(context.Background(), "hi")

	var upErr *llm.UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, http.StatusInternalServerError, upErr.StatusCode)
	assert.Contains(t, upErr.Body, "overloaded")
	assert.False(t, upErr.Timeout())
}

func TestCompleteTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	s := settingsFor(srv.URL)
	s.RequestTimeoutSeconds = 0.05

	start := time.Now()
	_, err := New(s).Complete(context.Background(), "hi")

	var upErr *llm.UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.True(t, upErr.Timeout())
	assert.Less(t, time.Since(start), time.Second)
}

func TestCompleteConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := New(settingsFor(url)).Complete(context.Background(), "hi")

	var upErr *llm.UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Zero(t, upErr.StatusCode)
}

func TestCompleteInvalidBaseURL(t *testing.T) {
	_, err := New(settingsFor("http://bad host")).Complete(context.Background(), "hi")

	assert.Equal(t, llm.KindConfiguration, llm.Kind(err))
}

func TestCompleteMissingChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"x","object":"chat.completion"}`))
	}))
	defer srv.Close()

	_, err := New(settingsFor(srv.URL)).Complete(context.Background(), "hi")

	var shapeErr *llm.ResponseShapeError
	require.ErrorAs(t, err, &shapeErr)
}

func TestExtractReply(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "ok", body: `{"choices":[{"message":{"content":"Hi"}}]}`, want: "Hi"},
		{name: "trimmed", body: `{"choices":[{"message":{"content":"\n Hi \t"}}]}`, want: "Hi"},
		{name: "first choice wins", body: `{"choices":[{"message":{"content":"a"}},{"message":{"content":"b"}}]}`, want: "a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractReply([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractReplyShapeErrors(t *testing.T) {
	bodies := map[string]string{
		"not json":         `<html>bad gateway</html>`,
		"empty body":       ``,
		"null":             `null`,
		"array":            `[]`,
		"missing choices":  `{}`,
		"choices not list": `{"choices":{"0":{}}}`,
		"empty choices":    `{"choices":[]}`,
		"null choice":      `{"choices":[null]}`,
		"missing message":  `{"choices":[{}]}`,
		"missing content":  `{"choices":[{"message":{}}]}`,
		"null content":     `{"choices":[{"message":{"content":null}}]}`,
		"numeric content":  `{"choices":[{"message":{"content":42}}]}`,
		"list content":     `{"choices":[{"message":{"content":["a"]}}]}`,
		"blank content":    `{"choices":[{"message":{"content":"   "}}]}`,
		"message not dict": `{"choices":[{"message":"hi"}]}`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			_, err := ExtractReply([]byte(body))

			var shapeErr *llm.ResponseShapeError
			require.Error(t, err)
			assert.True(t, errors.As(err, &shapeErr), "got %T: %v", err, err)
		})
	}
}
