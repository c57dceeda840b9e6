package generate_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/ai-service/pkg/config"
	"github.com/artem13815/ai-service/pkg/generate"
	"github.com/artem13815/ai-service/pkg/llm/openai"
)

func request() generate.Request {
	notes := "swelling"
	return generate.Request{
		Message:        "tooth hurts",
		PatientContext: &generate.PatientContext{Name: "Alex", MedicalNotes: &notes},
	}
}

func upstream(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func newService(s config.Settings) generate.UseCase {
	return generate.NewService(s, openai.New(s), zerolog.Nop())
}

func TestFallbackEmptyAPIKey(t *testing.T) {
	srv, calls := upstream(t, http.StatusOK, `{"choices":[{"message":{"content":"remote"}}]}`)
	s := config.Settings{Provider: config.ProviderOpenAI, BaseURL: srv.URL, Model: "m", RequestTimeoutSeconds: 1}

	out, err := newService(s).Generate(context.Background(), request())

	require.NoError(t, err)
	assert.Equal(t, generate.MockReply(request()), out.Reply)
	assert.Zero(t, calls.Load())
}

func TestFallbackUpstream500(t *testing.T) {
	srv, calls := upstream(t, http.StatusInternalServerError, `{"error":"down"}`)
	s := config.Settings{Provider: config.ProviderOpenAI, APIKey: "k", BaseURL: srv.URL, Model: "m", RequestTimeoutSeconds: 1}

	out, err := newService(s).Generate(context.Background(), request())

	require.NoError(t, err)
	assert.Equal(t, generate.MockReply(request()), out.Reply)
	assert.EqualValues(t, 1, calls.Load())
}

func TestFallbackMissingChoices(t *testing.T) {
	srv, _ := upstream(t, http.StatusOK, `{"id":"cmpl-1"}`)
	s := config.Settings{Provider: config.ProviderOpenAI, APIKey: "k", BaseURL: srv.URL, Model: "m", RequestTimeoutSeconds: 1}

	out, err := newService(s).Generate(context.Background(), request())

	require.NoError(t, err)
	assert.Equal(t, generate.MockReply(request()), out.Reply)
}

func TestRemoteSuccess(t *testing.T) {
	srv, calls := upstream(t, http.StatusOK, `{"choices":[{"message":{"content":" Please book a visit. "}}]}`)
	s := config.Settings{Provider: config.ProviderOpenAI, APIKey: "k", BaseURL: srv.URL, Model: "m", RequestTimeoutSeconds: 1}

	out, err := newService(s).Generate(context.Background(), request())

	require.NoError(t, err)
	assert.Equal(t, "Please book a visit.", out.Reply)
	assert.EqualValues(t, 1, calls.Load())
}
