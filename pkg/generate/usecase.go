package generate

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/artem13815/ai-service/pkg/config"
	"github.com/artem13815/ai-service/pkg/llm"
	"github.com/artem13815/ai-service/pkg/requestid"
)

type service struct {
	settings config.Settings
	llm      llm.ChatModel
	log      zerolog.Logger
}

// NewService wires the orchestrator. model may be nil when the mock provider
// is selected; with provider=openai a nil model is treated as misconfiguration.
func NewService(settings config.Settings, model llm.ChatModel, log zerolog.Logger) UseCase {
	return &service{settings: settings, llm: model, log: log}
}

func (s *service) Generate(ctx context.Context, req Request) (Response, error) {
	req = req.Normalize()
	if err := Validate(req); err != nil {
		return Response{}, err
	}
	reply, err := s.decide(ctx, req)
	if err != nil {
		return Response{}, err
	}
	return Response{Reply: reply}, nil
}

// decide picks the reply source. Known provider failures degrade to the mock
// reply for the same request; any other error is returned as is.
func (s *service) decide(ctx context.Context, req Request) (string, error) {
	if s.settings.Provider != config.ProviderOpenAI {
		return MockReply(req), nil
	}

	reply, err := s.complete(ctx, req)
	if err == nil {
		return reply, nil
	}
	if !llm.Recoverable(err) {
		return "", err
	}
	s.log.Warn().
		Err(err).
		Str("request_id", requestid.FromContext(ctx)).
		Str("provider", s.settings.Provider).
		Str("error_kind", llm.Kind(err)).
		Msg("provider generation failed, falling back to mock")
	return MockReply(req), nil
}

func (s *service) complete(ctx context.Context, req Request) (string, error) {
	if s.llm == nil {
		return "", &llm.ConfigurationError{Reason: "no chat model configured"}
	}
	reply, err := s.llm.Complete(ctx, BuildPrompt(req))
	if err != nil {
		return "", err
	}
	if reply == "" {
		return "", &llm.ResponseShapeError{Reason: "empty reply"}
	}
	return reply, nil
}

// IsValidation reports whether err came from request validation.
func IsValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	ok := errors.As(err, &verr)
	return verr, ok
}
