package checkers

import (
	"context"
	"errors"

	"github.com/artem13815/ai-service/pkg/config"
)

// ProviderChecker fails when the remote provider is selected but cannot be
// called. /generate still answers in that state, only with mock replies.
type ProviderChecker struct {
	settings config.Settings
}

func NewProviderChecker(s config.Settings) *ProviderChecker {
	return &ProviderChecker{settings: s}
}

func (c *ProviderChecker) Name() string { return "provider" }

func (c *ProviderChecker) Check(_ context.Context) error {
	if c.settings.Provider == config.ProviderOpenAI && c.settings.APIKey == "" {
		return errors.New("OPENAI_API_KEY not configured")
	}
	return nil
}
