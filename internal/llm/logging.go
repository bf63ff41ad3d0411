package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/prepmate/internal/store"
)

// LoggingProvider is a decorator that records every LLM call in the
// request log.
type LoggingProvider struct {
	inner    Provider
	provider string
	requests store.LLMRequestRepo
}

// WithLogging wraps a Provider with request logging. providerName is
// the configured provider label ("anthropic", "openai", ...), distinct
// from the model that actually serves a request.
func WithLogging(p Provider, providerName string, repo store.LLMRequestRepo) Provider {
	return &LoggingProvider{inner: p, provider: providerName, requests: repo}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestData{
		Provider:  l.provider,
		Model:     l.inner.ModelID(),
		Purpose:   purpose,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the call but don't fail the request if logging fails.
	if logErr := l.requests.Append(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
