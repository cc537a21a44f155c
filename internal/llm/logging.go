package llm

import (
	"context"
	"time"

	"github.com/adelr/studypet/internal/logger"
)

// loggingProvider logs every request with purpose, latency and token
// usage. It sits between retry and the base provider so each attempt
// is logged.
type loggingProvider struct {
	inner Provider
	log   *logger.Logger
}

// WithLogging wraps a Provider with request logging.
func WithLogging(p Provider, log *logger.Logger) Provider {
	if log == nil {
		return p
	}
	return &loggingProvider{inner: p, log: log.With("component", "llm")}
}

func (l *loggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)
	latency := time.Since(start)

	if err != nil {
		l.log.Warn("llm request failed",
			"purpose", PurposeFrom(ctx),
			"model", l.inner.ModelID(),
			"latency_ms", latency.Milliseconds(),
			"error", err,
		)
		return nil, err
	}

	l.log.Debug("llm request",
		"purpose", PurposeFrom(ctx),
		"model", resp.Model,
		"latency_ms", latency.Milliseconds(),
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens,
	)
	return resp, nil
}

func (l *loggingProvider) ModelID() string {
	return l.inner.ModelID()
}
