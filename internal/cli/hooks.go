package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pokedex/pkg/observability"
)

// logLookupHooks traces lookups at debug level.
type logLookupHooks struct {
	logger *log.Logger
}

func newLogLookupHooks(l *log.Logger) *logLookupHooks {
	return &logLookupHooks{logger: l.WithPrefix("lookup")}
}

func (h *logLookupHooks) OnLookupStart(_ context.Context, name string, translated bool) {
	h.logger.Debug("start", "name", name, "translated", translated)
}

func (h *logLookupHooks) OnLookupComplete(_ context.Context, name string, translated bool, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("failed", "name", name, "translated", translated, "duration", d.Round(time.Millisecond), "err", err)
		return
	}
	h.logger.Debug("done", "name", name, "translated", translated, "duration", d.Round(time.Millisecond))
}

func (h *logLookupHooks) OnTranslation(_ context.Context, style string, fallback bool, reason error) {
	if fallback {
		h.logger.Debug("translation fell back", "style", style, "reason", reason)
		return
	}
	h.logger.Debug("translated", "style", style)
}

// logHTTPHooks traces outbound upstream requests at debug level.
type logHTTPHooks struct {
	logger *log.Logger
}

func newLogHTTPHooks(l *log.Logger) *logHTTPHooks {
	return &logHTTPHooks{logger: l.WithPrefix("http")}
}

func (h *logHTTPHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("request", "method", method, "host", host, "path", path)
}

func (h *logHTTPHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "host", host, "path", path, "status", status, "duration", d.Round(time.Millisecond))
}

func (h *logHTTPHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("error", "method", method, "host", host, "path", path, "err", err)
}

var (
	_ observability.LookupHooks = (*logLookupHooks)(nil)
	_ observability.HTTPHooks   = (*logHTTPHooks)(nil)
)
