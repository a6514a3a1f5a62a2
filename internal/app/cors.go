package app

import (
	"net/url"
	"strings"

	"github.com/lb-platform/core/internal/config"
	"go.uber.org/zap"
)

// corsAllowOrigin picks the origin policy. Without a configured allow-list,
// development allows everything for local frontends; production refuses
// cross-origin requests rather than failing open with credentials enabled.
func corsAllowOrigin(cfg *config.AppConfig, logger *zap.Logger) func(string) bool {
	if len(cfg.AllowedOrigins) > 0 {
		patterns := cfg.AllowedOrigins
		return func(origin string) bool { return originAllowed(patterns, origin) }
	}
	if cfg.IsDev() {
		logger.Warn("no allowed_origins configured, allowing all origins in development")
		return func(string) bool { return true }
	}
	logger.Warn("no allowed_origins configured, cross-origin requests disabled")
	return func(string) bool { return false }
}

// originAllowed reports whether origin matches any configured pattern.
// Patterns are either full origins ("https://lbinterior.in") or wildcard
// hosts ("*.lbinterior.in").
func originAllowed(patterns []string, origin string) bool {
	host := extractOriginHost(origin)
	for _, pattern := range patterns {
		if pattern == origin {
			return true
		}
		if matchOriginPattern(extractOriginHost(pattern), host) {
			return true
		}
	}
	return false
}

// extractOriginHost returns the "host[:port]" portion of an origin URL.
func extractOriginHost(origin string) string {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return origin
	}
	return u.Host
}

// matchOriginPattern reports whether host matches the given wildcard pattern.
func matchOriginPattern(pattern, host string) bool {
	if pattern == host {
		return true
	}
	if strings.HasPrefix(pattern, "*.") {
		suffix := pattern[1:]
		return strings.HasSuffix(host, suffix)
	}
	return false
}
