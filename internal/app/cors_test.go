package app

import (
	"testing"

	"github.com/lb-platform/core/internal/config"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestOriginAllowed(t *testing.T) {
	patterns := []string{
		"https://lbinterior.in",
		"*.lbservices.in",
		"http://localhost:3000",
	}

	tests := []struct {
		origin string
		want   bool
	}{
		{"https://lbinterior.in", true},
		{"http://lbinterior.in", true}, // scheme is not part of the host match
		{"https://www.lbservices.in", true},
		{"https://admin.lbservices.in", true},
		{"http://localhost:3000", true},
		{"http://localhost:4000", false},
		{"https://evil.example.com", false},
		{"https://lbservices.in.evil.example.com", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, originAllowed(patterns, tt.origin), tt.origin)
	}
}

func TestOriginAllowedEmptyPatterns(t *testing.T) {
	assert.False(t, originAllowed(nil, "https://lbinterior.in"))
}

// An empty allow-list must not become a credentialed allow-all outside of
// development.
func TestCorsAllowOriginEmptyList(t *testing.T) {
	log := zap.NewNop()

	prod := corsAllowOrigin(&config.AppConfig{Env: "production"}, log)
	assert.False(t, prod("https://lbinterior.in"))
	assert.False(t, prod("https://evil.example.com"))

	dev := corsAllowOrigin(&config.AppConfig{Env: "development"}, log)
	assert.True(t, dev("http://localhost:3000"))
}

func TestCorsAllowOriginConfiguredList(t *testing.T) {
	cfg := &config.AppConfig{
		Env:            "production",
		AllowedOrigins: []string{"https://lbinterior.in", "*.lbservices.in"},
	}
	allow := corsAllowOrigin(cfg, zap.NewNop())

	assert.True(t, allow("https://lbinterior.in"))
	assert.True(t, allow("https://www.lbservices.in"))
	assert.False(t, allow("https://evil.example.com"))
}

func TestExtractOriginHost(t *testing.T) {
	assert.Equal(t, "lbinterior.in", extractOriginHost("https://lbinterior.in"))
	assert.Equal(t, "localhost:3000", extractOriginHost("http://localhost:3000"))
	assert.Equal(t, "*.lbservices.in", extractOriginHost("*.lbservices.in"))
}
