package security

import (
	"fmt"
	"log/slog"
	"regexp"
)

const redacted = "***REDACTED***"

// Sanitizer scrubs secrets from text before it reaches logs or the update
// journal.
type Sanitizer struct {
	patterns []*regexp.Regexp
}

// NewSanitizer compiles patterns. Each non-empty literal, such as the bot
// token, is matched verbatim in addition to the patterns.
func NewSanitizer(patterns []string, literals ...string) (*Sanitizer, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns)+len(literals))
	for _, literal := range literals {
		if literal == "" {
			continue
		}
		compiled = append(compiled, regexp.MustCompile(regexp.QuoteMeta(literal)))
	}
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid security pattern %q: %w", pattern, err)
		}
		compiled = append(compiled, re)
	}
	return &Sanitizer{
		patterns: compiled,
	}, nil
}

func (s *Sanitizer) Sanitize(text string) string {
	result := text
	changed := false

	for _, pattern := range s.patterns {
		if pattern.MatchString(result) {
			result = pattern.ReplaceAllString(result, redacted)
			changed = true
		}
	}

	if changed {
		slog.Debug("Security: Redacted sensitive information")
	}

	return result
}

// Error returns the sanitized text of err, or "" for a nil error.
func (s *Sanitizer) Error(err error) string {
	if err == nil {
		return ""
	}
	return s.Sanitize(err.Error())
}

var DefaultPatterns = []string{
	// Telegram bot tokens, also inside api.telegram.org/bot<token>/ URLs
	`\d{5,12}:[A-Za-z0-9_-]{30,}`,
	`api[_-]?key[s]?\s*[:=]\s*["']?([^"'\s]+)`,
	`token[s]?\s*[:=]\s*["']?([^"'\s]+)`,
	`password[s]?\s*[:=]\s*["']?([^"'\s]+)`,
	`secret[s]?\s*[:=]\s*["']?([^"'\s]+)`,
	// Base64 secrets - require at least one non-hex char to exclude hash digests (sha256, etc.)
	// Pattern 1: non-hex char in first 20 positions
	`[A-Fa-f0-9]{0,19}[G-Zg-z+/][A-Za-z0-9+/]{39,}={0,2}`,
	// Pattern 2: non-hex char at position 20-39
	`[A-Fa-f0-9]{20,39}[G-Zg-z+/][A-Za-z0-9+/]{19,}={0,2}`,
	`eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`,
}
