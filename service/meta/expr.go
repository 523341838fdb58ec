package meta

import (
	"os"
	"strings"
)

const (
	envPrefix    = "${env."
	defaultDelim = ":-"
)

// expandEnv replaces ${env.KEY} with the value of KEY, and ${env.KEY:-fallback}
// with fallback when KEY is unset or empty. Malformed expressions are kept
// verbatim.
func expandEnv(text string, lookup func(string) (string, bool)) string {
	if !strings.Contains(text, envPrefix) {
		return text
	}
	var b strings.Builder
	rest := text
	for {
		start := strings.Index(rest, envPrefix)
		if start < 0 {
			b.WriteString(rest)
			return b.String()
		}
		b.WriteString(rest[:start])
		body := rest[start+len(envPrefix):]
		end := strings.IndexByte(body, '}')
		if end < 0 {
			b.WriteString(rest[start:])
			return b.String()
		}
		key, fallback, hasFallback := strings.Cut(body[:end], defaultDelim)
		if !isEnvKey(key) {
			b.WriteString(envPrefix)
			rest = body
			continue
		}
		value, ok := lookup(key)
		if (!ok || value == "") && hasFallback {
			value = fallback
		}
		b.WriteString(value)
		rest = body[end+1:]
	}
}

func isEnvKey(key string) bool {
	if key == "" {
		return false
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			continue
		}
		return false
	}
	return true
}

func osLookup(key string) (string, bool) {
	return os.LookupEnv(key)
}
