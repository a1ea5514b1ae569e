// Copyright (c) 2026 The hconf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package credential hides secret-looking configuration values before they are printed.
package credential

import (
	"fmt"
	"regexp"
)

const mask = "******"

// Blur formats the value of the given key.
//
// It returns a mask if the key looks like a secret name,
// or the kind of secret if the formatted value matches a well-known secret pattern.
func Blur(key string, value any) string {
	if namePattern.MatchString(key) {
		return mask
	}

	formatted, ok := value.(string)
	if !ok {
		formatted = fmt.Sprint(value)
	}
	for _, secret := range secretPatterns {
		if secret.pattern.MatchString(formatted) {
			return secret.kind
		}
	}

	return formatted
}

//nolint:gochecknoglobals
var (
	namePattern    = regexp.MustCompile(`(?i)password|passwd|pwd|secret|token|api_?key|bearer|credential`)
	secretPatterns = []struct {
		kind    string
		pattern *regexp.Regexp
	}{
		{"private key", regexp.MustCompile(`-----BEGIN [A-Z ]*PRIVATE KEY( BLOCK)?-----`)},
		{"AWS access key", regexp.MustCompile(`AKIA[0-9A-Z]{16}`)},
		{"GitHub token", regexp.MustCompile(`gh[pos]_[a-zA-Z0-9]{36}`)},
		{"Google API key", regexp.MustCompile(`AIza[0-9A-Za-z\-_]{35}`)},
		{"Slack token", regexp.MustCompile(`xox[pborsa]-[0-9A-Za-z-]{10,}`)},
		{"Stripe key", regexp.MustCompile(`[sr]k_live_[0-9a-zA-Z]{24}`)},
		{"password in URL", regexp.MustCompile(`[a-zA-Z]{3,10}://[^/\s:@]{3,20}:[^/\s:@]{3,20}@`)},
	}
)
