package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders holds the lower-case names of HTTP headers that carry
// credentials. The HTTP middleware masks them when dumping headers and the
// redactor masks log attributes of the same name.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"x-api-key":     true,
}

var (
	sensitiveFields   = []string{"password", "secret", "token"}
	sensitivePrefixes = []string{"secret_", "api_key"}

	// Credential shapes that can end up inside free-form values.
	sensitiveValues = []*regexp.Regexp{
		regexp.MustCompile(`(?i)bearer\s+[a-z0-9\-._~+/]+=*`),
		regexp.MustCompile(`[A-Za-z0-9\-_]{10,}\.[A-Za-z0-9\-_]{10,}\.[A-Za-z0-9\-_]{10,}`), // JWT
		regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
	}
)

// redactor builds the masq ReplaceAttr hook from the tables above.
func redactor() func([]string, slog.Attr) slog.Attr {
	var opts []masq.Option
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range sensitiveValues {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
