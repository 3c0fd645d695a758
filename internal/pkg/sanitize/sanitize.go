package sanitize

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicyOnce sync.Once
	strictPolicy     *bluemonday.Policy
)

// PlainText strips every HTML element from input and trims surrounding space.
// Entities are decoded before the policy runs so escaped markup is stripped too;
// the result stays HTML-escaped.
func PlainText(input string) string {
	value := strings.TrimSpace(html.UnescapeString(input))
	if value == "" {
		return ""
	}
	return strings.TrimSpace(getStrictPolicy().Sanitize(value))
}

func getStrictPolicy() *bluemonday.Policy {
	strictPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}
