package logger

import "strings"

// sensitiveKeys are parameter names whose values must never reach a log line
var sensitiveKeys = map[string]struct{}{
	"password": {},
	"token":    {},
	"secret":   {},
	"key":      {},
}

const redactedValue = "***"

// RedactParams returns a copy of params with sensitive values masked.
// The input map is never modified.
func RedactParams(params map[string]any) map[string]any {
	if params == nil {
		return nil
	}

	filtered := make(map[string]any, len(params))
	for k, v := range params {
		if _, sensitive := sensitiveKeys[strings.ToLower(k)]; sensitive {
			filtered[k] = redactedValue
			continue
		}
		filtered[k] = v
	}
	return filtered
}

// SafeInfo logs a message together with user-supplied parameters after
// masking sensitive keys. All param-carrying log lines go through here.
func SafeInfo(msg string, params map[string]any) {
	InfoWithFields(msg, RedactParams(params))
}
