package middleware

import "strings"

// MaskToken маскирует bearer-токен в логах.
func MaskToken(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + "***"
}
