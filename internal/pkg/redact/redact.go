// redact маскирует персональные данные перед записью в лог.
package redact

import "strings"

// Email оставляет две первые руны локальной части и домен.
func Email(s string) string {
	local, domain, ok := strings.Cut(s, "@")
	if !ok || strings.Contains(domain, "@") {
		return "***"
	}

	r := []rune(local)
	if len(r) <= 2 {
		return "***@" + domain
	}

	return string(r[:2]) + "***@" + domain
}

// Phone оставляет только две последние цифры номера.
func Phone(s string) string {
	var digits []rune
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}

	if len(digits) <= 2 {
		return "***"
	}

	return strings.Repeat("*", len(digits)-2) + string(digits[len(digits)-2:])
}

func Token() string { return "[REDACTED_TOKEN]" }
