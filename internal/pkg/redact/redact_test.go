package redact

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ascii", "foobar@example.com", "fo***@example.com"},
		{"short_local", "ab@ex.com", "***@ex.com"},
		{"no_at", "no-at-here", "***"},
		{"many_at", "a@b@c", "***"},
		{"empty", "", "***"},
		{"plus_tag", "abc+tag@EXAMPLE.org", "ab***@EXAMPLE.org"},
		{"unicode", "юзер@пример.рф", "юз***@пример.рф"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, Email(tt.in))
		})
	}
}

func TestPhone(t *testing.T) {
	t.Parallel()

	require.Equal(t, "*********67", Phone("+1 555 012 34 67"))
	require.Equal(t, "***", Phone("12"))
	require.Equal(t, "***", Phone(""))
	require.Equal(t, "**45", Phone("2345"))
}

func TestToken(t *testing.T) {
	t.Parallel()
	require.Equal(t, "[REDACTED_TOKEN]", Token())
}
