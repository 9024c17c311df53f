package conv

import "testing"

func TestTelegramHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "plain answer text",
			input:    "March 4, 1861",
			expected: "March 4, 1861",
		},
		{
			name:     "bold label",
			input:    "**Current incumbent**",
			expected: "<strong>Current incumbent</strong>",
		},
		{
			name:     "italic",
			input:    "*no answers*",
			expected: "<em>no answers</em>",
		},
		{
			name:     "inline code",
			input:    "`1809-02-12`",
			expected: "<code>1809-02-12</code>",
		},
		{
			name:     "disallowed tags stripped",
			input:    "<script>alert(1)</script>16 & 20",
			expected: "16 &amp; 20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TelegramHTML(tt.input); got != tt.expected {
				t.Errorf("TelegramHTML(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
