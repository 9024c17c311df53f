package core

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "question mark stripped and lowercased",
			query: "When did Abraham Lincoln take office?",
			want:  []string{"when", "did", "abraham", "lincoln", "take", "office"},
		},
		{
			name:  "extra whitespace collapsed",
			query: "  bye  ",
			want:  []string{"bye"},
		},
		{
			name:  "empty input",
			query: "",
			want:  nil,
		},
		{
			name:  "commas and periods removed",
			query: "what number president was Grover Cleveland, really?",
			want:  []string{"what", "number", "president", "was", "grover", "cleveland", "really"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.query)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}
