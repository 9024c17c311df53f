package dispatch

import (
	"reflect"
	"strings"
	"testing"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		want    []string
		wantOk  bool
	}{
		{
			name:    "wildcard captures middle run",
			pattern: "when did % take office",
			input:   "when did abraham lincoln take office",
			want:    []string{"abraham", "lincoln"},
			wantOk:  true,
		},
		{
			name:    "tokens after wildcard still required",
			pattern: "what year did % take office",
			input:   "what year did barack obama take office",
			want:    []string{"barack", "obama"},
			wantOk:  true,
		},
		{
			name:    "wildcard at end",
			pattern: "what number president is %",
			input:   "what number president is grover cleveland",
			want:    []string{"grover", "cleveland"},
			wantOk:  true,
		},
		{
			name:    "empty capture is a match",
			pattern: "when did % take office",
			input:   "when did take office",
			want:    []string{},
			wantOk:  true,
		},
		{
			name:    "single token capture",
			pattern: "when did % leave office",
			input:   "when did he leave office",
			want:    []string{"he"},
			wantOk:  true,
		},
		{
			name:    "non-wildcard mismatch fails",
			pattern: "when did % take office",
			input:   "when did abraham lincoln leave office",
			wantOk:  false,
		},
		{
			name:    "missing trailing tokens fail",
			pattern: "when did % take office",
			input:   "when did abraham lincoln take",
			wantOk:  false,
		},
		{
			name:    "zero wildcards exact match",
			pattern: "bye",
			input:   "bye",
			want:    []string{},
			wantOk:  true,
		},
		{
			name:    "zero wildcards length mismatch",
			pattern: "bye",
			input:   "bye now",
			wantOk:  false,
		},
		{
			name:    "zero wildcards token mismatch",
			pattern: "bye",
			input:   "goodbye",
			wantOk:  false,
		},
		{
			name:    "case-insensitive token comparison",
			pattern: "when did % take office",
			input:   "When Did Abraham Lincoln Take Office",
			want:    []string{"Abraham", "Lincoln"},
			wantOk:  true,
		},
		{
			name:    "empty input against wildcard-only pattern",
			pattern: "%",
			input:   "",
			want:    []string{},
			wantOk:  true,
		},
		{
			name:    "input shorter than pattern",
			pattern: "what year did % take office",
			input:   "what year",
			wantOk:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Match(strings.Fields(tt.pattern), strings.Fields(tt.input))
			if ok != tt.wantOk {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOk)
			}
			if !ok {
				if got != nil {
					t.Errorf("captured = %v, want nil on no match", got)
				}
				return
			}
			if got == nil {
				t.Fatal("captured = nil on match, want non-nil slice")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("captured = %v, want %v", got, tt.want)
			}
		})
	}
}

// Substituting any token run for the wildcard must round-trip: the
// match succeeds and captures exactly that run.
func TestMatch_WildcardSubstitutionProperty(t *testing.T) {
	pattern := strings.Fields("what year did % take office")
	runs := [][]string{
		{},
		{"lincoln"},
		{"abraham", "lincoln"},
		{"james", "earl", "carter", "jr"},
	}

	for _, run := range runs {
		input := append([]string{"what", "year", "did"}, run...)
		input = append(input, "take", "office")

		got, ok := Match(pattern, input)
		if !ok {
			t.Fatalf("Match failed for run %v", run)
		}
		if len(got) != len(run) {
			t.Fatalf("captured %v, want %v", got, run)
		}
		for i := range run {
			if got[i] != run[i] {
				t.Errorf("captured %v, want %v", got, run)
			}
		}
	}
}
