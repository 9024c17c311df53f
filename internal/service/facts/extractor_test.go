package facts

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

// stubSource returns one fixed infobox text for every subject.
type stubSource struct {
	text string
	err  error
}

func (s *stubSource) InfoboxText(ctx context.Context, subject string) (string, error) {
	return s.text, s.err
}

func newExtractor(text string) *Extractor {
	return New(&stubSource{text: text})
}

const closedTermBox = `Abraham Lincoln
16th President of the United States
In office
March 4, 1861 – April 15, 1865
Vice President	Hannibal Hamlin Andrew Johnson
Born	(1809-02-12) February 12, 1809
Springfield, Illinois, U.S.`

const sittingTermBox = `Incumbent
Assumed office
January 20, 2025
Born	(1946-06-14) June 14, 1946`

const splitTermBox = `Grover Cleveland
22nd & 24th President of the United States
In office
March 4, 1893 – March 4, 1897
Born	(1837-03-18) March 18, 1837`

const planetBox = `Jupiter
Equatorial radius	71,492 km
Polar radius	66,854±10 km
Mass	1.8982×10^27 kg`

func TestExtractor_BirthDate(t *testing.T) {
	got, err := newExtractor(closedTermBox).BirthDate(context.Background(), "abraham lincoln")
	if err != nil {
		t.Fatalf("BirthDate: %v", err)
	}
	if got != "1809-02-12" {
		t.Errorf("BirthDate = %q, want %q", got, "1809-02-12")
	}
}

func TestExtractor_TermStart(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "closed term", text: closedTermBox, want: "March 4, 1861"},
		{name: "sitting term falls back to assumed office", text: sittingTermBox, want: "January 20, 2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newExtractor(tt.text).TermStart(context.Background(), "subject")
			if err != nil {
				t.Fatalf("TermStart: %v", err)
			}
			if got != tt.want {
				t.Errorf("TermStart = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractor_TermEnd(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "closed term", text: closedTermBox, want: "April 15, 1865"},
		{name: "sitting term reports current incumbent", text: sittingTermBox, want: CurrentIncumbent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newExtractor(tt.text).TermEnd(context.Background(), "subject")
			if err != nil {
				t.Fatalf("TermEnd: %v", err)
			}
			if got != tt.want {
				t.Errorf("TermEnd = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractor_Ordinals(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "single term", text: closedTermBox, want: []string{"16"}},
		{name: "split terms", text: splitTermBox, want: []string{"22", "24"}},
		{
			name: "repeated rank deduplicated",
			text: "16th President of the United States\nmore text\n16th President of the United States",
			want: []string{"16"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newExtractor(tt.text).Ordinals(context.Background(), "subject")
			if err != nil {
				t.Fatalf("Ordinals: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Ordinals = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractor_PolarRadius(t *testing.T) {
	got, err := newExtractor(planetBox).PolarRadius(context.Background(), "jupiter")
	if err != nil {
		t.Fatalf("PolarRadius: %v", err)
	}
	if got != "66,854" {
		t.Errorf("PolarRadius = %q, want %q", got, "66,854")
	}
}

func TestExtractor_FieldNotFound(t *testing.T) {
	_, err := newExtractor(planetBox).BirthDate(context.Background(), "jupiter")
	if !errors.Is(err, ErrFieldNotFound) {
		t.Errorf("err = %v, want ErrFieldNotFound", err)
	}
}

func TestExtractor_SourceErrorPropagates(t *testing.T) {
	sourceErr := errors.New("no search results")
	ex := New(&stubSource{err: sourceErr})

	_, err := ex.TermStart(context.Background(), "nobody")
	if !errors.Is(err, sourceErr) {
		t.Errorf("err = %v, want wrapped source error", err)
	}
}
