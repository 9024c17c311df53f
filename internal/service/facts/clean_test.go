package facts

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain ascii untouched",
			in:   "Born February 12, 1809",
			want: "Born February 12, 1809",
		},
		{
			name: "non-ascii runes become spaces",
			in:   "March 4, 1861–April 15, 1865",
			want: "March 4, 1861 April 15, 1865",
		},
		{
			name: "space runs collapse",
			in:   "Polar   radius    66,854 km",
			want: "Polar radius 66,854 km",
		},
		{
			name: "newline runs collapse",
			in:   "In office\n\n\nMarch 4, 1861",
			want: "In office\nMarch 4, 1861",
		},
		{
			name: "tabs and carriage returns survive",
			in:   "Born\t1809\r",
			want: "Born\t1809\r",
		},
		{
			name: "nbsp becomes space and collapses with neighbors",
			in:   "66,854\u00a0 km",
			want: "66,854 km",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
