package render

import (
	"reflect"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  []string
	}{
		{"short", "Aspirin", 15, []string{"Aspirin"}},
		{"two lines", "Serum albumin precursor", 15, []string{"Serum albumin", "precursor"}},
		{"exact", "abcde fghij", 11, []string{"abcde fghij"}},
		{"long word", "acetylsalicylic", 6, []string{"acetyl", "salicy", "lic"}},
		{"collapses space", "  a   b  ", 15, []string{"a b"}},
		{"blank", "   ", 15, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrap(tt.in, tt.width); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("wrap(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}
