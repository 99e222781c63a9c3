package policy

import (
	"testing"

	"mercator-hq/callisto/pkg/format/token"
)

// boundary builds a test boundary whose left and right tokens end at the
// given offsets.
func boundary(leftEnd, rightEnd int) *token.FormatToken {
	return &token.FormatToken{
		Left:  token.Token{Text: "l", Start: leftEnd - 1, End: leftEnd},
		Right: token.Token{Text: "r", Start: rightEnd - 1, End: rightEnd},
	}
}

// TestEnd_NotExpiredBy tests the three End boundary kinds against the edges
// of their active ranges.
func TestEnd_NotExpiredBy(t *testing.T) {
	tests := []struct {
		name       string
		end        End
		leftEnd    int
		rightEnd   int
		wantActive bool
	}{
		{name: "after - left before offset", end: After(10), leftEnd: 9, rightEnd: 11, wantActive: true},
		{name: "after - left at offset", end: After(10), leftEnd: 10, rightEnd: 12, wantActive: true},
		{name: "after - left past offset", end: After(10), leftEnd: 11, rightEnd: 13, wantActive: false},

		{name: "before - right below offset", end: Before(10), leftEnd: 7, rightEnd: 9, wantActive: true},
		{name: "before - right at offset", end: Before(10), leftEnd: 8, rightEnd: 10, wantActive: false},
		{name: "before - right past offset", end: Before(10), leftEnd: 9, rightEnd: 11, wantActive: false},

		{name: "on - right below offset", end: On(10), leftEnd: 7, rightEnd: 9, wantActive: true},
		{name: "on - right at offset", end: On(10), leftEnd: 8, rightEnd: 10, wantActive: true},
		{name: "on - right past offset", end: On(10), leftEnd: 9, rightEnd: 11, wantActive: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ft := boundary(tt.leftEnd, tt.rightEnd)
			if got := tt.end.NotExpiredBy(ft); got != tt.wantActive {
				t.Errorf("NotExpiredBy() = %v, want %v", got, tt.wantActive)
			}
		})
	}
}

// TestEnd_String tests the diagnostic rendering of End boundaries.
func TestEnd_String(t *testing.T) {
	tests := []struct {
		name string
		end  End
		want string
	}{
		{name: "after", end: After(10), want: "After:10"},
		{name: "before", end: Before(42), want: "Before:42"},
		{name: "on", end: On(0), want: "On:0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.end.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
