package resolve

import "testing"

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"send", "sand", 1},
		{"comopse", "compose", 2},
		{"héllo", "hello", 1},
	}
	for _, tt := range tests {
		if got := editDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("editDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSimilarity(t *testing.T) {
	if got := similarity("", ""); got != 1 {
		t.Errorf("similarity of empty strings = %f, want 1", got)
	}
	if got := similarity("abc", "abc"); got != 1 {
		t.Errorf("similarity of equal strings = %f, want 1", got)
	}
	if got := similarity("abc", "xyz"); got != 0 {
		t.Errorf("similarity of disjoint strings = %f, want 0", got)
	}
	// One edit across eight runes.
	if got := similarity("settings", "setings"); got <= 0.8 {
		t.Errorf("similarity = %f, want > 0.8", got)
	}
}
