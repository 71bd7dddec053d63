package channel

import (
	"strings"
	"testing"
)

func TestSplitChunks(t *testing.T) {
	cases := []struct {
		name string
		text string
		size int
		want int
	}{
		{"empty", "", 10, 0},
		{"fits", "hello", 10, 1},
		{"exact", strings.Repeat("a", 10), 10, 1},
		{"split", strings.Repeat("a", 25), 10, 3},
	}
	for _, tc := range cases {
		chunks := splitChunks(tc.text, tc.size)
		if len(chunks) != tc.want {
			t.Errorf("%s: got %d chunks, want %d", tc.name, len(chunks), tc.want)
		}
		if joined := strings.Join(chunks, ""); joined != tc.text {
			t.Errorf("%s: chunks do not reassemble to input", tc.name)
		}
		for _, c := range chunks {
			if len(c) > tc.size {
				t.Errorf("%s: chunk exceeds size limit", tc.name)
			}
		}
	}
}
