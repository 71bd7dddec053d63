package memory

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"hello world", "hello world"},
		{"  hello   world  ", "hello world"},
		{"line\none\t\ttwo", "line one two"},
		{"a\r\n b", "a b"},
	}

	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFingerprint(t *testing.T) {
	if Fingerprint("Blue!") != Fingerprint("blue") {
		t.Fatal("fingerprint should ignore case and trailing punctuation")
	}
	if Fingerprint("My favorite color is blue...") != "my favorite color is blue" {
		t.Fatalf("unexpected fingerprint: %q", Fingerprint("My favorite color is blue..."))
	}
	if Fingerprint("  Hello,   World!! ") != "hello, world" {
		t.Fatalf("unexpected fingerprint: %q", Fingerprint("  Hello,   World!! "))
	}
	if Fingerprint("same text") == Fingerprint("different text") {
		t.Fatal("distinct texts should not collide")
	}
}
