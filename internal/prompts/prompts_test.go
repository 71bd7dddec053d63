package prompts

import (
	"strings"
	"testing"
)

func TestTimeOfDay(t *testing.T) {
	cases := map[int]string{
		5:  "morning",
		11: "morning",
		12: "afternoon",
		16: "afternoon",
		17: "evening",
		21: "evening",
		22: "night",
		3:  "night",
	}
	for hour, want := range cases {
		if got := TimeOfDay(hour); got != want {
			t.Errorf("TimeOfDay(%d) = %q, want %q", hour, got, want)
		}
	}
}

func TestGreetingsAddressUser(t *testing.T) {
	for i := 0; i < 50; i++ {
		line := RandomGreeting("morning", "Mr. Wayne")
		if !strings.Contains(line, "Mr. Wayne") {
			t.Fatalf("greeting does not address user: %q", line)
		}
		if strings.Contains(line, "%") {
			t.Fatalf("unexpanded format verb in greeting: %q", line)
		}
	}
}

func TestGoodbyesAddressUser(t *testing.T) {
	for i := 0; i < 50; i++ {
		line := RandomGoodbye("Mr. Wayne")
		if !strings.Contains(line, "Mr. Wayne") {
			t.Fatalf("goodbye does not address user: %q", line)
		}
		if strings.Contains(line, "%") {
			t.Fatalf("unexpanded format verb in goodbye: %q", line)
		}
	}
}

func TestBuildOmitsMemoryHeaderWhenEmpty(t *testing.T) {
	out := Build("Mr. Wayne", "")
	if strings.Contains(out, "KNOWN FACTS") {
		t.Error("empty memory block should not produce a facts section")
	}
	if !strings.Contains(out, "ABSOLUTE RULES") {
		t.Error("strict rules missing from instructions")
	}
}

func TestBuildIncludesMemoryBlock(t *testing.T) {
	out := Build("Mr. Wayne", "# Known user profile\nName is Bruce Wayne")
	if !strings.Contains(out, "KNOWN FACTS ABOUT MR. WAYNE") {
		t.Error("facts header missing")
	}
	if !strings.Contains(out, "Name is Bruce Wayne") {
		t.Error("memory content missing")
	}
	if strings.Index(out, "KNOWN FACTS") > strings.Index(out, "ABSOLUTE RULES") {
		t.Error("memory block should come before strict rules")
	}
}
