package ai_test

import (
	"testing"

	"github.com/studyforge/studyforge-lambda/internal/ai"
)

func TestCleanModelJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"PlainJSON", `{"a":1}`, `{"a":1}`},
		{"FencedJSON", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"BareFence", "```\n[1,2]\n```", `[1,2]`},
		{"SurroundingWhitespace", "  \n{\"a\":1}\n ", `{"a":1}`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ai.CleanModelJSON(c.in); got != c.want {
				t.Errorf("CleanModelJSON(%q) = %q, esperado %q", c.in, got, c.want)
			}
		})
	}
}
