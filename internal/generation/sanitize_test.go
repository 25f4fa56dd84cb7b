package generation_test

import (
	"testing"

	"github.com/phrazzld/study-api/internal/generation"
	"github.com/stretchr/testify/assert"
)

func TestStripCodeFences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain json", input: `["a","b"]`, want: `["a","b"]`},
		{name: "json fence", input: "```json\n[\"a\"]\n```", want: `["a"]`},
		{name: "bare fence", input: "```\n{\"k\":1}\n```", want: `{"k":1}`},
		{name: "surrounding whitespace", input: "\n\n  ```json\n[1]\n```  \n", want: "[1]"},
		{name: "no closing fence", input: "```json\n[1]", want: "[1]"},
		{name: "empty", input: "   ", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, generation.StripCodeFences(tc.input))
		})
	}
}
