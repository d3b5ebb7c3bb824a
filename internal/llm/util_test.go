package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code block",
			input:    "```json\n{\"post_text\": \"Hello\"}\n```",
			expected: `{"post_text": "Hello"}`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"post_text\": \"Hello\"}\n```",
			expected: `{"post_text": "Hello"}`,
		},
		{
			name:     "plain JSON",
			input:    `{"post_text": "Hello"}`,
			expected: `{"post_text": "Hello"}`,
		},
		{
			name:     "preamble before object",
			input:    "Here is your LinkedIn post:\n{\"post_text\": \"Hello\"}",
			expected: `{"post_text": "Hello"}`,
		},
		{
			name:     "preamble before array",
			input:    "Suggested hashtags:\n[\"hiring\", \"remotework\"]",
			expected: `["hiring", "remotework"]`,
		},
		{
			name:     "trailing text",
			input:    "{\"post_text\": \"Hello\"}\n\nLet me know if you want another version!",
			expected: `{"post_text": "Hello"}`,
		},
		{
			name:     "escaped quotes and braces in strings",
			input:    `Result: {"post_text": "She said \"ship it {now}\""}`,
			expected: `{"post_text": "She said \"ship it {now}\""}`,
		},
		{
			name:     "no JSON",
			input:    "Sorry, I can't help with that.",
			expected: "Sorry, I can't help with that.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	assert.Equal(t, `{"a": {"b": [1, 2]}}`, extractJSONObject(`{"a": {"b": [1, 2]}} tail`))
	assert.Equal(t, "", extractJSONObject("not json"))
	assert.Equal(t, "", extractJSONObject(`{"unterminated": true`))
	assert.Equal(t, "", extractJSONObject(""))
}

func TestExtractJSONArray(t *testing.T) {
	assert.Equal(t, `[{"id": 1}, [2]]`, extractJSONArray(`[{"id": 1}, [2]] extra`))
	assert.Equal(t, "", extractJSONArray("not array"))
}
