package analysis

import "testing"

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "tagged fence",
			content: "Here is my analysis:\n```json\n{\"deal_score\": 8}\n```\nHope that helps!",
			want:    `{"deal_score": 8}`,
		},
		{
			name:    "plain fence",
			content: "```\n{\"deal_score\": 3}\n```",
			want:    `{"deal_score": 3}`,
		},
		{
			name:    "no fence",
			content: `  {"deal_score": 5}  `,
			want:    `{"deal_score": 5}`,
		},
		{
			name:    "tagged fence wins over plain",
			content: "```\nignored\n```\n```json\n{\"a\":1}\n```",
			want:    `{"a":1}`,
		},
		{
			name:    "unterminated fence keeps the remainder",
			content: "```json\n{\"a\":1}",
			want:    `{"a":1}`,
		},
		{
			name:    "empty fence yields empty candidate",
			content: "``````",
			want:    "",
		},
		{
			name:    "prose only",
			content: "This looks like a solid deal overall.",
			want:    "This looks like a solid deal overall.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSON(tt.content); got != tt.want {
				t.Errorf("extractJSON() = %q, want %q", got, tt.want)
			}
		})
	}
}
