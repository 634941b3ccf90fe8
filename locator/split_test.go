package locator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeparateScriptCommands(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		separator string
		want      []string
	}{
		{
			name:      "two commands",
			text:      "cmd1\nGO\ncmd2",
			separator: "GO",
			want:      []string{"cmd1", "cmd2"},
		},
		{
			name:      "no separator keeps one command",
			text:      "cmd1\nGO\ncmd2",
			separator: "",
			want:      []string{"cmd1\nGO\ncmd2"},
		},
		{
			name:      "separator is case-insensitive",
			text:      "cmd1\ngo\ncmd2",
			separator: "GO",
			want:      []string{"cmd1", "cmd2"},
		},
		{
			name:      "separator line may carry whitespace",
			text:      "cmd1\n  GO  \ncmd2",
			separator: "GO",
			want:      []string{"cmd1", "cmd2"},
		},
		{
			name:      "blank segments are dropped",
			text:      "GO\n\ncmd1\nGO\nGO\n   \nGO\ncmd2\nGO",
			separator: "GO",
			want:      []string{"cmd1", "cmd2"},
		},
		{
			name:      "separator inside a line does not split",
			text:      "SELECT 'GO' FROM t\nGO\ncmd2",
			separator: "GO",
			want:      []string{"SELECT 'GO' FROM t", "cmd2"},
		},
		{
			name:      "empty text yields nothing",
			text:      "",
			separator: "GO",
			want:      nil,
		},
		{
			name:      "empty text with empty separator yields nothing",
			text:      "",
			separator: "",
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SeparateScriptCommands(tt.text, tt.separator))
		})
	}
}
