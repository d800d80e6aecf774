package slack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantType CommandType
		wantArgs []string
		wantErr  bool
	}{
		{
			name:     "Should parse an add command with args",
			text:     "add 15/03 19:00 Hospital Evangélico",
			wantType: CmdAdd,
			wantArgs: []string{"15/03", "19:00", "Hospital", "Evangélico"},
		},
		{
			name:     "Should accept plantao as an alias for add",
			text:     "plantao 15/03 19:00 UPA",
			wantType: CmdAdd,
			wantArgs: []string{"15/03", "19:00", "UPA"},
		},
		{
			name:     "Should parse hoje",
			text:     "hoje",
			wantType: CmdToday,
		},
		{
			name:     "Should parse amanha without the accent",
			text:     "amanha",
			wantType: CmdTomorrow,
		},
		{
			name:     "Should parse amanhã with the accent",
			text:     "amanhã",
			wantType: CmdTomorrow,
		},
		{
			name:     "Should parse proximos",
			text:     "proximos",
			wantType: CmdUpcoming,
		},
		{
			name:     "Should parse próximos with the accent",
			text:     "próximos",
			wantType: CmdUpcoming,
		},
		{
			name:     "Should parse todos",
			text:     "todos",
			wantType: CmdAll,
		},
		{
			name:     "Should parse delete without args",
			text:     "delete",
			wantType: CmdDelete,
		},
		{
			name:     "Should parse delete with a shift id",
			text:     "delete 12",
			wantType: CmdDelete,
			wantArgs: []string{"12"},
		},
		{
			name:     "Should accept rm as an alias for delete",
			text:     "rm 12",
			wantType: CmdDelete,
			wantArgs: []string{"12"},
		},
		{
			name:     "Should accept debug as an alias for status",
			text:     "debug",
			wantType: CmdStatus,
		},
		{
			name:     "Should parse ajuda as help",
			text:     "ajuda",
			wantType: CmdHelp,
		},
		{
			name:     "Should default empty text to help",
			text:     "",
			wantType: CmdHelp,
		},
		{
			name:     "Should default whitespace-only text to help",
			text:     "   ",
			wantType: CmdHelp,
		},
		{
			name:    "Should reject an unknown command",
			text:    "banana",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.text)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cmd)
			assert.Equal(t, tt.wantType, cmd.Type)
			assert.Equal(t, tt.wantArgs, cmd.Args)
		})
	}
}

func TestGetHelpText(t *testing.T) {
	help := GetHelpText()

	assert.Contains(t, help, "/plantao add")
	assert.Contains(t, help, "/plantao hoje")
	assert.Contains(t, help, "/plantao delete")
	assert.Contains(t, help, "Lembretes automáticos")
}
