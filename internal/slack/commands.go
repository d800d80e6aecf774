package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdAdd      CommandType = "add"
	CmdToday    CommandType = "hoje"
	CmdTomorrow CommandType = "amanha"
	CmdUpcoming CommandType = "proximos"
	CmdAll      CommandType = "todos"
	CmdDelete   CommandType = "delete"
	CmdStatus   CommandType = "status"
	CmdHelp     CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch parts[0] {
	case "add", "plantao":
		cmd.Type = CmdAdd
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "hoje":
		cmd.Type = CmdToday
	case "amanha", "amanhã":
		cmd.Type = CmdTomorrow
	case "proximos", "próximos":
		cmd.Type = CmdUpcoming
	case "todos":
		cmd.Type = CmdAll
	case "delete", "deletar", "rm":
		cmd.Type = CmdDelete
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "status", "debug":
		cmd.Type = CmdStatus
	case "help", "ajuda", "":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("comando desconhecido: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Comandos disponíveis:*

*Plantões:*
• ` + "`/plantao add DD/MM HH:MM Local`" + ` - Agenda um plantão (ex: ` + "`/plantao add 15/03 19:00 Hospital Evangélico`" + `)
• ` + "`/plantao hoje`" + ` - Plantões de hoje
• ` + "`/plantao amanha`" + ` - Plantões de amanhã
• ` + "`/plantao proximos`" + ` - Próximos 5 plantões
• ` + "`/plantao todos`" + ` - Todos os plantões

*Gerenciar:*
• ` + "`/plantao delete`" + ` - Lista plantões com seus IDs
• ` + "`/plantao delete 12`" + ` - Remove o plantão 12
• ` + "`/plantao status`" + ` - Status e tempo restante de cada plantão

⏰ *Lembretes automáticos:* 24 horas, 3 horas e 30 minutos antes de cada plantão.`
}
