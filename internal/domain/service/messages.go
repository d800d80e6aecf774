package service

import "fmt"

func reminder24hMessage(date, time, location string) string {
	return fmt.Sprintf(`⏰ *LEMBRETE 24H - PLANTÃO AMANHÃ!*

📅 %s às %s
🏥 %s

💡 *Checklist:*
• ✅ Estetoscópio
• ✅ Jaleco
• ✅ Lanche/água
• ✅ Carregador
• ✅ Documentos

💪 Boa sorte!`, date, time, location)
}

func reminder3hMessage(date, time, location string) string {
	return fmt.Sprintf(`🚨 *PLANTÃO EM 3 HORAS!*

🏥 %s
⏰ %s

⚡ *Hora de se preparar!*
• Verifique o trânsito
• Separe tudo que precisa
• Alimente-se bem`, location, time)
}

func reminder30minMessage(date, time, location string) string {
	return fmt.Sprintf(`🚨🚨 *PLANTÃO EM 30 MINUTOS!*

🏥 %s
⏰ %s

⚡ *Hora de sair!* Vá com segurança.`, location, time)
}

func partnerNewShiftMessage(date, time, location string) string {
	return fmt.Sprintf(`📢 *Novo plantão agendado!*

📅 %s ⏰ %s
🏥 %s`, date, time, location)
}
