package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/diegoclair/slack-shift-bot/internal/domain/contract"
	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
	"github.com/diegoclair/slack-shift-bot/internal/domain/shifttime"
	slackcmd "github.com/diegoclair/slack-shift-bot/internal/slack"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	shiftService  contract.ShiftService
	signingSecret string
}

func New(shiftService contract.ShiftService, signingSecret string) *SlackHandler {
	return &SlackHandler{
		shiftService:  shiftService,
		signingSecret: signingSecret,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Parse our command
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	// Handle command
	response := h.handleCommand(r.Context(), cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdAdd:
		return h.handleAddShift(cmd, slashCmd)
	case slackcmd.CmdToday:
		return h.handleListByDay(slashCmd.UserID, true)
	case slackcmd.CmdTomorrow:
		return h.handleListByDay(slashCmd.UserID, false)
	case slackcmd.CmdUpcoming:
		return h.handleUpcoming(slashCmd.UserID, 5)
	case slackcmd.CmdAll:
		return h.handleUpcoming(slashCmd.UserID, 100)
	case slackcmd.CmdDelete:
		return h.handleDelete(ctx, cmd, slashCmd)
	case slackcmd.CmdStatus:
		return h.handleStatus(slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Comando não reconhecido")
	}
}

func (h *SlackHandler) handleAddShift(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) < 3 {
		return h.createErrorResponse("Formato incompleto. Use: `/plantao add DD/MM HH:MM Hospital`")
	}

	dateStr := cmd.Args[0]
	timeStr := cmd.Args[1]
	location := strings.Join(cmd.Args[2:], " ")

	if !shifttime.ValidDate(dateStr) {
		return h.createErrorResponse("Data inválida. Use formato DD/MM (ex: 15/03)")
	}

	if !shifttime.ValidTime(timeStr) {
		return h.createErrorResponse("Hora inválida. Use formato HH:MM (ex: 19:00)")
	}

	shift, year, err := h.shiftService.CreateShift(contract.CreateShiftInput{
		OwnerID:   slashCmd.UserID,
		ShiftDate: dateStr,
		ShiftTime: timeStr,
		Location:  location,
	})
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Erro ao salvar plantão: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text: fmt.Sprintf(`✅ *PLANTÃO SALVO COM SUCESSO!*

📅 *Data:* %s (%d)
⏰ *Hora:* %s
🏥 *Local:* %s

📱 *Lembretes automáticos:*
   ⏰ 24 horas antes
   🔔 3 horas antes
   🚨 30 minutos antes`, shift.ShiftDate, year, shift.ShiftTime, shift.Location),
	}
}

func (h *SlackHandler) handleListByDay(userID string, today bool) *slack.Msg {
	var shifts []*entity.Shift
	var err error
	var title, empty string

	if today {
		shifts, err = h.shiftService.ShiftsToday(userID)
		title = "📅 *PLANTÕES DE HOJE:*"
		empty = "✅ Nenhum plantão hoje! Aproveite o descanso! 😊"
	} else {
		shifts, err = h.shiftService.ShiftsTomorrow(userID)
		title = "📅 *PLANTÕES DE AMANHÃ:*"
		empty = "✅ Nenhum plantão amanhã! 🎉"
	}

	if err != nil {
		return h.createErrorResponse("Erro ao buscar plantões")
	}

	if len(shifts) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         empty,
		}
	}

	var sb strings.Builder
	sb.WriteString(title + "\n\n")
	for _, shift := range shifts {
		sb.WriteString(fmt.Sprintf("⏰ *%s* - %s\n", shift.ShiftTime, shift.Location))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         sb.String(),
	}
}

func (h *SlackHandler) handleUpcoming(userID string, limit int) *slack.Msg {
	shifts, err := h.shiftService.UpcomingShifts(userID, limit)
	if err != nil {
		return h.createErrorResponse("Erro ao buscar plantões")
	}

	if len(shifts) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "📭 Nenhum plantão agendado ainda.\nUse `/plantao add DD/MM HH:MM Local` para adicionar!",
		}
	}

	var sb strings.Builder
	sb.WriteString("📋 *PRÓXIMOS PLANTÕES:*\n\n")
	for _, shift := range shifts {
		sb.WriteString(fmt.Sprintf("📅 *%s* ⏰ *%s*\n🏥 %s\n\n", shift.ShiftDate, shift.ShiftTime, shift.Location))
	}

	text := strings.TrimSpace(sb.String())
	if len(shifts) > 10 {
		text += fmt.Sprintf("\n\n📊 *Total:* %d plantões", len(shifts))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text,
	}
}

func (h *SlackHandler) handleDelete(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	// Without an ID, list candidates so the user can pick one
	if len(cmd.Args) == 0 {
		shifts, err := h.shiftService.UpcomingShifts(slashCmd.UserID, 10)
		if err != nil {
			return h.createErrorResponse("Erro ao buscar plantões")
		}

		if len(shifts) == 0 {
			return &slack.Msg{
				ResponseType: slack.ResponseTypeEphemeral,
				Text:         "📭 Você não tem plantões agendados para deletar.",
			}
		}

		var sb strings.Builder
		sb.WriteString("🗑️ *DELETAR PLANTÃO*\n\nUse `/plantao delete <id>` com um dos IDs abaixo:\n\n")
		for _, shift := range shifts {
			sb.WriteString(fmt.Sprintf("`%d` - %s %s - %s\n", shift.ID, shift.ShiftDate, shift.ShiftTime, shift.Location))
		}

		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         sb.String(),
		}
	}

	shiftID, err := strconv.ParseInt(cmd.Args[0], 10, 64)
	if err != nil {
		return h.createErrorResponse("ID inválido. Use: `/plantao delete <id>`")
	}

	shift, err := h.shiftService.DeleteShift(ctx, slashCmd.UserID, shiftID)
	if err != nil {
		return h.createErrorResponse("Plantão não encontrado")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text: fmt.Sprintf(`✅ *PLANTÃO DELETADO!*

📅 %s ⏰ %s
🏥 %s`, shift.ShiftDate, shift.ShiftTime, shift.Location),
	}
}

func (h *SlackHandler) handleStatus(slashCmd *slack.SlashCommand) *slack.Msg {
	stats, err := h.shiftService.Stats(slashCmd.UserID)
	if err != nil {
		return h.createErrorResponse("Erro ao buscar estatísticas")
	}

	statuses, err := h.shiftService.ShiftStatuses(slashCmd.UserID, 5)
	if err != nil {
		return h.createErrorResponse("Erro ao buscar plantões")
	}

	var sb strings.Builder
	sb.WriteString("🔧 *STATUS DOS PLANTÕES:*\n\n")
	sb.WriteString(fmt.Sprintf("👤 Seus plantões ativos: %d\n", stats.Total))
	sb.WriteString("\n📋 *Próximos plantões:*\n")

	if len(statuses) == 0 {
		sb.WriteString("📭 Nenhum plantão agendado.\n")
	}

	for _, st := range statuses {
		sb.WriteString(fmt.Sprintf("\n📅 *%s/%d %s* - %s\n   %s\n", st.Shift.ShiftDate, st.ResolvedYear, st.Shift.ShiftTime, st.Shift.Location, st.Status))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         sb.String(),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "❌ " + message,
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.createErrorResponse(message))
}
