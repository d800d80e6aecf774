package handlers

import (
	"encoding/json"
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/diegoclair/slack-shift-bot/internal/domain"
	"github.com/diegoclair/slack-shift-bot/internal/domain/contract"
	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
	"github.com/go-chi/chi/v5"
)

// APIHandler is the read-only REST facade over the shift queries. It
// has no logic of its own beyond shaping responses.
type APIHandler struct {
	shiftService contract.ShiftService
}

func NewAPI(shiftService contract.ShiftService) *APIHandler {
	return &APIHandler{shiftService: shiftService}
}

// Routes mounts the API endpoints on a chi router.
func (h *APIHandler) Routes(r chi.Router) {
	r.Get("/health", h.handleHealth)
	r.Get("/shifts/{ownerID}", h.handleShifts)
	r.Get("/shifts/{ownerID}/today", h.handleShiftsToday)
	r.Get("/shifts/{ownerID}/tomorrow", h.handleShiftsTomorrow)
	r.Get("/stats/{ownerID}", h.handleStats)
}

type apiShift struct {
	ID       int64  `json:"id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Location string `json:"location"`
}

type apiShiftStatus struct {
	apiShift
	Year           int     `json:"year"`
	Status         string  `json:"status"`
	HoursRemaining float64 `json:"hours_remaining"`
}

func (h *APIHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

func (h *APIHandler) handleShifts(w http.ResponseWriter, r *http.Request) {
	ownerID := chi.URLParam(r, "ownerID")

	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > domain.MaxListLimit {
			h.writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	statuses, err := h.shiftService.ShiftStatuses(ownerID, limit)
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	result := make([]apiShiftStatus, 0, len(statuses))
	for _, st := range statuses {
		result = append(result, apiShiftStatus{
			apiShift: apiShift{
				ID:       st.Shift.ID,
				Date:     st.Shift.ShiftDate,
				Time:     st.Shift.ShiftTime,
				Location: st.Shift.Location,
			},
			Year:           st.ResolvedYear,
			Status:         st.Status,
			HoursRemaining: math.Round(st.HoursRemaining*100) / 100,
		})
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"total":   len(result),
		"shifts":  result,
	})
}

func (h *APIHandler) handleShiftsToday(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.shiftService.ShiftsToday(chi.URLParam(r, "ownerID"))
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	h.writeShiftList(w, shifts)
}

func (h *APIHandler) handleShiftsTomorrow(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.shiftService.ShiftsTomorrow(chi.URLParam(r, "ownerID"))
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	h.writeShiftList(w, shifts)
}

func (h *APIHandler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.shiftService.Stats(chi.URLParam(r, "ownerID"))
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"stats":   stats,
	})
}

func (h *APIHandler) writeShiftList(w http.ResponseWriter, shifts []*entity.Shift) {
	result := make([]apiShift, 0, len(shifts))
	for _, shift := range shifts {
		result = append(result, apiShift{
			ID:       shift.ID,
			Date:     shift.ShiftDate,
			Time:     shift.ShiftTime,
			Location: shift.Location,
		})
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"total":   len(result),
		"shifts":  result,
	})
}

func (h *APIHandler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode API response: %v", err)
	}
}

func (h *APIHandler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}

func (h *APIHandler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("API error on %s %s: %v", r.Method, r.URL.Path, err)
	h.writeError(w, http.StatusInternalServerError, "internal server error")
}
