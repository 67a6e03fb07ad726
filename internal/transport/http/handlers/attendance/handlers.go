package attendancehandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrcalc/internal/domain/attendance"
	"hrcalc/internal/domain/auth"
	"hrcalc/internal/domain/payroll"
	"hrcalc/internal/platform/metrics"
	"hrcalc/internal/transport/http/api"
	"hrcalc/internal/transport/http/middleware"
	"hrcalc/internal/transport/http/shared"
)

type Handler struct {
	Lateness *attendance.Calculator
	Metrics  *metrics.Collector
	Authz    *middleware.Authorizer
}

func NewHandler(lateness *attendance.Calculator, collector *metrics.Collector, authz *middleware.Authorizer) *Handler {
	return &Handler{Lateness: lateness, Metrics: collector, Authz: authz}
}

type latenessPayload struct {
	Timestamp  payroll.Timestamp `json:"timestamp"`
	ShiftStart string            `json:"shiftStart"`
}

type latenessResponse struct {
	Lateness   int    `json:"lateness"`
	ShiftStart string `json:"shiftStart"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/attendance", func(r chi.Router) {
		r.With(h.Authz.Require(auth.PermAttendanceRead)).Post("/lateness", h.handleLateness)
	})
}

func (h *Handler) handleLateness(w http.ResponseWriter, r *http.Request) {
	var payload latenessPayload
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	shiftStart := payload.ShiftStart
	if shiftStart == "" {
		shiftStart = h.Lateness.DefaultShiftStart()
	}
	minutes := h.Lateness.Lateness(payload.Timestamp.Seconds, payload.ShiftStart)
	h.Metrics.RecordCalculation(metrics.CalcLateness)
	api.Success(w, r, latenessResponse{Lateness: minutes, ShiftStart: shiftStart})
}
