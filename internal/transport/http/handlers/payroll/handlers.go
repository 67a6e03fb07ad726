package payrollhandler

import (
	"bytes"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"hrcalc/internal/domain/auth"
	"hrcalc/internal/domain/payroll"
	"hrcalc/internal/platform/metrics"
	"hrcalc/internal/transport/http/api"
	"hrcalc/internal/transport/http/middleware"
	"hrcalc/internal/transport/http/shared"
)

type Handler struct {
	Calc     *payroll.Calculator
	Metrics  *metrics.Collector
	Authz    *middleware.Authorizer
	Currency string
}

func NewHandler(calc *payroll.Calculator, collector *metrics.Collector, authz *middleware.Authorizer, currency string) *Handler {
	return &Handler{Calc: calc, Metrics: collector, Authz: authz, Currency: currency}
}

type financialsPayload struct {
	Employee   payroll.Employee        `json:"employee"`
	Logs       []payroll.AttendanceLog `json:"logs"`
	Deductions []payroll.Deduction     `json:"deductions"`
}

type reportPayload struct {
	Employees  []payroll.Employee      `json:"employees"`
	Logs       []payroll.AttendanceLog `json:"logs"`
	Deductions []payroll.Deduction     `json:"deductions"`
}

type payslipPayload struct {
	financialsPayload
	Period   string `json:"period"`
	Currency string `json:"currency"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.With(h.Authz.Require(auth.PermPayrollCalc)).Post("/financials", h.handleFinancials)
		r.With(h.Authz.Require(auth.PermPayrollReport)).Post("/report", h.handleReport)
		r.With(h.Authz.Require(auth.PermPayrollPayslips)).Post("/payslip", h.handlePayslip)
	})
}

func (h *Handler) handleFinancials(w http.ResponseWriter, r *http.Request) {
	var payload financialsPayload
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}
	result := h.Calc.Financials(payload.Employee, payload.Logs, payload.Deductions)
	h.Metrics.RecordCalculation(metrics.CalcFinancials)
	api.Success(w, r, result)
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	var payload reportPayload
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}
	report := h.Calc.Report(payload.Employees, payload.Logs, payload.Deductions)
	h.Metrics.RecordCalculation(metrics.CalcReport)

	if !strings.EqualFold(r.URL.Query().Get("format"), "csv") {
		api.Success(w, r, report)
		return
	}

	var buf bytes.Buffer
	if err := payroll.WriteReportCSV(&buf, report); err != nil {
		api.Logger(r.Context()).Error("export report failed", zap.Error(err))
		api.Fail(w, r, http.StatusInternalServerError, "export_failed", "failed to export report")
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=financials-report.csv")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) handlePayslip(w http.ResponseWriter, r *http.Request) {
	var payload payslipPayload
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}
	currency := payload.Currency
	if currency == "" {
		currency = h.Currency
	}
	slip := payroll.Payslip{
		Employee:   payload.Employee,
		Period:     payload.Period,
		Currency:   currency,
		Financials: h.Calc.Financials(payload.Employee, payload.Logs, payload.Deductions),
	}

	var buf bytes.Buffer
	if err := payroll.RenderPayslip(&buf, slip); err != nil {
		api.Logger(r.Context()).Error("render payslip failed", zap.Error(err), zap.String("employee", payload.Employee.ID))
		api.Fail(w, r, http.StatusInternalServerError, "payslip_failed", "failed to render payslip")
		return
	}
	h.Metrics.RecordCalculation(metrics.CalcPayslip)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+payslipFilename(payload.Employee, payload.Period))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

var unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func payslipFilename(employee payroll.Employee, period string) string {
	parts := []string{"payslip"}
	for _, part := range []string{employee.ID, period} {
		if cleaned := strings.Trim(unsafeFilename.ReplaceAllString(part, "-"), "-"); cleaned != "" {
			parts = append(parts, cleaned)
		}
	}
	return strings.Join(parts, "-") + ".pdf"
}
