package http

import (
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"lezioni/internal/core"
	applog "lezioni/internal/log"
)

func (s *Server) handleCreatePayment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", applog.FieldError, err, applog.FieldPath, r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<div class="error">בקשה לא תקינה</div>`))
		return
	}

	student := sanitizeInput(r.Form.Get("student"))
	date := sanitizeInput(r.Form.Get("date"))

	p, err := s.ledger.RecordPayment(r.Context(), student, date)
	switch {
	case errors.Is(err, core.ErrInvalidDate):
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">יש לבחור תאריך</div>`))
		return
	case errors.Is(err, core.ErrStudentNotFound):
		// Stale pick-list after a roster delete; nothing was recorded.
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">התלמיד לא נמצא</div>`))
		return
	case err != nil:
		slog.ErrorContext(r.Context(), "Failed to record payment",
			applog.FieldError, err,
			applog.FieldStudentName, student)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<div class="error">שגיאה בשמירה</div>`))
		return
	}

	slog.InfoContext(r.Context(), "Payment recorded",
		applog.FieldPaymentID, p.ID,
		applog.FieldStudentName, p.Student,
		applog.FieldAmountCents, p.Amount.Cents)

	w.Header().Set("HX-Trigger", `{"ledger:changed": {}}`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`<div class="success">נרשם תשלום: ` +
		template.HTMLEscapeString(p.Student) + ` — ` +
		template.HTMLEscapeString(formatAmount(p.Amount)) + `</div>`))
}

func (s *Server) handleDeletePayment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", applog.FieldError, err, applog.FieldPath, r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<div class="error">בקשה לא תקינה</div>`))
		return
	}

	id, err := strconv.ParseInt(r.Form.Get("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<div class="error">מזהה תשלום לא תקין</div>`))
		return
	}

	if err := s.ledger.RemovePayment(r.Context(), id); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<div class="error">שגיאה במחיקה</div>`))
		return
	}

	w.Header().Set("HX-Trigger", `{"ledger:changed": {}}`)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleClearPayments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if err := s.ledger.ClearAll(r.Context()); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<div class="error">שגיאה במחיקה</div>`))
		return
	}

	w.Header().Set("HX-Trigger", `{"ledger:changed": {}}`)
	w.WriteHeader(http.StatusOK)
}

// handlePaymentsPartial renders the full ledger: table rows with per-row
// delete and print-receipt affordances, plus the running total.
func (s *Server) handlePaymentsPartial(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	payments, err := s.ledger.Payments(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Payments list error", applog.FieldError, err)
		_, _ = w.Write([]byte(`<div class="placeholder">שגיאה בטעינת התשלומים</div>`))
		return
	}
	summary := core.Summarize(payments)

	type row struct {
		ID      int64
		Student string
		Date    string
		Amount  string
	}
	data := struct {
		Rows  []row
		Total string
	}{
		Total: formatAmount(summary.Total),
	}
	for _, p := range payments {
		data.Rows = append(data.Rows, row{
			ID:      p.ID,
			Student: p.Student,
			Date:    p.Date.String(),
			Amount:  formatAmount(p.Amount),
		})
	}

	if s.templates == nil {
		_, _ = w.Write([]byte(`<div class="placeholder">templates not loaded</div>`))
		return
	}
	if err := s.templates.ExecuteTemplate(w, "payments.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Payments template execution failed", applog.FieldError, err)
		_, _ = w.Write([]byte(`<div class="placeholder">שגיאה בהצגת התשלומים</div>`))
	}
}

// handleChartData serves the {labels, values} series the chart widget
// consumes: one bar per payment record in iteration order.
func (s *Server) handleChartData(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	summary, err := s.ledger.Summary(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Summary error", applog.FieldError, err)
		http.Error(w, "summary unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	resp := struct {
		Labels []string  `json:"labels"`
		Values []float64 `json:"values"`
	}{
		Labels: summary.Chart.Labels,
		Values: summary.Chart.Values,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.ErrorContext(r.Context(), "Chart data encode error", applog.FieldError, err)
	}
}
