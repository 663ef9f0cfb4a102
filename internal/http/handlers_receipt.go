package http

import (
	"log/slog"
	"net/http"

	applog "lezioni/internal/log"
	"lezioni/internal/receipt"
)

// handleReceipt serves the printable receipt document: the whole ledger by
// default, one student's payments when ?student= is given. The browser owns
// the print dialog and PDF export; the derived filename rides along on the
// document body.
func (s *Server) handleReceipt(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	filter := sanitizeInput(r.URL.Query().Get("student"))

	group, err := s.ledger.Receipt(r.Context(), filter)
	if err != nil {
		slog.ErrorContext(r.Context(), "Receipt grouping error",
			applog.FieldError, err,
			applog.FieldStudentName, filter)
		http.Error(w, "receipt unavailable", http.StatusInternalServerError)
		return
	}

	doc, err := receipt.Render(group, filter)
	if err != nil {
		slog.ErrorContext(r.Context(), "Receipt render error",
			applog.FieldError, err,
			applog.FieldStudentName, filter)
		http.Error(w, "receipt unavailable", http.StatusInternalServerError)
		return
	}

	slog.InfoContext(r.Context(), "Receipt rendered",
		applog.FieldStudentName, filter,
		"rows", len(group.Rows),
		"filename", doc.Filename)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(doc.HTML)
}
